package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
)

// Broadcaster is the fan-out the dispatcher runs in the background.
type Broadcaster interface {
	Broadcast(ctx context.Context, event sportevent.SportEvent) Report
}

// Dispatcher runs each broadcast on its own goroutine so event creation never waits
// for subscribers. It implements sportevent.Notifier.
type Dispatcher struct {
	broadcaster Broadcaster
	logger      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(broadcaster Broadcaster, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{broadcaster: broadcaster, logger: logger, ctx: ctx, cancel: cancel}
}

// Notify starts a broadcast and returns immediately. Events arriving after Close are dropped.
func (d *Dispatcher) Notify(event sportevent.SportEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("dispatcher closed, sport event not broadcast", "event_id", event.ID)
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.broadcaster.Broadcast(d.ctx, event)
	}()
}

// Close stops accepting events and waits for running broadcasts until ctx is done.
// Deliveries not started by then are abandoned.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}
