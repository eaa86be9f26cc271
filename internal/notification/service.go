package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/subscriber"
)

const (
	channelWebhook = "webhook"
	channelKafka   = "kafka"
	source         = "notification"
)

// SubscriberSource lists the registered endpoints.
type SubscriberSource interface {
	List(ctx context.Context) ([]subscriber.Subscriber, error)
}

type Options struct {
	// Concurrency caps simultaneous deliveries. Values below 1 mean 1.
	Concurrency int
	// Timeout bounds each delivery. Zero means no bound beyond the broadcast context.
	Timeout   time.Duration
	Publisher Publisher
	Recorder  observability.Recorder
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

type Service struct {
	subscribers SubscriberSource
	deliverer   Deliverer
	opts        Options
}

func NewService(subscribers SubscriberSource, deliverer Deliverer, opts Options) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Recorder == nil {
		opts.Recorder = observability.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{subscribers: subscribers, deliverer: deliverer, opts: opts}
}

// Report summarizes one broadcast.
type Report struct {
	Attempted int
	Failed    int
}

// Broadcast delivers the event to every subscriber. It never fails: a subscriber
// that cannot be reached is recorded and the others are still attempted.
// Cancelling ctx abandons deliveries that have not started.
func (s *Service) Broadcast(ctx context.Context, event sportevent.SportEvent) Report {
	s.opts.Metrics.RecordBroadcast()
	payload := NewPayload(event)

	if s.opts.Publisher != nil {
		s.publish(ctx, payload)
	}

	subs, err := s.subscribers.List(ctx)
	if err != nil {
		s.record(ctx, "load subscribers", err.Error())
		return Report{}
	}
	if len(subs) == 0 {
		return Report{}
	}

	body, err := payload.Marshal()
	if err != nil {
		s.record(ctx, "encode", err.Error())
		return Report{}
	}

	var attempted, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)
	for _, sub := range subs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			attempted.Add(1)
			if !s.deliver(ctx, sub, body) {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Attempted: int(attempted.Load()), Failed: int(failed.Load())}
	s.opts.Logger.Info("sport event broadcast",
		"event_id", event.ID,
		"subscribers", len(subs),
		"attempted", report.Attempted,
		"failed", report.Failed)
	return report
}

func (s *Service) deliver(ctx context.Context, sub subscriber.Subscriber, body []byte) bool {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.deliverer.Deliver(ctx, sub.URL, body)
	s.opts.Metrics.RecordDelivery(channelWebhook, err == nil, time.Since(start).Seconds())
	if err != nil {
		s.record(ctx, "deliver", fmt.Sprintf("subscriber %d (%s): %v", sub.ID, sub.URL, err))
		return false
	}
	return true
}

func (s *Service) publish(ctx context.Context, payload Payload) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.opts.Publisher.Publish(ctx, payload)
	s.opts.Metrics.RecordDelivery(channelKafka, err == nil, time.Since(start).Seconds())
	if err != nil {
		s.record(ctx, "publish", err.Error())
	}
}

func (s *Service) record(ctx context.Context, action, message string) {
	s.opts.Recorder.Record(context.WithoutCancel(ctx), observability.Event{
		Source:  source,
		Action:  action,
		Message: message,
	})
}
