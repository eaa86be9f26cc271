package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/subscriber"
)

type staticSubscribers struct {
	subs []subscriber.Subscriber
	err  error
}

func (s staticSubscribers) List(context.Context) ([]subscriber.Subscriber, error) {
	return s.subs, s.err
}

func subscribersAt(urls ...string) staticSubscribers {
	var s staticSubscribers
	for i, u := range urls {
		sub := subscriber.Subscriber{URL: u}
		sub.ID = uint(i + 1)
		s.subs = append(s.subs, sub)
	}
	return s
}

type fakeDeliverer struct {
	mu       sync.Mutex
	attempts []string
	fail     map[string]error
}

func (f *fakeDeliverer) Deliver(_ context.Context, url string, _ []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, url)
	return f.fail[url]
}

type eventLog struct {
	mu     sync.Mutex
	events []observability.Event
}

func (l *eventLog) Record(_ context.Context, ev observability.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) snapshot() []observability.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]observability.Event(nil), l.events...)
}

var cup = sportevent.SportEvent{ComplexID: 3, Name: "Cup", Date: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)}

func TestBroadcastAttemptsEverySubscriberDespiteFailure(t *testing.T) {
	deliverer := &fakeDeliverer{fail: map[string]error{"http://two": errors.New("connection refused")}}
	log := &eventLog{}
	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(subscribersAt("http://one", "http://two", "http://three"), deliverer,
		Options{Concurrency: 1, Recorder: log, Metrics: m})

	report := svc.Broadcast(context.Background(), cup)

	assert.Equal(t, Report{Attempted: 3, Failed: 1}, report)
	assert.ElementsMatch(t, []string{"http://one", "http://two", "http://three"}, deliverer.attempts)

	events := log.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "notification", events[0].Source)
	assert.Equal(t, "deliver", events[0].Action)
	assert.Contains(t, events[0].Message, "http://two")

	assert.Equal(t, 2.0, promtest.ToFloat64(m.NotificationsTotal.WithLabelValues("webhook", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.NotificationsTotal.WithLabelValues("webhook", "failure")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BroadcastsTotal))
}

func TestBroadcastOverHTTP(t *testing.T) {
	var hits [3]atomic.Int32
	var received Payload
	var deliveryID string
	var mu sync.Mutex

	handler := func(i int, status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hits[i].Add(1)
			if i == 0 {
				body, _ := io.ReadAll(r.Body)
				mu.Lock()
				_ = json.Unmarshal(body, &received)
				deliveryID = r.Header.Get("X-Delivery-ID")
				mu.Unlock()
			}
			w.WriteHeader(status)
		}
	}
	one := httptest.NewServer(handler(0, http.StatusOK))
	defer one.Close()
	two := httptest.NewServer(handler(1, http.StatusInternalServerError))
	defer two.Close()
	three := httptest.NewServer(handler(2, http.StatusNoContent))
	defer three.Close()

	log := &eventLog{}
	svc := NewService(subscribersAt(one.URL, two.URL, three.URL), NewWebhookDeliverer(2*time.Second),
		Options{Concurrency: 3, Recorder: log})

	event := cup
	event.ID = 42
	report := svc.Broadcast(context.Background(), event)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 1, report.Failed)
	for i := range hits {
		assert.Equal(t, int32(1), hits[i].Load(), "subscriber %d", i+1)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, uint(42), received.ID)
	assert.Equal(t, "Cup", received.Name)
	assert.Equal(t, uint(3), received.ComplexID)
	assert.NotEmpty(t, deliveryID)

	require.Len(t, log.snapshot(), 1)
	assert.Contains(t, log.snapshot()[0].Message, "500")
}

func TestBroadcastTimesOutSlowSubscriber(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()
	defer close(release)

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer fast.Close()

	svc := NewService(subscribersAt(slow.URL, fast.URL), NewWebhookDeliverer(0),
		Options{Concurrency: 2, Timeout: 50 * time.Millisecond})

	start := time.Now()
	report := svc.Broadcast(context.Background(), cup)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, Report{Attempted: 2, Failed: 1}, report)
}

func TestBroadcastWithoutSubscribersOrWithBrokenStore(t *testing.T) {
	deliverer := &fakeDeliverer{}
	svc := NewService(staticSubscribers{}, deliverer, Options{})
	assert.Equal(t, Report{}, svc.Broadcast(context.Background(), cup))

	log := &eventLog{}
	broken := NewService(staticSubscribers{err: errors.New("db down")}, deliverer, Options{Recorder: log})
	assert.Equal(t, Report{}, broken.Broadcast(context.Background(), cup))
	require.Len(t, log.snapshot(), 1)
	assert.Equal(t, "load subscribers", log.snapshot()[0].Action)
	assert.Empty(t, deliverer.attempts)
}

func TestBroadcastDuplicateURLsAreDeliveredTwice(t *testing.T) {
	deliverer := &fakeDeliverer{}
	svc := NewService(subscribersAt("http://same", "http://same"), deliverer, Options{Concurrency: 2})

	report := svc.Broadcast(context.Background(), cup)
	assert.Equal(t, 2, report.Attempted)
	assert.Len(t, deliverer.attempts, 2)
}

func TestBroadcastCancelledBeforeStart(t *testing.T) {
	deliverer := &fakeDeliverer{}
	svc := NewService(subscribersAt("http://a", "http://b"), deliverer, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := svc.Broadcast(ctx, cup)
	assert.Zero(t, report.Attempted)
	assert.Empty(t, deliverer.attempts)
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, payload Payload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func TestBroadcastPublishesToStream(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	log := &eventLog{}
	deliverer := &fakeDeliverer{}
	svc := NewService(subscribersAt("http://a"), deliverer, Options{Publisher: pub, Recorder: log})

	report := svc.Broadcast(context.Background(), cup)

	assert.Equal(t, Report{Attempted: 1}, report, "stream failure does not affect webhooks")
	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "Cup", pub.payloads[0].Name)
	require.Len(t, log.snapshot(), 1)
	assert.Equal(t, "publish", log.snapshot()[0].Action)
}

func TestNewKafkaPublisherNeedsBrokers(t *testing.T) {
	assert.Nil(t, NewKafkaPublisher(nil, "sport-events"))
	assert.NotNil(t, NewKafkaPublisher([]string{"localhost:9092"}, "sport-events"))
}
