package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
)

// Listener reacts to a published topic. A returned error is logged and
// counted but never stops delivery to the remaining listeners.
type Listener func(ctx context.Context) error

// Bus fans topics out to listeners in registration order, on the caller's
// goroutine. It is safe for concurrent use.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]*Subscription

	logger *logger.Logger
}

// Subscription is the handle returned by [Bus.Subscribe].
type Subscription struct {
	id       uint64
	topic    Topic
	listener Listener
	bus      *Bus
	closed   atomic.Bool
}

// NewBus creates an empty bus that logs listener failures to log.
func NewBus(log *logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{
		subs:   make(map[Topic][]*Subscription),
		logger: log,
	}
}

// Subscribe registers listener for topic. A nil listener is accepted and
// ignored on delivery.
func (b *Bus) Subscribe(topic Topic, listener Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:       b.nextID,
		topic:    topic,
		listener: listener,
		bus:      b,
	}
	b.subs[topic] = append(b.subs[topic], sub)

	b.logger.Debug().
		Str("func", "Bus.Subscribe").
		Str("topic", topic.String()).
		Uint64("subscription_id", sub.id).
		Msg("listener subscribed")

	return sub
}

// Unsubscribe removes sub from the bus. Unknown, foreign, nil or already
// closed subscriptions are ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil || sub.bus != b {
		return
	}
	sub.Close()
}

// Publish delivers topic to every listener registered at the moment of the
// call. Listeners may subscribe or unsubscribe while being notified; new
// ones are not called for this event and ones closed mid-delivery are
// skipped. Each listener's error or panic is logged separately.
//
// Publish returns the number of listeners that failed.
func (b *Bus) Publish(ctx context.Context, topic Topic) int {
	b.mu.Lock()
	snapshot := make([]*Subscription, len(b.subs[topic]))
	copy(snapshot, b.subs[topic])
	b.mu.Unlock()

	metrics.EventsPublishedTotal.WithLabelValues(topic.String()).Inc()

	failed := 0
	for _, sub := range snapshot {
		if sub.closed.Load() || sub.listener == nil {
			continue
		}

		if err := sub.deliver(ctx); err != nil {
			failed++
			metrics.EventListenerFailuresTotal.WithLabelValues(topic.String()).Inc()
			b.logger.Err(err).
				Str("func", "Bus.Publish").
				Str("topic", topic.String()).
				Uint64("subscription_id", sub.id).
				Msg("event listener failed")
		}
	}

	return failed
}

// Len returns the number of live listeners for topic.
func (b *Bus) Len(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, s := range list {
		if s == sub {
			// copy so in-flight snapshots are never mutated
			next := make([]*Subscription, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.subs[sub.topic] = next
			return
		}
	}
}

// Close detaches the subscription. It is idempotent.
func (s *Subscription) Close() {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.bus.remove(s)
}

// Topic returns the topic the subscription listens to.
func (s *Subscription) Topic() Topic {
	return s.topic
}

func (s *Subscription) deliver(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, r)
		}
	}()

	return s.listener(ctx)
}
