package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cart-keeper/internal/logger"
)

func TestBus_PublishInRegistrationOrder(t *testing.T) {
	bus := NewBus(logger.Nop())

	var got []int
	for i := 1; i <= 3; i++ {
		bus.Subscribe(CartChanged, func(context.Context) error {
			got = append(got, i)
			return nil
		})
	}

	failed := bus.Publish(context.Background(), CartChanged)
	assert.Zero(t, failed)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := NewBus(nil)

	cartCalls, wishCalls := 0, 0
	bus.Subscribe(CartChanged, func(context.Context) error { cartCalls++; return nil })
	bus.Subscribe(WishlistChanged, func(context.Context) error { wishCalls++; return nil })

	bus.Publish(context.Background(), WishlistChanged)
	assert.Equal(t, 0, cartCalls)
	assert.Equal(t, 1, wishCalls)
}

func TestBus_ListenerFailuresAreIsolated(t *testing.T) {
	bus := NewBus(logger.Nop())

	calls := 0
	bus.Subscribe(CartChanged, func(context.Context) error { return errors.New("reload failed") })
	bus.Subscribe(CartChanged, func(context.Context) error { panic("badge exploded") })
	bus.Subscribe(CartChanged, func(context.Context) error { calls++; return nil })

	var failed int
	require.NotPanics(t, func() { failed = bus.Publish(context.Background(), CartChanged) })
	assert.Equal(t, 2, failed)
	assert.Equal(t, 1, calls, "listener after the failing ones still runs")
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	bus := NewBus(logger.Nop())

	calls := 0
	sub := bus.Subscribe(CartChanged, func(context.Context) error { calls++; return nil })
	require.Equal(t, 1, bus.Len(CartChanged))

	sub.Close()
	sub.Close()
	bus.Unsubscribe(sub)

	bus.Publish(context.Background(), CartChanged)
	assert.Zero(t, calls)
	assert.Zero(t, bus.Len(CartChanged))
}

func TestBus_UnsubscribeUnknownIsNoop(t *testing.T) {
	bus := NewBus(logger.Nop())
	other := NewBus(logger.Nop())

	foreign := other.Subscribe(CartChanged, func(context.Context) error { return nil })

	assert.NotPanics(t, func() {
		bus.Unsubscribe(nil)
		bus.Unsubscribe(foreign)
	})
	assert.Equal(t, 1, other.Len(CartChanged))
}

func TestBus_SubscribeDuringDeliveryWaitsForNextEvent(t *testing.T) {
	bus := NewBus(logger.Nop())

	lateCalls := 0
	bus.Subscribe(CartChanged, func(context.Context) error {
		bus.Subscribe(CartChanged, func(context.Context) error { lateCalls++; return nil })
		return nil
	})

	bus.Publish(context.Background(), CartChanged)
	assert.Zero(t, lateCalls)

	bus.Publish(context.Background(), CartChanged)
	assert.Equal(t, 1, lateCalls)
}

func TestBus_UnsubscribeDuringDeliverySkipsClosed(t *testing.T) {
	bus := NewBus(logger.Nop())

	var second *Subscription
	secondCalls := 0
	bus.Subscribe(CartChanged, func(context.Context) error {
		second.Close()
		return nil
	})
	second = bus.Subscribe(CartChanged, func(context.Context) error { secondCalls++; return nil })

	assert.Zero(t, bus.Publish(context.Background(), CartChanged))
	assert.Zero(t, secondCalls)
}

func TestBus_SelfUnsubscribeDuringDelivery(t *testing.T) {
	bus := NewBus(logger.Nop())

	calls := 0
	var sub *Subscription
	sub = bus.Subscribe(CartChanged, func(context.Context) error {
		calls++
		sub.Close()
		return nil
	})

	bus.Publish(context.Background(), CartChanged)
	bus.Publish(context.Background(), CartChanged)
	assert.Equal(t, 1, calls)
}

func TestBus_NoBacklogForLateSubscribers(t *testing.T) {
	bus := NewBus(logger.Nop())
	bus.Publish(context.Background(), CartChanged)

	calls := 0
	bus.Subscribe(CartChanged, func(context.Context) error { calls++; return nil })
	assert.Zero(t, calls)
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus(logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(CartChanged, func(context.Context) error { return nil })
			sub.Close()
		}()
		go func() {
			defer wg.Done()
			bus.Publish(context.Background(), CartChanged)
		}()
	}
	wg.Wait()

	assert.Zero(t, bus.Len(CartChanged))
}

func TestBus_NilListenerIgnored(t *testing.T) {
	bus := NewBus(logger.Nop())
	bus.Subscribe(CartChanged, nil)

	assert.Zero(t, bus.Publish(context.Background(), CartChanged))
}
