package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/metrics"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// CartSnapshot is an immutable view of the cart taken by one reload.
type CartSnapshot struct {
	Lines   []models.CartLine
	Summary models.CartSummary

	quantities map[int64]int64
}

func newCartSnapshot(lines []models.CartLine) CartSnapshot {
	quantities := make(map[int64]int64, len(lines))
	for _, l := range lines {
		quantities[l.ProductID] = l.Quantity
	}
	return CartSnapshot{
		Lines:      lines,
		Summary:    models.SummarizeCart(lines),
		quantities: quantities,
	}
}

// Quantity returns the quantity of productID in the snapshot, or 0.
func (s CartSnapshot) Quantity(productID int64) int64 {
	return s.quantities[productID]
}

// CartContext is an in-memory mirror of the persisted cart. It reloads on
// every [events.CartChanged] and serves reads without I/O.
//
// Reloads take a ticket before reading the store; a finished reload replaces
// the snapshot only if no later-issued reload has been applied already, so
// overlapping reloads settle on the last one issued.
type CartContext struct {
	cart   ClientCartService
	bus    *events.Bus
	logger *logger.Logger

	mu       sync.RWMutex
	snapshot CartSnapshot
	applied  uint64

	tickets atomic.Uint64

	subMu sync.Mutex
	sub   *events.Subscription

	obsMu     sync.Mutex
	nextObsID uint64
	observers map[uint64]func(CartSnapshot)

	// observers see applied snapshots in ticket order; a snapshot superseded
	// while another one is being delivered is skipped.
	notifyMu      sync.Mutex
	dispatching   bool
	pending       CartSnapshot
	pendingTicket uint64
	hasPending    bool
}

// NewCartContext creates an unmounted cart context with an empty snapshot.
func NewCartContext(cart ClientCartService, bus *events.Bus, log *logger.Logger) *CartContext {
	if log == nil {
		log = logger.Nop()
	}
	return &CartContext{
		cart:      cart,
		bus:       bus,
		logger:    log,
		snapshot:  newCartSnapshot(nil),
		observers: make(map[uint64]func(CartSnapshot)),
	}
}

// Mount subscribes to cart changes and performs an initial reload. Mounting
// twice keeps a single subscription.
func (c *CartContext) Mount(ctx context.Context) error {
	c.subMu.Lock()
	if c.sub == nil {
		c.sub = c.bus.Subscribe(events.CartChanged, c.Refresh)
	}
	c.subMu.Unlock()

	return c.Refresh(ctx)
}

// Unmount stops listening for cart changes. The last snapshot stays readable.
func (c *CartContext) Unmount() {
	c.subMu.Lock()
	sub := c.sub
	c.sub = nil
	c.subMu.Unlock()

	sub.Close()
}

// Refresh reloads the cart from the store. On error the previous snapshot
// is kept.
func (c *CartContext) Refresh(ctx context.Context) error {
	ticket := c.tickets.Add(1)

	lines, err := c.cart.Lines(ctx)
	if err != nil {
		metrics.CartReloadsTotal.WithLabelValues("error").Inc()
		c.logger.Err(err).
			Str("func", "CartContext.Refresh").
			Uint64("ticket", ticket).
			Msg("failed to reload cart")
		return err
	}

	next := newCartSnapshot(lines)

	c.mu.Lock()
	if ticket <= c.applied {
		c.mu.Unlock()
		metrics.CartReloadsTotal.WithLabelValues("stale").Inc()
		c.logger.Debug().
			Str("func", "CartContext.Refresh").
			Uint64("ticket", ticket).
			Uint64("applied", c.applied).
			Msg("dropping stale cart reload")
		return nil
	}
	c.applied = ticket
	c.snapshot = next
	c.mu.Unlock()

	metrics.CartReloadsTotal.WithLabelValues("applied").Inc()
	c.notify(ticket, next)
	return nil
}

// OnChange registers fn to be called with applied snapshots, oldest ticket
// first. When reloads overlap, fn may run on the goroutine of an earlier
// reload and intermediate snapshots may be skipped, but fn never receives a
// snapshot older than one it has already seen. The returned func removes it.
func (c *CartContext) OnChange(fn func(CartSnapshot)) func() {
	c.obsMu.Lock()
	c.nextObsID++
	id := c.nextObsID
	c.observers[id] = fn
	c.obsMu.Unlock()

	return func() {
		c.obsMu.Lock()
		delete(c.observers, id)
		c.obsMu.Unlock()
	}
}

func (c *CartContext) notify(ticket uint64, snapshot CartSnapshot) {
	c.notifyMu.Lock()
	if ticket > c.pendingTicket {
		c.pending, c.pendingTicket, c.hasPending = snapshot, ticket, true
	}
	if c.dispatching {
		c.notifyMu.Unlock()
		return
	}
	c.dispatching = true

	for c.hasPending {
		next := c.pending
		c.hasPending = false
		c.notifyMu.Unlock()

		c.callObservers(next)

		c.notifyMu.Lock()
	}
	c.dispatching = false
	c.notifyMu.Unlock()
}

func (c *CartContext) callObservers(snapshot CartSnapshot) {
	c.obsMu.Lock()
	fns := make([]func(CartSnapshot), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.obsMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Snapshot returns the current snapshot.
func (c *CartContext) Snapshot() CartSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Items returns a copy of the current cart lines.
func (c *CartContext) Items() []models.CartLine {
	s := c.Snapshot()
	items := make([]models.CartLine, len(s.Lines))
	copy(items, s.Lines)
	return items
}

// Count returns the number of distinct lines.
func (c *CartContext) Count() int64 {
	return c.Snapshot().Summary.TotalItems
}

// TotalQuantity returns the sum of all line quantities.
func (c *CartContext) TotalQuantity() int64 {
	return c.Snapshot().Summary.TotalQuantity
}

// Subtotal returns the sum of price times quantity over all lines.
func (c *CartContext) Subtotal() decimal.Decimal {
	return c.Snapshot().Summary.Subtotal
}

func (c *CartContext) ProductQuantity(productID int64) int64 {
	return c.Snapshot().Quantity(productID)
}

func (c *CartContext) IsProductInCart(productID int64) bool {
	return c.ProductQuantity(productID) > 0
}
