package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-cart-keeper/internal/config"
	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type storefrontTestContext struct {
	dir      string
	storages *store.ClientStorages
	bus      *events.Bus
	cart     ClientCartService
	wishlist ClientWishlistService
	cartCtx  *CartContext

	products    map[int64]models.Product
	lastToggle  models.ToggleResult
	cartChanges atomic.Int64
	wishChanges atomic.Int64

	listeners []*events.Subscription
	firedMu   sync.Mutex
	fired     []int64
}

func (c *storefrontTestContext) reset() {
	c.close()
	c.products = make(map[int64]models.Product)
	c.lastToggle = models.ToggleResult{}
	c.cartChanges.Store(0)
	c.wishChanges.Store(0)
	c.listeners = nil
	c.fired = nil
}

func (c *storefrontTestContext) close() {
	if c.cartCtx != nil {
		c.cartCtx.Unmount()
		c.cartCtx = nil
	}
	if c.storages != nil {
		c.storages.Close()
		c.storages = nil
	}
	if c.dir != "" {
		os.RemoveAll(c.dir)
		c.dir = ""
	}
}

func (c *storefrontTestContext) anEmptyStorefront() error {
	dir, err := os.MkdirTemp("", "cart-keeper-features-*")
	if err != nil {
		return err
	}
	c.dir = dir

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "storefront.db")}}
	c.storages, err = store.NewClientStorages(context.Background(), cfg, logger.Nop())
	if err != nil {
		return err
	}

	c.bus = events.NewBus(nil)
	c.bus.Subscribe(events.CartChanged, func(context.Context) error {
		c.cartChanges.Add(1)
		return nil
	})
	c.bus.Subscribe(events.WishlistChanged, func(context.Context) error {
		c.wishChanges.Add(1)
		return nil
	})

	c.cart = NewClientCartService(c.storages, c.bus)
	c.wishlist = NewClientWishlistService(c.storages, c.bus)
	return nil
}

func (c *storefrontTestContext) productPriced(id int64, name, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.products[id] = models.Product{ID: id, Name: name, Price: p}
	return nil
}

func (c *storefrontTestContext) product(id int64) (models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("unknown product %d", id)
	}
	return p, nil
}

func (c *storefrontTestContext) theCartContextIsMounted() error {
	c.cartCtx = NewCartContext(c.cart, c.bus, nil)
	return c.cartCtx.Mount(context.Background())
}

func (c *storefrontTestContext) listenersAreSubscribedToCartChanges(n int) error {
	for i := 1; i <= n; i++ {
		id := int64(i)
		c.listeners = append(c.listeners, c.bus.Subscribe(events.CartChanged, func(context.Context) error {
			c.firedMu.Lock()
			c.fired = append(c.fired, id)
			c.firedMu.Unlock()
			return nil
		}))
	}
	return nil
}

func (c *storefrontTestContext) listenerIsUnsubscribed(n int) error {
	if n < 1 || n > len(c.listeners) {
		return fmt.Errorf("no listener %d", n)
	}
	c.listeners[n-1].Close()
	return nil
}

func (c *storefrontTestContext) theListenersFiredInOrder(ids string) error {
	want, err := parseIDs(ids)
	if err != nil {
		return err
	}

	c.firedMu.Lock()
	got := c.fired
	c.fired = nil
	c.firedMu.Unlock()

	if fmt.Sprint(got) != fmt.Sprint(want) {
		return fmt.Errorf("expected listeners %v to fire, got %v", want, got)
	}
	return nil
}

func (c *storefrontTestContext) iRemoveProductFromTheCartByIDOnly(id int64) error {
	return c.cart.Remove(context.Background(), models.Product{ID: id})
}

func (c *storefrontTestContext) iDecreaseProductByIDOnly(id int64) error {
	return c.cart.Decrease(context.Background(), models.Product{ID: id})
}

func (c *storefrontTestContext) theCachedProductIsNamed(id int64, name string) error {
	p, err := c.storages.ProductRepository.GetProduct(context.Background(), id)
	if err != nil {
		return err
	}
	if p.Name != name {
		return fmt.Errorf("expected cached product %d named %q, got %q", id, name, p.Name)
	}
	return nil
}

func (c *storefrontTestContext) iIncreaseProduct(id int64) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return c.cart.Increase(context.Background(), p)
}

func (c *storefrontTestContext) iIncreaseProductConcurrently(id int64, times int) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errs := make(chan error, times)
	for range times {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- c.cart.Increase(context.Background(), p)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *storefrontTestContext) iDecreaseProduct(id int64) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return c.cart.Decrease(context.Background(), p)
}

func (c *storefrontTestContext) iSetProductQuantityTo(id, quantity int64) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return c.cart.SetQuantity(context.Background(), p, quantity)
}

func (c *storefrontTestContext) iRemoveProductFromTheCart(id int64) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	return c.cart.Remove(context.Background(), p)
}

func (c *storefrontTestContext) iClearTheCart() error {
	return c.cart.Clear(context.Background())
}

func (c *storefrontTestContext) theCartQuantityOfProductIs(id, want int64) error {
	got, err := c.cart.GetQuantity(context.Background(), id)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected quantity %d for product %d, got %d", want, id, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartHasLinesWithUnitsTotalling(lines, units int64, subtotal string) error {
	summary, err := c.cart.Summary(context.Background())
	if err != nil {
		return err
	}
	return checkSummary(summary, lines, units, subtotal)
}

func (c *storefrontTestContext) theCartContextShowsLinesAndSubtotal(lines int64, subtotal string) error {
	if c.cartCtx == nil {
		return fmt.Errorf("cart context is not mounted")
	}
	summary := c.cartCtx.Snapshot().Summary
	return checkSummary(summary, lines, summary.TotalQuantity, subtotal)
}

func checkSummary(summary models.CartSummary, lines, units int64, subtotal string) error {
	want, err := decimal.NewFromString(subtotal)
	if err != nil {
		return err
	}
	if summary.TotalItems != lines {
		return fmt.Errorf("expected %d lines, got %d", lines, summary.TotalItems)
	}
	if summary.TotalQuantity != units {
		return fmt.Errorf("expected %d units, got %d", units, summary.TotalQuantity)
	}
	if !summary.Subtotal.Equal(want) {
		return fmt.Errorf("expected subtotal %s, got %s", want, summary.Subtotal)
	}
	return nil
}

func (c *storefrontTestContext) cartChangeEventsWerePublished(want int64) error {
	if got := c.cartChanges.Load(); got != want {
		return fmt.Errorf("expected %d cart events, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) wishlistChangeEventsWerePublished(want int64) error {
	if got := c.wishChanges.Load(); got != want {
		return fmt.Errorf("expected %d wishlist events, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) iToggleProductOnTheWishlist(id int64) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}
	c.lastToggle, err = c.wishlist.Toggle(context.Background(), p)
	return err
}

func (c *storefrontTestContext) theLastToggleActionIs(action string) error {
	if !c.lastToggle.Success || string(c.lastToggle.Action) != action {
		return fmt.Errorf("expected successful %q toggle, got %+v", action, c.lastToggle)
	}
	return nil
}

func (c *storefrontTestContext) productIsWishlisted(id int64, not string) error {
	got, err := c.wishlist.Check(context.Background(), id)
	if err != nil {
		return err
	}
	if want := not == ""; got != want {
		return fmt.Errorf("expected wishlisted=%t for product %d, got %t", want, id, got)
	}
	return nil
}

func (c *storefrontTestContext) theWishlistListsProducts(ids string) error {
	want, err := parseIDs(ids)
	if err != nil {
		return err
	}

	entries, err := c.wishlist.List(context.Background())
	if err != nil {
		return err
	}
	got := make([]int64, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.ProductID)
	}

	if fmt.Sprint(got) != fmt.Sprint(want) {
		return fmt.Errorf("expected wishlist %v, got %v", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theWishlistMembershipOfIs(ids, flags string) error {
	productIDs, err := parseIDs(ids)
	if err != nil {
		return err
	}

	got, err := c.wishlist.CheckMany(context.Background(), productIDs)
	if err != nil {
		return err
	}

	for i, raw := range strings.Split(flags, ",") {
		want, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		value, ok := got[productIDs[i]]
		if !ok {
			return fmt.Errorf("product %d missing from result", productIDs[i])
		}
		if value != want {
			return fmt.Errorf("expected product %d wishlisted=%t, got %t", productIDs[i], want, value)
		}
	}
	return nil
}

func parseIDs(ids string) ([]int64, error) {
	parts := strings.Split(ids, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc.close()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty storefront$`, tc.anEmptyStorefront)
	ctx.Step(`^product (\d+) "([^"]*)" priced "([^"]*)"$`, tc.productPriced)
	ctx.Step(`^the cart context is mounted$`, tc.theCartContextIsMounted)
	ctx.Step(`^(\d+) listeners are subscribed to cart changes$`, tc.listenersAreSubscribedToCartChanges)

	// When steps
	ctx.Step(`^I increase product (\d+)$`, tc.iIncreaseProduct)
	ctx.Step(`^I increase product (\d+) concurrently (\d+) times$`, tc.iIncreaseProductConcurrently)
	ctx.Step(`^I decrease product (\d+)$`, tc.iDecreaseProduct)
	ctx.Step(`^I set product (\d+) quantity to (-?\d+)$`, tc.iSetProductQuantityTo)
	ctx.Step(`^I remove product (\d+) from the cart$`, tc.iRemoveProductFromTheCart)
	ctx.Step(`^I remove product (\d+) from the cart by id only$`, tc.iRemoveProductFromTheCartByIDOnly)
	ctx.Step(`^I decrease product (\d+) by id only$`, tc.iDecreaseProductByIDOnly)
	ctx.Step(`^listener (\d+) is unsubscribed$`, tc.listenerIsUnsubscribed)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^I toggle product (\d+) on the wishlist$`, tc.iToggleProductOnTheWishlist)

	// Then steps
	ctx.Step(`^the cart quantity of product (\d+) is (\d+)$`, tc.theCartQuantityOfProductIs)
	ctx.Step(`^the cart has (\d+) lines with (\d+) units totalling "([^"]*)"$`, tc.theCartHasLinesWithUnitsTotalling)
	ctx.Step(`^the cart context shows (\d+) lines and subtotal "([^"]*)"$`, tc.theCartContextShowsLinesAndSubtotal)
	ctx.Step(`^(\d+) cart change events were published$`, tc.cartChangeEventsWerePublished)
	ctx.Step(`^(\d+) wishlist change events were published$`, tc.wishlistChangeEventsWerePublished)
	ctx.Step(`^the listeners fired in order "([^"]*)"$`, tc.theListenersFiredInOrder)
	ctx.Step(`^the cached product (\d+) is named "([^"]*)"$`, tc.theCachedProductIsNamed)
	ctx.Step(`^the last toggle action is "([^"]*)"$`, tc.theLastToggleActionIs)
	ctx.Step(`^product (\d+) is (not )?wishlisted$`, tc.productIsWishlisted)
	ctx.Step(`^the wishlist lists products "([^"]*)"$`, tc.theWishlistListsProducts)
	ctx.Step(`^the wishlist membership of "([^"]*)" is "([^"]*)"$`, tc.theWishlistMembershipOfIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
