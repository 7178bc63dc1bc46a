package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/mock"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type testServices struct {
	services *service.ClientServices
	cart     *mock.MockClientCartService
	wishlist *mock.MockClientWishlistService
	catalog  *mock.MockClientCatalogService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testServices{
		cart:     mock.NewMockClientCartService(ctrl),
		wishlist: mock.NewMockClientWishlistService(ctrl),
		catalog:  mock.NewMockClientCatalogService(ctrl),
	}
	bus := events.NewBus(nil)
	ts.services = &service.ClientServices{
		CartService:     ts.cart,
		WishlistService: ts.wishlist,
		CatalogService:  ts.catalog,
		CartContext:     service.NewCartContext(ts.cart, bus, nil),
		Bus:             bus,
	}
	return ts
}

func testProduct(id int64, name, price string) models.Product {
	return models.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

// snapshotOf builds a cart snapshot the way the cart context does.
func snapshotOf(t *testing.T, lines ...models.CartLine) service.CartSnapshot {
	t.Helper()
	ctrl := gomock.NewController(t)
	cart := mock.NewMockClientCartService(ctrl)
	cart.EXPECT().Lines(gomock.Any()).Return(lines, nil)

	cc := service.NewCartContext(cart, events.NewBus(nil), nil)
	require.NoError(t, cc.Refresh(context.Background()))
	return cc.Snapshot()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and returns its message; nil cmds yield nil.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
