package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cart-keeper/internal/app"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

const statusTTL = 3 * time.Second

// catalogModel lists the cached catalog with per-product cart quantity and
// wishlist state.
type catalogModel struct {
	ctx      context.Context
	services *service.ClientServices
	humanize errorHumanizer

	products   []models.Product
	wishlisted map[int64]bool
	cart       service.CartSnapshot
	idx        int

	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	errMsg     string
}

func newCatalogModel(ctx context.Context, services *service.ClientServices, humanize errorHumanizer) *catalogModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &catalogModel{
		ctx:        ctx,
		services:   services,
		humanize:   humanize,
		wishlisted: make(map[int64]bool),
		cart:       services.CartContext.Snapshot(),
		loading:    true,
		spinner:    s,
	}
}

func (m *catalogModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, showError(m.errMsg)
		}
		m.errMsg = ""
		m.products = msg.products
		m.wishlisted = msg.wishlisted
		m.idx = clampIndex(m.idx, len(m.products))
		return m, nil
	case catalogRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(fmt.Sprintf("%s: %d", app.MsgCatalogRefreshed, msg.count))
	case cartSnapshotMsg:
		m.cart = msg.snapshot
		return m, nil
	case wishlistChangedMsg:
		return m, m.cmdLoad()
	case cartActionDoneMsg:
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(msg.status)
	case wishlistToggledMsg:
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.wishlisted[msg.productID] = msg.result.Action == models.WishlistAdded
		return m, m.setStatus(wishlistStatus(msg.result.Action))
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.products)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.increase):
		return m, m.withSelected(func(p models.Product) tea.Cmd {
			return cmdCartAction(m.ctx, app.MsgCartUpdated, func(ctx context.Context) error {
				return m.services.CartService.Increase(ctx, p)
			})
		})
	case key.Matches(keyMsg, keys.decrease):
		return m, m.withSelected(func(p models.Product) tea.Cmd {
			return cmdCartAction(m.ctx, app.MsgCartUpdated, func(ctx context.Context) error {
				return m.services.CartService.Decrease(ctx, p)
			})
		})
	case key.Matches(keyMsg, keys.wishlist):
		return m, m.withSelected(m.cmdToggle)
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdRefresh(), m.spinner.Tick)
	}

	return m, nil
}

func (m *catalogModel) View() string {
	title := "КАТАЛОГ"
	if m.refreshing {
		title += "  " + m.spinner.View() + " обновление..."
	}

	const hotKeys = "+/-: в корзину │ w: избранное │ r: обновить │ ↑/↓: нав."

	if m.loading {
		return renderPage(title, "Загрузка каталога...", hotKeys)
	}

	out := renderStatus(m.status, m.errMsg)
	if out != "" {
		out += "\n"
	}

	if len(m.products) == 0 {
		out += "Каталог пуст. Нажмите r, чтобы загрузить товары\n"
		return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
	}

	out += "  ID   │ Наименование             │     Цена │ Корз. │ ♥\n"
	out += "───────┼──────────────────────────┼──────────┼───────┼───\n"
	for i, p := range m.products {
		heart := " "
		if m.wishlisted[p.ID] {
			heart = "♥"
		}
		out += fmt.Sprintf(
			"%s %-5d│ %s │ %8s │ %5s │ %s\n",
			cursor(i == m.idx),
			p.ID,
			padText(p.Name, 24),
			formatMoney(p.Price),
			quantityLabel(m.cart.Quantity(p.ID)),
			heart,
		)
	}

	return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
}

func (m *catalogModel) selected() (models.Product, bool) {
	if len(m.products) == 0 || m.idx < 0 || m.idx >= len(m.products) {
		return models.Product{}, false
	}
	return m.products[m.idx], true
}

func (m *catalogModel) withSelected(fn func(models.Product) tea.Cmd) tea.Cmd {
	p, ok := m.selected()
	if !ok {
		return m.setStatus(app.MsgNothingSelected)
	}
	return fn(p)
}

func (m *catalogModel) setStatus(status string) tea.Cmd {
	m.status = status
	return clearStatusAfter(statusTTL)
}

func (m *catalogModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		products, err := services.CatalogService.Products(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		ids := make([]int64, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		wishlisted, err := services.WishlistService.CheckMany(ctx, ids)
		return catalogLoadedMsg{products: products, wishlisted: wishlisted, err: err}
	}
}

func (m *catalogModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CatalogService

	return func() tea.Msg {
		n, err := svc.Refresh(ctx)
		return catalogRefreshedMsg{count: n, err: err}
	}
}

func (m *catalogModel) cmdToggle(p models.Product) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService

	return func() tea.Msg {
		res, err := svc.Toggle(ctx, p)
		return wishlistToggledMsg{productID: p.ID, result: res, err: err}
	}
}

func cmdCartAction(ctx context.Context, status string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return cartActionDoneMsg{status: status, err: fn(ctx)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func showError(message string) tea.Cmd {
	return func() tea.Msg { return showErrorMsg{message: message} }
}

func wishlistStatus(action models.WishlistAction) string {
	if action == models.WishlistAdded {
		return app.MsgWishlistAdded
	}
	return app.MsgWishlistRemoved
}
