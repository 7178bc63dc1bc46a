package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cart-keeper/internal/app"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

type wishlistModel struct {
	ctx      context.Context
	services *service.ClientServices
	humanize errorHumanizer

	entries []models.WishlistEntry
	cart    service.CartSnapshot
	idx     int
	loading bool

	confirm *confirmModel
	pending int64
	status  string
	errMsg  string
}

func newWishlistModel(ctx context.Context, services *service.ClientServices, humanize errorHumanizer) *wishlistModel {
	return &wishlistModel{
		ctx:      ctx,
		services: services,
		humanize: humanize,
		cart:     services.CartContext.Snapshot(),
		loading:  true,
	}
}

func (m *wishlistModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *wishlistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wishlistLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, showError(m.errMsg)
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.idx = clampIndex(m.idx, len(m.entries))
		return m, nil
	case wishlistChangedMsg:
		return m, m.cmdLoad()
	case cartSnapshotMsg:
		m.cart = msg.snapshot
		return m, nil
	case wishlistRemovedMsg:
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(app.MsgWishlistRemoved)
	case cartActionDoneMsg:
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(msg.status)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirm = nil
			return m, m.cmdRemove(m.pending)
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.remove):
		entry, ok := m.selected()
		if !ok {
			return m, m.setStatus(app.MsgNothingSelected)
		}
		m.pending = entry.ProductID
		m.confirm = &confirmModel{message: fmt.Sprintf("Удалить %q из избранного", entry.Product.Name)}
	case key.Matches(keyMsg, keys.increase), key.Matches(keyMsg, keys.enter):
		entry, ok := m.selected()
		if !ok {
			return m, m.setStatus(app.MsgNothingSelected)
		}
		p := entry.Product
		return m, cmdCartAction(m.ctx, app.MsgCartUpdated, func(ctx context.Context) error {
			return m.services.CartService.Increase(ctx, p)
		})
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoad()
	}

	return m, nil
}

func (m *wishlistModel) View() string {
	const hotKeys = "enter/+: в корзину │ x: удалить │ r: обновить │ ↑/↓: нав."

	if m.confirm != nil {
		return renderPage("ИЗБРАННОЕ", m.confirm.View(), "y: да │ n: нет")
	}
	if m.loading {
		return renderPage("ИЗБРАННОЕ", "Загрузка избранного...", hotKeys)
	}

	out := renderStatus(m.status, m.errMsg)
	if out != "" {
		out += "\n"
	}

	if len(m.entries) == 0 {
		out += "В избранном пусто\n"
		return renderPage("ИЗБРАННОЕ", strings.TrimRight(out, "\n"), hotKeys)
	}

	out += "  Наименование             │     Цена │ Корз. │ Добавлено\n"
	out += "───────────────────────────┼──────────┼───────┼──────────────────\n"
	for i, e := range m.entries {
		out += fmt.Sprintf(
			"%s %s │ %8s │ %5s │ %s\n",
			cursor(i == m.idx),
			padText(e.Product.Name, 24),
			formatMoney(e.Product.Price),
			quantityLabel(m.cart.Quantity(e.ProductID)),
			e.AddedAt.Local().Format("02.01.2006 15:04"),
		)
	}

	return renderPage("ИЗБРАННОЕ", strings.TrimRight(out, "\n"), hotKeys)
}

func (m *wishlistModel) selected() (models.WishlistEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.WishlistEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *wishlistModel) setStatus(status string) tea.Cmd {
	m.status = status
	return clearStatusAfter(statusTTL)
}

func (m *wishlistModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService

	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return wishlistLoadedMsg{entries: entries, err: err}
	}
}

func (m *wishlistModel) cmdRemove(productID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService

	return func() tea.Msg {
		return wishlistRemovedMsg{err: svc.Remove(ctx, productID)}
	}
}
