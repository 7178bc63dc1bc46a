package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cart-keeper/internal/app"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// cartModel renders the cart context snapshot. It never reads the store for
// display; mutations go through the cart service and come back as snapshots.
type cartModel struct {
	ctx      context.Context
	services *service.ClientServices
	humanize errorHumanizer

	snapshot service.CartSnapshot
	idx      int

	confirm *confirmModel
	status  string
	errMsg  string
}

func newCartModel(ctx context.Context, services *service.ClientServices, humanize errorHumanizer) *cartModel {
	return &cartModel{
		ctx:      ctx,
		services: services,
		humanize: humanize,
		snapshot: services.CartContext.Snapshot(),
	}
}

func (m *cartModel) Init() tea.Cmd {
	return nil
}

func (m *cartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cartSnapshotMsg:
		m.snapshot = msg.snapshot
		m.idx = clampIndex(m.idx, len(m.snapshot.Lines))
		return m, nil
	case cartActionDoneMsg:
		if msg.err != nil {
			m.errMsg = m.humanize(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(msg.status)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(app.MsgSummaryCopied)
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
			return m, cmdCartAction(m.ctx, app.MsgCartCleared, m.services.CartService.Clear)
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
		if m.idx < len(m.snapshot.Lines)-1 {
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
	case key.Matches(keyMsg, keys.remove):
		return m, m.withSelected(func(p models.Product) tea.Cmd {
			return cmdCartAction(m.ctx, app.MsgCartUpdated, func(ctx context.Context) error {
				return m.services.CartService.Remove(ctx, p)
			})
		})
	case key.Matches(keyMsg, keys.clear):
		if len(m.snapshot.Lines) == 0 {
			return m, m.setStatus(app.MsgCartEmpty)
		}
		m.confirm = &confirmModel{message: "Очистить корзину"}
	case key.Matches(keyMsg, keys.copy):
		if len(m.snapshot.Lines) == 0 {
			return m, m.setStatus(app.MsgCartEmpty)
		}
		text := cartSummaryText(m.snapshot)
		return m, func() tea.Msg {
			return copiedMsg{err: writeClipboard(text)}
		}
	case key.Matches(keyMsg, keys.refresh):
		ctx := m.ctx
		cc := m.services.CartContext
		return m, func() tea.Msg {
			if err := cc.Refresh(ctx); err != nil {
				return cartActionDoneMsg{err: err}
			}
			return nil
		}
	}

	return m, nil
}

func (m *cartModel) View() string {
	const hotKeys = "+/-: кол-во │ x: удалить │ c: очистить │ y: копировать итог │ r: обновить"

	if m.confirm != nil {
		return renderPage("КОРЗИНА", m.confirm.View(), "y: да │ n: нет")
	}

	out := renderStatus(m.status, m.errMsg)
	if out != "" {
		out += "\n"
	}

	if len(m.snapshot.Lines) == 0 {
		out += "Корзина пуста\n"
		return renderPage("КОРЗИНА", strings.TrimRight(out, "\n"), hotKeys)
	}

	out += "  Наименование             │  Кол. │     Цена │    Сумма\n"
	out += "───────────────────────────┼───────┼──────────┼──────────\n"
	for i, l := range m.snapshot.Lines {
		out += fmt.Sprintf(
			"%s %s │ %5d │ %8s │ %8s\n",
			cursor(i == m.idx),
			padText(l.Product.Name, 24),
			l.Quantity,
			formatMoney(l.Product.Price),
			formatMoney(l.Total()),
		)
	}

	s := m.snapshot.Summary
	out += "\n"
	out += fmt.Sprintf("Позиций: %d │ Штук: %d │ Итого: %s\n", s.TotalItems, s.TotalQuantity, formatMoney(s.Subtotal))

	return renderPage("КОРЗИНА", strings.TrimRight(out, "\n"), hotKeys)
}

func (m *cartModel) withSelected(fn func(models.Product) tea.Cmd) tea.Cmd {
	if len(m.snapshot.Lines) == 0 || m.idx < 0 || m.idx >= len(m.snapshot.Lines) {
		return m.setStatus(app.MsgNothingSelected)
	}
	return fn(m.snapshot.Lines[m.idx].Product)
}

func (m *cartModel) setStatus(status string) tea.Cmd {
	m.status = status
	return clearStatusAfter(statusTTL)
}

// cartSummaryText is the plain-text cart summary put on the clipboard.
func cartSummaryText(snapshot service.CartSnapshot) string {
	var b strings.Builder
	for _, l := range snapshot.Lines {
		fmt.Fprintf(&b, "%s x%d = %s\n", l.Product.Name, l.Quantity, formatMoney(l.Total()))
	}
	s := snapshot.Summary
	fmt.Fprintf(&b, "Итого: %s (%d поз., %d шт.)", formatMoney(s.Subtotal), s.TotalItems, s.TotalQuantity)
	return b.String()
}
