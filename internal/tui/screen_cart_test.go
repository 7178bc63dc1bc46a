package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cart-keeper/internal/app"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/models"
)

func cartWithLines(t *testing.T, ts testServices) *cartModel {
	t.Helper()
	m := newCartModel(context.Background(), ts.services, newErrorHumanizer(nil))
	m.Update(cartSnapshotMsg{snapshot: snapshotOf(t,
		models.CartLine{ID: 1, ProductID: 1, Quantity: 2, Product: testProduct(1, "Лампа", "19.99")},
		models.CartLine{ID: 2, ProductID: 2, Quantity: 1, Product: testProduct(2, "Кружка", "4.50")},
	)})
	return m
}

func TestCartModel_View(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	view := m.View()
	assert.Contains(t, view, "Лампа")
	assert.Contains(t, view, "39.98")
	assert.Contains(t, view, "Итого: 44.48")
}

func TestCartModel_Empty(t *testing.T) {
	ts := newTestServices(t)
	m := newCartModel(context.Background(), ts.services, newErrorHumanizer(nil))

	assert.Contains(t, m.View(), "Корзина пуста")

	m.Update(runes("c"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, app.MsgCartEmpty, m.status)

	m.Update(runes("x"))
	assert.Equal(t, app.MsgNothingSelected, m.status)
}

func TestCartModel_IncreaseDecreaseRemove(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)
	lamp := testProduct(1, "Лампа", "19.99")
	mug := testProduct(2, "Кружка", "4.50")

	gomock.InOrder(
		ts.cart.EXPECT().Increase(gomock.Any(), lamp).Return(nil),
		ts.cart.EXPECT().Decrease(gomock.Any(), mug).Return(nil),
		ts.cart.EXPECT().Remove(gomock.Any(), mug).Return(nil),
	)

	_, cmd := m.Update(runes("+"))
	m.Update(run(cmd))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(runes("-"))
	m.Update(run(cmd))

	_, cmd = m.Update(runes("x"))
	m.Update(run(cmd))

	assert.Equal(t, app.MsgCartUpdated, m.status)
	assert.Empty(t, m.errMsg)
}

func TestCartModel_ClearWithConfirm(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	ts.cart.EXPECT().Clear(gomock.Any()).Return(nil)

	m.Update(runes("c"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Очистить корзину")

	_, cmd := m.Update(runes("y"))
	assert.Nil(t, m.confirm)
	m.Update(run(cmd))
	assert.Equal(t, app.MsgCartCleared, m.status)
}

func TestCartModel_ClearCancelled(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	m.Update(runes("c"))
	_, cmd := m.Update(runes("n"))

	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
}

func TestCartModel_CopySummary(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(runes("y"))
	m.Update(run(cmd))

	assert.Equal(t, app.MsgSummaryCopied, m.status)
	assert.Contains(t, copied, "Лампа x2 = 39.98")
	assert.Contains(t, copied, "Итого: 44.48 (2 поз., 3 шт.)")
}

func TestCartModel_CopyError(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(runes("y"))
	m.Update(run(cmd))

	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestCartModel_StorageErrorIsHumanized(t *testing.T) {
	ts := newTestServices(t)
	m := newCartModel(context.Background(), ts.services, newErrorHumanizer(func(error) bool { return true }))

	m.Update(cartActionDoneMsg{err: store.ErrExecutingQuery})
	assert.Equal(t, app.MsgStorageBusy, m.errMsg)
}

func TestCartModel_SnapshotShrinkClampsCursor(t *testing.T) {
	ts := newTestServices(t)
	m := cartWithLines(t, ts)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.idx)

	m.Update(cartSnapshotMsg{snapshot: snapshotOf(t,
		models.CartLine{ID: 1, ProductID: 1, Quantity: 2, Product: testProduct(1, "Лампа", "19.99")},
	)})
	assert.Equal(t, 0, m.idx)
}
