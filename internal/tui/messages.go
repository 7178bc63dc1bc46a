package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// cartSnapshotMsg carries a freshly applied cart context snapshot. It is
// delivered to every page, not only the active one.
type cartSnapshotMsg struct {
	snapshot service.CartSnapshot
}

// wishlistChangedMsg is delivered to every page after a wishlist change.
type wishlistChangedMsg struct{}

// showErrorMsg opens the error overlay.
type showErrorMsg struct {
	message string
}

type catalogLoadedMsg struct {
	products   []models.Product
	wishlisted map[int64]bool
	err        error
}

type catalogRefreshedMsg struct {
	count int
	err   error
}

type wishlistLoadedMsg struct {
	entries []models.WishlistEntry
	err     error
}

type cartActionDoneMsg struct {
	status string
	err    error
}

type wishlistToggledMsg struct {
	productID int64
	result    models.ToggleResult
	err       error
}

type wishlistRemovedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
