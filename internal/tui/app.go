package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-cart-keeper/models"
)

const (
	pageCatalog  = "catalog"
	pageCart     = "cart"
	pageWishlist = "wishlist"
)

var (
	pageOrder  = []string{pageCatalog, pageCart, pageWishlist}
	pageTitles = map[string]string{
		pageCatalog:  "Каталог",
		pageCart:     "Корзина",
		pageWishlist: "Избранное",
	}
)

// RootModel is a TUI router:
// 1) keeps active page and the cart badge
// 2) handles global quit, page switching and overlays
// 3) delivers cart and wishlist change notifications to every page
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	currentPage string

	buildInfo models.AppBuildInfo
	badge     models.CartSummary
	overlay   *errorOverlayModel

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, badge models.CartSummary) RootModel {
	return RootModel{
		pages:       pages,
		currentPage: startPage,
		buildInfo:   buildInfo,
		badge:       badge,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, name := range pageOrder {
		if p, ok := r.pages[name]; ok {
			cmds = append(cmds, p.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version):
			r.showBuildInfo = true
			return r, nil
		case key.Matches(keyMsg, keys.tab):
			return r.navigate(r.pageAt(1))
		case key.Matches(keyMsg, keys.backtab):
			return r.navigate(r.pageAt(-1))
		}

		switch keyMsg.String() {
		case "1", "2", "3":
			return r.navigate(pageOrder[keyMsg.String()[0]-'1'])
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.currentPage = msg.Page

		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, next.Init()
	case cartSnapshotMsg:
		r.badge = msg.snapshot.Summary
		return r.broadcast(msg)
	case wishlistChangedMsg:
		return r.broadcast(msg)
	case showErrorMsg:
		r.overlay = &errorOverlayModel{message: msg.message}
		return r, nil
	}

	current, ok := r.pages[r.currentPage]
	if !ok {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var body string
	switch {
	case r.overlay != nil:
		body = r.overlay.View()
	case r.pages[r.currentPage] != nil:
		body = r.pages[r.currentPage].View()
	default:
		body = renderPage("TUI", "", "")
	}

	return appStyle.Render(r.header() + "\n\n" + body)
}

func (r RootModel) header() string {
	tabs := make([]string, 0, len(pageOrder))
	for i, name := range pageOrder {
		label := fmt.Sprintf("%d %s", i+1, pageTitles[name])
		if name == r.currentPage {
			label = activeTabStyle.Render(label)
		}
		tabs = append(tabs, label)
	}

	badge := badgeStyle.Render(fmt.Sprintf("🛒 %d шт. · %s", r.badge.TotalQuantity, formatMoney(r.badge.Subtotal)))
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("GoCartKeeper")+"  ", strings.Join(tabs, "  "), "  ", badge)
}

func (r RootModel) navigate(page string) (tea.Model, tea.Cmd) {
	return r.Update(NavigateTo{Page: page})
}

func (r RootModel) pageAt(offset int) string {
	idx := 0
	for i, name := range pageOrder {
		if name == r.currentPage {
			idx = i
			break
		}
	}
	n := len(pageOrder)
	return pageOrder[((idx+offset)%n+n)%n]
}

func (r RootModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, name := range pageOrder {
		p, ok := r.pages[name]
		if !ok {
			continue
		}
		updated, cmd := p.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}
