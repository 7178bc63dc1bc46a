// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the storefront terminal UI on top of bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/logger"
	"github.com/MKhiriev/go-cart-keeper/internal/service"
	"github.com/MKhiriev/go-cart-keeper/models"
)

var ErrNoServices = errors.New("tui: services are not set")

type TUI struct {
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
	isRetryable func(error) bool
	logger      *logger.Logger
}

// New creates the terminal UI. isRetryable classifies storage errors for the
// status line and may be nil.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, isRetryable func(error) bool, log *logger.Logger) (*TUI, error) {
	if services == nil || services.CartContext == nil {
		return nil, ErrNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		services:    services,
		buildInfo:   buildInfo,
		isRetryable: isRetryable,
		logger:      log,
	}, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
// The cart context must be mounted by the caller.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	root := t.newRootModel(ctx)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	stopBadge := t.services.CartContext.OnChange(func(s service.CartSnapshot) {
		p.Send(cartSnapshotMsg{snapshot: s})
	})
	defer stopBadge()

	wishlistSub := t.services.Bus.Subscribe(events.WishlistChanged, func(context.Context) error {
		p.Send(wishlistChangedMsg{})
		return nil
	})
	defer wishlistSub.Close()

	finalModel, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("user quit")
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	humanize := newErrorHumanizer(t.isRetryable)
	pages := map[string]tea.Model{
		pageCatalog:  newCatalogModel(ctx, t.services, humanize),
		pageCart:     newCartModel(ctx, t.services, humanize),
		pageWishlist: newWishlistModel(ctx, t.services, humanize),
	}

	return NewRootModel(pages, pageCatalog, t.buildInfo, t.services.CartContext.Snapshot().Summary)
}
