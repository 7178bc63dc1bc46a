// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events provides an in-process, synchronous publish/subscribe bus
// used to tell UI components that the cart or wishlist changed.
//
// Events carry no payload: a subscriber that receives one reloads whatever
// state it mirrors, so each delivery costs every subscriber a full reload.
// There is no backlog and late subscribers never see past events.
//
// A [Bus] is constructed once at startup and injected into the services and
// the cart context that need it.
package events
