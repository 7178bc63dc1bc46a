// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the cart context and the
// background catalog refresh into a single process lifecycle.
package client
