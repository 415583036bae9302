// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the API adapter, the alert presenter, the checkout initiator and
// the terminal UI into a single process lifecycle.
package client
