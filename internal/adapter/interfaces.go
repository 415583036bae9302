// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the terminal client's transport to the natours
// API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// from the underlying protocol. Non-2xx answers are mapped onto the sentinel
// values in errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401) while the error text stays the message the server sent.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-natours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the natours API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login exchanges credentials for a session token, which is stored via
	// SetToken, and returns the logged-in user.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Logout ends the session on the server and forgets the token.
	Logout(ctx context.Context) error

	// ListTours returns every public tour.
	ListTours(ctx context.Context) ([]models.Tour, error)

	// GetCheckoutSession asks the server to open a hosted checkout session
	// for tourID on behalf of the logged-in user.
	GetCheckoutSession(ctx context.Context, tourID string) (models.CheckoutSession, error)

	// ServerVersion returns the build version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
