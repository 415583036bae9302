// Package checkout starts the hosted payment flow for a tour from the
// terminal client.
package checkout

import (
	"context"

	"github.com/MKhiriev/go-natours/internal/alert"
	"github.com/MKhiriev/go-natours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/checkout_mock.go -package=mock

// SessionFetcher asks the server for a checkout session.
type SessionFetcher interface {
	GetCheckoutSession(ctx context.Context, tourID string) (models.CheckoutSession, error)
}

// Redirector sends the user to the hosted checkout page of a session.
type Redirector interface {
	Redirect(ctx context.Context, session models.CheckoutSession) error
}

// Alerter shows a transient banner.
type Alerter interface {
	Show(kind alert.Kind, message string)
}
