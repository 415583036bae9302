package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a paid reservation of a tour by a user.
type Booking struct {
	ID        int64           `json:"id"`
	TourID    int64           `json:"tour" validate:"required"`
	UserID    int64           `json:"user" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"dpositive"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"createdAt"`

	// StripeSessionID links the booking to the checkout session that paid
	// for it. Empty for bookings created by staff.
	StripeSessionID string `json:"stripeSessionId,omitempty"`
}

// BookingUpdate carries a partial booking update.
type BookingUpdate struct {
	Price *decimal.Decimal `json:"price,omitempty"`
	Paid  *bool            `json:"paid,omitempty"`
}

// CheckoutSession is the descriptor of a hosted checkout page. The ID is
// consumed exactly once by the client redirect.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// CheckoutRequest describes what is being paid for in a checkout session.
type CheckoutRequest struct {
	Tour          Tour
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	ImageBaseURL  string
}

// Webhook event types handled by the booking flow.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// WebhookEvent is the verified, decoded part of a payment processor event
// that the booking flow cares about.
type WebhookEvent struct {
	ID            string
	Type          string
	SessionID     string
	TourID        string
	CustomerEmail string

	// AmountTotal is expressed in the smallest currency unit (cents).
	AmountTotal int64
}
