package payment

import "errors"

var (
	// ErrDisabled is returned by every gateway call when no Stripe secret
	// key is configured.
	ErrDisabled = errors.New("payments are not configured")

	// ErrCreatingSession is returned when Stripe rejects a checkout session.
	ErrCreatingSession = errors.New("failed to create checkout session")

	// ErrInvalidSignature is returned when a webhook payload does not match
	// its Stripe-Signature header.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidEvent is returned when a verified webhook carries data that
	// cannot be decoded.
	ErrInvalidEvent = errors.New("invalid webhook event")
)
