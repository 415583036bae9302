// Package payment talks to Stripe: it creates hosted checkout sessions and
// verifies the webhook events Stripe sends back once a session is paid.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const currency = "usd"

var cents = decimal.NewFromInt(100)

// Gateway is the Stripe-backed payment gateway.
type Gateway struct {
	sessions      *session.Client
	webhookSecret string
	enabled       bool
	logger        *logger.Logger
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithBackend replaces the Stripe API backend, used to point the gateway
// at a test server.
func WithBackend(b stripe.Backend) Option {
	return func(g *Gateway) {
		g.sessions.B = b
	}
}

// NewGateway builds a gateway from the payment configuration. When no
// secret key is configured the gateway is created disabled and every call
// returns [ErrDisabled].
func NewGateway(cfg config.Payment, log *logger.Logger, opts ...Option) *Gateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		LeveledLogger:     newStripeLogger(log),
		MaxNetworkRetries: stripe.Int64(2),
	})

	g := &Gateway{
		sessions:      &session.Client{B: backend, Key: cfg.StripeSecretKey},
		webhookSecret: cfg.StripeWebhookSecret,
		enabled:       cfg.Enabled(),
		logger:        log,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.enabled {
		log.Warn().Str("func", "payment.NewGateway").Msg("stripe secret key is empty, checkout is disabled")
	}

	return g
}

// CreateCheckoutSession creates a hosted checkout page selling one seat of
// req.Tour. The tour id travels as the client reference id so the webhook
// can turn the paid session into a booking.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	if !g.enabled {
		return models.CheckoutSession{}, ErrDisabled
	}

	tour := req.Tour
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		CustomerEmail:      stripe.String(req.CustomerEmail),
		ClientReferenceID:  stripe.String(strconv.FormatInt(tour.ID, 10)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(toCents(tour.Price)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(tour.Name + " Tour"),
						Description: stripe.String(tour.Summary),
						Images:      stripe.StringSlice([]string{coverImageURL(req.ImageBaseURL, tour.ImageCover)}),
					},
				},
			},
		},
	}
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		log.Err(err).Str("func", "*Gateway.CreateCheckoutSession").Int64("tour_id", tour.ID).Msg("stripe rejected checkout session")
		return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrCreatingSession, err)
	}

	log.Info().Str("func", "*Gateway.CreateCheckoutSession").
		Str("session_id", s.ID).
		Int64("tour_id", tour.ID).
		Msg("checkout session created")

	return models.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the signature of a raw webhook payload and decodes
// the checkout session it carries. Events of other types are returned with
// only ID and Type set.
func (g *Gateway) ParseWebhook(payload []byte, signature string) (models.WebhookEvent, error) {
	if !g.enabled {
		return models.WebhookEvent{}, ErrDisabled
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	result := models.WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if result.Type != models.EventCheckoutSessionCompleted {
		return result, nil
	}

	var s stripe.CheckoutSession
	if event.Data == nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: missing data", ErrInvalidEvent)
	}
	if err = json.Unmarshal(event.Data.Raw, &s); err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	result.SessionID = s.ID
	result.TourID = s.ClientReferenceID
	result.AmountTotal = s.AmountTotal
	result.CustomerEmail = s.CustomerEmail
	if result.CustomerEmail == "" && s.CustomerDetails != nil {
		result.CustomerEmail = s.CustomerDetails.Email
	}

	return result, nil
}

func toCents(price decimal.Decimal) int64 {
	return price.Mul(cents).Round(0).IntPart()
}

func coverImageURL(base, image string) string {
	return strings.TrimRight(base, "/") + "/img/tours/" + image
}
