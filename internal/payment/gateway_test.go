package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()

	var opts []Option
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		opts = append(opts, WithBackend(stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(srv.URL),
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     newStripeLogger(logger.Nop()),
		})))
	}

	return NewGateway(config.Payment{
		StripeSecretKey:     "sk_test_123",
		StripeWebhookSecret: testWebhookSecret,
	}, logger.Nop(), opts...)
}

func signedPayload(t *testing.T, v any) ([]byte, string) {
	t.Helper()

	payload, err := json.Marshal(v)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  testWebhookSecret,
	})
	return signed.Payload, signed.Header
}

// ── CreateCheckoutSession ──

func TestGateway_CreateCheckoutSession(t *testing.T) {
	var form map[string][]string

	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	sess, err := g.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		Tour: models.Tour{
			ID:         5,
			Name:       "The Forest Hiker",
			Summary:    "Breathtaking hike",
			ImageCover: "tour-1-cover.jpg",
			Price:      decimal.RequireFromString("397.50"),
		},
		CustomerEmail: "laura@example.com",
		SuccessURL:    "https://natours.dev/my-tours?alert=booking",
		CancelURL:     "https://natours.dev/tour/the-forest-hiker",
		ImageBaseURL:  "https://natours.dev/",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", sess.URL)

	get := func(key string) string {
		if v := form[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	assert.Equal(t, "payment", get("mode"))
	assert.Equal(t, "5", get("client_reference_id"))
	assert.Equal(t, "laura@example.com", get("customer_email"))
	assert.Equal(t, "https://natours.dev/my-tours?alert=booking", get("success_url"))
	assert.Equal(t, "39750", get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", get("line_items[0][price_data][currency]"))
	assert.Equal(t, "The Forest Hiker Tour", get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "https://natours.dev/img/tours/tour-1-cover.jpg", get("line_items[0][price_data][product_data][images][0]"))
	assert.Equal(t, "1", get("line_items[0][quantity]"))
}

func TestGateway_CreateCheckoutSession_StripeError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid email"}}`))
	})

	_, err := g.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		Tour: models.Tour{ID: 1, Price: decimal.NewFromInt(10)},
	})
	assert.ErrorIs(t, err, ErrCreatingSession)
}

func TestGateway_Disabled(t *testing.T) {
	g := NewGateway(config.Payment{}, logger.Nop())

	_, err := g.CreateCheckoutSession(context.Background(), models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = g.ParseWebhook([]byte(`{}`), "t=1,v1=abc")
	assert.ErrorIs(t, err, ErrDisabled)
}

// ── ParseWebhook ──

func TestGateway_ParseWebhook_CheckoutCompleted(t *testing.T) {
	g := newTestGateway(t, nil)

	payload, header := signedPayload(t, map[string]any{
		"id":     "evt_1",
		"object": "event",
		"type":   "checkout.session.completed",
		"data": map[string]any{
			"object": map[string]any{
				"id":                  "cs_test_1",
				"object":              "checkout.session",
				"client_reference_id": "5",
				"customer_email":      "laura@example.com",
				"amount_total":        39750,
			},
		},
	})

	event, err := g.ParseWebhook(payload, header)
	require.NoError(t, err)

	assert.Equal(t, models.WebhookEvent{
		ID:            "evt_1",
		Type:          models.EventCheckoutSessionCompleted,
		SessionID:     "cs_test_1",
		TourID:        "5",
		CustomerEmail: "laura@example.com",
		AmountTotal:   39750,
	}, event)
}

func TestGateway_ParseWebhook_FallsBackToCustomerDetails(t *testing.T) {
	g := newTestGateway(t, nil)

	payload, header := signedPayload(t, map[string]any{
		"id":   "evt_2",
		"type": "checkout.session.completed",
		"data": map[string]any{
			"object": map[string]any{
				"id":                  "cs_test_2",
				"client_reference_id": "7",
				"customer_details":    map[string]any{"email": "jonas@example.com"},
				"amount_total":        100,
			},
		},
	})

	event, err := g.ParseWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "jonas@example.com", event.CustomerEmail)
}

func TestGateway_ParseWebhook_OtherEventType(t *testing.T) {
	g := newTestGateway(t, nil)

	payload, header := signedPayload(t, map[string]any{
		"id":   "evt_3",
		"type": "payment_intent.created",
		"data": map[string]any{"object": map[string]any{"id": "pi_1"}},
	})

	event, err := g.ParseWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.created", event.Type)
	assert.Empty(t, event.SessionID)
}

func TestGateway_ParseWebhook_BadSignature(t *testing.T) {
	g := newTestGateway(t, nil)

	payload, header := signedPayload(t, map[string]any{"id": "evt_4", "type": "checkout.session.completed"})
	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-1] = ' '

	_, err := g.ParseWebhook(tampered, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = g.ParseWebhook(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(49700), toCents(decimal.NewFromInt(497)))
	assert.Equal(t, int64(1999), toCents(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(1000), toCents(decimal.RequireFromString("9.995")))
}
