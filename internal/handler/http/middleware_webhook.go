package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/payment"
	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
)

const (
	webhookPath = "/webhook-checkout"

	// maxWebhookBytes matches the payload cap Stripe recommends.
	maxWebhookBytes = 65536
)

// withWebhook serves POST /webhook-checkout before any body parsing so the
// payload reaches signature verification byte for byte. Other requests
// pass through.
func (h *Handler) withWebhook(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != webhookPath {
			next.ServeHTTP(w, r)
			return
		}
		h.webhookCheckout(w, r)
	})
}

func (h *Handler) webhookCheckout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		log.Err(err).Str("func", "*Handler.webhookCheckout").Msg("error reading webhook payload")
		http.Error(w, fmt.Sprintf("Webhook error: %v", err), http.StatusBadRequest)
		return
	}

	err = h.services.BookingService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		_, _ = utils.WriteJSON(w, models.WebhookResponse{Received: true}, http.StatusOK)
	case errors.Is(err, payment.ErrInvalidSignature),
		errors.Is(err, payment.ErrInvalidEvent),
		errors.Is(err, payment.ErrDisabled),
		errors.Is(err, service.ErrInvalidWebhookEvent):
		log.Warn().Err(err).Str("func", "*Handler.webhookCheckout").Msg("webhook rejected")
		http.Error(w, fmt.Sprintf("Webhook error: %v", err), http.StatusBadRequest)
	default:
		// a 5xx makes the payment processor retry the delivery
		log.Err(err).Str("func", "*Handler.webhookCheckout").Msg("webhook processing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
