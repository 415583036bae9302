package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It returns an error if adapterCfg.APIURL is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs to /api/v1/users/login and
// keeps the token from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	var result struct {
		Token string `json:"token"`
		Data  struct {
			User models.User `json:"user"`
		} `json:"data"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/v1/users/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if result.Token == "" {
		return models.User{}, fmt.Errorf("%w: login response has no token", ErrMalformedResponse)
	}

	h.SetToken(result.Token)
	return result.Data.User, nil
}

// Logout implements [ServerAdapter]. The local token is dropped even when
// the request fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/v1/users/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListTours(ctx context.Context) ([]models.Tour, error) {
	var result struct {
		Data struct {
			Tours []models.Tour `json:"tours"`
		} `json:"data"`
	}

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/v1/tours")
	if err != nil {
		return nil, fmt.Errorf("list tours request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data.Tours, nil
}

// GetCheckoutSession implements [ServerAdapter]. A 2xx answer without a
// session id is reported as [ErrMalformedResponse].
func (h *httpServerAdapter) GetCheckoutSession(ctx context.Context, tourID string) (models.CheckoutSession, error) {
	var result models.CheckoutSessionResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("tourId", tourID).
		SetResult(&result).
		Get("/api/v1/bookings/checkout-session/{tourId}")
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("checkout session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckoutSession{}, err
	}
	if result.Session.ID == "" {
		return models.CheckoutSession{}, fmt.Errorf("%w: checkout session has no id", ErrMalformedResponse)
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.GetCheckoutSession").
		Str("tour_id", tourID).Str("session_id", result.Session.ID).Msg("checkout session created")
	return result.Session, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	var result struct {
		Data struct {
			Build models.BuildReport `json:"build"`
		} `json:"data"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/v1/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Data.Build.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
