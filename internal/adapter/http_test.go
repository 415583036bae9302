// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://natours.test"

// newTestAdapter returns an adapter whose transport is intercepted by
// httpmock.
func newTestAdapter(t *testing.T) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{APIURL: testBaseURL}, logger.Nop())
	require.NoError(t, err)

	adapter := a.(*httpServerAdapter)
	httpmock.ActivateNonDefault(adapter.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return adapter
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://natours.dev/", want: "https://natours.dev"},
		{name: "host and port", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	a := newTestAdapter(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/v1/users/login",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"status": "success",
			"token":  "jwt-token",
			"data":   map[string]any{"user": map[string]any{"id": 7, "name": "Laura", "email": "laura@example.com"}},
		}))

	user, err := a.Login(context.Background(), models.LoginRequest{Email: "laura@example.com", Password: "pass1234"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Laura", user.Name)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newTestAdapter(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/v1/users/login",
		httpmock.NewJsonResponderOrPanic(http.StatusUnauthorized, models.ErrorResponse{
			Status:  models.StatusFail,
			Message: "Incorrect email or password",
		}))

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "laura@example.com", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Incorrect email or password", err.Error())
	assert.Empty(t, a.Token())
}

func TestLogin_NoToken(t *testing.T) {
	a := newTestAdapter(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/v1/users/login",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "success"}))

	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogout_ClearsToken(t *testing.T) {
	a := newTestAdapter(t)
	a.SetToken("jwt-token")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/users/logout",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "success"}))

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

// ── tours ───────────────────────────────────────────────────────────────────

func TestListTours(t *testing.T) {
	a := newTestAdapter(t)
	a.SetToken("jwt-token")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/tours",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer jwt-token", req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"status":  "success",
				"results": 2,
				"data": map[string]any{"tours": []map[string]any{
					{"id": 1, "name": "The Forest Hiker", "price": 397},
					{"id": 2, "name": "The Sea Explorer", "price": 497},
				}},
			})
		})

	tours, err := a.ListTours(context.Background())

	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "The Sea Explorer", tours[1].Name)
	assert.Equal(t, "497", tours[1].Price.String())
}

// ── checkout ────────────────────────────────────────────────────────────────

func TestGetCheckoutSession(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		wantID    string
		wantErr   error
		wantText  string
	}{
		{
			name: "session returned",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, models.CheckoutSessionResponse{
				Status:  models.StatusSuccess,
				Session: models.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"},
			}),
			wantID: "cs_test_123",
		},
		{
			name: "missing id",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"status": "success", "session": map[string]any{},
			}),
			wantErr: ErrMalformedResponse,
		},
		{
			name: "not logged in",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusUnauthorized, models.ErrorResponse{
				Status: models.StatusFail, Message: "You are not logged in! Please log in to get access.",
			}),
			wantErr:  ErrUnauthorized,
			wantText: "You are not logged in! Please log in to get access.",
		},
		{
			name: "payments disabled",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusServiceUnavailable, models.ErrorResponse{
				Status: models.StatusError, Message: "Payments are not available at the moment.",
			}),
			wantErr:  ErrServiceUnavailable,
			wantText: "Payments are not available at the moment.",
		},
		{
			name:      "plain text error",
			responder: httpmock.NewStringResponder(http.StatusTeapot, "short and stout"),
			wantText:  "short and stout",
		},
		{
			name:      "network failure",
			responder: httpmock.NewErrorResponder(errors.New("connection refused")),
			wantText:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t)
			a.SetToken("jwt-token")
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/bookings/checkout-session/5", tt.responder)

			session, err := a.GetCheckoutSession(context.Background(), "5")

			if tt.wantID != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, session.ID)
				assert.Equal(t, 1, httpmock.GetTotalCallCount())
				return
			}

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantText != "" {
				assert.Contains(t, err.Error(), tt.wantText)
			}
		})
	}
}

func TestResponseError_Status(t *testing.T) {
	a := newTestAdapter(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/bookings/checkout-session/9",
		httpmock.NewStringResponder(http.StatusTooManyRequests, ""))

	_, err := a.GetCheckoutSession(context.Background(), "9")

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusTooManyRequests, respErr.StatusCode)
	assert.Equal(t, "Too Many Requests", respErr.Message)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestServerVersion(t *testing.T) {
	a := newTestAdapter(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/version",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"status": "success",
			"data":   map[string]any{"build": map[string]any{"version": "v1.4.0"}},
		}))

	version, err := a.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", version)
}
