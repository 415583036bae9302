package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger attaches a buffer-backed logger the way withTraceID does.
func requestWithLogger(req *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	return entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{name: "page", method: http.MethodGet, target: "/tour/the-forest-hiker", status: http.StatusOK, body: "<html>", wantLevel: "info"},
		{name: "created", method: http.MethodPost, target: "/api/v1/reviews", status: http.StatusCreated, body: `{"status":"success"}`, wantLevel: "info"},
		{name: "not found", method: http.MethodGet, target: "/api/v1/nope?x=1", status: http.StatusNotFound, body: `{"status":"fail"}`, wantLevel: "warn"},
		{name: "rate limited", method: http.MethodGet, target: "/api/v1/tours", status: http.StatusTooManyRequests, wantLevel: "warn"},
		{name: "server error", method: http.MethodPost, target: "/webhook-checkout", status: http.StatusInternalServerError, body: "x", wantLevel: "error"},
	}

	h := &Handler{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.RemoteAddr = "203.0.113.7:51234"
			req.Header.Set("User-Agent", "natours-test")
			rr := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rr, requestWithLogger(req, &buf))

			assert.Equal(t, tt.status, rr.Code)
			entry := decodeLogLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Equal(t, "203.0.113.7", entry["ip"])
			assert.Equal(t, "natours-test", entry["user_agent"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := requestWithLogger(httptest.NewRequest(http.MethodGet, "/", nil), &buf)
	(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	entry := decodeLogLine(t, &buf)
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	var buf bytes.Buffer
	req := requestWithLogger(httptest.NewRequest(http.MethodGet, "/", nil), &buf)

	assert.Panics(t, func() {
		(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	})
	assert.Empty(t, buf.String())
}
