// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		body           string
		preEncoded     bool
		wantGzipped    bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "Hello, World!",
			wantGzipped:    true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			acceptEncoding: "",
			status:         http.StatusOK,
			body:           "Hello, World!",
		},
		{
			name:           "accept-encoding with multiple values including gzip",
			acceptEncoding: "deflate, gzip, br",
			status:         http.StatusOK,
			body:           "Hello, World!",
			wantGzipped:    true,
		},
		{
			name:           "accept-encoding with gzip and quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			status:         http.StatusCreated,
			body:           `{"status":"success"}`,
			wantGzipped:    true,
		},
		{
			name:           "no content is not encoded",
			acceptEncoding: "gzip",
			status:         http.StatusNoContent,
		},
		{
			name:           "already encoded response passes through",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "raw",
			preEncoded:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.preEncoded {
					w.Header().Set("Content-Encoding", "br")
				}
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")

			if !tt.wantGzipped {
				assert.NotEqual(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rr.Body.String())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			plain, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(plain))
		})
	}
}

func TestGZip_ImplicitWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "implicit", string(plain))
}
