package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/httprate"
)

// withRateLimit allows h.rateLimit requests per h.rateWindow from one IP
// on /api routes. Views and assets are not limited.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	limited := httprate.Limit(h.rateLimit, h.rateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			h.sendError(w, r, ErrTooManyRequests)
		}),
	)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
