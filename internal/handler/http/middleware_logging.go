package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri, method := r.RequestURI, r.Method

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		accessLogEvent(logger.FromRequest(r), status).
			Str("method", method).
			Str("uri", uri).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Str("ip", clientIP(r)).
			Str("user_agent", r.UserAgent()).
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

// clientIP is the address the rate limiter keys on.
func clientIP(r *http.Request) string {
	ip, err := httprate.KeyByIP(r)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
