package http

import (
	"github.com/MKhiriev/go-natours/internal/pipeline"
	"github.com/go-chi/cors"
)

// stages declares the edge pipeline every request passes before routing.
func (h *Handler) stages() []pipeline.Stage {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})

	return []pipeline.Stage{
		{Name: "trace-id", Middleware: h.withTraceID},
		{Name: "recover", Middleware: h.withRecover, After: []string{"trace-id"}},
		{Name: "cors", Middleware: corsHandler, Before: []string{"auth-context"}},
		{Name: "static", Middleware: h.withStatic},
		{Name: "security-headers", Middleware: h.withSecurityHeaders},
		{Name: "logging", Middleware: h.withLogging, After: []string{"trace-id"}},
		{Name: "tracing", Middleware: withTracing},
		{Name: "rate-limit", Middleware: h.withRateLimit, Before: []string{"body-parser"}},
		{Name: "webhook", Middleware: h.withWebhook, Before: []string{"body-parser", "sanitize", "compression"}},
		{Name: "body-parser", Middleware: h.withBodyParser, After: []string{"rate-limit"}},
		{Name: "sanitize", Middleware: h.withSanitize, After: []string{"body-parser"}},
		{Name: "compression", Middleware: withGZip},
		{Name: "request-time", Middleware: withRequestTime},
		{Name: "auth-context", Middleware: h.withAuthContext, After: []string{"cors"}},
	}
}
