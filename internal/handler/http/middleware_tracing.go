package http

import (
	"net/http"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

const tracingOperation = "natours"

// withTracing starts a server span per request. The span's ids are added to
// the request logger so handler logs can be joined with exported spans.
func withTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(withSpanLogger(next), tracingOperation)
}

func withSpanLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc := trace.SpanContextFromContext(r.Context())
		if !sc.IsValid() {
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("otel_trace_id", sc.TraceID().String()).Str("span_id", sc.SpanID().String())
		})
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
