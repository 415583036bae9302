// Package tracing installs the OpenTelemetry tracer provider behind the
// HTTP edge pipeline's tracing stage. Finished spans are written to the
// application logger at debug level.
package tracing

import (
	"context"

	"github.com/MKhiriev/go-natours/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider builds an SDK tracer provider exporting through log and
// registers it, together with W3C trace context propagation, as the global
// provider. Root spans are always sampled; child spans follow the incoming
// traceparent decision.
//
// The caller must Shutdown the provider to flush pending spans.
func NewProvider(log *logger.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithBatcher(NewLogExporter(log)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp
}

// LogExporter is a sdktrace.SpanExporter writing one log entry per span.
type LogExporter struct {
	logger *logger.Logger
}

func NewLogExporter(log *logger.Logger) *LogExporter {
	return &LogExporter{logger: log}
}

func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}

		sc := span.SpanContext()
		event := e.logger.Debug().
			Str("span", span.Name()).
			Str("otel_trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Dur("duration", span.EndTime().Sub(span.StartTime())).
			Str("status", span.Status().Code.String())
		if parent := span.Parent(); parent.IsValid() {
			event = event.Str("parent_span_id", parent.SpanID().String())
		}
		event.Msg("span finished")
	}
	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
