package payment

import (
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/stripe/stripe-go/v82"
)

// stripeLogger routes stripe-go's internal logging to zerolog.
type stripeLogger struct {
	log *logger.Logger
}

var _ stripe.LeveledLoggerInterface = (*stripeLogger)(nil)

func newStripeLogger(log *logger.Logger) *stripeLogger {
	return &stripeLogger{log: log}
}

func (l *stripeLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l *stripeLogger) Infof(format string, v ...any) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l *stripeLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "stripe").Msgf(format, v...)
}

func (l *stripeLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "stripe").Msgf(format, v...)
}
