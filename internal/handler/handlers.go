package handler

import (
	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/handler/grpc"
	"github.com/MKhiriev/go-natours/internal/handler/http"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/web"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured listener.
// The gRPC health handler reports the state of db.
func NewHandlers(services *service.Services, views *web.Views, db grpc.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.Port != 0 {
		handlers.HTTP = http.NewHandler(services, views, cfg, logger)
	}
	if cfg.Server.GRPCAddress() != "" {
		handlers.GRPC = grpc.NewHandler(db, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
