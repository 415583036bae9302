package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-natours/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the overall ("")
// server status.
const ServiceName = "natours"

// pingTimeout bounds a single database probe.
const pingTimeout = 2 * time.Second

// Pinger is satisfied by the shared database pool.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1.Health service; ServiceName turns NOT_SERVING while the
// database cannot be reached.
type Handler struct {
	health *health.Server
	db     Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose statuses start as SERVING.
func NewHandler(db Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		db:     db,
		logger: logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Probe pings the database and updates the ServiceName status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("database is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch probes the database every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING for every service so load balancers stop
// routing before the listeners close.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
