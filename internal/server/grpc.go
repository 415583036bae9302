package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-natours/internal/handler/grpc"
	"github.com/MKhiriev/go-natours/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	addr            string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, addr string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		addr:    addr,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("%w: gRPC listen on %s: %w", ErrListener, g.addr, err)
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) Run() error {
	g.logger.Info().Str("addr", g.gRPCNetListener.Addr().String()).Msg("gRPC health server running")

	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("%w: gRPC serve: %w", ErrListener, err)
	}
	return nil
}

// Shutdown flips the health status first, then drains the server. A drain
// that outlives ctx is cut short.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
