package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/handler"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/workers"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthProbeInterval = 15 * time.Second
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers:         workers.NewWorkers(),
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil {
		router, err := handlers.HTTP.Init()
		if err != nil {
			return nil, fmt.Errorf("error initializing HTTP routes: %w", err)
		}
		servers.httpServer = newHTTPServer(router, cfg.HTTPAddress(), logger)
	}
	if handlers.GRPC != nil {
		health := handlers.GRPC
		servers.gRPCServer = newGRPCServer(health, cfg.GRPCAddress(), logger)
		servers.workers.Add(workers.WorkerFunc(func(ctx context.Context) error {
			health.Watch(ctx, healthProbeInterval)
			return nil
		}))
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(workers.Recover(s.httpServer.Run))
	}
	if s.gRPCServer != nil {
		g.Go(workers.Recover(s.gRPCServer.Run))
	}
	g.Go(func() error {
		return s.workers.Run(gctx)
	})

	// a signal, a panic or the first failure above ends up here
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Err(err).Str("func", "*server.RunServer").Msg("servers did not drain in time")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// listen binds every configured address. On failure the listeners opened
// so far are closed.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	// finish gRPC server first so health checks fail before HTTP drains
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	// finish HTTP server
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
