package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/handler"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/payment"
	"github.com/MKhiriev/go-natours/internal/server"
	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/tracing"
	"github.com/MKhiriev/go-natours/internal/web"
	"github.com/MKhiriev/go-natours/internal/workers"
	"github.com/MKhiriev/go-natours/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	connectTimeout       = 10 * time.Second
	tracerFlushTimeout   = 5 * time.Second
	uncaughtExceptionMsg = "UNCAUGHT EXCEPTION! Shutting down..."
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("natours-server")

	defer exitOnPanic(log)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("natours-server", logger.ForEnv(cfg.App.Env)...)

	os.Exit(run(cfg, log))
}

// run returns the process exit code: 0 after a termination signal, 1 when
// startup or a running listener fails.
func run(cfg *config.StructuredConfig, log *logger.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tracerProvider := tracing.NewProvider(log)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), tracerFlushTimeout)
		defer cancel()
		if err := tracerProvider.Shutdown(flushCtx); err != nil {
			log.Err(err).Msg("error flushing spans")
		}
	}()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	db, err := store.NewConnectPostgres(connectCtx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Err(err).Msg("error connecting to database")
		return 1
	}
	defer db.Close()
	// runs before the cleanup deferred above; a panic skips that cleanup
	defer exitOnPanic(log)

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		return 1
	}

	if !cfg.Payment.Enabled() {
		log.Warn().Msg("STRIPE_SECRET_KEY is not set, checkout is disabled")
	}
	gateway := payment.NewGateway(cfg.Payment, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewStorages(db, log), gateway, buildInfo, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return 1
	}

	views, err := web.NewViews()
	if err != nil {
		log.Err(err).Msg("error parsing templates")
		return 1
	}

	handlers, err := handler.NewHandlers(services, views, db, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return 1
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return 1
	}

	if err = srv.RunServer(ctx); err != nil {
		var pe *workers.PanicError
		if errors.As(err, &pe) {
			log.Error().Any("panic", pe.Value).Bytes("stack", pe.Stack).Msg(uncaughtExceptionMsg)
			return 1
		}
		log.Err(err).Msg("UNHANDLED REJECTION! Shutting down...")
		return 1
	}

	log.Info().Msg("process terminated")
	return 0
}

// exitOnPanic reports a panic of the calling goroutine and exits at once.
func exitOnPanic(log *logger.Logger) {
	if rec := recover(); rec != nil {
		log.Error().Any("panic", rec).Bytes("stack", debug.Stack()).Msg(uncaughtExceptionMsg)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
