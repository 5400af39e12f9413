package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/rishithapentyala/Library-Management-System/app/httpapi"
	"github.com/rishithapentyala/Library-Management-System/app/notify"
	"github.com/rishithapentyala/Library-Management-System/app/shared/shell/config"
	"github.com/rishithapentyala/Library-Management-System/circulation/oteladapters"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine"
)

const (
	instrumentationName = "library-circulation"
	shutdownTimeout     = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("librarysrv stopped", "error", err.Error())
		os.Exit(1)
	}
}

//nolint:funlen
func run() error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}),
	)
	slog.SetDefault(logger.Slog())

	instrumentation := httpapi.Instrumentation{Logger: logger}
	engineOptions := []sqlengine.Option{sqlengine.WithContextualLogger(logger)}
	hubOptions := []notify.HubOption{notify.WithHubLogger(logger)}

	if cfg.ObservabilityEnabled() {
		providers, err := config.NewObservabilityProviders(ctx, cfg)
		if err != nil {
			return err
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := providers.Shutdown(shutdownCtx); err != nil {
				logger.ErrorContext(shutdownCtx, "flushing telemetry failed", "error", err.Error())
			}
		}()

		metrics := oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
		tracing := oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))

		instrumentation.Metrics = metrics
		instrumentation.Tracing = tracing
		engineOptions = append(engineOptions, sqlengine.WithMetrics(metrics), sqlengine.WithTracing(tracing))
		hubOptions = append(hubOptions, notify.WithHubMetrics(metrics))
	}

	engine, closeEngine, err := openEngine(ctx, cfg, engineOptions...)
	if err != nil {
		return err
	}
	defer closeEngine()

	handlers, err := httpapi.NewHandlers(engine, instrumentation)
	if err != nil {
		return err
	}

	hub := notify.NewHub(hubOptions...)
	go hub.Run(ctx)

	notifier := notify.NewOverdueNotifier(engine, hub, cfg.OverdueScanInterval, notify.WithNotifierLogger(logger))
	go notifier.Run(ctx)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpapi.NewServer(handlers, httpapi.WithNotificationHub(hub), httpapi.WithLogger(logger)).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "librarysrv listening", "addr", cfg.Addr(), "storage", cfg.Storage)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	logger.InfoContext(context.Background(), "librarysrv shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
