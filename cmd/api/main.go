// Command api runs the HTTP API server for the UI generator.
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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Shreerajan/UI-Generator/internal/api"
	"github.com/Shreerajan/UI-Generator/internal/config"
	"github.com/Shreerajan/UI-Generator/internal/generation"
	"github.com/Shreerajan/UI-Generator/internal/observability"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/ratelimit"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("dotenv error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.LogLevel)

	if cfg.OTelEnabled {
		shutdown, err := observability.InitTracer(context.Background(), "uigen-api")
		if err != nil {
			logger.Error("otel init failed", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		logger.Error("metrics init failed", "error", err)
	}

	if cfg.APIKey == "" {
		logger.Warn("GROQ_API_KEY is not set; generation requests will fail")
	}

	requester := planner.New(cfg.Planner(),
		planner.WithLimiter(ratelimit.NewUpstreamLimiter(cfg.UpstreamRPS)),
		planner.WithMetrics(metrics),
	)
	svc := generation.NewService(requester, generation.WithStrictTypes(cfg.StrictTypes))
	srv := api.New(svc, cfg.CORSOrigins,
		api.WithMetrics(metrics),
		api.WithBudget(ratelimit.NewClientBudget(cfg.ClientBudget, cfg.ClientWindow)),
	)

	var handler http.Handler = srv
	if cfg.OTelEnabled {
		handler = otelhttp.NewHandler(handler, "uigen-api")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting API server",
			"addr", httpServer.Addr,
			"model", cfg.Model,
			"strict_types", cfg.StrictTypes,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down API server")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
