package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires dependencies,
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("redis", cfg.Redis.Enabled),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init dependencies: %w", err)
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the HTTP handler tree for c.
func NewHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(c.Pool, Version)
	if c.Redis != nil {
		health.WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return c.Redis.Ping(ctx).Err()
		}))
	}

	return rest.NewRouter(rest.RouterDeps{
		Logger:       c.Logger,
		CORS:         c.Config.CORS,
		Validator:    c.JWT,
		Health:       health,
		Reports:      rest.NewReportHandler(c.Reports, c.Logger),
		Summaries:    rest.NewSummaryHandler(c.Summary, c.Logger),
		SummaryLimit: limiter.Limit(c.Config.RateLimit.SummaryPerMinute),
	})
}
