package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/llm"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	entryrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/entry"
	summaryrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/summary"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/redis"
	"github.com/heartmarshall/moodjournal-backend/internal/auth"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
	"github.com/heartmarshall/moodjournal-backend/internal/service/summary"
)

// Container holds the wired dependencies shared by the HTTP server and the CLI.
type Container struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      *pgxpool.Pool
	Redis     *goredis.Client // nil when redis.enabled is false
	TxManager *postgres.TxManager
	JWT       *auth.JWTManager
	Entries   *entryrepo.Repo
	Summaries *summaryrepo.Repo
	Reports   *report.Service
	Summary   *summary.Service
	Generator llm.Generator
}

type reportCache interface {
	Get(ctx context.Context, key string) ([]domain.WeeklyReport, error)
	Set(ctx context.Context, key string, reports []domain.WeeklyReport, ttl time.Duration) error
}

// NewContainer connects to the database (and Redis when enabled) and builds
// repositories and services. Call Close when done.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Pool:      pool,
		TxManager: postgres.NewTxManager(pool),
		JWT:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL),
		Entries:   entryrepo.New(pool),
		Summaries: summaryrepo.New(pool),
	}

	// Left as a nil interface when Redis is off, so the service skips caching.
	var cache reportCache
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Redis = rdb
		cache = redis.NewReportCache(redis.NewRedisKV(rdb))
		logger.Info("report cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Report.CacheTTL))
	}

	gen, err := llm.New(cfg.LLM)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("create llm client: %w", err)
	}
	if _, disabled := gen.(llm.Disabled); disabled {
		logger.Warn("llm api key not set, summaries are disabled", slog.String("provider", cfg.LLM.Provider))
	}
	c.Generator = gen

	c.Reports = report.NewService(logger, c.Entries, cache, cfg.Report)
	c.Summary = summary.NewService(logger, c.Entries, c.Summaries, gen, cfg.Report)

	return c, nil
}

// Close releases connections.
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	c.Pool.Close()
}
