package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

type entryRepo interface {
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Entry, error)
}

// seriesCache stores computed series. Get returns domain.ErrNotFound on a miss.
type seriesCache interface {
	Get(ctx context.Context, key string) ([]domain.WeeklyReport, error)
	Set(ctx context.Context, key string, reports []domain.WeeklyReport, ttl time.Duration) error
}

// Service builds weekly report series for the authenticated user.
type Service struct {
	entries entryRepo
	cache   seriesCache
	cfg     config.ReportConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new report service. cache may be nil.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	cache seriesCache,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		entries: entries,
		cache:   cache,
		cfg:     cfg,
		log:     log.With("service", "report"),
		now:     time.Now,
	}
}

// WeeklyReports returns the report series for the last input.Weeks weeks,
// most recent first.
func (s *Service) WeeklyReports(ctx context.Context, input WeeklyReportsInput) (*SeriesResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.withDefaults(s.cfg.DefaultWeeks, s.cfg.DefaultTimezone)
	if err := input.Validate(s.cfg.MaxWeeks); err != nil {
		return nil, err
	}

	loc, err := LoadTimezone(input.Timezone)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := cacheKey(userID, loc, input.Weeks, WindowFor(now, 0, loc))

	if reports, ok := s.cached(ctx, key); ok {
		return &SeriesResult{Timezone: loc.String(), Reports: reports, Cached: true}, nil
	}

	from, to := SeriesRange(input.Weeks, now, loc)
	entries, err := s.entries.ListInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	reports := BuildSeries(entries, input.Weeks, now, loc)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, reports, s.cfg.CacheTTL); err != nil {
			s.log.WarnContext(ctx, "report cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "weekly reports built",
		slog.String("user_id", userID.String()),
		slog.Int("weeks", input.Weeks),
		slog.String("timezone", loc.String()),
		slog.Int("entries", len(entries)),
	)

	return &SeriesResult{Timezone: loc.String(), Reports: reports}, nil
}

func (s *Service) cached(ctx context.Context, key string) ([]domain.WeeklyReport, bool) {
	if s.cache == nil {
		return nil, false
	}
	reports, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "report cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return reports, true
}

// cacheKey changes with the current week, so a new week never serves stale data.
func cacheKey(userID uuid.UUID, loc *time.Location, weeks int, current domain.WeekWindow) string {
	return fmt.Sprintf("reports:%s:%s:%d:%s",
		userID, loc.String(), weeks, current.Start.In(loc).Format(time.DateOnly))
}
