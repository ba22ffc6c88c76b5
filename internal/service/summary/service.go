package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// ErrNoEntries is returned when the requested week has nothing to summarize.
var ErrNoEntries = fmt.Errorf("no diary entries for this week: %w", domain.ErrNotFound)

type entryRepo interface {
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Entry, error)
}

type summaryRepo interface {
	GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, error)
	Upsert(ctx context.Context, s *domain.WeeklySummary) (*domain.WeeklySummary, error)
}

// generator produces a completion for a system and user prompt.
type generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Service produces AI summaries of a user's week and stores them.
type Service struct {
	entries   entryRepo
	summaries summaryRepo
	llm       generator
	cfg       config.ReportConfig
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new summary service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	summaries summaryRepo,
	llm generator,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		entries:   entries,
		summaries: summaries,
		llm:       llm,
		cfg:       cfg,
		log:       log.With("service", "summary"),
		now:       time.Now,
	}
}

// Weekly returns the summary of the selected week, generating and storing
// it when none is stored or input.Force is set.
func (s *Service) Weekly(ctx context.Context, input WeeklySummaryInput) (*domain.WeeklySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxWeeks); err != nil {
		return nil, err
	}
	if input.Timezone == "" {
		input.Timezone = s.cfg.DefaultTimezone
	}
	loc, err := report.LoadTimezone(input.Timezone)
	if err != nil {
		return nil, err
	}

	w := report.WindowFor(s.now(), input.WeeksAgo, loc)
	weekStart := calendarDate(w.Start, loc)

	if !input.Force {
		stored, err := s.summaries.GetByWeek(ctx, userID, weekStart)
		switch {
		case err == nil:
			return stored, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get stored summary: %w", err)
		}
	}

	entries, err := s.entries.ListInRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	weekly := report.Aggregate(entries, w, 1, loc)
	prompt := BuildPrompt(weekly, entries, loc)

	started := time.Now()
	response, err := s.llm.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w: %w", domain.ErrUnavailable, err)
	}

	content, err := ParseContent(response)
	if err != nil {
		return nil, fmt.Errorf("parse summary: %w: %w", domain.ErrUnavailable, err)
	}

	saved, err := s.summaries.Upsert(ctx, &domain.WeeklySummary{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   calendarDate(w.End, loc),
		Content:   content,
		Model:     s.llm.Model(),
	})
	if err != nil {
		return nil, fmt.Errorf("store summary: %w", err)
	}

	s.log.InfoContext(ctx, "weekly summary generated",
		slog.String("user_id", userID.String()),
		slog.String("week_start", weekStart.Format(time.DateOnly)),
		slog.Int("entries", len(entries)),
		slog.String("model", saved.Model),
		slog.Duration("took", time.Since(started)),
		slog.Bool("forced", input.Force),
	)

	return saved, nil
}

// calendarDate returns the local date of t in loc as midnight UTC,
// matching how DATE columns are scanned.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
