// Package summary stores generated weekly summaries.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const table = "weekly_summaries"

var columns = []string{"id", "user_id", "week_start", "week_end", "summary", "model", "created_at"}

// Repo provides weekly summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByWeek returns the summary of the week starting on weekStart (a date).
// Returns domain.ErrNotFound if none is stored.
func (r *Repo) GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "week_start": weekStart}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	s, err := scanSummary(row)
	if err != nil {
		return nil, postgres.MapError(err, "weekly_summary", weekStart.Format(time.DateOnly))
	}
	return s, nil
}

// Upsert stores s, replacing any summary of the same user-week.
// The stored row is returned.
func (r *Repo) Upsert(ctx context.Context, s *domain.WeeklySummary) (*domain.WeeklySummary, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	content, err := json.Marshal(s.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal summary content: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "week_start", "week_end", "summary", "model").
		Values(id, s.UserID, s.WeekStart, s.WeekEnd, content, s.Model).
		Suffix(`ON CONFLICT (user_id, week_start) DO UPDATE SET
			week_end = EXCLUDED.week_end,
			summary = EXCLUDED.summary,
			model = EXCLUDED.model,
			created_at = now()`).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary upsert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	saved, err := scanSummary(row)
	if err != nil {
		return nil, postgres.MapError(err, "weekly_summary", s.WeekStart.Format(time.DateOnly))
	}
	return saved, nil
}

func scanSummary(row pgx.Row) (*domain.WeeklySummary, error) {
	var (
		s   domain.WeeklySummary
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.WeekStart, &s.WeekEnd, &raw, &s.Model, &s.CreatedAt); err != nil {
		return nil, err
	}

	content, err := decodeContent(raw)
	if err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", s.ID, err)
	}
	s.Content = content
	return &s, nil
}

// decodeContent accepts the summary as a JSON object or as a JSON string
// holding the object, which older clients wrote.
func decodeContent(raw []byte) (domain.SummaryContent, error) {
	var content domain.SummaryContent

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}
	if err := json.Unmarshal(raw, &content); err != nil {
		return domain.SummaryContent{}, err
	}
	if content.Achievements == nil {
		content.Achievements = []string{}
	}
	return content, nil
}
