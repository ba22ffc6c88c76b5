// Package entry reads journal entries from the shared entries table.
// The table is owned by the journaling backend; writes here exist only
// for seeding development data.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const table = "entries"

var columns = []string{
	"id", "user_id", "title", "content", "mood", "tags", "todos", "images", "created_at", "updated_at",
}

// Repo provides entry access backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListInRange returns the user's entries with from <= created_at <= to,
// ordered by created_at then id.
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Entry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.LtOrEq{"created_at": to}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "entries of user", userID)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "entries of user", userID)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entries of user", userID)
	}

	return entries, nil
}

// CreateBatch copies entries into the table with COPY. IDs are generated when
// nil and UpdatedAt defaults to CreatedAt.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = e.CreatedAt
		}
		todos, err := json.Marshal(nonNil(e.Todos))
		if err != nil {
			return fmt.Errorf("marshal todos of entry %s: %w", e.ID, err)
		}
		rows = append(rows, []any{
			e.ID, e.UserID, e.Title, e.Content, e.Mood,
			nonNil(e.Tags), todos, nonNil(e.Images), e.CreatedAt, e.UpdatedAt,
		})
	}

	n, err := postgres.QuerierFromCtx(ctx, r.pool).
		CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return postgres.MapError(err, "entries", len(entries))
	}
	if int(n) != len(entries) {
		return fmt.Errorf("copy entries: wrote %d of %d rows", n, len(entries))
	}
	return nil
}

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var (
		e                    domain.Entry
		title, content, mood *string
		todos                []byte
	)
	err := row.Scan(
		&e.ID, &e.UserID, &title, &content, &mood,
		&e.Tags, &todos, &e.Images, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Entry{}, err
	}

	e.Title = deref(title)
	e.Content = deref(content)
	e.Mood = deref(mood)
	e.Todos = domain.ParseTodos(todos)
	return e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
