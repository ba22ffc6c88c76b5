package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// EntryOption customizes a seeded entry.
type EntryOption func(e *domain.Entry)

// WithTags sets the entry tags.
func WithTags(tags ...string) EntryOption {
	return func(e *domain.Entry) { e.Tags = tags }
}

// WithTodos sets the entry to-dos.
func WithTodos(todos ...domain.Todo) EntryOption {
	return func(e *domain.Entry) { e.Todos = todos }
}

// WithContent sets the entry body.
func WithContent(content string) EntryOption {
	return func(e *domain.Entry) { e.Content = content }
}

// SeedEntry inserts an entry for userID created at createdAt.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time, mood string, opts ...EntryOption) domain.Entry {
	t.Helper()

	e := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "entry " + uuid.New().String()[:8],
		Mood:      mood,
		Tags:      []string{},
		Images:    []string{},
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	e.UpdatedAt = e.CreatedAt
	for _, opt := range opts {
		opt(&e)
	}

	todos, err := json.Marshal(e.Todos)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry marshal todos: %v", err)
	}
	if e.Todos == nil {
		todos = []byte("[]")
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO entries (id, user_id, title, content, mood, tags, todos, images, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.UserID, e.Title, e.Content, e.Mood, e.Tags, todos, e.Images, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}

// SeedRawTodos overwrites the todos column of an entry with raw JSON.
func SeedRawTodos(t *testing.T, pool *pgxpool.Pool, entryID uuid.UUID, raw string) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `UPDATE entries SET todos = $2::jsonb WHERE id = $1`, entryID, raw)
	if err != nil {
		t.Fatalf("testhelper: SeedRawTodos: %v", err)
	}
}
