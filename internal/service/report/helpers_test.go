package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %q: %v", name, err)
	}
	return loc
}

func entryAt(t *testing.T, createdAt, mood string) domain.Entry {
	t.Helper()
	return domain.Entry{
		ID:        uuid.New(),
		CreatedAt: mustTime(t, createdAt),
		Mood:      mood,
	}
}

func scorePtr(v float64) *float64 { return &v }
