// Package seeder fills a user's journal with plausible demo entries so the
// report and summary endpoints have something to show in development.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// EntryBatchRepo inserts entries in bulk.
type EntryBatchRepo interface {
	CreateBatch(ctx context.Context, entries []domain.Entry) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result is the outcome of a seeding run.
type Result struct {
	Inserted int
	Batches  int
	From     time.Time
	To       time.Time
	Duration time.Duration
}

// Seeder generates and stores demo entries.
type Seeder struct {
	log  *slog.Logger
	repo EntryBatchRepo
	tx   txRunner
	cfg  Config
}

// New creates a Seeder.
func New(log *slog.Logger, repo EntryBatchRepo, tx txRunner, cfg Config) *Seeder {
	return &Seeder{log: log.With("component", "seeder"), repo: repo, tx: tx, cfg: cfg}
}

// Run generates entries for userID over the last cfg.Weeks weeks and inserts
// them in one transaction. A failed run leaves nothing behind.
func (s *Seeder) Run(ctx context.Context, userID uuid.UUID, now time.Time, loc *time.Location) (Result, error) {
	start := time.Now()
	entries := Generate(userID, now, loc, s.cfg)

	res := Result{Inserted: len(entries)}
	if len(entries) > 0 {
		res.From = entries[0].CreatedAt
		res.To = entries[len(entries)-1].CreatedAt
	}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing inserted", slog.Int("entries", len(entries)))
		res.Duration = time.Since(start)
		return res, nil
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for batch := range chunk(entries, s.cfg.BatchSize) {
			if err := s.repo.CreateBatch(ctx, batch); err != nil {
				return fmt.Errorf("insert batch %d: %w", res.Batches+1, err)
			}
			res.Batches++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "demo entries seeded",
		slog.String("user_id", userID.String()),
		slog.Int("entries", res.Inserted),
		slog.Int("batches", res.Batches),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

var (
	moods = []string{"happy", "excited", "content", "calm", "okay", "neutral", "tired", "sad", "anxious", "angry", "stressed"}
	tags  = []string{"work", "family", "friends", "health", "exercise", "reading", "travel", "sleep", "cooking", "music"}
	todos = []string{"Go for a run", "Call mom", "Finish the report", "Read 20 pages", "Meditate", "Buy groceries", "Clean the desk"}
	lines = []string{
		"Woke up early and had a slow breakfast.",
		"Work was busy but the team shipped the release.",
		"Felt a bit low in the afternoon.",
		"Took a long walk by the river after dinner.",
		"Spent the evening with friends and laughed a lot.",
		"Could not focus today, too many meetings.",
		"Tried a new recipe and it turned out great.",
		"Slept badly and dragged through the day.",
	}
)

// Generate builds demo entries for the cfg.Weeks weeks ending at now, oldest
// first. Apart from entry IDs, the output depends only on the arguments.
func Generate(userID uuid.UUID, now time.Time, loc *time.Location, cfg Config) []domain.Entry {
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed^0x9e3779b97f4a7c15))

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	days := cfg.Weeks * domain.DaysPerWeek

	var out []domain.Entry
	for d := days - 1; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		if rng.IntN(100) < cfg.SkipDayChance {
			continue
		}
		n := 1 + rng.IntN(cfg.MaxPerDay)
		for i := 0; i < n; i++ {
			created := day.Add(time.Duration(7+rng.IntN(15))*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
			if created.After(now) {
				continue
			}
			out = append(out, domain.Entry{
				ID:        uuid.New(),
				UserID:    userID,
				Title:     day.Format("Monday, Jan 2"),
				Content:   content(rng),
				Mood:      moods[rng.IntN(len(moods))],
				Tags:      pick(rng, tags, rng.IntN(3)),
				Todos:     genTodos(rng),
				CreatedAt: created.UTC(),
			})
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Entry) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

func content(rng *rand.Rand) string {
	n := 1 + rng.IntN(4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = lines[rng.IntN(len(lines))]
	}
	return strings.Join(parts, " ")
}

func pick(rng *rand.Rand, from []string, n int) []string {
	if n == 0 {
		return nil
	}
	idx := rng.Perm(len(from))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = from[j]
	}
	return out
}

func genTodos(rng *rand.Rand) []domain.Todo {
	texts := pick(rng, todos, rng.IntN(4))
	out := make([]domain.Todo, len(texts))
	for i, t := range texts {
		out[i] = domain.Todo{Text: t, Done: rng.IntN(2) == 0}
	}
	return out
}

// chunk yields consecutive slices of at most size elements.
func chunk[T any](items []T, size int) func(yield func([]T) bool) {
	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end]) {
				return
			}
		}
	}
}
