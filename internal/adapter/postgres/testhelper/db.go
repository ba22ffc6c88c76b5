// Package testhelper runs repository tests against a disposable PostgreSQL.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
)

const image = "postgres:17-alpine"

var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on the shared, migrated test database. The
// container starts once per test binary; the pool is closed on cleanup.
// Tests isolate their rows by using fresh user IDs.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("needs docker")
	}

	shared.once.Do(func() {
		shared.dsn, shared.err = startMigrated()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// The container outlives the test binary's last test; ryuk reaps it.
func startMigrated() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("moodjournal"),
		tcpostgres.WithUsername("journal"),
		tcpostgres.WithPassword("journal"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("connection string: %w", err)
	}

	db, err := postgres.OpenDB(ctx, dsn)
	if err != nil {
		return "", err
	}
	defer db.Close()

	migrator, err := postgres.NewMigrator(db)
	if err != nil {
		return "", err
	}
	if _, err := migrator.Up(ctx); err != nil {
		return "", fmt.Errorf("migrate up: %w", err)
	}
	return dsn, nil
}
