package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// ReportCache stores report series as JSON.
type ReportCache struct {
	kv KV
}

// NewReportCache creates a cache over kv.
func NewReportCache(kv KV) *ReportCache {
	return &ReportCache{kv: kv}
}

// Get returns the cached series, or domain.ErrNotFound on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) ([]domain.WeeklyReport, error) {
	raw, err := c.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return nil, fmt.Errorf("report cache %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("report cache get %s: %w", key, err)
	}

	var reports []domain.WeeklyReport
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		return nil, fmt.Errorf("report cache decode %s: %w", key, err)
	}
	return reports, nil
}

// Set stores reports under key. A non-positive ttl disables caching.
func (c *ReportCache) Set(ctx context.Context, key string, reports []domain.WeeklyReport, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("report cache encode %s: %w", key, err)
	}
	if err := c.kv.Set(ctx, key, string(raw), ttl); err != nil {
		return fmt.Errorf("report cache set %s: %w", key, err)
	}
	return nil
}
