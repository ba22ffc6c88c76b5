package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.RateLimit.SummaryPerMinute <= 0 {
		return fmt.Errorf("rate_limit.summary_per_minute must be > 0 (got %d)", c.RateLimit.SummaryPerMinute)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	if _, err := time.LoadLocation(r.DefaultTimezone); err != nil || r.DefaultTimezone == "" {
		return fmt.Errorf("default_timezone %q is not a valid IANA zone", r.DefaultTimezone)
	}
	if r.MaxWeeks < 1 || r.MaxWeeks > 520 {
		return fmt.Errorf("max_weeks must be in [1, 520] (got %d)", r.MaxWeeks)
	}
	if r.DefaultWeeks < 1 || r.DefaultWeeks > r.MaxWeeks {
		return fmt.Errorf("default_weeks must be in [1, %d] (got %d)", r.MaxWeeks, r.DefaultWeeks)
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", r.CacheTTL)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if !IsSupportedProvider(l.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", SupportedProviders, l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.RetryCount < 0 {
		return fmt.Errorf("retry_count must be >= 0 (got %d)", l.RetryCount)
	}
	return nil
}
