package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings.
type Config struct {
	Weeks         int    `yaml:"weeks"           env:"SEEDER_WEEKS"           env-default:"8"`
	MaxPerDay     int    `yaml:"max_per_day"     env:"SEEDER_MAX_PER_DAY"     env-default:"2"`
	SkipDayChance int    `yaml:"skip_day_chance" env:"SEEDER_SKIP_DAY_CHANCE" env-default:"25"`
	BatchSize     int    `yaml:"batch_size"      env:"SEEDER_BATCH_SIZE"      env-default:"200"`
	RandomSeed    uint64 `yaml:"random_seed"     env:"SEEDER_RANDOM_SEED"     env-default:"42"`
	DryRun        bool   `yaml:"dry_run"         env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the ranges the generator relies on.
func (c *Config) Validate() error {
	if c.Weeks < 1 {
		return fmt.Errorf("seeder config: weeks must be at least 1")
	}
	if c.MaxPerDay < 1 {
		return fmt.Errorf("seeder config: max_per_day must be at least 1")
	}
	if c.SkipDayChance < 0 || c.SkipDayChance > 100 {
		return fmt.Errorf("seeder config: skip_day_chance must be in [0, 100]")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("seeder config: batch_size must be at least 1")
	}
	return nil
}
