// Package config loads application configuration from environment variables.
package config

import (
	"os"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken string
	Repo        string // "owner/repo"
	DBPath      string
	Ranges      model.RangeConfig
}

// HasGitHubToken returns true when a GitHub token is configured. The github
// stats provider and label store require it; the git and patch providers
// do not.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a Config.
// All variables are optional here: PRSIZER_GITHUB_TOKEN, PRSIZER_REPO,
// PRSIZER_DB_PATH (default prsizer.db), PRSIZER_LABEL_PREFIX (default "size/"),
// and the five per-tier range overrides PRSIZER_RANGE_TINY, PRSIZER_RANGE_SMALL,
// PRSIZER_RANGE_MEDIUM, PRSIZER_RANGE_LARGE, PRSIZER_RANGE_HUGE.
//
// Range strings are not validated here; model.NewSizeClass validates them at
// startup so malformed overrides abort before any PR is processed.
func Load() (*Config, error) {
	dbPath := "prsizer.db"
	if v, ok := os.LookupEnv("PRSIZER_DB_PATH"); ok {
		dbPath = v
	}

	ranges := model.DefaultRangeConfig()
	if v, ok := os.LookupEnv("PRSIZER_LABEL_PREFIX"); ok && v != "" {
		ranges.LabelPrefix = v
	}
	if v := os.Getenv("PRSIZER_RANGE_TINY"); v != "" {
		ranges.Tiny = v
	}
	if v := os.Getenv("PRSIZER_RANGE_SMALL"); v != "" {
		ranges.Small = v
	}
	if v := os.Getenv("PRSIZER_RANGE_MEDIUM"); v != "" {
		ranges.Medium = v
	}
	if v := os.Getenv("PRSIZER_RANGE_LARGE"); v != "" {
		ranges.Large = v
	}
	if v := os.Getenv("PRSIZER_RANGE_HUGE"); v != "" {
		ranges.Huge = v
	}

	return &Config{
		GitHubToken: os.Getenv("PRSIZER_GITHUB_TOKEN"),
		Repo:        os.Getenv("PRSIZER_REPO"),
		DBPath:      dbPath,
		Ranges:      ranges,
	}, nil
}
