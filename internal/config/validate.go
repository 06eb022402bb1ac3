package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	logLevels       = []string{"debug", "info", "warn", "error"}
	logFormats      = []string{"json", "text"}
	tracingExporter = []string{"stdout", "otlp", "none"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if _, err := time.LoadLocation(c.Study.Timezone); err != nil {
		return fmt.Errorf("study.timezone: %w", err)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	if c.Tracing.Enabled {
		if !slices.Contains(tracingExporter, c.Tracing.Exporter) {
			return fmt.Errorf("tracing.exporter must be one of %v (got %q)", tracingExporter, c.Tracing.Exporter)
		}
		if c.Tracing.Exporter == "otlp" && c.Tracing.Endpoint == "" {
			return fmt.Errorf("tracing.endpoint is required for the otlp exporter")
		}
		if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
			return fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
		}
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MaxBatchSize <= 0 || s.MaxBatchSize > 100 {
		return fmt.Errorf("max_batch_size must be within [1, 100] (got %d)", s.MaxBatchSize)
	}
	if s.DefaultBatchSize <= 0 || s.DefaultBatchSize > s.MaxBatchSize {
		return fmt.Errorf("default_batch_size must be within [1, max_batch_size] (got %d)", s.DefaultBatchSize)
	}
	if s.StatsCacheTTL < 0 {
		return fmt.Errorf("stats_cache_ttl must be >= 0 (got %v)", s.StatsCacheTTL)
	}
	if s.ProgressRetentionDays < 1 {
		return fmt.Errorf("progress_retention_days must be >= 1 (got %d)", s.ProgressRetentionDays)
	}
	return nil
}
