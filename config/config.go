// Package config loads engine defaults and named line-length schedules for
// the knuthplass CLI and HTTP server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/alex-panda/knuthplass/breaker"
)

// Sentinel validation errors.
var (
	ErrInvalidTolerance = errors.New("tolerance must be positive")
	ErrEmptySchedule    = errors.New("line schedule must have at least one length")
)

// Default configuration values.
const (
	defaultTolerance      = 1.0
	defaultFitnessDemerit = 100.0
	defaultFlaggedDemerit = 100.0
	defaultCacheAddr      = "localhost:6379"
	defaultCacheTTL       = time.Hour
	defaultAuditURI       = "mongodb://localhost:27017"
	defaultAuditDB        = "knuthplass"
)

// LineSchedule is a named list of target line lengths, in points.
type LineSchedule struct {
	Lengths []float64 `mapstructure:"lengths"`
}

// CacheConfig configures the Redis-backed solve cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Address string        `mapstructure:"address"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// AuditConfig configures the MongoDB-backed audit log.
type AuditConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// EngineConfig is the root configuration document.
type EngineConfig struct {
	DefaultOptions struct {
		Tolerance      float64 `mapstructure:"tolerance"`
		Looseness      int     `mapstructure:"looseness"`
		FitnessDemerit float64 `mapstructure:"fitness_demerit"`
		FlaggedDemerit float64 `mapstructure:"flagged_demerit"`
	} `mapstructure:"default_options"`
	Schedules map[string]LineSchedule `mapstructure:"schedules"`
	Cache     CacheConfig             `mapstructure:"cache"`
	Audit     AuditConfig             `mapstructure:"audit"`
}

// Load reads configuration from built-in defaults, then the config file
// (configPath if non-empty, otherwise knuthplass.toml in . or /etc/knuthplass
// when present), then environment variables prefixed KNUTHPLASS_, each
// source overriding the one before it.
func Load(configPath string) (*EngineConfig, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("knuthplass")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/knuthplass")
	}

	v.SetEnvPrefix("KNUTHPLASS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg EngineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default_options.tolerance", defaultTolerance)
	v.SetDefault("default_options.looseness", 0)
	v.SetDefault("default_options.fitness_demerit", defaultFitnessDemerit)
	v.SetDefault("default_options.flagged_demerit", defaultFlaggedDemerit)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.address", defaultCacheAddr)
	v.SetDefault("cache.ttl", defaultCacheTTL)

	v.SetDefault("audit.enabled", false)
	v.SetDefault("audit.uri", defaultAuditURI)
	v.SetDefault("audit.database", defaultAuditDB)
}

func validate(cfg *EngineConfig) error {
	if cfg.DefaultOptions.Tolerance <= 0 {
		return ErrInvalidTolerance
	}
	for name, sched := range cfg.Schedules {
		if len(sched.Lengths) == 0 {
			return fmt.Errorf("schedule %q: %w", name, ErrEmptySchedule)
		}
	}
	return nil
}

// Options resolves the engine's default breaker.Options together with the
// named line-length schedule.
func (c *EngineConfig) Options(schedule string) (breaker.Options, []float64, error) {
	opts := breaker.Options{
		Tolerance:      c.DefaultOptions.Tolerance,
		Looseness:      c.DefaultOptions.Looseness,
		FitnessDemerit: c.DefaultOptions.FitnessDemerit,
		FlaggedDemerit: c.DefaultOptions.FlaggedDemerit,
	}

	sched, ok := c.Schedules[schedule]
	if !ok {
		return breaker.Options{}, nil, fmt.Errorf("config: unknown line schedule %q", schedule)
	}
	return opts, sched.Lengths, nil
}
