// Package config loads sqlkw settings from defaults, an optional YAML file,
// and SQLKW_ environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/sqlkw"
	kwhttp "github.com/fwojciec/sqlkw/http"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is the config file read when no explicit path is given.
const DefaultFile = "sqlkw.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SQLKW_"

// Defaults.
const (
	DefaultOutDir      = "keywords"
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 4
	DefaultRate        = 1.0
	DefaultRetries     = 2
)

// Config holds the settings of a run.
type Config struct {
	OutDir      string        `koanf:"out_dir"`
	Timeout     time.Duration `koanf:"timeout"`
	Concurrency int           `koanf:"concurrency"`
	UserAgent   string        `koanf:"user_agent"`

	// Rate is the number of requests per second allowed to one host.
	Rate float64 `koanf:"rate"`

	// Retries is the number of extra attempts after a failed fetch.
	Retries int `koanf:"retries"`

	// Sources maps a dialect name to a documentation URL overriding the
	// built-in one.
	Sources map[string]string `koanf:"sources"`
}

// Load reads configuration. An empty path reads DefaultFile if it exists;
// an explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"out_dir":     DefaultOutDir,
		"timeout":     DefaultTimeout.String(),
		"concurrency": DefaultConcurrency,
		"user_agent":  kwhttp.DefaultUserAgent,
		"rate":        DefaultRate,
		"retries":     DefaultRetries,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SQLKW_OUT_DIR -> out_dir, SQLKW_SOURCES_MYSQL -> sources.mysql
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "sources_"); ok {
		return "sources." + rest
	}
	return key
}

// Validate returns an error if the configuration cannot drive a run.
func (c *Config) Validate() error {
	var errs []error
	if c.OutDir == "" {
		errs = append(errs, sqlkw.Errorf(sqlkw.EINVALID, "out_dir required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, sqlkw.Errorf(sqlkw.EINVALID, "timeout must be positive, got %s", c.Timeout))
	}
	if c.Concurrency <= 0 {
		errs = append(errs, sqlkw.Errorf(sqlkw.EINVALID, "concurrency must be positive, got %d", c.Concurrency))
	}
	if c.Rate <= 0 {
		errs = append(errs, sqlkw.Errorf(sqlkw.EINVALID, "rate must be positive, got %g", c.Rate))
	}
	if c.Retries < 0 {
		errs = append(errs, sqlkw.Errorf(sqlkw.EINVALID, "retries must not be negative, got %d", c.Retries))
	}

	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := sqlkw.ParseDialect(name); err != nil {
			errs = append(errs, fmt.Errorf("sources: %w", err))
		}
	}
	return errors.Join(errs...)
}

// SourceList returns the built-in sources with configured URL overrides applied.
func (c *Config) SourceList() []sqlkw.Source {
	overrides := make(map[sqlkw.Dialect]string, len(c.Sources))
	for name, u := range c.Sources {
		if d, err := sqlkw.ParseDialect(name); err == nil && u != "" {
			overrides[d] = u
		}
	}

	sources := sqlkw.DefaultSources()
	for i, src := range sources {
		if u, ok := overrides[src.Dialect]; ok {
			sources[i].URL = u
		}
	}
	return sources
}

// RetryDelays returns one backoff delay per retry, doubling from one second.
func (c *Config) RetryDelays() []time.Duration {
	delays := make([]time.Duration, c.Retries)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}
