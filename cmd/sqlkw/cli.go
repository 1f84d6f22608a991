package main

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sqlkw/config"
)

// CLI defines the command-line interface structure for Kong.
// Zero-valued flags leave the configured value in place.
type CLI struct {
	Out         string        `short:"o" help:"Output directory (default: keywords)"`
	Config      string        `short:"c" help:"Config file (default: sqlkw.yaml if present)"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per source, including retries (default: 30s)"`
	Concurrency int           `short:"j" help:"Sources fetched at the same time (default: 4)"`
	Verbose     bool          `short:"v" help:"Log debug output"`
	Quiet       bool          `short:"q" help:"Log warnings and errors only"`
}

// apply overrides cfg with the flags that were set.
func (c *CLI) apply(cfg *config.Config) {
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
}

func (c *CLI) level() slog.Level {
	switch {
	case c.Verbose:
		return slog.LevelDebug
	case c.Quiet:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
