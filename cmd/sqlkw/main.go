package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sqlkw/config"
	"github.com/fwojciec/sqlkw/fs"
	"github.com/fwojciec/sqlkw/goquery"
	kwhttp "github.com/fwojciec/sqlkw/http"
	"github.com/fwojciec/sqlkw/pipeline"
	kwslog "github.com/fwojciec/sqlkw/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sqlkw"),
		kong.Description("Extract SQL keyword lists from vendor documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Verbose && cli.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: check sqlkw.yaml and SQLKW_* environment variables")
		return err
	}
	cli.apply(cfg)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.level()}))

	// Wire dependencies
	fetcher := kwslog.NewLoggingFetcher(
		kwhttp.NewFetcher(kwhttp.WithTimeout(cfg.Timeout), kwhttp.WithUserAgent(cfg.UserAgent)),
		logger,
	)
	defer fetcher.Close()

	p := &pipeline.Pipeline{
		Fetcher:      fetcher,
		Extractors:   kwslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), logger),
		Store:        kwslog.NewLoggingStore(fs.NewOSStore(cfg.OutDir), logger),
		RateLimiter:  pipeline.NewDomainLimiter(cfg.Rate),
		Logger:       logger,
		FetchTimeout: cfg.Timeout,
		Concurrency:  cfg.Concurrency,
		RetryDelays:  cfg.RetryDelays(),
	}

	report, err := p.Run(ctx, cfg.SourceList())
	if report != nil {
		renderReport(stdout, report, cfg.OutDir, err == nil)
	}
	return err
}
