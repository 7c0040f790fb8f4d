package main

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/breathes/internal/config"
	"github.com/dkoosis/breathes/internal/logging"
	"github.com/dkoosis/breathes/internal/progress"
	"github.com/dkoosis/breathes/internal/report"
	"github.com/dkoosis/breathes/internal/runner"
)

func (a *app) check(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}
	cfg, err := a.resolve(dir)
	if err != nil {
		return err
	}

	log, runID, closeLog := logging.New(logging.Config{Debug: cfg.Debug, Console: a.stderr, FilePath: cfg.DebugLog})
	defer func() {
		_ = log.Sync()
		_ = closeLog()
	}()
	log.Debug("config resolved",
		zap.String("root", dir),
		zap.String("run_id", runID),
		zap.String("format", cfg.Format),
		zap.String("theme", cfg.Theme),
		zap.String("theme_source", cfg.ThemeSource),
		zap.Bool("ci", cfg.CI),
	)

	tty := isTTYWriter(a.stdout) && !cfg.CI
	if cfg.ClearScreen && tty {
		clearTerminal(a.stdout)
	}

	th := cfg.ThemeValue()
	format := outputFormat(cfg, tty)
	renderer, err := report.ForFormat(format, th)
	if err != nil {
		return err
	}

	r, err := runner.New(
		runner.WithShell(cfg.Shell),
		runner.WithLogRoot(cfg.LogDir),
		runner.WithIndicator(a.indicator(format, tty, cfg)),
		runner.WithLogger(log.Named("runner")),
	)
	if err != nil {
		return err
	}

	agg := report.NewAggregator(r,
		report.WithRenderer(renderer),
		report.WithOutput(a.stdout),
		report.WithLogger(log.Named("report")),
	)
	_, err = agg.RunAll(cmd.Context(), dir)
	return err
}

func clearTerminal(w io.Writer) {
	termenv.NewOutput(w).ClearScreen()
}

// outputFormat resolves "auto" against the terminal.
func outputFormat(cfg *config.Resolved, tty bool) string {
	if cfg.Format != "auto" {
		return cfg.Format
	}
	if tty {
		return report.FormatTerminal
	}
	return report.FormatPlain
}

// indicator keeps progress lines off stdout when stdout carries JSON.
func (a *app) indicator(format string, tty bool, cfg *config.Resolved) progress.Indicator {
	th := cfg.ThemeValue()
	switch {
	case format == report.FormatJSON:
		return progress.NewPlain(a.stderr, th)
	case tty:
		return progress.NewSpinner(a.stdout, th)
	default:
		return progress.NewPlain(a.stdout, th)
	}
}
