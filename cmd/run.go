package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"collsuite/internal/config"
	"collsuite/internal/runner"
	"collsuite/pkg/logging"
)

type runOptions struct {
	parallel int
	failFast bool
	timeout  time.Duration
	output   string
	report   string
	filter   string
}

// completeOutputFlag provides shell completion for the output flag
func completeOutputFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{config.OutputVerbose, config.OutputCompact, config.OutputQuiet, config.OutputJSON}, cobra.ShellCompDirectiveDefault
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Build the declared suites and execute their tests",
		Long: `Builds the declared suites and executes every test outside of go test.

Flags override the settings from the configuration files.

Example usage:
  collsuite run                           # Run all enabled suites
  collsuite run ArrayList LinkedSet       # Run selected suites
  collsuite run --filter=single           # Only tests whose name contains "single"
  collsuite run --fail-fast               # Stop on first failure
  collsuite run --parallel=4              # Run with 4 parallel workers
  collsuite run --output=json             # Machine readable output
  collsuite run --report=out/report.json  # Save a JSON report`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("parallel") && (ro.parallel < 1 || ro.parallel > 256) {
				return fmt.Errorf("parallel workers must be between 1 and 256, got %d", ro.parallel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, opts, args)
		},
	}

	cmd.Flags().IntVar(&ro.parallel, "parallel", 1, "Number of parallel test workers")
	cmd.Flags().BoolVar(&ro.failFast, "fail-fast", false, "Stop test execution on first failure")
	cmd.Flags().DurationVar(&ro.timeout, "timeout", 0, "Per-test timeout (0 disables it)")
	cmd.Flags().StringVar(&ro.output, "output", "", "Output mode (verbose, compact, quiet, json)")
	cmd.Flags().StringVar(&ro.report, "report", "", "Path to save a detailed JSON report")
	cmd.Flags().StringVar(&ro.filter, "filter", "", "Only run tests whose full name contains this text")

	_ = cmd.RegisterFlagCompletionFunc("output", completeOutputFlag)

	return cmd
}

func (ro *runOptions) run(cmd *cobra.Command, opts *globalOptions, args []string) error {
	// Stop gracefully on interrupt
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, cfg, err := opts.buildSuites(ctx, args)
	if err != nil {
		return err
	}

	settings := ro.apply(cmd, cfg.Settings)
	reporter, err := newReporter(cmd.OutOrStdout(), settings.Output, settings.ReportFile)
	if err != nil {
		return err
	}

	result, err := runner.NewRunner(reporter).Run(ctx, runner.Configuration{
		Parallel: settings.Parallelism,
		FailFast: settings.FailFastEnabled(),
		Timeout:  settings.TestTimeout,
		Filter:   ro.filter,
	}, root)
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("run interrupted: %w", err)
	}
	if err != nil {
		return err
	}

	// The console reporter saves its own report.
	if settings.ReportFile != "" && (settings.Output == config.OutputQuiet || settings.Output == config.OutputJSON) {
		if err := runner.SaveReport(settings.ReportFile, result); err != nil {
			logging.Error("Run", err, "Could not save report for run %s", result.ID)
			return err
		}
	}
	logging.Info("Run", "Run %s: %d passed, %d failed, %d errors, %d skipped",
		result.ID, result.Passed, result.Failed, result.Errors, result.Skipped)

	if !result.Succeeded() {
		return fmt.Errorf("%d of %d tests failed", result.Failed+result.Errors, result.Total)
	}
	return nil
}

// apply overlays explicitly set flags on the configured settings.
func (ro *runOptions) apply(cmd *cobra.Command, s config.Settings) config.Settings {
	flags := cmd.Flags()
	if flags.Changed("parallel") {
		s.Parallelism = ro.parallel
	}
	if flags.Changed("fail-fast") {
		failFast := ro.failFast
		s.FailFast = &failFast
	}
	if flags.Changed("timeout") {
		s.TestTimeout = ro.timeout
	}
	if flags.Changed("output") {
		s.Output = ro.output
	}
	if flags.Changed("report") {
		s.ReportFile = ro.report
	}
	return s
}

func newReporter(out io.Writer, mode, reportPath string) (runner.Reporter, error) {
	switch mode {
	case config.OutputVerbose, "":
		return runner.NewConsoleReporter(out, true, reportPath), nil
	case config.OutputCompact:
		return runner.NewConsoleReporter(out, false, reportPath), nil
	case config.OutputQuiet:
		return runner.NewQuietReporter(out), nil
	case config.OutputJSON:
		return runner.NewJSONReporter(out), nil
	default:
		return nil, fmt.Errorf("invalid output '%s', must be one of: verbose, compact, quiet, json", mode)
	}
}
