package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"collsuite/internal/catalog"
	"collsuite/internal/config"
	"collsuite/internal/suite"
	"collsuite/pkg/logging"
)

// rootName names the suite that holds every declared suite.
const rootName = "collsuite"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "collsuite",
		Short: "Build and run conformance suites for collection implementations",
		Long: `collsuite expands a collection test battery into one suite per
collection size (empty, single, multiple) for every declared container,
and runs the resulting tests.

Suites are declared in YAML and layered from the built-in defaults,
~/.config/collsuite/config.yaml, ./.collsuite/config.yaml and --config.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unknown features, failing tests)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initLogging(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to an additional suite configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newTreeCmd(opts))
	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newFeaturesCmd())

	return cmd
}

func (o *globalOptions) initLogging(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format := logging.Format(o.logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return fmt.Errorf("invalid log format '%s', must be 'text' or 'json'", o.logFormat)
	}
	logging.Init(format, level, cmd.ErrOrStderr())
	return nil
}

// buildSuites loads the configuration and builds the selected suites. With
// no names every enabled suite is built; named suites are built even when
// disabled.
func (o *globalOptions) buildSuites(ctx context.Context, names []string) (*suite.Suite, config.CollsuiteConfig, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, config.CollsuiteConfig{}, err
	}

	decls := cfg.EnabledSuites()
	if len(names) > 0 {
		decls = nil
		for _, name := range names {
			decl, ok := cfg.FindSuite(name)
			if !ok {
				return nil, cfg, fmt.Errorf("unknown suite '%s'", name)
			}
			decl.Disabled = false
			decls = append(decls, decl)
		}
	}

	root, err := catalog.Default().BuildAll(ctx, rootName, decls)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to build suites: %w", err)
	}
	return root, cfg, nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "collsuite version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
