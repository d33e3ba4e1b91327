// Package cli provides the command-line interface for gentable.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gentable/internal/cli/commands"
	"gentable/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command. Run without a subcommand
// it behaves like "generate".
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gentable",
		Short: "Generate pixel pipeline function-pointer tables",
		Long: `gentable emits statically dimensioned C++ tables of function-template
specializations for the reference rasterizer's pixel pipeline stages.

Every table enumerates the Cartesian product of its parameters in row-major
order, the last parameter varying fastest.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg.Verbose)
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", slog.String("path", cfg.ConfigFile))
			}

			cmd.SetContext(config.WithContext(cmd.Context(), cfg, logger))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunGenerate(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./gentable.yaml)")
	pf.StringP("definitions", "d", "", "YAML table definitions (default: built-in tables)")
	pf.StringSlice("table", nil, "only emit the named table (repeatable)")
	pf.StringP("out", "o", config.DefaultOut, "output file, - for stdout")
	pf.String("indent", config.DefaultIndent, "indentation per nesting level")
	pf.String("style", config.DefaultStyle, "leaf reference style (cpp|c)")
	pf.Bool("comments", false, "prefix each table with a comment naming its index axes")
	pf.Bool("header", false, "emit a generated-code header line")
	pf.Int("concurrency", 0, "tables rendered in parallel (0 = GOMAXPROCS)")
	pf.BoolP("verbose", "v", false, "verbose logging")

	_ = rootCmd.RegisterFlagCompletionFunc("style", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"cpp", "c"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// newLogger returns a text logger on the command's stderr so that it never
// mixes with generated output.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
