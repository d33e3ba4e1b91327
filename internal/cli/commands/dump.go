package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gentable/internal/cli/config"
	"gentable/internal/definition"
	"gentable/internal/gen"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print table definitions as YAML",
		Long: `Print the table definitions in the format accepted by --definitions.
Dumping the built-in tables is the usual starting point for a custom file.`,
		Example: `  gentable dump -o tables.yaml
  gentable generate -d tables.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd)
		},
	}
}

func runDump(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	f, err := loadDefinitions(cfg, config.GetLogger(ctx))
	if err != nil {
		return err
	}

	tables, err := selectTables(f, cfg.Tables)
	if err != nil {
		return err
	}

	data, err := definition.Marshal(&definition.File{Version: f.Version, Tables: tables})
	if err != nil {
		return fmt.Errorf("failed to marshal definitions: %w", err)
	}

	return gen.WriteOutput(cfg.Out, string(data), cmd.OutOrStdout())
}
