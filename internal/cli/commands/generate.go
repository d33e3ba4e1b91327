package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"gentable/internal/cli/config"
	"gentable/internal/gen"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Emit the function-pointer tables",
		Long: `Emit one C++ table declaration per definition, in definition order.

Each table <Name> is declared as <Name>_fp <Name>_table[d0][d1]... and every cell
references the instantiation &<Name><i0, i1, ...> of its coordinate.`,
		Example: `  # Built-in pixel pipeline tables to stdout
  gentable generate

  # Only two tables, into a header
  gentable generate --table ColorCombiner --table BlendingUnit -o refsw_tables.h

  # Custom definitions
  gentable generate -d tables.yaml --comments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunGenerate(cmd)
		},
	}
}

// RunGenerate loads, renders and writes the configured tables.
func RunGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	f, err := loadDefinitions(cfg, logger)
	if err != nil {
		return err
	}

	tables, err := selectTables(f, cfg.Tables)
	if err != nil {
		return err
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Indent = cfg.Indent
	genCfg.Style = cfg.LeafStyle()
	genCfg.Comments = cfg.Comments
	genCfg.Concurrency = cfg.Concurrency
	genCfg.Logger = logger

	if cfg.Header {
		genCfg.Header = config.GeneratedHeader
	}

	g := gen.NewGenerator(genCfg)

	blocks, err := g.Generate(ctx, tables)
	if err != nil {
		return err
	}

	if err := gen.WriteOutput(cfg.Out, g.Join(blocks), cmd.OutOrStdout()); err != nil {
		return err
	}

	entries := 0
	for _, b := range blocks {
		entries += b.Entries
	}

	logger.Info("generated tables",
		slog.Int("tables", len(blocks)),
		slog.Int("entries", entries),
		slog.String("out", cfg.Out))

	return nil
}
