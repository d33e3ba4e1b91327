package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gentable/internal/cli/config"
	"gentable/internal/enumerate"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List table definitions",
		Long:  `List every table with its dimensions, entry count and parameters.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
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

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Dimensions", "Entries", "Params"})

	total := 0
	for _, tbl := range tables {
		dims := tbl.Dimensions()
		n := enumerate.Count(dims)
		total += n

		t.AppendRow(table.Row{tbl.Name, dims.String(), n, strings.Join(tbl.ParamNames(), ", ")})
	}

	t.AppendFooter(table.Row{"", "", total, ""})
	t.Render()

	return nil
}
