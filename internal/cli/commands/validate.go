package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"gentable/internal/cli/config"
	"gentable/internal/definition"
	"gentable/internal/diagnostic"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check table definitions",
		Long: `Parse and validate the table definitions, printing every error and warning found.
With --table only the named tables are checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	out := cmd.OutOrStdout()

	f, source, err := readDefinitions(cfg, config.GetLogger(ctx))
	if err != nil {
		return err
	}

	tables, err := selectTables(f, cfg.Tables)
	if err != nil {
		return err
	}

	// Diagnostics without a table apply to the whole file and are always shown.
	inScope := func(d diagnostic.Diagnostic) bool {
		return len(cfg.Tables) == 0 || d.Table == "" || slices.Contains(cfg.Tables, d.Table)
	}

	diags := definition.Validate(f)
	errCount := 0

	for _, d := range diags.Errors {
		if inScope(d) {
			errCount++
			_, _ = fmt.Fprintf(out, "error: %s\n", d)
		}
	}

	for _, d := range diags.Warnings {
		if inScope(d) {
			_, _ = fmt.Fprintf(out, "warning: %s\n", d)
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%s: %d error(s)", source, errCount)
	}

	_, _ = fmt.Fprintf(out, "%s: %d table(s) ok\n", source, len(tables))

	return nil
}
