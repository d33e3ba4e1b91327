package commands

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gentable/internal/cli/config"
	"gentable/internal/definition"
	"gentable/internal/diagnostic"
	"gentable/internal/match"
)

const builtinSource = "built-in definitions"

// readDefinitions reads the configured definition file, or the built-in
// tables when none is configured. source names where the tables came from.
func readDefinitions(cfg *config.Config, logger *slog.Logger) (f *definition.File, source string, err error) {
	if cfg.Definitions == "" {
		f = definition.Builtin()
		logger.Debug("using built-in definitions", slog.Int("tables", len(f.Tables)))

		return f, builtinSource, nil
	}

	f, err = definition.LoadFile(cfg.Definitions)
	if err != nil {
		return nil, "", err
	}

	logger.Debug("loaded definitions", slog.String("path", cfg.Definitions), slog.Int("tables", len(f.Tables)))

	return f, cfg.Definitions, nil
}

// loadDefinitions reads and validates the configured definitions. Warnings
// are logged; errors fail the load.
func loadDefinitions(cfg *config.Config, logger *slog.Logger) (*definition.File, error) {
	f, _, err := readDefinitions(cfg, logger)
	if err != nil {
		return nil, err
	}

	diags := definition.Validate(f)
	logWarnings(logger, diags)

	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	return f, nil
}

func logWarnings(logger *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, slog.String("code", w.Code), slog.String("table", w.Table), slog.String("path", w.Path))
	}
}

// selectTables returns the tables named in names, keeping definition order.
// An empty names list selects everything.
func selectTables(f *definition.File, names []string) ([]definition.Table, error) {
	if len(names) == 0 {
		return f.Tables, nil
	}

	var unknown []string
	for _, name := range names {
		if _, ok := f.Find(name); ok {
			continue
		}

		if hint := match.Suggest(name, tableNames(f), 1); len(hint) > 0 {
			name += " (did you mean " + hint[0] + "?)"
		}

		unknown = append(unknown, name)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown table(s): %s", strings.Join(unknown, ", "))
	}

	var res []definition.Table
	for _, t := range f.Tables {
		if slices.Contains(names, t.Name) {
			res = append(res, t)
		}
	}

	return res, nil
}

func tableNames(f *definition.File) []string {
	names := make([]string, len(f.Tables))
	for i, t := range f.Tables {
		names[i] = t.Name
	}

	return names
}
