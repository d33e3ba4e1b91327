package definition

import (
	"fmt"

	"gentable/internal/common"
	"gentable/internal/diagnostic"
	"gentable/internal/enumerate"
)

const (
	// MaxBits bounds a single param's bit width.
	MaxBits = 16
	// LargeTableEntries is the entry count above which a warning is raised.
	LargeTableEntries = 1 << 12
	// MaxTableEntries is the largest table that can be generated.
	MaxTableEntries = 1 << 20
)

// Validate checks a definition file for problems that would make generation
// fail or produce an unusable table. It reports every problem found.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("definitions_is_nil", "definition file is nil", "", "")
		return res
	}

	if len(f.Tables) == 0 {
		res.AddWarning("no_tables", "no tables defined", "", "tables")
		return res
	}

	seenTables := map[string]int{}

	for i := range f.Tables {
		t := &f.Tables[i]
		path := fmt.Sprintf("tables[%d]", i)

		switch {
		case t.Name == "":
			res.AddError("missing_name", "table name is required", "", path+".name")
		case !common.IsIdentifier(t.Name):
			res.AddError("invalid_name", fmt.Sprintf("table name %q is not an identifier", t.Name), t.Name, path+".name")
		default:
			if first, ok := seenTables[t.Name]; ok {
				res.AddError("duplicate_table",
					fmt.Sprintf("duplicate table %q (first defined at tables[%d])", t.Name, first), t.Name, path+".name")
			} else {
				seenTables[t.Name] = i
			}
		}

		validateParams(res, t, path)
	}

	return res
}

func validateParams(res *diagnostic.Diagnostics, t *Table, path string) {
	if len(t.Params) == 0 {
		res.AddError("empty_params", "table needs at least one param", t.Name, path+".params")
		return
	}

	before := len(res.Errors)
	seenParams := map[string]struct{}{}

	for j, p := range t.Params {
		ppath := fmt.Sprintf("%s.params[%d]", path, j)

		if p.Name != "" {
			if _, ok := seenParams[p.Name]; ok {
				res.AddWarning("duplicate_param", fmt.Sprintf("param %q listed more than once", p.Name), t.Name, ppath+".name")
			}

			seenParams[p.Name] = struct{}{}
		}

		switch {
		case p.Bits != nil && p.Values != nil:
			res.AddError("conflicting_cardinality", "set either bits or values, not both", t.Name, ppath)
		case p.Bits == nil && p.Values == nil:
			res.AddError("missing_cardinality", "one of bits or values is required", t.Name, ppath)
		case p.Bits != nil && (*p.Bits < 0 || *p.Bits > MaxBits):
			res.AddError("invalid_bits", fmt.Sprintf("bits must be within [0, %d], got %d", MaxBits, *p.Bits), t.Name, ppath+".bits")
		case p.Values != nil && *p.Values < 1:
			res.AddError("invalid_values", fmt.Sprintf("values must be >= 1, got %d", *p.Values), t.Name, ppath+".values")
		}
	}

	if len(res.Errors) > before {
		return
	}

	dims := t.Dimensions()
	if err := enumerate.Validate(dims); err != nil {
		res.AddError("invalid_dimensions", err.Error(), t.Name, path+".params")
		return
	}

	switch n := enumerate.Count(dims); {
	case n > MaxTableEntries:
		res.AddError("table_too_large",
			fmt.Sprintf("table has %d entries, limit is %d", n, MaxTableEntries), t.Name, path+".params")
	case n > LargeTableEntries:
		res.AddWarning("large_table", fmt.Sprintf("table has %d entries", n), t.Name, path)
	}
}
