package enumerate

import (
	"fmt"
	"math"

	"gentable/internal/common"
	"gentable/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeEmptyDimensions  = "empty_dimensions"
	CodeInvalidDimension = "invalid_dimension"
	CodeTooManyEntries   = "too_many_entries"
)

// Dims is an ordered list of per-axis cardinalities. Dimension 0 is the
// outermost, slowest-varying axis.
type Dims []int

// Validate checks that dims is non-empty, that every cardinality is at least
// one and that the product fits in an int. All offending indices are
// reported, not just the first.
func Validate(dims Dims) error {
	var res diagnostic.Diagnostics

	if len(dims) == 0 {
		res.AddError(CodeEmptyDimensions, "dimension list is empty", "", "dimensions")
		return res.Err()
	}

	for i, d := range dims {
		if d < 1 {
			res.AddError(CodeInvalidDimension,
				fmt.Sprintf("cardinality must be >= 1, got %d", d), "", fmt.Sprintf("dimensions[%d]", i))
		}
	}

	if res.HasErrors() {
		return res.Err()
	}

	total := 1
	for i, d := range dims {
		if total > math.MaxInt/d {
			res.AddError(CodeTooManyEntries, "entry count overflows int", "", fmt.Sprintf("dimensions[%d]", i))
			return res.Err()
		}

		total *= d
	}

	return nil
}

// Count returns the number of coordinates in the product of dims.
// It assumes dims passed Validate.
func Count(dims Dims) int {
	total := 1
	for _, d := range dims {
		total *= d
	}

	return total
}

// String renders dims as array bounds, e.g. [2][2][4].
func (d Dims) String() string {
	return common.Bracketed(d)
}
