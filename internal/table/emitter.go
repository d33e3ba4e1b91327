package table

import (
	"errors"
	"fmt"
	"strings"

	"gentable/internal/common"
	"gentable/internal/diagnostic"
	"gentable/internal/enumerate"
)

// CodeInvalidName is reported when the table name is not a C identifier.
const CodeInvalidName = "invalid_name"

// DefaultIndent is one nesting step of the emitted initializer.
const DefaultIndent = "    "

// Emitter renders table declarations. The zero value uses DefaultIndent and
// the StyleCpp leaf formatter.
type Emitter struct {
	// Indent is repeated once per nesting level.
	Indent string
	// Leaf spells each cell reference.
	Leaf LeafFormatter
}

// Generate renders the declaration of name over dims with the default
// Emitter.
func Generate(name string, dims enumerate.Dims) (string, error) {
	return Emitter{}.Generate(name, dims)
}

// Generate renders "<name>_fp <name>_table[d0]...[dn] =" followed by the
// nested brace initializer and a terminating ";" line. Lines are separated
// by "\n" with no trailing newline.
//
// Preconditions are checked before any text is produced: name must be a C
// identifier and dims must pass enumerate.Validate. Violations are returned
// as *diagnostic.Error.
func (e Emitter) Generate(name string, dims enumerate.Dims) (string, error) {
	if !common.IsIdentifier(name) {
		return "", diagnostic.New(CodeInvalidName,
			fmt.Sprintf("table name %q is not an identifier", name), name, "name")
	}

	if err := enumerate.Validate(dims); err != nil {
		var de *diagnostic.Error
		if errors.As(err, &de) {
			for i := range de.Diagnostics.Errors {
				de.Diagnostics.Errors[i].Table = name
			}
		}

		return "", err
	}

	w := &writer{
		indent: e.Indent,
		leaf:   e.Leaf,
		depth:  len(dims),
	}
	if w.indent == "" {
		w.indent = DefaultIndent
	}

	if w.leaf == nil {
		w.leaf = StyleCpp.Formatter()
	}

	w.line(0, fmt.Sprintf("%s_fp %s_table%s =", name, name, dims))

	var prev []int
	for coord := range enumerate.All(dims) {
		if prev == nil {
			w.open(0)
		} else {
			k := enumerate.FirstChange(prev, coord)
			w.close(k + 1)
			w.open(k + 1)
		}

		w.line(w.depth+1, w.leaf.FormatLeaf(name, coord)+",")
		prev = coord
	}

	w.close(0)
	w.line(0, ";")

	return w.String(), nil
}

// writer tracks line output for a single table.
type writer struct {
	b      strings.Builder
	indent string
	leaf   LeafFormatter
	depth  int
	lines  int
}

func (w *writer) line(level int, s string) {
	if w.lines > 0 {
		w.b.WriteByte('\n')
	}

	w.lines++

	for range level {
		w.b.WriteString(w.indent)
	}

	w.b.WriteString(s)
}

// open emits opening braces for levels from..depth-1.
func (w *writer) open(from int) {
	for level := from; level < w.depth; level++ {
		w.line(level+1, "{")
	}
}

// close emits closing braces for levels depth-1 down to downTo. Only the
// outermost brace goes without a trailing comma.
func (w *writer) close(downTo int) {
	for level := w.depth - 1; level >= downTo; level-- {
		if level == 0 {
			w.line(level+1, "}")
		} else {
			w.line(level+1, "},")
		}
	}
}

func (w *writer) String() string {
	return w.b.String()
}
