package table

import (
	"fmt"
	"strings"

	"gentable/internal/common"
)

// LeafFormatter spells the reference stored in one table cell.
// The emitter appends the trailing comma itself.
type LeafFormatter interface {
	FormatLeaf(name string, coord []int) string
}

// LeafFormatterFunc adapts a plain function to LeafFormatter.
type LeafFormatterFunc func(name string, coord []int) string

// FormatLeaf implements LeafFormatter.
func (f LeafFormatterFunc) FormatLeaf(name string, coord []int) string {
	return f(name, coord)
}

//go:generate go tool stringer -type=Style -linecomment -output=style_string.go

// Style selects one of the built-in leaf formatters.
type Style int

const (
	// StyleCpp references a template instantiation: &T<0, 1>.
	StyleCpp Style = iota // cpp
	// StyleC references a mangled plain symbol: &T_0_1.
	StyleC // c
)

var styles = []Style{StyleCpp, StyleC}

// ParseStyle parses a style name, case-insensitively.
func ParseStyle(s string) (Style, error) {
	for _, style := range styles {
		if strings.EqualFold(s, style.String()) {
			return style, nil
		}
	}

	return 0, fmt.Errorf("unknown leaf style %q (want cpp or c)", s)
}

// Formatter returns the LeafFormatter for the style. It panics on a Style
// not returned by ParseStyle.
func (s Style) Formatter() LeafFormatter {
	switch s {
	case StyleCpp:
		return LeafFormatterFunc(cppTemplateRef)
	case StyleC:
		return LeafFormatterFunc(cSymbolRef)
	default:
		panic("table: unknown leaf style " + s.String())
	}
}

func cppTemplateRef(name string, coord []int) string {
	return "&" + name + "<" + common.JoinInts(coord, ", ") + ">"
}

func cSymbolRef(name string, coord []int) string {
	return "&" + name + "_" + common.JoinInts(coord, "_")
}
