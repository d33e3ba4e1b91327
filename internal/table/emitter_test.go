package table

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentable/internal/diagnostic"
	"gentable/internal/enumerate"
)

var leafRe = regexp.MustCompile(`&\w+<([0-9, ]*)>,`)

// leaves extracts the coordinate tuples of every leaf in emission order.
func leaves(t *testing.T, out string) [][]int {
	t.Helper()

	var res [][]int
	for _, m := range leafRe.FindAllStringSubmatch(out, -1) {
		var coord []int
		for _, part := range strings.Split(m[1], ", ") {
			v, err := strconv.Atoi(part)
			require.NoError(t, err)

			coord = append(coord, v)
		}

		res = append(res, coord)
	}

	return res
}

// maxDepth returns the deepest brace nesting and fails on unbalanced braces.
func maxDepth(t *testing.T, out string) int {
	t.Helper()

	depth, deepest := 0, 0
	for _, r := range out {
		switch r {
		case '{':
			depth++
			deepest = max(deepest, depth)
		case '}':
			depth--
			require.GreaterOrEqual(t, depth, 0, "unbalanced close brace")
		}
	}

	require.Zero(t, depth, "unbalanced braces")

	return deepest
}

func TestGenerate_OneDimension(t *testing.T) {
	out, err := Generate("T", enumerate.Dims{2})
	require.NoError(t, err)

	want := `T_fp T_table[2] =
    {
        &T<0>,
        &T<1>,
    }
;`
	assert.Equal(t, want, out)
}

func TestGenerate_TwoByTwo(t *testing.T) {
	out, err := Generate("T", enumerate.Dims{2, 2})
	require.NoError(t, err)

	want := `T_fp T_table[2][2] =
    {
        {
            &T<0, 0>,
            &T<0, 1>,
        },
        {
            &T<1, 0>,
            &T<1, 1>,
        },
    }
;`
	assert.Equal(t, want, out)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, leaves(t, out))
}

func TestGenerate_Degenerate(t *testing.T) {
	out, err := Generate("T", enumerate.Dims{1, 1})
	require.NoError(t, err)

	want := `T_fp T_table[1][1] =
    {
        {
            &T<0, 0>,
        },
    }
;`
	assert.Equal(t, want, out)

	out, err = Generate("T", enumerate.Dims{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 0, 0}}, leaves(t, out))
	assert.Equal(t, 4, maxDepth(t, out))
}

func TestGenerate_ColorCombiner(t *testing.T) {
	out, err := Generate("ColorCombiner", enumerate.Dims{2, 2, 4})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "ColorCombiner_fp ColorCombiner_table[2][2][4] =\n"))
	assert.True(t, strings.HasSuffix(out, "\n    }\n;"))
	assert.Equal(t, 3, maxDepth(t, out))

	got := leaves(t, out)
	require.Len(t, got, 16)
	assert.Equal(t, []int{0, 0, 0}, got[0])
	assert.Equal(t, []int{0, 0, 3}, got[3])
	assert.Equal(t, []int{0, 1, 0}, got[4])
	assert.Equal(t, []int{1, 1, 3}, got[15])
}

func TestGenerate_Properties(t *testing.T) {
	t.Parallel()

	cases := []enumerate.Dims{
		{3},
		{2, 3},
		{3, 1, 2},
		{2, 2, 2, 2, 2, 4, 2},
		{2, 2, 2, 2, 2, 4},
		{2, 2, 8, 8},
		{2, 2, 2, 2, 8},
	}

	for _, dims := range cases {
		t.Run(dims.String(), func(t *testing.T) {
			t.Parallel()

			out, err := Generate("Stage", dims)
			require.NoError(t, err)

			// Leaf order must match row-major enumeration exactly.
			var want [][]int
			for c := range enumerate.All(dims) {
				want = append(want, c)
			}

			got := leaves(t, out)
			assert.Len(t, got, enumerate.Count(dims))
			assert.Equal(t, want, got)
			assert.Equal(t, len(dims), maxDepth(t, out))

			again, err := Generate("Stage", dims)
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestGenerate_LeavesAtMaxDepth(t *testing.T) {
	out, err := Generate("T", enumerate.Dims{2, 3, 2})
	require.NoError(t, err)

	depth := 0
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "{":
			depth++
		case strings.HasPrefix(trimmed, "}"):
			depth--
		case strings.HasPrefix(trimmed, "&"):
			assert.Equal(t, 3, depth, "leaf %q not at max depth", trimmed)
			assert.Equal(t, strings.Repeat(DefaultIndent, 4), line[:len(line)-len(trimmed)])
		}
	}
}

func TestGenerate_Preconditions(t *testing.T) {
	tests := []struct {
		name  string
		table string
		dims  enumerate.Dims
		code  string
		path  string
	}{
		{"empty dims", "T", nil, enumerate.CodeEmptyDimensions, "dimensions"},
		{"zero cardinality", "T", enumerate.Dims{2, 0, 4}, enumerate.CodeInvalidDimension, "dimensions[1]"},
		{"negative cardinality", "T", enumerate.Dims{-2}, enumerate.CodeInvalidDimension, "dimensions[0]"},
		{"empty name", "", enumerate.Dims{2}, CodeInvalidName, "name"},
		{"bad name", "Pixel Flush", enumerate.Dims{2}, CodeInvalidName, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(tt.table, tt.dims)
			require.Error(t, err)
			assert.Empty(t, out)

			var de *diagnostic.Error
			require.True(t, errors.As(err, &de))
			require.NotEmpty(t, de.Diagnostics.Errors)
			assert.Equal(t, tt.code, de.Diagnostics.Errors[0].Code)
			assert.Equal(t, tt.path, de.Diagnostics.Errors[0].Path)
			assert.Equal(t, tt.table, de.Diagnostics.Errors[0].Table)
		})
	}
}

func TestEmitter_Options(t *testing.T) {
	t.Run("c style", func(t *testing.T) {
		out, err := Emitter{Leaf: StyleC.Formatter()}.Generate("T", enumerate.Dims{2, 2})
		require.NoError(t, err)
		assert.Contains(t, out, "\n            &T_0_1,\n")
		assert.Contains(t, out, "\n            &T_1_1,\n")
		assert.NotContains(t, out, "<")
	})

	t.Run("tab indent", func(t *testing.T) {
		out, err := Emitter{Indent: "\t"}.Generate("T", enumerate.Dims{2})
		require.NoError(t, err)
		assert.Equal(t, "T_fp T_table[2] =\n\t{\n\t\t&T<0>,\n\t\t&T<1>,\n\t}\n;", out)
	})

	t.Run("custom formatter", func(t *testing.T) {
		leaf := LeafFormatterFunc(func(name string, coord []int) string {
			return name + "Impl" + strconv.Itoa(len(coord))
		})

		out, err := Emitter{Leaf: leaf}.Generate("T", enumerate.Dims{1})
		require.NoError(t, err)
		assert.Contains(t, out, "TImpl1,")
	})
}

func TestStyle(t *testing.T) {
	s, err := ParseStyle("CPP")
	require.NoError(t, err)
	assert.Equal(t, StyleCpp, s)

	s, err = ParseStyle("c")
	require.NoError(t, err)
	assert.Equal(t, StyleC, s)
	assert.Equal(t, "c", s.String())

	_, err = ParseStyle("rust")
	require.Error(t, err)

	assert.Equal(t, "cpp", StyleCpp.String())
	assert.Equal(t, "Style(9)", Style(9).String())

	_, err = ParseStyle("Style(9)")
	require.Error(t, err)
}

func TestStyle_FormatterRejectsUnknown(t *testing.T) {
	assert.PanicsWithValue(t, "table: unknown leaf style Style(9)", func() {
		Style(9).Formatter()
	})
	assert.PanicsWithValue(t, "table: unknown leaf style Style(-1)", func() {
		Style(-1).Formatter()
	})

	assert.Equal(t, "&T<0, 1>", StyleCpp.Formatter().FormatLeaf("T", []int{0, 1}))
	assert.Equal(t, "&T_0_1", StyleC.Formatter().FormatLeaf("T", []int{0, 1}))
}
