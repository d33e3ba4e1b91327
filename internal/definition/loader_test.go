package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentable/internal/enumerate"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
tables:
  - name: ColorCombiner
    description: combine
    params:
      - name: isp.Texture
        bits: 1
      - name: isp.Offset
        bits: 1
      - name: tsp.ShadInstr
        bits: 2
  - name: Fog
    params:
      - name: mode
        values: 3
      - 1
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Tables, 2)

	cc := f.Tables[0]
	assert.Equal(t, "ColorCombiner", cc.Name)
	assert.Equal(t, "combine", cc.Description)
	assert.Equal(t, enumerate.Dims{2, 2, 4}, cc.Dimensions())
	assert.Equal(t, []string{"isp.Texture", "isp.Offset", "tsp.ShadInstr"}, cc.ParamNames())

	fog := f.Tables[1]
	assert.Equal(t, enumerate.Dims{3, 2}, fog.Dimensions())
	assert.Equal(t, []string{"mode", "p1"}, fog.ParamNames())
	require.NotNil(t, fog.Params[1].Bits)
	assert.Nil(t, fog.Params[1].Values)
}

func TestParse_Shorthand(t *testing.T) {
	f, err := Parse([]byte("tables:\n  - name: T\n    params: [1, 1, 3, 3]\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, enumerate.Dims{2, 2, 8, 8}, f.Tables[0].Dimensions())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown top-level key", "tabels: []\n"},
		{"unknown param key", "tables:\n  - name: T\n    params:\n      - bitz: 1\n"},
		{"non-integer shorthand", "tables:\n  - name: T\n    params: [wide]\n"},
		{"param is a list", "tables:\n  - name: T\n    params:\n      - [1]\n"},
		{"malformed", "tables: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Tables)
	assert.Equal(t, "1", f.Version)
}

func TestBuiltin(t *testing.T) {
	f := Builtin()

	want := []struct {
		name string
		dims enumerate.Dims
	}{
		{"PixelFlush_tsp", enumerate.Dims{2, 2, 2, 2, 2, 4, 2}},
		{"TextureFilter", enumerate.Dims{2, 2, 2, 2, 2, 4}},
		{"ColorCombiner", enumerate.Dims{2, 2, 4}},
		{"BlendingUnit", enumerate.Dims{2, 2, 8, 8}},
		{"TextureFetch", enumerate.Dims{2, 2, 2, 2, 8}},
	}

	require.Len(t, f.Tables, len(want))

	for i, w := range want {
		assert.Equal(t, w.name, f.Tables[i].Name)
		assert.Equal(t, w.dims, f.Tables[i].Dimensions(), w.name)
	}

	assert.False(t, Validate(f).HasErrors())

	// Callers may mutate the result freely.
	f.Tables[0].Name = "changed"
	assert.Equal(t, "PixelFlush_tsp", Builtin().Tables[0].Name)
}

func TestFind(t *testing.T) {
	f := Builtin()

	tbl, ok := f.Find("BlendingUnit")
	require.True(t, ok)
	assert.Len(t, tbl.Params, 4)

	_, ok = f.Find("Nope")
	assert.False(t, ok)
}

func TestMarshal_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")

	data, err := Marshal(Builtin())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Builtin(), f)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}
