package definition

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the pixel pipeline tables of the reference rasterizer:
// PixelFlush_tsp, TextureFilter, ColorCombiner, BlendingUnit and TextureFetch,
// in that order. Every call returns a fresh copy.
func Builtin() *File {
	f, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("builtin definitions: %v", err))
	}

	return f
}
