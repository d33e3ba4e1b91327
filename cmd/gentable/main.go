// Package main provides the CLI entrypoint for gentable.
//
// gentable emits the static function-pointer tables of the reference
// rasterizer's pixel pipeline (alpha test, texture filtering, color combining,
// blending, texture fetch):
//
//	go run ./cmd/gentable > refsw_tables.h
package main

import (
	"os"

	"gentable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
