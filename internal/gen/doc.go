// Package gen drives table generation for a set of definitions.
//
// Each table is rendered independently by package table; the generator runs
// them concurrently, returns the blocks in definition order and joins them
// the way the reference driver printed them: one block per line group, each
// followed by a newline.
package gen
