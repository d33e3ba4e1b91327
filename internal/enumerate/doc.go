// Package enumerate walks the Cartesian product of a list of small integer
// ranges in row-major order.
//
// The producer is independent of any text formatting: callers get plain
// coordinate tuples and decide how to render them.
package enumerate
