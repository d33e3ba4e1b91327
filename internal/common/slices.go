package common

import (
	"strconv"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// JoinInts formats each value in base 10 and joins them with sep.
func JoinInts[S ~[]E, E ~int](s S, sep string) string {
	var b strings.Builder

	for i, v := range s {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(strconv.Itoa(int(v)))
	}

	return b.String()
}

// Bracketed renders each value as "[v]", e.g. [2][2][4].
func Bracketed[S ~[]E, E ~int](s S) string {
	var b strings.Builder

	for _, v := range s {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(int(v)))
		b.WriteByte(']')
	}

	return b.String()
}
