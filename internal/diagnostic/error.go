package diagnostic

import "strings"

// Error is a precondition violation carrying the diagnostics that caused it.
// Use errors.As to recover the individual diagnostics.
type Error struct {
	Diagnostics Diagnostics
}

// New returns an *Error holding a single error diagnostic.
func New(code, message, table, path string) *Error {
	e := &Error{}
	e.Diagnostics.AddError(code, message, table, path)

	return e
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Diagnostics.Errors))
	for _, d := range e.Diagnostics.Errors {
		parts = append(parts, d.String())
	}

	return strings.Join(parts, "; ")
}

// Codes returns the codes of all error diagnostics, in order.
func (e *Error) Codes() []string {
	codes := make([]string, 0, len(e.Diagnostics.Errors))
	for _, d := range e.Diagnostics.Errors {
		codes = append(codes, d.Code)
	}

	return codes
}
