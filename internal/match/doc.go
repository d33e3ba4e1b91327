// Package match suggests close spellings for mistyped identifiers such as
// table names.
package match
