// Package diagnostic provides structured errors and warnings for table
// definitions and emitter preconditions.
//
// Every diagnostic carries a stable code and the path of the offending input
// (for example "tables[1].params[2].bits" or "dimensions[0]"), so a rejected
// call can be traced back to the value that caused it.
package diagnostic
