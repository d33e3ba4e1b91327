// Package definition provides the YAML schema, parsing and validation for
// table definitions, plus the built-in pixel pipeline tables.
//
// # Schema Overview
//
//	version: "1"
//	tables:
//	  - name: ColorCombiner
//	    params:
//	      - name: isp.Texture
//	        bits: 1
//	      - name: isp.Offset
//	        bits: 1
//	      - name: tsp.ShadInstr
//	        bits: 2
//
// Each param contributes one array dimension of 1<<bits entries. A param may
// give "values" instead of "bits" for a cardinality that is not a power of
// two, or be written as a bare integer, which is read as a bit width:
//
//	params: [1, 1, 2]
package definition
