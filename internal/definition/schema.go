package definition

import (
	"strconv"

	"gentable/internal/enumerate"
)

// File represents the root of a YAML table definition file.
type File struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Tables are emitted in the order listed.
	Tables []Table `yaml:"tables"`
}

// Table defines one function-pointer table.
type Table struct {
	// Name of the function template; the table is <Name>_table and its
	// element type <Name>_fp.
	Name string `yaml:"name"`

	// Description is free text kept for listings.
	Description string `yaml:"description,omitempty"`

	// Params are the template parameters, outermost array index first.
	Params []Param `yaml:"params"`
}

// Param is one template parameter and therefore one array dimension.
type Param struct {
	// Name documents which pipeline state selects this index.
	Name string `yaml:"name,omitempty"`

	// Bits is the parameter width; the dimension has 1<<Bits entries.
	Bits *int `yaml:"bits,omitempty"`

	// Values is an explicit cardinality, used instead of Bits.
	Values *int `yaml:"values,omitempty"`
}

// Cardinality returns the number of distinct values of the parameter.
// A param with neither Bits nor Values set has no values.
func (p Param) Cardinality() int {
	switch {
	case p.Values != nil:
		return *p.Values
	case p.Bits != nil:
		return 1 << *p.Bits
	default:
		return 0
	}
}

// Dimensions returns the cardinality of every param in order.
func (t Table) Dimensions() enumerate.Dims {
	dims := make(enumerate.Dims, len(t.Params))
	for i, p := range t.Params {
		dims[i] = p.Cardinality()
	}

	return dims
}

// ParamNames returns the param names in order, substituting "pN" for
// unnamed params.
func (t Table) ParamNames() []string {
	names := make([]string, len(t.Params))
	for i, p := range t.Params {
		if p.Name != "" {
			names[i] = p.Name
		} else {
			names[i] = "p" + strconv.Itoa(i)
		}
	}

	return names
}

// Find returns the table with the given name.
func (f *File) Find(name string) (Table, bool) {
	for _, t := range f.Tables {
		if t.Name == name {
			return t, true
		}
	}

	return Table{}, false
}
