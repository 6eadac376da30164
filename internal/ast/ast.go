// Package ast defines the parse tree produced by the parser: a file is a
// list of sections, a section a list of properties, and every property
// carries exactly one value whose Kind selects the populated field.
package ast

import (
	"github.com/hashicorp/hcl/v2"
)

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	NumberValue ValueKind = iota + 1
	StringValue
	BoolValue
	ListValue
)

func (k ValueKind) String() string {
	switch k {
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case BoolValue:
		return "boolean"
	case ListValue:
		return "list"
	default:
		return "invalid"
	}
}

// File is the root of a parse tree.
type File struct {
	Filename string
	Sections []*Section
}

// Section is a `name { ... }` block.
type Section struct {
	Name       string
	NameRange  hcl.Range
	Properties []*Property
	Range      hcl.Range
	// Known is false for section names outside the recognized set.
	Known bool
}

// Property is a `name = value;` assignment.
type Property struct {
	Name      string
	NameRange hcl.Range
	Value     Value
}

// Value is the right-hand side of a property.
type Value struct {
	Kind ValueKind

	// Number holds the literal text of a NumberValue, Unit its optional
	// unit symbol.
	Number    string
	Unit      string
	UnitRange hcl.Range

	Str  string
	Bool bool
	List []string

	Range hcl.Range
}

// HasUnit reports whether a number literal carried a unit symbol.
func (v Value) HasUnit() bool {
	return v.Kind == NumberValue && v.Unit != ""
}
