package diag

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Diagnostics is the accumulator each compiler stage appends to and returns.
// It is a plain value: stages never share one through package state.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic is fatal.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Kind.IsError() {
			return true
		}
	}
	return false
}

// Errors returns the fatal diagnostics in their original order.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind.IsError() {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns the advisory diagnostics in their original order.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if !d.Kind.IsError() {
			out = append(out, d)
		}
	}
	return out
}

// HCL converts the list for use with hcl's diagnostic writers.
func (ds Diagnostics) HCL() hcl.Diagnostics {
	out := make(hcl.Diagnostics, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.HCL())
	}
	return out
}

// Error implements the error interface so a list can travel as a Go error.
func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	default:
		return fmt.Sprintf("%s, and %d other diagnostic(s)", ds[0].Error(), len(ds)-1)
	}
}
