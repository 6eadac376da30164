package builder

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/model"
)

// Draft is a document under construction together with what the builder
// learned about the source while filling it in.
type Draft struct {
	// Document holds defaults overwritten by every successfully coerced
	// property.
	Document *model.Document

	// Filename is the source the draft was built from.
	Filename string

	// Issues are problems that will fail validation.
	Issues diag.Diagnostics
	// Warnings are advisory.
	Warnings diag.Diagnostics

	// SizingModes lists the particle sizing paths in source order, one
	// entry per assignment.
	SizingModes []string

	present map[string]hcl.Range
	invalid map[string]bool
}

func newDraft(filename string) *Draft {
	return &Draft{
		Document: model.NewDocument(),
		Filename: filename,
		present:  make(map[string]hcl.Range),
		invalid:  make(map[string]bool),
	}
}

// Has reports whether a section ("bed") or field ("bed.diameter") was set by
// the source.
func (d *Draft) Has(path string) bool {
	_, ok := d.present[path]
	return ok
}

// Range returns the source range of a set section or field, or the zero
// range when the path was never set.
func (d *Draft) Range(path string) hcl.Range {
	return d.present[path]
}

// Invalid reports whether the source assigned a value to path that could
// not be coerced. Such fields keep their default and are already covered by
// an issue.
func (d *Draft) Invalid(path string) bool {
	return d.invalid[path]
}

func (d *Draft) issue(path string, rng hcl.Range, format string, args ...any) {
	d.Issues = append(d.Issues, diag.Validation(path, rng, format, args...))
}

func (d *Draft) warn(path string, rng hcl.Range, format string, args ...any) {
	d.Warnings = append(d.Warnings, diag.Warning(path, rng, format, args...))
}
