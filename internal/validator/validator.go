// Package validator enforces the semantic rules of a bed document on a
// builder draft. Every check runs on every call; the complete problem set is
// reported at once.
package validator

import (
	"context"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/builder"
	"github.com/specialistvlad/bedc/internal/ctxlog"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/model"
	"github.com/specialistvlad/bedc/internal/schema"
	"github.com/specialistvlad/bedc/internal/units"
)

type validator struct {
	draft *builder.Draft
	doc   *model.Document
	diags diag.Diagnostics
	// failed holds paths whose own value check already reported an error,
	// so cross-field rules do not pile on.
	failed map[string]bool
}

// Validate checks the draft and returns a read-only copy of its document
// when no errors were found. The diagnostics always include the draft's own
// issues and warnings, followed by the validator's findings.
func Validate(ctx context.Context, draft *builder.Draft) (*model.Document, diag.Diagnostics) {
	logger := ctxlog.FromContext(ctx)

	v := &validator{
		draft:  draft,
		doc:    draft.Document,
		failed: make(map[string]bool),
	}
	v.diags = append(v.diags, draft.Issues...)
	v.diags = append(v.diags, draft.Warnings...)

	v.checkRequired()
	v.checkSizingMode()
	v.checkValues()
	v.checkCrossField()
	v.checkFormats()

	if v.diags.HasErrors() {
		logger.Debug("Validation failed.", "errors", len(v.diags.Errors()), "warnings", len(v.diags.Warnings()))
		return nil, v.diags
	}
	logger.Debug("Validation passed.", "warnings", len(v.diags.Warnings()))
	return v.doc.Clone(), v.diags
}

func (v *validator) errorf(path string, format string, args ...any) {
	v.failed[path] = true
	v.diags = append(v.diags, diag.Validation(path, v.rangeOf(path), format, args...))
}

func (v *validator) warnf(path string, format string, args ...any) {
	v.diags = append(v.diags, diag.Warning(path, v.rangeOf(path), format, args...))
}

// rangeOf points at the value of a field, falling back to its section name.
func (v *validator) rangeOf(path string) hcl.Range {
	if v.draft.Has(path) {
		return v.draft.Range(path)
	}
	section, _, _ := strings.Cut(path, ".")
	return v.draft.Range(section)
}

// usable reports whether a field holds a value the user actually wrote and
// that passed its own checks.
func (v *validator) usable(path string) bool {
	return v.draft.Has(path) && !v.failed[path]
}

// sectionPresent reports whether a section's fields should be checked:
// written in the source, or filled entirely from defaults.
func (v *validator) sectionPresent(s *schema.Section) bool {
	if v.draft.Has(s.Name) {
		return true
	}
	if s.Required {
		return false
	}
	return s.Name != schema.CFD
}

func (v *validator) checkRequired() {
	for _, section := range schema.Sections() {
		if section.Required && !v.draft.Has(section.Name) {
			v.errorf(section.Name, "required section %q is missing", section.Name)
			continue
		}
		for _, prop := range section.Properties {
			path := prop.Path()
			if prop.Required && !v.draft.Has(path) && !v.draft.Invalid(path) {
				v.errorf(path, "is required")
			}
		}
	}
}

func (v *validator) checkSizingMode() {
	const (
		countPath    = "particles.count"
		porosityPath = "particles.target_porosity"
	)
	if !v.draft.Has(schema.Particles) {
		return
	}
	if v.draft.Invalid(countPath) || v.draft.Invalid(porosityPath) {
		return
	}

	seen := make(map[string]bool)
	var modes []string
	for _, path := range v.draft.SizingModes {
		if !seen[path] {
			seen[path] = true
			modes = append(modes, path)
		}
	}

	switch len(modes) {
	case 0:
		v.errorf(schema.Particles, "exactly one of count or target_porosity must be set, found neither")
	case 1:
	default:
		// Report at whichever was written last; the builder kept that one.
		last := modes[len(modes)-1]
		v.diags = append(v.diags, diag.Validation(last, v.draft.Range(last),
			"count and target_porosity are mutually exclusive, set only one"))
		v.failed[countPath] = true
		v.failed[porosityPath] = true
	}
}

// checkValues runs the per-field checks: finiteness and numeric ranges,
// enum membership and non-empty strings.
func (v *validator) checkValues() {
	for _, section := range schema.Sections() {
		if !v.sectionPresent(section) {
			continue
		}
		for _, prop := range section.Properties {
			path := prop.Path()
			if v.draft.Invalid(path) || v.failed[path] {
				continue
			}
			if prop.Required && !v.draft.Has(path) {
				continue
			}
			v.checkField(prop, v.doc.Field(path))
		}
	}
}

func (v *validator) checkField(prop schema.Property, field any) {
	path := prop.Path()
	r, ok := rules[path]
	if !ok {
		r = finite
	}

	switch p := field.(type) {
	case *float64:
		v.checkFloat(path, r, *p)
	case **float64:
		if *p != nil {
			v.checkFloat(path, r, **p)
		}
	case *int64:
		if reason := r.checkInt(*p); reason != "" {
			v.errorf(path, "%s", reason)
		}
	case **int64:
		if *p != nil {
			if reason := r.checkInt(**p); reason != "" {
				v.errorf(path, "%s", reason)
			}
		}
	case *string:
		v.checkString(prop, *p)
	}
}

func (v *validator) checkFloat(path string, r rule, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		v.errorf(path, "must be a finite number")
		return
	}
	if reason := r.checkFloat(f); reason != "" {
		v.errorf(path, "%s", reason)
	}
}

func (v *validator) checkString(prop schema.Property, s string) {
	path := prop.Path()
	if prop.Type == schema.Enum {
		if !schema.Contains(prop.Values, s) {
			v.errorf(path, "%q is not one of: %s", s, strings.Join(prop.Values, ", "))
		}
		return
	}

	if strings.TrimSpace(s) == "" {
		v.errorf(path, "must not be empty")
		return
	}
	if path == "export.units" && !units.IsLength(s) {
		v.warnf(path, "%q is not a recognized length unit", s)
	}
}

func (v *validator) checkCrossField() {
	if !v.usable("bed.diameter") {
		return
	}
	bed := v.doc.Bed
	half := bed.Diameter / 2

	if v.usable("bed.wall_thickness") && !(bed.WallThickness < half) {
		v.errorf("bed.wall_thickness", "must be less than half the bed diameter (%g m), got %g m", half, bed.WallThickness)
	}
	if v.usable("particles.diameter") && !(v.doc.Particles.Diameter < half) {
		v.errorf("particles.diameter", "must be less than half the bed diameter (%g m), got %g m", half, v.doc.Particles.Diameter)
	}
}

func (v *validator) checkFormats() {
	const path = "export.formats"
	if !v.draft.Has(path) {
		return
	}

	formats := v.doc.Export.Formats
	if len(formats) == 0 {
		v.errorf(path, "must list at least one format")
		return
	}

	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		switch {
		case strings.TrimSpace(f) == "":
			v.errorf(path, "format identifiers must not be empty")
		case seen[f]:
			v.warnf(path, "format %q is listed more than once", f)
		case !schema.Contains(schema.KnownExportFormats, f):
			v.warnf(path, "unrecognized export format %q", f)
		}
		seen[f] = true
	}
}
