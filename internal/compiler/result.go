package compiler

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/bedc/internal/canonical"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/model"
)

// ErrNotCompiled is returned when an artifact is requested from a failed
// compilation.
var ErrNotCompiled = errors.New("compilation did not succeed")

// Result is the outcome of one compilation. Document, Hash and Canonical are
// set only when Errors is empty. Warnings are reported either way.
type Result struct {
	Document  *model.Document
	Hash      string
	Canonical []byte
	Errors    diag.Diagnostics
	Warnings  diag.Diagnostics
}

// OK reports whether compilation produced a document.
func (r *Result) OK() bool {
	return len(r.Errors) == 0 && r.Document != nil
}

// Diagnostics returns errors followed by warnings.
func (r *Result) Diagnostics() diag.Diagnostics {
	out := make(diag.Diagnostics, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Artifact renders the JSON artifact for a successful compilation.
func (r *Result) Artifact() ([]byte, error) {
	if !r.OK() {
		return nil, ErrNotCompiled
	}
	out, err := canonical.Artifact(r.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to render artifact: %w", err)
	}
	return out, nil
}

// absorb splits diags into the result and reports whether any were errors.
func (r *Result) absorb(diags diag.Diagnostics) bool {
	r.Errors = append(r.Errors, diags.Errors()...)
	r.Warnings = append(r.Warnings, diags.Warnings()...)
	return diags.HasErrors()
}

// Err returns an error wrapping the result's errors, or nil on success.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("compilation failed with %d error(s): %w", len(r.Errors), r.Errors)
}
