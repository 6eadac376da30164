package diag

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Kind classifies a diagnostic into one of the compiler's error tiers.
type Kind string

const (
	// KindLex marks a malformed token or comment. Fatal.
	KindLex Kind = "lex"
	// KindParse marks a grammar violation. Fatal.
	KindParse Kind = "parse"
	// KindValidation marks a semantic problem in an otherwise well-formed document. Fatal.
	KindValidation Kind = "validation"
	// KindWarning is advisory and never blocks a successful compile.
	KindWarning Kind = "warning"
	// KindInternal marks a compiler bug surfaced as data instead of a panic.
	KindInternal Kind = "internal"
)

// IsError reports whether diagnostics of this kind block a successful compile.
func (k Kind) IsError() bool {
	return k != KindWarning
}

// Diagnostic is a single structured problem report.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Section string `json:"section,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	// Range is the zero value when the problem has no source location,
	// e.g. a required field that was never written.
	Range hcl.Range `json:"-"`
}

// HasRange reports whether the diagnostic points at source text.
func (d Diagnostic) HasRange() bool {
	return d.Range.Start.Line > 0
}

// Error renders the diagnostic on a single line:
//
//	bed.bed:3,5: validation: bed.wall_thickness: must be less than diameter/2
func (d Diagnostic) Error() string {
	var sb strings.Builder
	if d.HasRange() {
		fmt.Fprintf(&sb, "%s:%d,%d: ", d.Range.Filename, d.Range.Start.Line, d.Range.Start.Column)
	}
	sb.WriteString(string(d.Kind))
	sb.WriteString(": ")
	switch {
	case d.Path != "":
		sb.WriteString(d.Path)
		sb.WriteString(": ")
	case d.Section != "":
		fmt.Fprintf(&sb, "in section %q: ", d.Section)
	}
	sb.WriteString(d.Message)
	return sb.String()
}

// HCL converts the diagnostic into its hcl equivalent for rendering.
func (d Diagnostic) HCL() *hcl.Diagnostic {
	severity := hcl.DiagError
	if !d.Kind.IsError() {
		severity = hcl.DiagWarning
	}

	summary := d.Message
	if d.Path != "" {
		summary = d.Path + ": " + d.Message
	}

	out := &hcl.Diagnostic{
		Severity: severity,
		Summary:  summary,
		Detail:   detailFor(d),
		Extra:    d.Kind,
	}
	if d.HasRange() {
		rng := d.Range
		out.Subject = &rng
	}
	return out
}

func detailFor(d Diagnostic) string {
	switch d.Kind {
	case KindLex:
		return "The source text could not be tokenized."
	case KindParse:
		if d.Section != "" {
			return fmt.Sprintf("Syntax error in section %q.", d.Section)
		}
		return "Syntax error."
	case KindValidation:
		return "The document is well-formed but violates a semantic rule."
	case KindInternal:
		return "This is a bug in the compiler."
	default:
		return ""
	}
}

// Lex builds a lexer diagnostic.
func Lex(rng hcl.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindLex, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Parse builds a parser diagnostic attributed to a section.
func Parse(section string, rng hcl.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindParse, Section: section, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Validation builds a semantic diagnostic for a field path.
func Validation(path string, rng hcl.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindValidation, Path: path, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Warning builds an advisory diagnostic.
func Warning(path string, rng hcl.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindWarning, Path: path, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Internal builds a diagnostic for a compiler bug.
func Internal(format string, args ...any) Diagnostic {
	return Diagnostic{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
