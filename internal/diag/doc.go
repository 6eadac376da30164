// Package diag defines the structured diagnostics shared by every compiler
// stage. A diagnostic has a kind (lex, parse, validation, warning), an
// optional section name or field path, a message and an optional source
// range expressed as an hcl.Range.
//
// Stages return a Diagnostics value rather than writing into shared state,
// so the whole pipeline stays a pure function of its input. Rendering is
// delegated to hcl's diagnostic writers through the HCL conversion helpers.
package diag
