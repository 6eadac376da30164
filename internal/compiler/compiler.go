// Package compiler is the single entry point to the bed pipeline:
// lexer, parser, builder, validator and canonicalizer run in sequence and
// their findings come back as one Result.
//
// A Compiler is immutable after New and holds no state between calls, so
// one instance may be shared by any number of goroutines.
package compiler

import (
	"context"
	"runtime/debug"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/builder"
	"github.com/specialistvlad/bedc/internal/canonical"
	"github.com/specialistvlad/bedc/internal/ctxlog"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/lexer"
	"github.com/specialistvlad/bedc/internal/parser"
	"github.com/specialistvlad/bedc/internal/validator"
)

// DefaultMaxSourceBytes bounds the size of a single source file.
const DefaultMaxSourceBytes = 1 << 20

// Compiler runs the bed pipeline with a fixed set of options.
type Compiler struct {
	maxSourceBytes int
	strict         bool
	strictUnits    bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithMaxSourceBytes rejects sources larger than n bytes. Zero or a
// negative n disables the limit.
func WithMaxSourceBytes(n int) Option {
	return func(c *Compiler) { c.maxSourceBytes = n }
}

// WithStrict makes unknown sections and properties errors instead of
// warnings.
func WithStrict(strict bool) Option {
	return func(c *Compiler) { c.strict = strict }
}

// WithStrictUnits makes unknown unit symbols and dimension mismatches
// errors instead of warnings.
func WithStrictUnits(strict bool) Option {
	return func(c *Compiler) { c.strictUnits = strict }
}

// New creates a Compiler. Without options it is lenient and accepts sources
// up to DefaultMaxSourceBytes.
func New(opts ...Option) *Compiler {
	c := &Compiler{maxSourceBytes: DefaultMaxSourceBytes}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile runs the whole pipeline on src. It never panics on malformed
// input; every failure is reported through Result.Errors.
func (c *Compiler) Compile(ctx context.Context, filename string, src []byte) (res *Result) {
	logger := ctxlog.FromContext(ctx).With("file", filename)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Compiler panicked.", "panic", r, "stack", string(debug.Stack()))
			res = &Result{Errors: diag.Diagnostics{diag.Internal("internal compiler error: %v", r)}}
		}
	}()

	res = &Result{}
	if c.maxSourceBytes > 0 && len(src) > c.maxSourceBytes {
		rng := hcl.Range{Filename: filename, Start: hcl.InitialPos, End: hcl.InitialPos}
		res.Errors = diag.Diagnostics{diag.Lex(rng, "source is %d bytes, larger than the %d byte limit", len(src), c.maxSourceBytes)}
		logger.Debug("Source rejected by size guard.", "bytes", len(src), "limit", c.maxSourceBytes)
		return res
	}

	tokens, diags := lexer.Tokenize(filename, src)
	if res.absorb(diags) {
		logger.Debug("Lexing failed.")
		return res
	}
	logger.Debug("Lexed source.", "tokens", len(tokens))

	file, diags := parser.Parse(tokens, parser.Options{Strict: c.strict})
	if res.absorb(diags) {
		logger.Debug("Parsing failed.", "errors", len(res.Errors))
		return res
	}
	logger.Debug("Parsed source.", "sections", len(file.Sections))

	draft := builder.Build(ctx, file, builder.Options{Strict: c.strict, StrictUnits: c.strictUnits})
	doc, diags := validator.Validate(ctx, draft)
	if res.absorb(diags) || doc == nil {
		logger.Debug("Validation failed.", "errors", len(res.Errors))
		return res
	}

	canonicalBytes, hash, err := canonical.Canonicalize(doc)
	if err != nil {
		res.Errors = append(res.Errors, diag.Internal("%s", err))
		return res
	}

	res.Document = doc
	res.Canonical = canonicalBytes
	res.Hash = hash
	logger.Debug("Compiled.", "hash", hash, "warnings", len(res.Warnings))
	return res
}

// Compile runs src through a default Compiler.
func Compile(ctx context.Context, filename string, src []byte) *Result {
	return New().Compile(ctx, filename, src)
}
