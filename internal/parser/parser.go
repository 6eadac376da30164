// Package parser turns lexer tokens into an ast.File with a hand-written
// recursive-descent parser. The grammar is one level deep:
//
//	document := section*
//	section  := Ident '{' property* '}'
//	property := Ident '=' value ';'
//	value    := Number Unit? | String | Boolean | list
//	list     := '[' (String (',' String)*)? ']'
package parser

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/ast"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/lexer"
	"github.com/specialistvlad/bedc/internal/schema"
)

// Options controls parser strictness.
type Options struct {
	// Strict turns unknown section names into parse errors. By default they
	// are parsed structurally and reported as warnings.
	Strict bool
}

// Parser converts a token stream into a parse tree with diagnostics.
type Parser struct {
	tokens []lexer.Token
	pos    int
	opts   Options
	diags  diag.Diagnostics
}

// Parse builds a parse tree from tokens. Syntax errors are collected rather
// than aborting: after an error the parser skips to the next top-level
// section boundary and carries on, so one call reports every broken
// section. The returned tree is partial whenever errors are present.
func Parse(tokens []lexer.Token, opts Options) (*ast.File, diag.Diagnostics) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		var rng hcl.Range
		if len(tokens) > 0 {
			rng = tokens[len(tokens)-1].Range
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.EOF, Range: rng})
	}

	p := &Parser{tokens: tokens, opts: opts}
	file := &ast.File{Filename: tokens[0].Range.Filename}

	for !p.check(lexer.EOF) {
		if section := p.parseSection(); section != nil {
			file.Sections = append(file.Sections, section)
		}
	}
	return file, p.diags
}

func (p *Parser) peek() lexer.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) lexer.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

// atSectionStart reports whether the next two tokens open a section.
func (p *Parser) atSectionStart() bool {
	return p.check(lexer.Ident) && p.peekN(1).Kind == lexer.LBrace
}

func (p *Parser) errorf(section string, rng hcl.Range, format string, args ...any) {
	p.diags = append(p.diags, diag.Parse(section, rng, format, args...))
}

// parseSection parses `Ident '{' property* '}'`. It returns nil when no
// section name could be read at all.
func (p *Parser) parseSection() *ast.Section {
	nameTok := p.peek()
	if nameTok.Kind != lexer.Ident {
		p.errorf("", nameTok.Range, "expected section name, found %s", nameTok.Describe())
		p.recoverToSection()
		return nil
	}
	p.advance()

	section := &ast.Section{
		Name:      nameTok.Text,
		NameRange: nameTok.Range,
		Range:     nameTok.Range,
		Known:     schema.IsSection(nameTok.Text),
	}
	if !section.Known {
		if p.opts.Strict {
			p.errorf(section.Name, nameTok.Range, "unknown section %q", section.Name)
		} else {
			p.diags = append(p.diags, diag.Warning(section.Name, nameTok.Range,
				"unknown section %q is ignored", section.Name))
		}
	}

	if !p.check(lexer.LBrace) {
		p.errorf(section.Name, p.peek().Range, "expected '{' after section name %q, found %s", section.Name, p.peek().Describe())
		p.recoverInSection()
		return section
	}
	p.advance()

	for {
		tok := p.peek()
		switch {
		case tok.Kind == lexer.RBrace:
			p.advance()
			section.Range = hcl.RangeBetween(nameTok.Range, tok.Range)
			return section

		case tok.Kind == lexer.EOF:
			p.errorf(section.Name, tok.Range, "missing '}' to close section %q", section.Name)
			return section

		case p.atSectionStart() && schema.IsSection(tok.Text):
			p.errorf(section.Name, tok.Range, "missing '}' to close section %q before %q", section.Name, tok.Text)
			return section

		case p.atSectionStart():
			p.errorf(section.Name, tok.Range, "nested blocks are not supported (found %q inside section %q)", tok.Text, section.Name)
			p.advance()
			p.recoverInSection()
			return section

		case tok.Kind == lexer.Ident:
			prop, ok := p.parseProperty(section.Name)
			if !ok {
				p.recoverInSection()
				return section
			}
			section.Properties = append(section.Properties, prop)

		case tok.Kind == lexer.LBrace:
			p.errorf(section.Name, tok.Range, "nested blocks are not supported")
			p.recoverInSection()
			return section

		default:
			p.errorf(section.Name, tok.Range, "expected property name or '}', found %s", tok.Describe())
			p.recoverInSection()
			return section
		}
	}
}

// parseProperty parses `Ident '=' value ';'`.
func (p *Parser) parseProperty(section string) (*ast.Property, bool) {
	nameTok := p.advance()
	prop := &ast.Property{Name: nameTok.Text, NameRange: nameTok.Range}

	if !p.check(lexer.Assign) {
		p.errorf(section, p.peek().Range, "expected '=' after property %q, found %s", prop.Name, p.peek().Describe())
		return nil, false
	}
	p.advance()

	value, ok := p.parseValue(section, prop.Name)
	if !ok {
		return nil, false
	}
	prop.Value = value

	if !p.check(lexer.Semicolon) {
		p.errorf(section, p.peek().Range, "expected ';' after value of %q, found %s", prop.Name, p.peek().Describe())
		return nil, false
	}
	p.advance()
	return prop, true
}

// parseValue parses `Number Unit? | String | Boolean | list`.
func (p *Parser) parseValue(section, propName string) (ast.Value, bool) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.Number:
		p.advance()
		v := ast.Value{Kind: ast.NumberValue, Number: tok.Text, Range: tok.Range}
		if p.check(lexer.Unit) {
			unit := p.advance()
			v.Unit = unit.Text
			v.UnitRange = unit.Range
			v.Range = hcl.RangeBetween(tok.Range, unit.Range)
		}
		return v, true

	case lexer.String:
		p.advance()
		return ast.Value{Kind: ast.StringValue, Str: tok.Text, Range: tok.Range}, true

	case lexer.Bool:
		p.advance()
		return ast.Value{Kind: ast.BoolValue, Bool: tok.Text == "true", Range: tok.Range}, true

	case lexer.LBracket:
		return p.parseList(section)

	default:
		p.errorf(section, tok.Range, "expected a value for %q (number, string, boolean or list), found %s", propName, tok.Describe())
		return ast.Value{}, false
	}
}

// parseList parses `'[' (String (',' String)*)? ']'`.
func (p *Parser) parseList(section string) (ast.Value, bool) {
	open := p.advance()
	v := ast.Value{Kind: ast.ListValue, List: []string{}}

	if p.check(lexer.RBracket) {
		v.Range = hcl.RangeBetween(open.Range, p.advance().Range)
		return v, true
	}

	for {
		elem := p.peek()
		if elem.Kind != lexer.String {
			p.errorf(section, elem.Range, "list elements must be strings, found %s", elem.Describe())
			return ast.Value{}, false
		}
		p.advance()
		v.List = append(v.List, elem.Text)

		switch next := p.peek(); next.Kind {
		case lexer.Comma:
			p.advance()
		case lexer.RBracket:
			p.advance()
			v.Range = hcl.RangeBetween(open.Range, next.Range)
			return v, true
		default:
			p.errorf(section, next.Range, "expected ',' or ']' in list, found %s", next.Describe())
			return ast.Value{}, false
		}
	}
}

// recoverInSection skips to the end of the current section: past its
// closing '}' or up to the `name {` that opens the next section. Braces
// opened along the way are balanced so a stray block is skipped whole.
func (p *Parser) recoverInSection() {
	depth := 0
	for !p.check(lexer.EOF) {
		switch {
		case p.check(lexer.LBrace):
			depth++
		case p.check(lexer.RBrace):
			if depth == 0 {
				p.advance()
				return
			}
			depth--
		case depth == 0 && p.atSectionStart() && schema.IsSection(p.peek().Text):
			return
		}
		p.advance()
	}
}

// recoverToSection skips stray top-level tokens up to the next `name {`.
func (p *Parser) recoverToSection() {
	p.advance()
	for !p.check(lexer.EOF) && !p.atSectionStart() {
		p.advance()
	}
}
