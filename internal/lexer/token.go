package lexer

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Kind identifies the category of a lexed token.
type Kind int

const (
	EOF Kind = iota // sentinel: end of input

	Ident  // section or property name
	Number // optionally signed decimal or scientific literal
	Unit   // unit symbol trailing a Number, e.g. mm, kg/m3
	String // "..." with escapes resolved
	Bool   // true / false

	LBrace    // {
	RBrace    // }
	Semicolon // ;
	Assign    // =
	Comma     // ,
	LBracket  // [
	RBracket  // ]
)

var kindNames = map[Kind]string{
	EOF:       "end of file",
	Ident:     "identifier",
	Number:    "number",
	Unit:      "unit",
	String:    "string",
	Bool:      "boolean",
	LBrace:    "'{'",
	RBrace:    "'}'",
	Semicolon: "';'",
	Assign:    "'='",
	Comma:     "','",
	LBracket:  "'['",
	RBracket:  "']'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme. Text holds the literal source for identifiers,
// numbers and units, and the unescaped contents for strings.
type Token struct {
	Kind  Kind
	Text  string
	Range hcl.Range
}

// Describe renders the token for use in parser messages.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident, Number, Unit, Bool:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case String:
		return fmt.Sprintf("string %q", t.Text)
	default:
		return t.Kind.String()
	}
}
