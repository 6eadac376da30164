package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/diag"
)

const eof rune = -1

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	filename string
	src      []byte
	offset   int // byte offset of the next rune to consume
	line     int // 1-based line of the next rune
	col      int // 1-based column (in runes) of the next rune
}

func newLexer(filename string, src []byte) *Lexer {
	return &Lexer{filename: filename, src: src, line: 1, col: 1}
}

// Tokenize scans src into a token stream terminated by an EOF token.
// Comments and whitespace are discarded. Scanning stops at the first
// malformed construct, which is returned as a single lex diagnostic.
func Tokenize(filename string, src []byte) ([]Token, diag.Diagnostics) {
	l := newLexer(filename, src)
	if bad := firstInvalidUTF8(src); bad >= 0 {
		for l.offset < bad {
			l.advance()
		}
		start := l.pos()
		end := start
		end.Byte++
		end.Column++
		rng := hcl.Range{Filename: filename, Start: start, End: end}
		return nil, diag.Diagnostics{diag.Lex(rng, "source is not valid UTF-8 (byte 0x%02x)", src[bad])}
	}

	var tokens []Token

	for {
		if d := l.skipTrivia(); d != nil {
			return tokens, diag.Diagnostics{*d}
		}

		start := l.pos()
		r := l.peek()

		switch {
		case r == eof:
			tokens = append(tokens, Token{Kind: EOF, Range: l.rangeFrom(start)})
			return tokens, nil

		case isIdentStart(r):
			tokens = append(tokens, l.scanIdent())

		case isDigit(r) || r == '+' || r == '-' || (r == '.' && isDigit(l.peekN(1))):
			num, d := l.scanNumber()
			if d != nil {
				return tokens, diag.Diagnostics{*d}
			}
			tokens = append(tokens, num)
			if unit, ok := l.scanUnit(); ok {
				tokens = append(tokens, unit)
			}

		case r == '"':
			str, d := l.scanString()
			if d != nil {
				return tokens, diag.Diagnostics{*d}
			}
			tokens = append(tokens, str)

		default:
			kind, ok := punctuation[r]
			if !ok {
				l.advance()
				return tokens, diag.Diagnostics{diag.Lex(l.rangeFrom(start), "unexpected character %q", r)}
			}
			l.advance()
			tokens = append(tokens, Token{Kind: kind, Text: string(r), Range: l.rangeFrom(start)})
		}
	}
}

var punctuation = map[rune]Kind{
	'{': LBrace,
	'}': RBrace,
	';': Semicolon,
	'=': Assign,
	',': Comma,
	'[': LBracket,
	']': RBracket,
}

func (l *Lexer) pos() hcl.Pos {
	return hcl.Pos{Line: l.line, Column: l.col, Byte: l.offset}
}

func (l *Lexer) rangeFrom(start hcl.Pos) hcl.Range {
	return hcl.Range{Filename: l.filename, Start: start, End: l.pos()}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	return l.peekN(0)
}

// peekN returns the rune n positions ahead of the current one.
func (l *Lexer) peekN(n int) rune {
	off := l.offset
	for i := 0; ; i++ {
		if off >= len(l.src) {
			return eof
		}
		r, size := utf8.DecodeRune(l.src[off:])
		if i == n {
			return r
		}
		off += size
	}
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.offset >= len(l.src) {
		return eof
	}
	r, size := utf8.DecodeRune(l.src[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// skipTrivia discards whitespace and comments up to the next token.
func (l *Lexer) skipTrivia() *diag.Diagnostic {
	for {
		r := l.peek()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\uFEFF':
			l.advance()
		case r == '/' && l.peekN(1) == '/':
			l.skipLineComment()
		case r == '/' && l.peekN(1) == '*':
			if d := l.skipBlockComment(); d != nil {
				return d
			}
		default:
			return nil
		}
	}
}

// skipLineComment discards everything from "//" to end-of-line.
func (l *Lexer) skipLineComment() {
	for r := l.peek(); r != eof && r != '\n'; r = l.peek() {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the closing "*/".
func (l *Lexer) skipBlockComment() *diag.Diagnostic {
	start := l.pos()
	l.advance() // /
	l.advance() // *
	opening := l.rangeFrom(start)
	for l.peek() != eof {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advance()
			l.advance()
			return nil
		}
		l.advance()
	}
	d := diag.Lex(opening, "unterminated block comment (opened on line %d)", start.Line)
	return &d
}

func (l *Lexer) scanIdent() Token {
	start := l.pos()
	begin := l.offset
	for isIdentPart(l.peek()) {
		l.advance()
	}
	text := string(l.src[begin:l.offset])
	kind := Ident
	if text == "true" || text == "false" {
		kind = Bool
	}
	return Token{Kind: kind, Text: text, Range: l.rangeFrom(start)}
}

// scanNumber collects a signed decimal or scientific literal.
func (l *Lexer) scanNumber() (Token, *diag.Diagnostic) {
	start := l.pos()
	begin := l.offset

	if r := l.peek(); r == '+' || r == '-' {
		l.advance()
	}
	digits := l.skipDigits()
	if l.peek() == '.' {
		l.advance()
		digits += l.skipDigits()
	}
	if digits == 0 {
		d := diag.Lex(l.rangeFrom(start), "malformed numeric literal %q: expected digits", string(l.src[begin:l.offset]))
		return Token{}, &d
	}

	if r := l.peek(); r == 'e' || r == 'E' {
		l.advance()
		if r := l.peek(); r == '+' || r == '-' {
			l.advance()
		}
		if l.skipDigits() == 0 {
			d := diag.Lex(l.rangeFrom(start), "malformed numeric literal %q: exponent has no digits", string(l.src[begin:l.offset]))
			return Token{}, &d
		}
	}

	if l.peek() == '.' {
		for r := l.peek(); r == '.' || isDigit(r); r = l.peek() {
			l.advance()
		}
		d := diag.Lex(l.rangeFrom(start), "malformed numeric literal %q", string(l.src[begin:l.offset]))
		return Token{}, &d
	}

	text := string(l.src[begin:l.offset])
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		msg := "malformed numeric literal %q"
		if errors.Is(err, strconv.ErrRange) {
			msg = "numeric literal %q is out of range"
		}
		d := diag.Lex(l.rangeFrom(start), msg, text)
		return Token{}, &d
	}

	return Token{Kind: Number, Text: text, Range: l.rangeFrom(start)}, nil
}

// scanUnit collects a unit symbol following a number. Spaces and tabs may
// separate the two; a newline or comment may not.
func (l *Lexer) scanUnit() (Token, bool) {
	save := *l
	for r := l.peek(); r == ' ' || r == '\t'; r = l.peek() {
		l.advance()
	}
	if !isLetter(l.peek()) {
		*l = save
		return Token{}, false
	}

	start := l.pos()
	begin := l.offset
	for r := l.peek(); isLetter(r) || isDigit(r) || r == '/' || r == '.'; r = l.peek() {
		// "/" followed by "/" or "*" opens a comment, not a unit segment.
		if r == '/' && (l.peekN(1) == '/' || l.peekN(1) == '*') {
			break
		}
		l.advance()
	}
	return Token{Kind: Unit, Text: string(l.src[begin:l.offset]), Range: l.rangeFrom(start)}, true
}

// scanString collects a double-quoted literal and resolves its escapes.
func (l *Lexer) scanString() (Token, *diag.Diagnostic) {
	start := l.pos()
	l.advance() // opening quote

	var sb strings.Builder
	for {
		r := l.peek()
		switch r {
		case eof, '\n':
			d := diag.Lex(l.rangeFrom(start), "unterminated string literal")
			return Token{}, &d
		case '"':
			l.advance()
			return Token{Kind: String, Text: sb.String(), Range: l.rangeFrom(start)}, nil
		case '\\':
			escStart := l.pos()
			l.advance()
			esc := l.advance()
			switch esc {
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				d := diag.Lex(l.rangeFrom(escStart), "unknown escape sequence \\%c in string literal", esc)
				return Token{}, &d
			}
		default:
			sb.WriteRune(l.advance())
		}
	}
}

func (l *Lexer) skipDigits() int {
	n := 0
	for isDigit(l.peek()) {
		l.advance()
		n++
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence in src, or -1 when src is valid.
func firstInvalidUTF8(src []byte) int {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
