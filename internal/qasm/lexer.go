// Package qasm is the lexical layer for a restricted OpenQASM 2.0 dialect.
// It provides line filtering for the graph engine, a token-level lexer for
// tooling, declared-identifier collection, and the bit-reference parsing
// both layers share.
package qasm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRegex  = regexp.MustCompile(`//[^\n]*`)
)

// tokenPatterns are tried in order at each position; the first match wins.
// Identifier precedes number so "e1" stays one identifier, and arrow
// precedes the single-character symbols so "->" is not a minus.
var tokenPatterns = []struct {
	typ TokenType
	re  *regexp.Regexp
}{
	{TokenIdentifier, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)},
	{TokenNumber, regexp.MustCompile(`^(?:\d+\.\d*|\d*\.\d+|\d+)(?:[eE][+-]?\d+)?`)},
	{TokenString, regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)},
	{TokenArrow, regexp.MustCompile(`^->`)},
	{TokenOperator, regexp.MustCompile(`^(?:==|!=|<=|>=|\+=|-=|\*=|/=|&&|\|\||::)`)},
	{TokenSymbol, regexp.MustCompile(`^[{}\[\]();,.:<>+\-*/%&|^~?=]`)},
}

// LexError reports a character no token pattern accepts. Positions are
// relative to the text given to Tokenize; strip comments first if the
// original line numbers matter.
type LexError struct {
	Offset int // byte offset of the character
	Line   int // 1-based line
	Col    int // 1-based byte column
	Char   rune
	Near   string // short snippet starting at the character
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at %d:%d near %q", e.Char, e.Line, e.Col, e.Near)
}

// StripComments removes block comments, then line comments. Block comment
// bodies vanish entirely, newlines included.
func StripComments(source string) string {
	source = blockCommentRegex.ReplaceAllString(source, "")
	source = lineCommentRegex.ReplaceAllString(source, "")
	return source
}

// Tokenize scans source into its token stream. Comments are not understood
// here; run StripComments first. Identifiers in the keyword set come back
// tagged TokenKeyword. The first unexpected character stops the scan with a
// *LexError.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	line, col := 1, 1

	for i := 0; i < len(source); {
		rest := source[i:]

		matched := false
		for _, p := range tokenPatterns {
			value := p.re.FindString(rest)
			if value == "" {
				continue
			}
			typ := p.typ
			if typ == TokenIdentifier && keywords[value] {
				typ = TokenKeyword
			}
			tokens = append(tokens, Token{Type: typ, Value: value})
			i += len(value)
			col += len(value)
			matched = true
			break
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i += size
			continue
		}

		near := rest
		if len(near) > 20 {
			near = near[:20]
		}
		return nil, &LexError{
			Offset: i,
			Line:   line,
			Col:    col,
			Char:   r,
			Near:   strings.ReplaceAll(near, "\n", `\n`),
		}
	}

	return tokens, nil
}
