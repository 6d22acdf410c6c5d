/*
File    : gojinja/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns template source text into a flat stream of tokens
// for the parser. It understands four interleaved sublanguages - plain
// text, `{% ... %}` block statements, `{{ ... }}` variable expressions,
// and `{# ... #}` comments - and nothing else: identifier resolution,
// filter registries, and rendering all live downstream.
package lexer

import "fmt"

// TokenType identifies the lexical class of a Token. It is a string so
// that tokens print legibly in error messages without a lookup table.
type TokenType string

// Token type constants. The opening and closing markers (BLOCK_START,
// VARIABLE_END, ...) carry the bare delimiter text in Value, e.g. "{%" or
// "%}"; a '-' requesting whitespace control is not part of Value but is
// recorded in the token's LeadingDash/TrailingDash fields.
const (
	DATA           TokenType = "DATA"
	BLOCK_START    TokenType = "BLOCK_START"
	BLOCK_END      TokenType = "BLOCK_END"
	VARIABLE_START TokenType = "VARIABLE_START"
	VARIABLE_END   TokenType = "VARIABLE_END"
	COMMENT        TokenType = "COMMENT"

	SYMBOL  TokenType = "SYMBOL"
	STRING  TokenType = "STRING"
	INT     TokenType = "INT"
	FLOAT   TokenType = "FLOAT"
	BOOLEAN TokenType = "BOOLEAN"
	NONE    TokenType = "NONE"
	REGEX   TokenType = "REGEX"

	WHITESPACE TokenType = "WHITESPACE"
	OPERATOR   TokenType = "OPERATOR"
	PIPE       TokenType = "PIPE"
	TILDE      TokenType = "TILDE"
	COMMA      TokenType = "COMMA"
	COLON      TokenType = "COLON"

	LEFT_PAREN    TokenType = "LEFT_PAREN"
	RIGHT_PAREN   TokenType = "RIGHT_PAREN"
	LEFT_BRACKET  TokenType = "LEFT_BRACKET"
	RIGHT_BRACKET TokenType = "RIGHT_BRACKET"
	LEFT_CURLY    TokenType = "LEFT_CURLY"
	RIGHT_CURLY   TokenType = "RIGHT_CURLY"
)

// RegexValue is the structured payload of a REGEX token: the pattern body
// and the trailing flag letters, e.g. r/abc/i -> {Body: "abc", Flags: "i"}.
type RegexValue struct {
	Body  string
	Flags string
}

// Token is a single lexical unit. Every token carries its 1-indexed
// source position so the parser can build diagnostics without going
// back to the source text. Value holds the token's string payload for
// every type except REGEX, which carries a structured Regex instead.
//
// LeadingDash/TrailingDash are only meaningful on BLOCK_START,
// VARIABLE_START, BLOCK_END, VARIABLE_END and COMMENT tokens: they
// record whether the opening marker was immediately followed by '-'
// ("{%-") or the closing marker was immediately preceded by '-' ("-%}"),
// which is what drives the parser's whitespace controller.
type Token struct {
	Type         TokenType
	Value        string
	Regex        *RegexValue
	LeadingDash  bool
	TrailingDash bool
	Lineno       int
	Colno        int
}

// String renders a token for diagnostics, e.g. "SYMBOL(\"foo\") at 3:5".
func (t Token) String() string {
	if t.Type == REGEX && t.Regex != nil {
		return fmt.Sprintf("%s(/%s/%s) at %d:%d", t.Type, t.Regex.Body, t.Regex.Flags, t.Lineno, t.Colno)
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Value, t.Lineno, t.Colno)
}
