/*
File    : gojinja/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// collect drains every token a Lexer produces, stripping WHITESPACE
// tokens the way the parser's cursor does, so tests can compare against
// the token stream a caller actually sees.
func collect(src string) []Token {
	lx := New(src, DefaultConfig)
	var toks []Token
	for {
		tok, ok := lx.NextToken()
		if !ok {
			break
		}
		if tok.Type == WHITESPACE {
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}

// TestLexer_Data checks that plain text with no markers comes back as a
// single DATA token.
func TestLexer_Data(t *testing.T) {
	toks := collect("hello world")
	assert.Len(t, toks, 1)
	assert.Equal(t, DATA, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Value)
}

// TestLexer_VariableExpression exercises the `{{ ... }}` sublanguage:
// data before, an identifier inside the tag, and data after.
func TestLexer_VariableExpression(t *testing.T) {
	toks := collect("hello {{ name }}!")
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{DATA, VARIABLE_START, SYMBOL, VARIABLE_END, DATA}, types)
	assert.Equal(t, "hello ", toks[0].Value)
	assert.Equal(t, "name", toks[2].Value)
	assert.Equal(t, "!", toks[4].Value)
}

// TestLexer_BlockTag checks a `{% if ... %}` tag scans its keyword and
// operator tokens correctly.
func TestLexer_BlockTag(t *testing.T) {
	toks := collect("{% if x == 1 %}")
	types := make([]TokenType, len(toks))
	vals := make([]string, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
		vals[i] = tok.Value
	}
	assert.Equal(t, []TokenType{BLOCK_START, SYMBOL, SYMBOL, OPERATOR, INT, BLOCK_END}, types)
	assert.Equal(t, []string{"{%", "if", "x", "==", "1", "%}"}, vals)
}

// TestLexer_Comment checks the comment sublanguage scans as a single
// token whose Value is the interior text, markers excluded.
func TestLexer_Comment(t *testing.T) {
	toks := collect("a{# not rendered #}b")
	assert.Len(t, toks, 3)
	assert.Equal(t, DATA, toks[0].Type)
	assert.Equal(t, COMMENT, toks[1].Type)
	assert.Equal(t, " not rendered ", toks[1].Value)
	assert.Equal(t, DATA, toks[2].Type)
}

// TestLexer_WhitespaceControl checks that '-' markers are recorded on
// the token as LeadingDash/TrailingDash rather than consumed silently.
func TestLexer_WhitespaceControl(t *testing.T) {
	toks := collect("{%- if x -%}")
	assert.True(t, toks[0].LeadingDash)
	last := toks[len(toks)-1]
	assert.Equal(t, BLOCK_END, last.Type)
	assert.True(t, last.TrailingDash)
}

// TestLexer_Literals exercises string, int, float, boolean and none
// literals together in one tag.
func TestLexer_Literals(t *testing.T) {
	toks := collect(`{{ "hi" 1 2.5 true false none }}`)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == VARIABLE_START || tok.Type == VARIABLE_END {
			continue
		}
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{STRING, INT, FLOAT, BOOLEAN, BOOLEAN, NONE}, types)
}

// TestLexer_Regex checks the `r/body/flags` literal form and that a bare
// division operator is still recognized when it isn't preceded by 'r'.
func TestLexer_Regex(t *testing.T) {
	toks := collect(`{{ r/ab+c/i }}`)
	assert.Equal(t, REGEX, toks[1].Type)
	assert.Equal(t, "ab+c", toks[1].Regex.Body)
	assert.Equal(t, "i", toks[1].Regex.Flags)

	toks2 := collect(`{{ a / b }}`)
	assert.Equal(t, OPERATOR, toks2[2].Type)
	assert.Equal(t, "/", toks2[2].Value)
}

// TestLexer_MultiCharOperators checks the longest-match rule: "===" must
// not lex as "==" followed by "=".
func TestLexer_MultiCharOperators(t *testing.T) {
	toks := collect("{{ a === b }}")
	assert.Equal(t, "===", toks[2].Value)

	toks2 := collect("{{ a ** b // c }}")
	ops := []string{}
	for _, tok := range toks2 {
		if tok.Type == OPERATOR {
			ops = append(ops, tok.Value)
		}
	}
	assert.Equal(t, []string{"**", "//"}, ops)
}

// TestLexer_Punctuation checks pipe, tilde, comma, colon and the bracket
// family all scan as their own single-character token types.
func TestLexer_Punctuation(t *testing.T) {
	toks := collect("{{ a|b~c, d:e (f)[g]{h} }}")
	types := make([]TokenType, 0)
	for _, tok := range toks {
		switch tok.Type {
		case VARIABLE_START, VARIABLE_END, SYMBOL:
			continue
		}
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		PIPE, TILDE, COMMA, COLON,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACKET, RIGHT_BRACKET, LEFT_CURLY, RIGHT_CURLY,
	}, types)
}

// TestLexer_BackN checks that rewinding the cursor and re-scanning
// produces the same tokens as scanning straight through, and that the
// lexer falls back into data mode at the rewound position.
func TestLexer_BackN(t *testing.T) {
	lx := New("{{ a }}bc", DefaultConfig)
	first, _ := lx.NextToken()
	assert.Equal(t, VARIABLE_START, first.Type)

	posAfterFirst := lx.Pos
	lx.BackN(posAfterFirst)
	assert.Equal(t, 0, lx.Pos)
	assert.Equal(t, 1, lx.Line)
	assert.Equal(t, 1, lx.Col)

	replayed, ok := lx.NextToken()
	assert.True(t, ok)
	assert.Equal(t, first, replayed)
}

// TestLexer_ExtractRegex checks the raw/endraw escape hatch: a pattern
// anchored at the cursor advances past its match and returns submatches.
func TestLexer_ExtractRegex(t *testing.T) {
	lx := New("plain text{% endraw %}", DefaultConfig)
	groups, ok := lx.ExtractRegex(`(?s)^(.*?)(\{%-?\s*endraw\s*-?%\})`)
	assert.True(t, ok)
	assert.Equal(t, "plain text", groups[1])
	assert.Equal(t, "{% endraw %}", groups[2])
	assert.Equal(t, len("plain text{% endraw %}"), lx.Pos)
}

// TestLexer_CustomTags checks that a non-default Config's delimiters are
// what gets scanned, and that Tags() reflects them back.
func TestLexer_CustomTags(t *testing.T) {
	cfg := Config{
		BlockStart: "<%", BlockEnd: "%>",
		VariableStart: "<<", VariableEnd: ">>",
		CommentStart: "<#", CommentEnd: "#>",
	}
	lx := New("<< name >>", cfg)
	toks := []Token{}
	for {
		tok, ok := lx.NextToken()
		if !ok {
			break
		}
		if tok.Type == WHITESPACE {
			continue
		}
		toks = append(toks, tok)
	}
	assert.Equal(t, []TokenType{VARIABLE_START, SYMBOL, VARIABLE_END}, []TokenType{toks[0].Type, toks[1].Type, toks[2].Type})
	assert.Equal(t, cfg.Tags(), lx.Tags())
}
