/*
File    : gojinja/lexer/tags.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// Tags carries the literal delimiter strings the lexer was configured
// with. The parser itself does not read it (whitespace-control dashes
// arrive as LeadingDash/TrailingDash flags on the tokens); it is handed
// on to extensions through LexerAPI.Tags.
type Tags struct {
	VariableStart string
	VariableEnd   string
	CommentStart  string
	CommentEnd    string
}

// DefaultTags are the classic Jinja-style delimiters.
var DefaultTags = Tags{
	VariableStart: "{{",
	VariableEnd:   "}}",
	CommentStart:  "{#",
	CommentEnd:    "#}",
}

// Config bundles the delimiters a Lexer is built from. BlockStart/End
// are configurable too, so that an embedder can move off "{%"/"%}" the
// same way DefaultTags lets it move off "{{"/"}}".
//
// TrimBlocks and LstripBlocks are environment-wide whitespace-control
// defaults, applied by the parser's whitespace controller on top of the
// per-marker '-' flags: TrimBlocks removes the first newline after a
// block or comment tag, LstripBlocks strips spaces and tabs from the
// start of a line up to a block or comment tag. Both default to off.
type Config struct {
	BlockStart    string
	BlockEnd      string
	VariableStart string
	VariableEnd   string
	CommentStart  string
	CommentEnd    string

	TrimBlocks   bool
	LstripBlocks bool
}

// DefaultConfig is the classic `{% %}` / `{{ }}` / `{# #}` delimiter set.
var DefaultConfig = Config{
	BlockStart:    "{%",
	BlockEnd:      "%}",
	VariableStart: "{{",
	VariableEnd:   "}}",
	CommentStart:  "{#",
	CommentEnd:    "#}",
}

// Tags projects the Lexer's delimiter Config down to the narrow record
// the parser's lexer contract expects.
func (c Config) Tags() Tags {
	return Tags{
		VariableStart: c.VariableStart,
		VariableEnd:   c.VariableEnd,
		CommentStart:  c.CommentStart,
		CommentEnd:    c.CommentEnd,
	}
}
