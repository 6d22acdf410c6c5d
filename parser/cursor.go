/*
File    : gojinja/parser/cursor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// tokenSource is the narrow lexer contract this package consumes. A
// real *lexer.Lexer satisfies it; extensions and tests can substitute
// a stub.
type tokenSource interface {
	NextToken() (lexer.Token, bool)
	BackN(count int)
	ExtractRegex(pattern string) ([]string, bool)
	Tags() lexer.Tags
}

// cursor wraps a tokenSource with a one-slot pushback buffer. The slot
// is an explicit *Token field rather than a queue on purpose: pushing a
// second token while one is already buffered is a programmer error, not
// a template error.
type cursor struct {
	src    tokenSource
	peeked *lexer.Token
}

func newCursor(src tokenSource) *cursor {
	return &cursor{src: src}
}

// next returns the next token. If withWhitespace is false, WHITESPACE
// tokens are transparently skipped - including one sitting in the
// pushback slot, which is silently dropped rather than returned.
func (c *cursor) next(withWhitespace bool) (lexer.Token, bool) {
	for {
		tok, ok := c.read()
		if !ok {
			return lexer.Token{}, false
		}
		if !withWhitespace && tok.Type == lexer.WHITESPACE {
			continue
		}
		return tok, true
	}
}

// read pops the pushback slot if full, otherwise pulls straight from
// the underlying lexer.
func (c *cursor) read() (lexer.Token, bool) {
	if c.peeked != nil {
		tok := *c.peeked
		c.peeked = nil
		return tok, true
	}
	return c.src.NextToken()
}

// peek lazily fills and returns the pushback slot without consuming it.
// Whitespace tokens are skipped here too, same as next(false), so a
// caller never has to reason about a peeked WHITESPACE token.
func (c *cursor) peek() (lexer.Token, bool) {
	if c.peeked == nil {
		for {
			tok, ok := c.src.NextToken()
			if !ok {
				return lexer.Token{}, false
			}
			if tok.Type == lexer.WHITESPACE {
				continue
			}
			c.peeked = &tok
			break
		}
	}
	return *c.peeked, true
}

// push fills the pushback slot. Pushing while it is already full
// indicates a parser bug, never a template bug, so it panics instead of
// returning an error.
func (c *cursor) push(tok lexer.Token) {
	if c.peeked != nil {
		panic("gojinja/parser: pushToken: can only push one token between reads")
	}
	c.peeked = &tok
}

// backN rewinds the underlying lexer and clears the pushback slot, since
// any buffered token is now stale relative to the rewound position. Used
// by the raw/verbatim tag handler.
func (c *cursor) backN(count int) {
	c.src.BackN(count)
	c.peeked = nil
}

func (c *cursor) extractRegex(pattern string) ([]string, bool) {
	return c.src.ExtractRegex(pattern)
}

func (c *cursor) tags() lexer.Tags {
	return c.src.Tags()
}

// mustPeekPos returns the position of the next token, or (0, 0) at EOF.
// Expression routines use it to stamp a starting position on a node
// before they know whether there will be anything to parse at all.
func (c *cursor) mustPeekPos() (int, int) {
	tok, ok := c.peek()
	if !ok {
		return 0, 0
	}
	return tok.Lineno, tok.Colno
}
