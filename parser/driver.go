/*
File    : gojinja/parser/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The top-level driver and the cooperative reentrancy machinery the
statement parser builds on: parseNodes alternates between
DATA/BLOCK_START/VARIABLE_START/COMMENT tokens until either the stream
ends or a block tag in breakOnBlocks is seen, and parseUntilBlocks
saves/restores breakOnBlocks around a nested parseNodes call so
extensions and nested tags (if/elif, for/else, ...) can reenter the
driver without corrupting an enclosing call's state.
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/gojinja/lexer"
)

const whitespaceChars = " \t\r\n\f\v"

// ParseAsRoot parses the whole token stream and wraps the result in a
// Root.
func (p *Parser) ParseAsRoot() (*Root, error) {
	p.breakOnBlocks = nil
	list, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	return &Root{position: newPosition(0, 0), Children: list.Children}, nil
}

// parseUntilBlocks parses a body that stops as soon as a BLOCK_START's
// tag name matches one of names, leaving that name peeked (not
// consumed) for the caller. breakOnBlocks is saved and restored around
// the call, including when it returns an error, so nested and reentrant
// parses never corrupt an enclosing call's terminator set.
func (p *Parser) parseUntilBlocks(names ...string) (*NodeList, error) {
	prev := p.breakOnBlocks
	p.breakOnBlocks = names
	defer func() { p.breakOnBlocks = prev }()
	return p.parseNodes()
}

// isBreakBlock reports whether name is one of the tags the current
// (innermost) parseUntilBlocks call is waiting for.
func (p *Parser) isBreakBlock(name string) bool {
	for _, n := range p.breakOnBlocks {
		if n == name {
			return true
		}
	}
	return false
}

// parseNodes is the driver loop proper.
func (p *Parser) parseNodes() (*NodeList, error) {
	lineno, colno := p.tokens.mustPeekPos()
	list := newNodeList(lineno, colno)

	for {
		tok, ok := p.tokens.next(false)
		if !ok {
			return list, nil
		}

		switch tok.Type {
		case lexer.DATA:
			data := p.renderData(tok)
			list.AddChild(&Output{
				position: newPosition(tok.Lineno, tok.Colno),
				Child:    &TemplateData{position: newPosition(tok.Lineno, tok.Colno), Data: data},
			})

		case lexer.BLOCK_START:
			p.dropLeadingWhitespace = false
			p.dropLeadingNewline = false
			symTok, ok := p.tokens.peek()
			if !ok || symTok.Type != lexer.SYMBOL {
				return nil, p.fail("tag name expected")
			}
			if p.isBreakBlock(symTok.Value) {
				return list, nil
			}
			node, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if node != nil {
				list.AddChild(node)
			}

		case lexer.VARIABLE_START:
			p.dropLeadingWhitespace = false
			p.dropLeadingNewline = false
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.advanceAfterVariableEnd(); err != nil {
				return nil, err
			}
			list.AddChild(&Output{position: newPosition(tok.Lineno, tok.Colno), Child: expr})

		case lexer.COMMENT:
			if tok.TrailingDash {
				p.dropLeadingWhitespace = true
			} else if p.trimBlocks {
				p.dropLeadingNewline = true
			}

		default:
			return nil, p.failAt(tok.Lineno, tok.Colno, "unexpected token at top-level: %s", tok.Type)
		}
	}
}

// renderData applies the whitespace-control trims to a DATA token's
// text: a leading trim when the latch set by a previous closing marker
// is armed (or just the first newline, under TrimBlocks), and a
// trailing trim when the next marker's opening delimiter was written
// with a '-' (or back to the start of the line, under LstripBlocks).
func (p *Parser) renderData(tok lexer.Token) string {
	data := tok.Value
	if p.dropLeadingWhitespace {
		data = strings.TrimLeft(data, whitespaceChars)
		p.dropLeadingWhitespace = false
		p.dropLeadingNewline = false
	}
	if p.dropLeadingNewline {
		if strings.HasPrefix(data, "\r\n") {
			data = data[2:]
		} else if strings.HasPrefix(data, "\n") {
			data = data[1:]
		}
		p.dropLeadingNewline = false
	}
	if next, ok := p.tokens.peek(); ok {
		switch next.Type {
		case lexer.BLOCK_START, lexer.VARIABLE_START, lexer.COMMENT:
			if next.LeadingDash {
				data = strings.TrimRight(data, whitespaceChars)
			} else if p.lstripBlocks && next.Type != lexer.VARIABLE_START {
				data = stripLineTrailing(data)
			}
		}
	}
	return data
}

// stripLineTrailing removes a trailing run of spaces and tabs, but only
// when that run reaches back to a newline or to the start of the text -
// the LstripBlocks rule strips tag indentation, never whitespace in the
// middle of a line.
func stripLineTrailing(data string) string {
	i := len(data)
	for i > 0 && (data[i-1] == ' ' || data[i-1] == '\t') {
		i--
	}
	if i == 0 || data[i-1] == '\n' {
		return data[:i]
	}
	return data
}

// advanceAfterBlockEnd consumes the BLOCK_END terminating the current
// tag and arms the whitespace latch when it was written "-%}", or the
// weaker newline latch when the TrimBlocks default is on.
func (p *Parser) advanceAfterBlockEnd() error {
	tok, err := p.expect(lexer.BLOCK_END)
	if err != nil {
		return err
	}
	if tok.TrailingDash {
		p.dropLeadingWhitespace = true
	} else if p.trimBlocks {
		p.dropLeadingNewline = true
	}
	return nil
}

// advanceAfterVariableEnd is advanceAfterBlockEnd's VARIABLE_END
// counterpart, used by the top-level driver after a `{{ expr }}`.
func (p *Parser) advanceAfterVariableEnd() error {
	tok, err := p.expect(lexer.VARIABLE_END)
	if err != nil {
		return err
	}
	if tok.TrailingDash {
		p.dropLeadingWhitespace = true
	}
	return nil
}
