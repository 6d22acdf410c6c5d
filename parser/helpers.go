/*
File    : gojinja/parser/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// skip consumes the next token if its type matches typ; otherwise it
// pushes the token back and returns false. This is the workhorse used
// throughout the statement parser for optional syntax.
func (p *Parser) skip(typ lexer.TokenType) (bool, error) {
	tok, ok := p.tokens.next(false)
	if !ok {
		return false, nil
	}
	if tok.Type == typ {
		return true, nil
	}
	p.tokens.push(tok)
	return false, nil
}

// skipValue is skip plus a value match, used for tokens like OPERATOR
// whose type alone doesn't pin down which operator it is.
func (p *Parser) skipValue(typ lexer.TokenType, value string) (bool, error) {
	tok, ok := p.tokens.next(false)
	if !ok {
		return false, nil
	}
	if tok.Type == typ && tok.Value == value {
		return true, nil
	}
	p.tokens.push(tok)
	return false, nil
}

// skipSymbol is the specialization of skipValue for SYMBOL tokens.
func (p *Parser) skipSymbol(name string) (bool, error) {
	return p.skipValue(lexer.SYMBOL, name)
}

// expect consumes a token of the given type or fails with
// "expected <type>, got <actual>" at the offending token's position.
func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, error) {
	tok, ok := p.tokens.next(false)
	if !ok {
		return lexer.Token{}, p.fail("unexpected end of file")
	}
	if tok.Type != typ {
		return lexer.Token{}, p.failAt(tok.Lineno, tok.Colno, "expected %s, got %s", typ, tok.Type)
	}
	return tok, nil
}

// expectSymbol requires the next token to be a SYMBOL with exactly the
// given name, e.g. the literal keyword "in" inside a for-loop header.
func (p *Parser) expectSymbol(name string) error {
	ok, err := p.skipSymbol(name)
	if err != nil {
		return err
	}
	if !ok {
		tok, more := p.tokens.peek()
		if !more {
			return p.fail("expected keyword %q", name)
		}
		return p.failAt(tok.Lineno, tok.Colno, "expected keyword %q, got %s", name, tok.Type)
	}
	return nil
}
