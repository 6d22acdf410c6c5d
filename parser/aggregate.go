/*
File    : gojinja/parser/aggregate.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Aggregate literals (Group/Array/Dict) and call signatures, the
comma-separated constructs of the grammar. The literal loops share a
"no trailing comma" discipline: they only accept a comma between
elements, so a comma immediately before the closing delimiter falls
through to parseExpression on the delimiter token and fails as an
unexpected token, rather than being silently tolerated.
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// parseAggregate recognizes a parenthesized Group, bracketed Array, or
// braced Dict. It returns (nil, nil) - not an error - when the next
// token opens none of the three, so callers can treat "no aggregate
// here" as a normal negative result.
func (p *Parser) parseAggregate() (Node, error) {
	tok, ok := p.tokens.peek()
	if !ok {
		return nil, nil
	}

	switch tok.Type {
	case lexer.LEFT_PAREN:
		p.tokens.next(false)
		group := &Group{position: newPosition(tok.Lineno, tok.Colno)}
		first := true
		for {
			next, ok := p.tokens.peek()
			if ok && next.Type == lexer.RIGHT_PAREN {
				break
			}
			if !first {
				if _, err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
			first = false
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			group.AddChild(expr)
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return group, nil

	case lexer.LEFT_BRACKET:
		p.tokens.next(false)
		arr := &Array{position: newPosition(tok.Lineno, tok.Colno)}
		first := true
		for {
			next, ok := p.tokens.peek()
			if ok && next.Type == lexer.RIGHT_BRACKET {
				break
			}
			if !first {
				if _, err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
			first = false
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			arr.AddChild(expr)
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		return arr, nil

	case lexer.LEFT_CURLY:
		p.tokens.next(false)
		dict := &Dict{position: newPosition(tok.Lineno, tok.Colno)}
		first := true
		for {
			next, ok := p.tokens.peek()
			if ok && next.Type == lexer.RIGHT_CURLY {
				break
			}
			if !first {
				if _, err := p.expect(lexer.COMMA); err != nil {
					return nil, err
				}
			}
			first = false
			key, err := p.parsePrimary(true)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			dict.AddChild(&Pair{position: newPosition(tok.Lineno, tok.Colno), Key: key, Value: value})
		}
		if _, err := p.expect(lexer.RIGHT_CURLY); err != nil {
			return nil, err
		}
		return dict, nil

	default:
		return nil, nil
	}
}

// parseSignature parses a call/definition argument list: positional
// expressions, optionally followed by `name=value` keyword arguments
// collected into a trailing *KeywordArgs element.
//
// With noParens set, the terminator is BLOCK_END and no enclosing
// parentheses are consumed or required; no built-in tag passes it.
// Otherwise a LEFT_PAREN is required unless tolerant is set, in which
// case a missing paren yields (nil, nil) rather than an error (used for
// the `call` tag's optional caller-argument list).
func (p *Parser) parseSignature(tolerant, noParens bool) (*NodeList, error) {
	lineno, colno := p.tokens.mustPeekPos()

	if !noParens {
		ok, err := p.skip(lexer.LEFT_PAREN)
		if err != nil {
			return nil, err
		}
		if !ok {
			if tolerant {
				return nil, nil
			}
			return nil, p.fail("expected %s", lexer.LEFT_PAREN)
		}
	}

	args := newNodeList(lineno, colno)
	var kwargs *KeywordArgs
	first := true
	for {
		if p.signatureAtEnd(noParens) {
			break
		}
		if !first {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
			if p.signatureAtEnd(noParens) {
				break
			}
		}
		first = false

		kLineno, kColno := p.tokens.mustPeekPos()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if ok, err := p.skipValue(lexer.OPERATOR, "="); err != nil {
			return nil, err
		} else if ok {
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if kwargs == nil {
				kwargs = &KeywordArgs{position: newPosition(kLineno, kColno)}
			}
			kwargs.AddChild(&Pair{position: newPosition(kLineno, kColno), Key: expr, Value: value})
		} else {
			args.AddChild(expr)
		}
	}

	if !noParens {
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
	}
	if kwargs != nil {
		args.AddChild(kwargs)
	}
	return args, nil
}

// signatureAtEnd reports whether the next token is the signature's
// terminator: RIGHT_PAREN normally, or BLOCK_END under noParens.
func (p *Parser) signatureAtEnd(noParens bool) bool {
	tok, ok := p.tokens.peek()
	if !ok {
		return true
	}
	if noParens {
		return tok.Type == lexer.BLOCK_END
	}
	return tok.Type == lexer.RIGHT_PAREN
}
