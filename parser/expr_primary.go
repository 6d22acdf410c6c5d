/*
File    : gojinja/parser/expr_primary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The top of the expression grammar: unary prefix operators, primary
literals/aggregates, postfix call/subscript/member access, and the
filter chain that follows a unary expression.
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/gojinja/lexer"
)

// parseUnary parses an optional prefix `-`/`+`, then applies the filter
// chain unless noFilters suppresses it. The prefix operand is always
// parsed with noFilters=true so that `-x | upper` binds as
// Filter(upper, Neg(x)) rather than Neg(Filter(upper, x)) - the filter
// chain is deferred to the outermost unary call.
func (p *Parser) parseUnary(noFilters bool) (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()

	var node Node
	if ok, err := p.skipValue(lexer.OPERATOR, "-"); err != nil {
		return nil, err
	} else if ok {
		target, err := p.parseUnary(true)
		if err != nil {
			return nil, err
		}
		node = &Neg{position: newPosition(lineno, colno), Target: target}
	} else if ok, err := p.skipValue(lexer.OPERATOR, "+"); err != nil {
		return nil, err
	} else if ok {
		target, err := p.parseUnary(true)
		if err != nil {
			return nil, err
		}
		node = &Pos{position: newPosition(lineno, colno), Target: target}
	} else {
		primary, err := p.parsePrimary(false)
		if err != nil {
			return nil, err
		}
		node = primary
	}

	if noFilters {
		return node, nil
	}
	return p.parseFilterChain(node)
}

// parseFilterChain consumes zero or more `| name(args...)` applications,
// each wrapping the previous result as the first argument of a Filter
// node.
func (p *Parser) parseFilterChain(node Node) (Node, error) {
	for {
		lineno, colno := p.tokens.mustPeekPos()
		ok, err := p.skip(lexer.PIPE)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		name, err := p.parseDottedName()
		if err != nil {
			return nil, err
		}
		args := newNodeList(lineno, colno)
		args.AddChild(node)
		if tok, ok := p.tokens.peek(); ok && tok.Type == lexer.LEFT_PAREN {
			extra, err := p.parseSignature(false, false)
			if err != nil {
				return nil, err
			}
			if extra != nil {
				for _, c := range extra.Children {
					args.AddChild(c)
				}
			}
		}
		node = &Filter{position: newPosition(lineno, colno), Name: name, Args: args}
	}
}

// parseDottedName parses one or more SYMBOL tokens joined by '.', the
// shape a filter name takes (e.g. `a.b.c`).
func (p *Parser) parseDottedName() (string, error) {
	tok, err := p.expect(lexer.SYMBOL)
	if err != nil {
		return "", err
	}
	name := tok.Value
	for {
		ok, err := p.skipValue(lexer.OPERATOR, ".")
		if err != nil {
			return "", err
		}
		if !ok {
			return name, nil
		}
		next, err := p.expect(lexer.SYMBOL)
		if err != nil {
			return "", err
		}
		name += "." + next.Value
	}
}

// parsePrimary parses a single literal, symbol, or aggregate, then
// applies the postfix chain unless noPostfix suppresses it (used for
// contexts like a macro's own name, where `x[0]` or `x.y` is nonsense).
func (p *Parser) parsePrimary(noPostfix bool) (Node, error) {
	tok, ok := p.tokens.next(false)
	if !ok {
		return nil, p.fail("unexpected end of file")
	}

	var node Node
	switch tok.Type {
	case lexer.STRING:
		node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: tok.Value}
	case lexer.INT:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.failAt(tok.Lineno, tok.Colno, "invalid integer literal %q", tok.Value)
		}
		node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: n}
	case lexer.FLOAT:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.failAt(tok.Lineno, tok.Colno, "invalid float literal %q", tok.Value)
		}
		node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: f}
	case lexer.BOOLEAN:
		switch tok.Value {
		case "true":
			node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: true}
		case "false":
			node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: false}
		default:
			return nil, p.failAt(tok.Lineno, tok.Colno, "invalid boolean literal %q", tok.Value)
		}
	case lexer.NONE:
		node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: nil}
	case lexer.REGEX:
		node = &Literal{position: newPosition(tok.Lineno, tok.Colno), Value: tok.Regex}
	case lexer.SYMBOL:
		node = &Symbol{position: newPosition(tok.Lineno, tok.Colno), Name: tok.Value}
	default:
		p.tokens.push(tok)
		agg, err := p.parseAggregate()
		if err != nil {
			return nil, err
		}
		if agg == nil {
			return nil, p.failAt(tok.Lineno, tok.Colno, "unexpected token %s", tok.Type)
		}
		node = agg
	}

	if noPostfix {
		return node, nil
	}
	return p.parsePostfix(node)
}

// parsePostfix consumes a chain of `(args)`, `[index]`, and `.name`
// suffixes. A `.name` suffix is
// modeled as LookupVal with the member name wrapped in a Literal, the
// same shape `[index]` produces.
func (p *Parser) parsePostfix(node Node) (Node, error) {
	for {
		tok, ok := p.tokens.peek()
		if !ok {
			return node, nil
		}
		switch {
		case tok.Type == lexer.LEFT_PAREN:
			args, err := p.parseSignature(false, false)
			if err != nil {
				return nil, err
			}
			node = &FunCall{position: newPosition(tok.Lineno, tok.Colno), Callee: node, Args: args}
		case tok.Type == lexer.LEFT_BRACKET:
			p.tokens.next(false)
			var items []Node
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
				item, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			if len(items) != 1 {
				return nil, p.failAt(tok.Lineno, tok.Colno, "invalid index")
			}
			node = &LookupVal{position: newPosition(tok.Lineno, tok.Colno), Target: node, Index: items[0]}
		case tok.Type == lexer.OPERATOR && tok.Value == ".":
			p.tokens.next(false)
			name, err := p.expect(lexer.SYMBOL)
			if err != nil {
				return nil, err
			}
			node = &LookupVal{
				position: newPosition(tok.Lineno, tok.Colno),
				Target:   node,
				Index:    &Literal{position: newPosition(name.Lineno, name.Colno), Value: name.Value},
			}
		default:
			return node, nil
		}
	}
}
