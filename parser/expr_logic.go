/*
File    : gojinja/parser/expr_logic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The upper half of the twelve-level expression grammar: inline-if, the
boolean connectives, membership, and the n-ary comparison chain. Each
routine parses one or more operands of the next-higher-precedence
routine and is named after the grammar level it implements.
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// compareOperators are the comparison operators that chain into a
// single n-ary Compare node.
var compareOperators = map[string]bool{
	"==": true, "===": true, "!=": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true,
}

// parseExpression is the grammar's entry point: inline-if is the
// lowest-precedence level.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseInlineIf()
}

// parseInlineIf parses `X if Y [else Z]`, a right-associative suffix on
// the Or level.
func (p *Parser) parseInlineIf() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	ok, err := p.skipSymbol("if")
	if err != nil || !ok {
		return node, err
	}
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	var elseExpr Node
	if ok, err := p.skipSymbol("else"); err != nil {
		return nil, err
	} else if ok {
		elseExpr, err = p.parseInlineIf()
		if err != nil {
			return nil, err
		}
	}
	return &InlineIf{position: newPosition(lineno, colno), Cond: cond, Then: node, Else: elseExpr}, nil
}

// parseOr parses the left-associative `or` chain.
func (p *Parser) parseOr() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skipSymbol("or")
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &Or{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}

// parseAnd parses the left-associative `and` chain.
func (p *Parser) parseAnd() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skipSymbol("and")
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		node = &And{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}

// parseNot parses the prefix `not` operator, right-recursive so that
// `not not x` parses as Not(Not(x)).
func (p *Parser) parseNot() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	ok, err := p.skipSymbol("not")
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.parseIn()
	}
	target, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &Not{position: newPosition(lineno, colno), Target: target}, nil
}

// parseIn parses the left-associative `in`/`not in` chain. A `not in`
// link is wrapped as Not(In(...)).
func (p *Parser) parseIn() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for {
		if ok, err := p.skipSymbol("in"); err != nil {
			return nil, err
		} else if ok {
			right, err := p.parseCompare()
			if err != nil {
				return nil, err
			}
			node = &In{position: newPosition(lineno, colno), Left: node, Right: right}
			continue
		}
		if ok, err := p.skipSymbol("not"); err != nil {
			return nil, err
		} else if ok {
			if err := p.expectSymbol("in"); err != nil {
				return nil, err
			}
			right, err := p.parseCompare()
			if err != nil {
				return nil, err
			}
			node = &Not{position: newPosition(lineno, colno), Target: &In{position: newPosition(lineno, colno), Left: node, Right: right}}
			continue
		}
		return node, nil
	}
}

// parseCompare parses the n-ary comparison chain `a OP b OP c ...`,
// wrapping the result in a Compare node only when at least one
// comparison operator was actually present.
func (p *Parser) parseCompare() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	expr, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	var ops []*CompareOperand
	for {
		tok, ok := p.tokens.peek()
		if !ok || tok.Type != lexer.OPERATOR || !compareOperators[tok.Value] {
			break
		}
		p.tokens.next(false)
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		ops = append(ops, &CompareOperand{position: newPosition(tok.Lineno, tok.Colno), Op: tok.Value, Expr: right})
	}
	if len(ops) == 0 {
		return expr, nil
	}
	return &Compare{position: newPosition(lineno, colno), Expr: expr, Ops: ops}, nil
}
