/*
File    : gojinja/parser/expr_arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The arithmetic levels of the expression grammar: concat, add/sub,
mul/div, floor-div, mod, and pow. Each is a standard
precedence-climbing routine - parse one operand at the next-higher
level, then loop while the matching operator keeps appearing, so that
`a - b + c` binds left-associatively within a level. Note that `**` is
left-associative here as well (`2 ** 3 ** 2` is `(2**3)**2`), not the
right-associative convention most languages use.
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// parseConcat parses the left-associative `~` string-concatenation
// chain.
func (p *Parser) parseConcat() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skip(lexer.TILDE)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		node = &Concat{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}

// parseAdd parses the left-associative `+`/`-` level.
func (p *Parser) parseAdd() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		if ok, err := p.skipValue(lexer.OPERATOR, "+"); err != nil {
			return nil, err
		} else if ok {
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			node = &Add{position: newPosition(lineno, colno), Left: node, Right: right}
			continue
		}
		if ok, err := p.skipValue(lexer.OPERATOR, "-"); err != nil {
			return nil, err
		} else if ok {
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			node = &Sub{position: newPosition(lineno, colno), Left: node, Right: right}
			continue
		}
		return node, nil
	}
}

// parseMul parses the left-associative `*`/`/` level.
func (p *Parser) parseMul() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseFloorDiv()
	if err != nil {
		return nil, err
	}
	for {
		if ok, err := p.skipValue(lexer.OPERATOR, "*"); err != nil {
			return nil, err
		} else if ok {
			right, err := p.parseFloorDiv()
			if err != nil {
				return nil, err
			}
			node = &Mul{position: newPosition(lineno, colno), Left: node, Right: right}
			continue
		}
		if ok, err := p.skipValue(lexer.OPERATOR, "/"); err != nil {
			return nil, err
		} else if ok {
			right, err := p.parseFloorDiv()
			if err != nil {
				return nil, err
			}
			node = &Div{position: newPosition(lineno, colno), Left: node, Right: right}
			continue
		}
		return node, nil
	}
}

// parseFloorDiv parses the `//` level, one notch tighter than `*`/`/`.
func (p *Parser) parseFloorDiv() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseMod()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skipValue(lexer.OPERATOR, "//")
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseMod()
		if err != nil {
			return nil, err
		}
		node = &FloorDiv{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}

// parseMod parses the `%` level.
func (p *Parser) parseMod() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skipValue(lexer.OPERATOR, "%")
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		node = &Mod{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}

// parsePow parses the `**` level, left-associative (see file comment).
func (p *Parser) parsePow() (Node, error) {
	lineno, colno := p.tokens.mustPeekPos()
	node, err := p.parseUnary(false)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.skipValue(lexer.OPERATOR, "**")
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseUnary(false)
		if err != nil {
			return nil, err
		}
		node = &Pow{position: newPosition(lineno, colno), Left: node, Right: right}
	}
}
