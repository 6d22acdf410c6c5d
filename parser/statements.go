/*
File    : gojinja/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The statement parser: one routine per built-in block tag, entered once
the top-level driver has seen a BLOCK_START and
confirmed its tag name isn't a break-block for the current nesting
level. parseStatement is the dispatch table; everything else is one
tag's grammar.
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/gojinja/lexer"
)

// parseStatement consumes the tag-name SYMBOL (already peeked by the
// driver) and dispatches to the matching tag routine, falling through
// to registered extensions for anything it doesn't recognize.
func (p *Parser) parseStatement() (Node, error) {
	tok, ok := p.tokens.next(false)
	if !ok {
		return nil, p.fail("tag name expected")
	}
	lineno, colno := tok.Lineno, tok.Colno

	switch tok.Value {
	case "if":
		return p.parseIf(false, lineno, colno)
	case "ifAsync":
		return p.parseIf(true, lineno, colno)
	case "for":
		return p.parseFor(forKindFor, lineno, colno)
	case "asyncEach":
		return p.parseFor(forKindAsyncEach, lineno, colno)
	case "asyncAll":
		return p.parseFor(forKindAsyncAll, lineno, colno)
	case "block":
		return p.parseBlock(lineno, colno)
	case "extends":
		return p.parseExtends(lineno, colno)
	case "include":
		return p.parseInclude(lineno, colno)
	case "set":
		return p.parseSet(lineno, colno)
	case "macro":
		return p.parseMacro(lineno, colno)
	case "call":
		return p.parseCall(lineno, colno)
	case "import":
		return p.parseImport(lineno, colno)
	case "from":
		return p.parseFrom(lineno, colno)
	case "filter":
		return p.parseFilterTag(lineno, colno)
	case "raw":
		return p.parseRaw(false, lineno, colno)
	case "verbatim":
		return p.parseRaw(true, lineno, colno)
	case "endraw", "endverbatim":
		// Reached only after parseRaw rewinds the lexer to just before
		// its own terminator; consuming it here is what lets the raw
		// block's closing "-%}" drive whitespace control normally.
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		return p.dispatchExtension(tok.Value, lineno, colno)
	}
}

// parsePrimaryList parses one or more comma-separated primaries with
// postfix suppressed, the shape both `for` targets and `set` targets
// take.
func (p *Parser) parsePrimaryList() ([]Node, error) {
	first, err := p.parsePrimary(true)
	if err != nil {
		return nil, err
	}
	list := []Node{first}
	for {
		ok, err := p.skip(lexer.COMMA)
		if err != nil {
			return nil, err
		}
		if !ok {
			return list, nil
		}
		next, err := p.parsePrimary(true)
		if err != nil {
			return nil, err
		}
		list = append(list, next)
	}
}

// parseOptionalWithContext parses an optional `with context` / `without
// context` clause, returning nil when neither is present.
func (p *Parser) parseOptionalWithContext() (*bool, error) {
	if ok, err := p.skipSymbol("with"); err != nil {
		return nil, err
	} else if ok {
		if err := p.expectSymbol("context"); err != nil {
			return nil, err
		}
		v := true
		return &v, nil
	}
	if ok, err := p.skipSymbol("without"); err != nil {
		return nil, err
	} else if ok {
		if err := p.expectSymbol("context"); err != nil {
			return nil, err
		}
		v := false
		return &v, nil
	}
	return nil, nil
}

func buildIfNode(isAsync bool, lineno, colno int, cond Node, body, elseBody *NodeList) Node {
	if isAsync {
		return &IfAsync{position: newPosition(lineno, colno), Cond: cond, Body: body, Else: elseBody}
	}
	return &If{position: newPosition(lineno, colno), Cond: cond, Body: body, Else: elseBody}
}

// parseIf implements `if`/`ifAsync` including the `elif`/`elseif`
// chain: the recursive call on elif consumes its own closing endif, so
// the outer call never sees it.
func (p *Parser) parseIf(isAsync bool, lineno, colno int) (Node, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("elif", "elseif", "else", "endif")
	if err != nil {
		return nil, err
	}

	term, ok := p.tokens.next(false)
	if !ok {
		return nil, p.fail("expected elif, else, or endif")
	}

	switch term.Value {
	case "elif", "elseif":
		nested, err := p.parseIf(isAsync, term.Lineno, term.Colno)
		if err != nil {
			return nil, err
		}
		elseBody := newNodeList(term.Lineno, term.Colno)
		elseBody.AddChild(nested)
		return buildIfNode(isAsync, lineno, colno, cond, body, elseBody), nil

	case "else":
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		elseBody, err := p.parseUntilBlocks("endif")
		if err != nil {
			return nil, err
		}
		endTok, ok := p.tokens.next(false)
		if !ok || endTok.Value != "endif" {
			return nil, p.fail("expected endif")
		}
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		return buildIfNode(isAsync, lineno, colno, cond, body, elseBody), nil

	case "endif":
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		return buildIfNode(isAsync, lineno, colno, cond, body, nil), nil

	default:
		return nil, p.failAt(term.Lineno, term.Colno, "expected elif, else, or endif, got %q", term.Value)
	}
}

type forKind int

const (
	forKindFor forKind = iota
	forKindAsyncEach
	forKindAsyncAll
)

// forEndNames maps a loop kind to its own terminator name, shared with
// the common "else" branch.
var forEndNames = map[forKind]string{
	forKindFor:       "endfor",
	forKindAsyncEach: "endeach",
	forKindAsyncAll:  "endall",
}

// parseFor implements `for`/`asyncEach`/`asyncAll`.
func (p *Parser) parseFor(kind forKind, lineno, colno int) (Node, error) {
	targets, err := p.parsePrimaryList()
	if err != nil {
		return nil, err
	}
	var name Node
	if len(targets) == 1 {
		name = targets[0]
	} else {
		arr := &Array{position: newPosition(lineno, colno)}
		for _, t := range targets {
			arr.AddChild(t)
		}
		name = arr
	}

	if err := p.expectSymbol("in"); err != nil {
		return nil, err
	}
	arrExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}

	endName := forEndNames[kind]
	body, err := p.parseUntilBlocks(endName, "else")
	if err != nil {
		return nil, err
	}

	term, ok := p.tokens.next(false)
	if !ok {
		return nil, p.fail("expected %s", endName)
	}

	var elseBody *NodeList
	switch term.Value {
	case "else":
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		elseBody, err = p.parseUntilBlocks(endName)
		if err != nil {
			return nil, err
		}
		endTok, ok := p.tokens.next(false)
		if !ok || endTok.Value != endName {
			return nil, p.fail("expected %s", endName)
		}
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
	case endName:
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
	default:
		return nil, p.failAt(term.Lineno, term.Colno, "expected %s or else, got %q", endName, term.Value)
	}

	switch kind {
	case forKindAsyncEach:
		return &AsyncEach{position: newPosition(lineno, colno), Name: name, Arr: arrExpr, Body: body, Else: elseBody}, nil
	case forKindAsyncAll:
		return &AsyncAll{position: newPosition(lineno, colno), Name: name, Arr: arrExpr, Body: body, Else: elseBody}, nil
	default:
		return &For{position: newPosition(lineno, colno), Name: name, Arr: arrExpr, Body: body, Else: elseBody}, nil
	}
}

// parseBlock implements `{% block name %}...{% endblock [name] %}`.
func (p *Parser) parseBlock(lineno, colno int) (Node, error) {
	nameTok, err := p.expect(lexer.SYMBOL)
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("endblock")
	if err != nil {
		return nil, err
	}
	endTok, ok := p.tokens.next(false)
	if !ok || endTok.Value != "endblock" {
		return nil, p.fail("expected endblock")
	}
	// The repeated block name after `endblock` is optional.
	if repeat, ok := p.tokens.peek(); ok && repeat.Type == lexer.SYMBOL {
		p.tokens.next(false)
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Block{position: newPosition(lineno, colno), Name: nameTok.Value, Body: body}, nil
}

func (p *Parser) parseExtends(lineno, colno int) (Node, error) {
	tmpl, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Extends{position: newPosition(lineno, colno), Template: tmpl}, nil
}

func (p *Parser) parseInclude(lineno, colno int) (Node, error) {
	tmpl, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	ignoreMissing := false
	if ok, err := p.skipSymbol("ignore"); err != nil {
		return nil, err
	} else if ok {
		if err := p.expectSymbol("missing"); err != nil {
			return nil, err
		}
		ignoreMissing = true
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Include{position: newPosition(lineno, colno), Template: tmpl, IgnoreMissing: ignoreMissing}, nil
}

// parseSet implements both forms of `set`: the single-expression
// assignment and the body-capturing `{% set x %}...{% endset %}` form.
func (p *Parser) parseSet(lineno, colno int) (Node, error) {
	targets, err := p.parsePrimaryList()
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
		if err := p.advanceAfterBlockEnd(); err != nil {
			return nil, err
		}
		return &Set{position: newPosition(lineno, colno), Targets: targets, Value: value}, nil
	}

	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("endset")
	if err != nil {
		return nil, err
	}
	endTok, ok := p.tokens.next(false)
	if !ok || endTok.Value != "endset" {
		return nil, p.fail("expected endset")
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Set{
		position: newPosition(lineno, colno),
		Targets:  targets,
		Value:    &Capture{position: newPosition(lineno, colno), Body: body},
	}, nil
}

func (p *Parser) parseMacro(lineno, colno int) (Node, error) {
	name, err := p.parsePrimary(true)
	if err != nil {
		return nil, err
	}
	args, err := p.parseSignature(false, false)
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("endmacro")
	if err != nil {
		return nil, err
	}
	endTok, ok := p.tokens.next(false)
	if !ok || endTok.Value != "endmacro" {
		return nil, p.fail("expected endmacro")
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Macro{position: newPosition(lineno, colno), Name: name, Args: args, Body: body}, nil
}

// parseCall implements `{% call [(args)] macro(...) %}...{% endcall %}`:
// the block's body becomes a Caller, injected as the `caller` keyword
// argument of the macro invocation.
func (p *Parser) parseCall(lineno, colno int) (Node, error) {
	callerArgs, err := p.parseSignature(true, false)
	if err != nil {
		return nil, err
	}
	if callerArgs == nil {
		callerArgs = newNodeList(lineno, colno)
	}

	callExpr, err := p.parsePrimary(false)
	if err != nil {
		return nil, err
	}
	funCall, ok := callExpr.(*FunCall)
	if !ok {
		return nil, p.failAt(lineno, colno, "call tag requires a macro invocation")
	}

	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("endcall")
	if err != nil {
		return nil, err
	}
	endTok, ok := p.tokens.next(false)
	if !ok || endTok.Value != "endcall" {
		return nil, p.fail("expected endcall")
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}

	caller := &Caller{position: newPosition(lineno, colno), Args: callerArgs, Body: body}

	var kwargs *KeywordArgs
	for _, c := range funCall.Args.Children {
		if kw, ok := c.(*KeywordArgs); ok {
			kwargs = kw
		}
	}
	if kwargs == nil {
		kwargs = &KeywordArgs{position: newPosition(lineno, colno)}
		funCall.Args.AddChild(kwargs)
	}
	kwargs.AddChild(&Pair{
		position: newPosition(lineno, colno),
		Key:      &Symbol{position: newPosition(lineno, colno), Name: "caller"},
		Value:    caller,
	})

	return &Output{position: newPosition(lineno, colno), Child: funCall}, nil
}

func (p *Parser) parseImport(lineno, colno int) (Node, error) {
	tmpl, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("as"); err != nil {
		return nil, err
	}
	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	withContext, err := p.parseOptionalWithContext()
	if err != nil {
		return nil, err
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &Import{position: newPosition(lineno, colno), Template: tmpl, Target: target, WithContext: withContext}, nil
}

// parseFrom implements `{% from "tpl" import a, b as c [with/without
// context] %}`. Note withContext is reassigned on every name in the
// list rather than parsed once after the loop, so a `with context`
// written mid-list is accepted and the last clause wins.
func (p *Parser) parseFrom(lineno, colno int) (Node, error) {
	tmpl, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("import"); err != nil {
		return nil, err
	}

	names := newNodeList(lineno, colno)
	var withContext *bool
	first := true
	for {
		tok, ok := p.tokens.peek()
		if !ok || tok.Type == lexer.BLOCK_END {
			break
		}
		if !first {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		first = false

		nameTok, err := p.expect(lexer.SYMBOL)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(nameTok.Value, "_") {
			return nil, p.failAt(nameTok.Lineno, nameTok.Colno, "names starting with an underscore cannot be imported")
		}

		var nameNode Node = &Symbol{position: newPosition(nameTok.Lineno, nameTok.Colno), Name: nameTok.Value}
		if ok, err := p.skipSymbol("as"); err != nil {
			return nil, err
		} else if ok {
			aliasTok, err := p.expect(lexer.SYMBOL)
			if err != nil {
				return nil, err
			}
			nameNode = &Pair{
				position: newPosition(nameTok.Lineno, nameTok.Colno),
				Key:      &Symbol{position: newPosition(nameTok.Lineno, nameTok.Colno), Name: nameTok.Value},
				Value:    &Symbol{position: newPosition(aliasTok.Lineno, aliasTok.Colno), Name: aliasTok.Value},
			}
		}
		names.AddChild(nameNode)

		if wc, err := p.parseOptionalWithContext(); err != nil {
			return nil, err
		} else if wc != nil {
			withContext = wc
		}
	}

	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return &FromImport{position: newPosition(lineno, colno), Template: tmpl, Names: names, WithContext: withContext}, nil
}

// parseFilterTag implements `{% filter name(args) %}...{% endfilter %}`,
// wrapping the captured body as the filter's operand.
func (p *Parser) parseFilterTag(lineno, colno int) (Node, error) {
	name, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}
	var extraArgs *NodeList
	if tok, ok := p.tokens.peek(); ok && tok.Type == lexer.LEFT_PAREN {
		extraArgs, err = p.parseSignature(false, false)
		if err != nil {
			return nil, err
		}
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseUntilBlocks("endfilter")
	if err != nil {
		return nil, err
	}
	endTok, ok := p.tokens.next(false)
	if !ok || endTok.Value != "endfilter" {
		return nil, p.fail("expected endfilter")
	}
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}

	args := newNodeList(lineno, colno)
	args.AddChild(&Capture{position: newPosition(lineno, colno), Body: body})
	if extraArgs != nil {
		for _, c := range extraArgs.Children {
			args.AddChild(c)
		}
	}
	filter := &Filter{position: newPosition(lineno, colno), Name: name, Args: args}
	return &Output{position: newPosition(lineno, colno), Child: filter}, nil
}

// rawPattern builds the lexer escape-hatch regex for the `raw`/`verbatim`
// scan. Go's regexp package has no lookahead support, so the
// terminator's optional trailing '-' is matched (not asserted) and
// included in the full match; parseRaw backs the lexer up past exactly
// the terminator's own markup, which is the part that needs re-lexing.
func rawPattern(openWord, closeWord string) string {
	return `(?s)(.*?)\{%-?\s*(` + openWord + `|` + closeWord + `)\s*-?%\}`
}

// parseRaw implements `raw`/`verbatim`: everything up to the matching
// `endraw`/`endverbatim` is captured byte-for-byte as a single
// TemplateData, with nested raw/endraw pairs tracked by depth so a
// raw block can itself contain the words "raw"/"endraw" as data.
func (p *Parser) parseRaw(verbatim bool, lineno, colno int) (Node, error) {
	if err := p.advanceAfterBlockEnd(); err != nil {
		return nil, err
	}

	openWord, closeWord := "raw", "endraw"
	if verbatim {
		openWord, closeWord = "verbatim", "endverbatim"
	}
	pattern := rawPattern(openWord, closeWord)

	var content strings.Builder
	depth := 1
	for {
		groups, ok := p.tokens.extractRegex(pattern)
		if !ok {
			return nil, p.failAt(lineno, colno, "missing end tag for %s", openWord)
		}
		text, tag := groups[1], groups[2]

		if tag == openWord {
			depth++
			content.WriteString(groups[0])
			continue
		}

		depth--
		if depth == 0 {
			content.WriteString(text)
			p.tokens.backN(len(groups[0]) - len(text))
			break
		}
		content.WriteString(groups[0])
	}

	data := &TemplateData{position: newPosition(lineno, colno), Data: content.String()}
	return &Output{position: newPosition(lineno, colno), Child: data}, nil
}
