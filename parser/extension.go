/*
File    : gojinja/parser/extension.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The plug-in tag protocol: third-party packages register an Extension
that claims a set of block tag names, and the statement dispatcher
hands control to its Parse hook when one of those names is seen. The
hook runs synchronously on the same call stack and may use any of the
exported Parser methods below to consume tokens and build its own
subtree.
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// NodesAPI is the node-construction contract handed to extensions so
// they can build the same node shapes this package uses without
// depending on its unexported constructors.
type NodesAPI interface {
	NewNodeList(lineno, colno int) *NodeList
	NewOutput(lineno, colno int, child Node) *Output
	NewTemplateData(lineno, colno int, data string) *TemplateData
}

// LexerAPI is the subset of the lexer contract exposed directly to
// extensions, mirroring tokenSource.
type LexerAPI interface {
	NextToken() (lexer.Token, bool)
	BackN(count int)
	ExtractRegex(pattern string) ([]string, bool)
	Tags() lexer.Tags
}

// Extension lets a consumer claim additional block tag names. Tags
// returns the ordered set of names it recognizes; Parse is invoked with
// the symbol already consumed, positioned right after the tag name, and
// must return the node standing in for the whole `{% name ... %}...{% endname %}`
// (or single-tag) construct.
type Extension interface {
	Tags() []string
	Parse(p *Parser, nodes NodesAPI, lx LexerAPI) (Node, error)
}

// The following methods are the parser operations extensions may call
// freely and reentrantly - peeking/consuming tokens, parsing a nested
// expression, or parsing a body up to one of a set of terminating
// block tags.

// PeekToken exposes the cursor's one-slot lookahead to extensions.
func (p *Parser) PeekToken() (lexer.Token, bool) {
	return p.tokens.peek()
}

// NextToken consumes and returns the next token, skipping whitespace.
func (p *Parser) NextToken() (lexer.Token, bool) {
	return p.tokens.next(false)
}

// ParseExpression parses one full expression using the normal grammar.
func (p *Parser) ParseExpression() (Node, error) {
	return p.parseExpression()
}

// ParseUntilBlocks parses a body, stopping as soon as a BLOCK_START's
// first symbol matches one of names, and leaves that symbol unconsumed
// for the caller to dispatch on. The terminator set is saved and
// restored around the call even if it returns an error.
func (p *Parser) ParseUntilBlocks(names ...string) (*NodeList, error) {
	return p.parseUntilBlocks(names...)
}

// AdvanceAfterBlockEnd consumes the BLOCK_END terminating the current
// tag, applying the same whitespace-control bookkeeping the built-in
// dispatch uses.
func (p *Parser) AdvanceAfterBlockEnd() error {
	return p.advanceAfterBlockEnd()
}

// Fail raises a TemplateError positioned at the next peekable token.
func (p *Parser) Fail(format string, args ...any) error {
	return p.fail(format, args...)
}

// nodesAPI is the package's own NodesAPI implementation, handed to
// extension parse hooks.
type nodesAPI struct{}

func (nodesAPI) NewNodeList(lineno, colno int) *NodeList { return newNodeList(lineno, colno) }
func (nodesAPI) NewOutput(lineno, colno int, child Node) *Output {
	return &Output{position: newPosition(lineno, colno), Child: child}
}
func (nodesAPI) NewTemplateData(lineno, colno int, data string) *TemplateData {
	return &TemplateData{position: newPosition(lineno, colno), Data: data}
}

// lexerAPI adapts the parser's underlying tokenSource to LexerAPI.
type lexerAPI struct{ src tokenSource }

func (l lexerAPI) NextToken() (lexer.Token, bool)               { return l.src.NextToken() }
func (l lexerAPI) BackN(count int)                              { l.src.BackN(count) }
func (l lexerAPI) ExtractRegex(pattern string) ([]string, bool) { return l.src.ExtractRegex(pattern) }
func (l lexerAPI) Tags() lexer.Tags                             { return l.src.Tags() }

// dispatchExtension looks up an extension claiming name and invokes its
// parse hook, or fails with "unknown block tag" when none claims it.
func (p *Parser) dispatchExtension(name string, lineno, colno int) (Node, error) {
	for _, ext := range p.extensions {
		for _, tag := range ext.Tags() {
			if tag == name {
				return ext.Parse(p, nodesAPI{}, lexerAPI{src: p.tokens.src})
			}
		}
	}
	return nil, p.failAt(lineno, colno, "unknown block tag: %s", name)
}
