/*
File    : gojinja/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a hand-written recursive-descent parser for a
Jinja-style template language. It turns the token stream produced by
package lexer into an AST rooted at a *Root node.

The parser handles two intertwined sublanguages: the statement/expression
language (control-flow tags, a twelve-level expression grammar, filters,
aggregates) and a plug-in tag protocol that lets third-party Extensions
claim additional block tags. Evaluation, identifier resolution, filter
registry lookup, and template inheritance resolution are all out of
scope - this package only ever produces a tree, never walks one.
*/
package parser

import "github.com/akashmaji946/gojinja/lexer"

// Parser holds all mutable state for a single parse. Each instance owns
// its cursor and extension list; nothing is shared across instances, and
// nothing here is safe for concurrent use from multiple goroutines at
// once - the parser is single-threaded and synchronous.
type Parser struct {
	name   string // template name, threaded into every TemplateError
	tokens *cursor

	// dropLeadingWhitespace is the whitespace-control latch: set when a
	// closing marker ends in '-', consumed (and cleared) at the next
	// DATA emission or block-statement boundary.
	dropLeadingWhitespace bool

	// dropLeadingNewline is the weaker latch armed by the TrimBlocks
	// config default after a block or comment tag closes without a '-':
	// the next DATA token loses its first newline, nothing more.
	dropLeadingNewline bool

	// trimBlocks and lstripBlocks carry lexer.Config's environment-wide
	// whitespace-control defaults into the driver.
	trimBlocks   bool
	lstripBlocks bool

	// breakOnBlocks is the ordered set of block-tag names that cause
	// parseNodes to yield control back to its caller instead of
	// dispatching them as statements - the cooperative reentrancy
	// mechanism nested parsing is built on (e.g. an `if` body stops at
	// `elif`/`else`/`endif`).
	breakOnBlocks []string

	extensions []Extension
}

// New builds a Parser directly over anything satisfying the lexer
// contract - a real *lexer.Lexer, or a stub in tests. Most callers want
// Parse instead, which also constructs the lexer.
func New(tokens tokenSource) *Parser {
	return &Parser{tokens: newCursor(tokens)}
}

// Options configures Parse's lexer and extension set.
type Options struct {
	Config     lexer.Config
	Extensions []Extension
}

// Parse is the convenience public entry point: it builds a lexer over
// src, wires the given extensions, and returns the parsed Root.
func Parse(name, src string, opts *Options) (*Root, error) {
	cfg := lexer.DefaultConfig
	var exts []Extension
	if opts != nil {
		if (opts.Config != lexer.Config{}) {
			cfg = opts.Config
		}
		exts = opts.Extensions
	}
	lx := lexer.New(src, cfg)
	p := &Parser{
		name:         name,
		tokens:       newCursor(lx),
		extensions:   exts,
		trimBlocks:   cfg.TrimBlocks,
		lstripBlocks: cfg.LstripBlocks,
	}
	return p.ParseAsRoot()
}

// WithExtension registers an extension after construction; it is
// equivalent to passing it in Options.Extensions up front.
func (p *Parser) WithExtension(ext Extension) *Parser {
	p.extensions = append(p.extensions, ext)
	return p
}

// fail raises a TemplateError positioned at the next peekable token,
// or at (0, 0) when the stream is already exhausted.
func (p *Parser) fail(format string, args ...any) error {
	lineno, colno := 0, 0
	if tok, ok := p.tokens.peek(); ok {
		lineno, colno = tok.Lineno, tok.Colno
	}
	e := newError(lineno, colno, format, args...)
	e.Name = p.name
	return e
}

// failAt raises a TemplateError at an explicit, already-known position.
func (p *Parser) failAt(lineno, colno int, format string, args ...any) error {
	e := newError(lineno, colno, format, args...)
	e.Name = p.name
	return e
}
