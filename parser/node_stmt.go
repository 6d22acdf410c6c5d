/*
File    : gojinja/parser/node_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// Output wraps any node destined for the rendered stream: plain text
// (TemplateData), an interpolated expression, or an augmented macro call
// built by the `call` tag.
type Output struct {
	position
	Child Node
}

// TemplateData is a run of raw, unprocessed template text.
type TemplateData struct {
	position
	Data string
}

// If is a `{% if %}...{% elif %}...{% else %}...{% endif %}` node. Else
// is nil when no else/elif branch was present.
type If struct {
	position
	Cond Node
	Body *NodeList
	Else *NodeList
}

// IfAsync is the `{% ifAsync %}` variant, kept as a distinct node
// rather than a flag on If so that a rendering backend can dispatch on
// type alone.
type IfAsync struct {
	position
	Cond Node
	Body *NodeList
	Else *NodeList
}

// For is a `{% for %}...{% else %}...{% endfor %}` loop. Name is either
// a Symbol (single loop variable) or an Array wrapping more than one
// comma-separated target.
type For struct {
	position
	Name Node
	Arr  Node
	Body *NodeList
	Else *NodeList
}

// AsyncEach and AsyncAll are the `{% asyncEach %}`/`{% asyncAll %}`
// loop variants, structurally identical to For but kept distinct so a
// rendering backend can tell them apart without inspecting a flag.
type AsyncEach struct {
	position
	Name Node
	Arr  Node
	Body *NodeList
	Else *NodeList
}
type AsyncAll struct {
	position
	Name Node
	Arr  Node
	Body *NodeList
	Else *NodeList
}

// Macro is a `{% macro name(args) %}...{% endmacro %}` definition.
type Macro struct {
	position
	Name Node
	Args *NodeList
	Body *NodeList
}

// Caller wraps a `{% call %}` block's body as the synthetic `caller`
// keyword argument injected into the augmented macro invocation.
type Caller struct {
	position
	Args *NodeList
	Body *NodeList
}

// Import is `{% import "tpl" as name [with/without context] %}`.
// WithContext is nil when neither clause was present.
type Import struct {
	position
	Template    Node
	Target      Node
	WithContext *bool
}

// FromImport is `{% from "tpl" import a, b as c [with/without context] %}`.
// Names holds Symbol children for bare imports and Pair(Symbol, Symbol)
// children for aliased ones.
type FromImport struct {
	position
	Template    Node
	Names       *NodeList
	WithContext *bool
}

// Block is a `{% block name %}...{% endblock %}` template-inheritance
// slot.
type Block struct {
	position
	Name string
	Body *NodeList
}

// Extends is `{% extends "parent" %}`.
type Extends struct {
	position
	Template Node
}

// Include is `{% include "tpl" [ignore missing] %}`.
type Include struct {
	position
	Template      Node
	IgnoreMissing bool
}

// Set is `{% set a, b = expr %}`. Targets holds one or more primary
// expressions (usually Symbols).
type Set struct {
	position
	Targets []Node
	Value   Node
}

// Capture wraps a rendered subtree as a string value: the body-form of
// `{% set %}...{% endset %}` and the body of `{% filter %}...{% endfilter %}`
// both produce one.
type Capture struct {
	position
	Body *NodeList
}
