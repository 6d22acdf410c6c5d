/*
File    : gojinja/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// Node is the base interface every AST variant implements. Nodes are
// pure data carriers: they own their children and carry the source
// position of the token that produced them, and nothing else. Semantic
// validation, scoping, and evaluation are all out of scope for this
// package - a Node here never does more than describe what the source
// said.
type Node interface {
	// Position returns the 1-based line and column of the token the
	// node was built from. The synthetic top-level Root is the only
	// variant allowed to report the zero value.
	Position() (lineno, colno int)
}

// position is embedded by every concrete node type to satisfy Node.
type position struct {
	Lineno int
	Colno  int
}

func (p position) Position() (int, int) { return p.Lineno, p.Colno }

func newPosition(lineno, colno int) position { return position{Lineno: lineno, Colno: colno} }

// Root is the tree returned by the public parse entry point: an
// ordered, finite sequence of top-level Output/statement/block nodes.
type Root struct {
	position
	Children []Node
}

// AddChild appends a top-level node to the root's body.
func (r *Root) AddChild(n Node) { r.Children = append(r.Children, n) }

// NodeList is the generic "sequence of nodes" container used for
// statement bodies (if/for/block/macro bodies), aggregate element lists,
// and call-signature argument lists.
type NodeList struct {
	position
	Children []Node
}

// AddChild appends an element to the list.
func (l *NodeList) AddChild(n Node) { l.Children = append(l.Children, n) }

// newNodeList builds an empty NodeList positioned at (lineno, colno).
func newNodeList(lineno, colno int) *NodeList {
	return &NodeList{position: newPosition(lineno, colno)}
}
