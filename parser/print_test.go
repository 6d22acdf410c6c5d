/*
File    : gojinja/parser/print_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// reparse is the round-trip helper used throughout this file: parse src,
// print it back out, then parse the printed text again. Print only
// promises the two trees are structurally equal, not that the printed
// text is byte-identical to src (whitespace-control markers are not
// always recoverable), so tests compare children counts and node shapes
// rather than raw strings.
func reparse(t *testing.T, src string) (*Root, *Root, string) {
	t.Helper()
	root1, err := Parse("t", src, nil)
	assert.NoError(t, err)
	printed := Print(root1)
	root2, err := Parse("t", printed, nil)
	assert.NoError(t, err)
	return root1, root2, printed
}

func TestPrint_RoundTrip_Variable(t *testing.T) {
	root1, root2, printed := reparse(t, "hello {{ name }}!")
	assert.Equal(t, len(root1.Children), len(root2.Children))
	assert.Contains(t, printed, "{{ name }}")
}

func TestPrint_RoundTrip_IfElse(t *testing.T) {
	root1, root2, _ := reparse(t, "{% if x %}yes{% else %}no{% endif %}")
	assert.Equal(t, len(root1.Children), len(root2.Children))

	if1 := root1.Children[0].(*If)
	if2 := root2.Children[0].(*If)
	assert.Equal(t, len(if1.Body.Children), len(if2.Body.Children))
	assert.Equal(t, len(if1.Else.Children), len(if2.Else.Children))
}

func TestPrint_RoundTrip_ElifChain(t *testing.T) {
	src := "{% if a %}1{% elif b %}2{% else %}3{% endif %}"
	_, root2, printed := reparse(t, src)
	assert.Contains(t, printed, "elif")

	if2, can := root2.Children[0].(*If)
	assert.True(t, can)
	assert.NotNil(t, if2.Else)
	assert.Len(t, if2.Else.Children, 1)
	_, can = if2.Else.Children[0].(*If)
	assert.True(t, can)
}

func TestPrint_RoundTrip_For(t *testing.T) {
	root1, root2, printed := reparse(t, "{% for k, v in d %}{{ k }}{% endfor %}")
	assert.Contains(t, printed, "for k, v in d")

	for1 := root1.Children[0].(*For)
	for2 := root2.Children[0].(*For)
	assert.Equal(t, len(for1.Name.(*Array).Children), len(for2.Name.(*Array).Children))
}

func TestPrint_RoundTrip_SetBodyForm(t *testing.T) {
	_, root2, printed := reparse(t, "{% set x %}hi{% endset %}")
	assert.Contains(t, printed, "{% set x %}")

	set2, can := root2.Children[0].(*Set)
	assert.True(t, can)
	_, can = set2.Value.(*Capture)
	assert.True(t, can)
}

func TestPrint_RoundTrip_FilterTag(t *testing.T) {
	_, root2, printed := reparse(t, "{% filter upper %}hi{% endfilter %}")
	assert.Contains(t, printed, "{% filter upper %}")

	out2, can := root2.Children[0].(*Output)
	assert.True(t, can)
	_, can = out2.Child.(*Filter)
	assert.True(t, can)
}

func TestPrint_RoundTrip_FilterTagWithArgs(t *testing.T) {
	_, root2, printed := reparse(t, "{% filter truncate(5) %}hello world{% endfilter %}")
	assert.Contains(t, printed, "{% filter truncate(5) %}")

	out2, can := root2.Children[0].(*Output)
	assert.True(t, can)
	f2, can := out2.Child.(*Filter)
	assert.True(t, can)
	assert.Len(t, f2.Args.Children, 2)
}

func TestPrint_RoundTrip_CallTag(t *testing.T) {
	_, root2, printed := reparse(t, "{% call greet(\"x\") %}hi{% endcall %}")
	assert.Contains(t, printed, "{% call")
	assert.NotContains(t, printed, "caller=")

	out2, can := root2.Children[0].(*Output)
	assert.True(t, can)
	_, can = out2.Child.(*FunCall)
	assert.True(t, can)
}

func TestPrint_RoundTrip_Macro(t *testing.T) {
	root1, root2, _ := reparse(t, "{% macro greet(name) %}hi {{ name }}{% endmacro %}")
	m1 := root1.Children[0].(*Macro)
	m2 := root2.Children[0].(*Macro)
	assert.Equal(t, len(m1.Args.Children), len(m2.Args.Children))
	assert.Equal(t, len(m1.Body.Children), len(m2.Body.Children))
}

func TestPrint_RoundTrip_FromImport(t *testing.T) {
	_, root2, printed := reparse(t, `{% from "t" import a, b as c %}`)
	assert.Contains(t, printed, "import a, b as c")

	from2 := root2.Children[0].(*FromImport)
	assert.Len(t, from2.Names.Children, 2)
}

func TestPrint_RoundTrip_Expression(t *testing.T) {
	root1, root2, _ := reparse(t, "{{ 1 + 2 * 3 ** 2 }}")
	out1 := root1.Children[0].(*Output)
	out2 := root2.Children[0].(*Output)
	_, can1 := out1.Child.(*Add)
	_, can2 := out2.Child.(*Add)
	assert.True(t, can1)
	assert.True(t, can2)
}
