/*
File    : gojinja/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gojinja/lexer"
)

func TestParse_Data(t *testing.T) {
	root, err := Parse("t", "hello world", nil)
	assert.NoError(t, err)
	assert.Len(t, root.Children, 1)

	out, can := root.Children[0].(*Output)
	assert.True(t, can)
	data, can := out.Child.(*TemplateData)
	assert.True(t, can)
	assert.Equal(t, "hello world", data.Data)
}

func TestParse_VariableExpression(t *testing.T) {
	root, err := Parse("t", "hello {{ name }}", nil)
	assert.NoError(t, err)
	assert.Len(t, root.Children, 2)

	out, can := root.Children[1].(*Output)
	assert.True(t, can)
	sym, can := out.Child.(*Symbol)
	assert.True(t, can)
	assert.Equal(t, "name", sym.Name)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 ** 2 must parse as 1 + (2 * (3 ** 2))
	root, err := Parse("t", "{{ 1 + 2 * 3 ** 2 }}", nil)
	assert.NoError(t, err)

	out := root.Children[0].(*Output)
	add, can := out.Child.(*Add)
	assert.True(t, can)

	left, can := add.Left.(*Literal)
	assert.True(t, can)
	assert.Equal(t, int64(1), left.Value)

	mul, can := add.Right.(*Mul)
	assert.True(t, can)

	mulLeft, can := mul.Left.(*Literal)
	assert.True(t, can)
	assert.Equal(t, int64(2), mulLeft.Value)

	pow, can := mul.Right.(*Pow)
	assert.True(t, can)
	powLeft := pow.Left.(*Literal)
	powRight := pow.Right.(*Literal)
	assert.Equal(t, int64(3), powLeft.Value)
	assert.Equal(t, int64(2), powRight.Value)
}

// TestParse_PowLeftAssociative locks in the deliberate left-associative
// `**` behavior: `2 ** 3 ** 2` parses as `(2 ** 3) ** 2`, not the
// right-associative reading a math-first reader might expect.
func TestParse_PowLeftAssociative(t *testing.T) {
	root, err := Parse("t", "{{ 2 ** 3 ** 2 }}", nil)
	assert.NoError(t, err)

	out := root.Children[0].(*Output)
	outer, can := out.Child.(*Pow)
	assert.True(t, can)

	inner, can := outer.Left.(*Pow)
	assert.True(t, can)
	assert.Equal(t, int64(2), inner.Left.(*Literal).Value)
	assert.Equal(t, int64(3), inner.Right.(*Literal).Value)
	assert.Equal(t, int64(2), outer.Right.(*Literal).Value)
}

func TestParse_FilterWithArgs(t *testing.T) {
	root, err := Parse("t", "{{ a | upper(2) }}", nil)
	assert.NoError(t, err)

	out := root.Children[0].(*Output)
	filter, can := out.Child.(*Filter)
	assert.True(t, can)
	assert.Equal(t, "upper", filter.Name)
	assert.Len(t, filter.Args.Children, 2)

	operand, can := filter.Args.Children[0].(*Symbol)
	assert.True(t, can)
	assert.Equal(t, "a", operand.Name)

	arg, can := filter.Args.Children[1].(*Literal)
	assert.True(t, can)
	assert.Equal(t, int64(2), arg.Value)
}

func TestParse_IfElse(t *testing.T) {
	root, err := Parse("t", "{% if x %}yes{% else %}no{% endif %}", nil)
	assert.NoError(t, err)
	assert.Len(t, root.Children, 1)

	ifNode, can := root.Children[0].(*If)
	assert.True(t, can)
	assert.Len(t, ifNode.Body.Children, 1)
	assert.NotNil(t, ifNode.Else)
	assert.Len(t, ifNode.Else.Children, 1)
}

func TestParse_ForMultiTarget(t *testing.T) {
	root, err := Parse("t", "{% for k, v in d %}{{ k }}{% endfor %}", nil)
	assert.NoError(t, err)

	forNode, can := root.Children[0].(*For)
	assert.True(t, can)

	arr, can := forNode.Name.(*Array)
	assert.True(t, can)
	assert.Len(t, arr.Children, 2)
	assert.Equal(t, "k", arr.Children[0].(*Symbol).Name)
	assert.Equal(t, "v", arr.Children[1].(*Symbol).Name)
}

func TestParse_RawWhitespaceTrim(t *testing.T) {
	root, err := Parse("t", "{%- raw -%}  {{ x }}  {%- endraw -%}", nil)
	assert.NoError(t, err)
	assert.Len(t, root.Children, 1)

	out, can := root.Children[0].(*Output)
	assert.True(t, can)
	data, can := out.Child.(*TemplateData)
	assert.True(t, can)
	assert.Equal(t, "  {{ x }}  ", data.Data)
}

// TestParse_TrimBlocks checks the environment-wide TrimBlocks default:
// the first newline after a block tag disappears, and nothing else does.
func TestParse_TrimBlocks(t *testing.T) {
	cfg := lexer.DefaultConfig
	cfg.TrimBlocks = true
	root, err := Parse("t", "{% if x %}\nhi\n{% endif %}\nrest", &Options{Config: cfg})
	assert.NoError(t, err)

	ifNode, can := root.Children[0].(*If)
	assert.True(t, can)
	body := ifNode.Body.Children[0].(*Output).Child.(*TemplateData)
	assert.Equal(t, "hi\n", body.Data)

	tail := root.Children[1].(*Output).Child.(*TemplateData)
	assert.Equal(t, "rest", tail.Data)
}

// TestParse_LstripBlocks checks the LstripBlocks default: a block tag's
// line indentation is stripped, but whitespace mid-line survives.
func TestParse_LstripBlocks(t *testing.T) {
	cfg := lexer.DefaultConfig
	cfg.LstripBlocks = true
	root, err := Parse("t", "a\n  {% if x %}hi{% endif %}", &Options{Config: cfg})
	assert.NoError(t, err)

	lead := root.Children[0].(*Output).Child.(*TemplateData)
	assert.Equal(t, "a\n", lead.Data)

	root2, err := Parse("t", "a  {% if x %}hi{% endif %}", &Options{Config: cfg})
	assert.NoError(t, err)
	lead2 := root2.Children[0].(*Output).Child.(*TemplateData)
	assert.Equal(t, "a  ", lead2.Data)
}

func TestParse_FromImportAlias(t *testing.T) {
	root, err := Parse("t", `{% from "t" import a, b as c %}`, nil)
	assert.NoError(t, err)

	fromNode, can := root.Children[0].(*FromImport)
	assert.True(t, can)
	assert.Len(t, fromNode.Names.Children, 2)

	first, can := fromNode.Names.Children[0].(*Symbol)
	assert.True(t, can)
	assert.Equal(t, "a", first.Name)

	second, can := fromNode.Names.Children[1].(*Pair)
	assert.True(t, can)
	assert.Equal(t, "b", second.Key.(*Symbol).Name)
	assert.Equal(t, "c", second.Value.(*Symbol).Name)
}

func TestParse_FromImportUnderscoreRejected(t *testing.T) {
	_, err := Parse("t", `{% from "t" import _x %}`, nil)
	assert.Error(t, err)

	tplErr, can := err.(*TemplateError)
	assert.True(t, can)
	assert.Contains(t, tplErr.Message, "names starting with an underscore cannot be imported")
}

func TestParse_InvalidMultiIndex(t *testing.T) {
	_, err := Parse("t", "{{ x[1,2] }}", nil)
	assert.Error(t, err)

	tplErr, can := err.(*TemplateError)
	assert.True(t, can)
	assert.Contains(t, tplErr.Message, "invalid index")
}

func TestParse_SetBodyForm(t *testing.T) {
	root, err := Parse("t", "{% set x %}hi{% endset %}", nil)
	assert.NoError(t, err)

	setNode, can := root.Children[0].(*Set)
	assert.True(t, can)
	_, can = setNode.Value.(*Capture)
	assert.True(t, can)
}

func TestParse_CallTag(t *testing.T) {
	root, err := Parse("t", "{% call greet(\"x\") %}hi{% endcall %}", nil)
	assert.NoError(t, err)

	out, can := root.Children[0].(*Output)
	assert.True(t, can)
	fn, can := out.Child.(*FunCall)
	assert.True(t, can)

	var foundCaller bool
	for _, child := range fn.Args.Children {
		if kw, ok := child.(*KeywordArgs); ok {
			for _, pair := range kw.Children {
				if pair.Key.(*Symbol).Name == "caller" {
					foundCaller = true
				}
			}
		}
	}
	assert.True(t, foundCaller)
}
