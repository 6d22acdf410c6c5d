/*
File    : gojinja/parser/extension_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gojinja/lexer"
)

// loudExtension claims the `shout` tag and wraps its body's rendered
// text in a single synthetic TemplateData node, upper-cased - a stand-in
// for a real "transform this block's output" plug-in tag.
type loudExtension struct{}

func (loudExtension) Tags() []string { return []string{"shout"} }

func (loudExtension) Parse(p *Parser, nodes NodesAPI, lx LexerAPI) (Node, error) {
	lineno, colno := 0, 0
	if tok, ok := p.PeekToken(); ok {
		lineno, colno = tok.Lineno, tok.Colno
	}
	if err := p.AdvanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	body, err := p.ParseUntilBlocks("endshout")
	if err != nil {
		return nil, err
	}
	tok, ok := p.NextToken()
	if !ok || tok.Value != "endshout" {
		return nil, p.Fail("expected endshout")
	}
	if err := p.AdvanceAfterBlockEnd(); err != nil {
		return nil, err
	}

	var text string
	for _, child := range body.Children {
		if out, ok := child.(*Output); ok {
			if data, ok := out.Child.(*TemplateData); ok {
				text += data.Data
			}
		}
	}
	return nodes.NewOutput(lineno, colno, nodes.NewTemplateData(lineno, colno, strings.ToUpper(text))), nil
}

func TestExtension_CustomTag(t *testing.T) {
	root, err := Parse("t", "{% shout %}hi{% endshout %}", &Options{
		Extensions: []Extension{loudExtension{}},
	})
	assert.NoError(t, err)
	assert.Len(t, root.Children, 1)

	out, can := root.Children[0].(*Output)
	assert.True(t, can)
	data, can := out.Child.(*TemplateData)
	assert.True(t, can)
	assert.Equal(t, "HI", data.Data)
}

func TestExtension_UnknownTagFails(t *testing.T) {
	_, err := Parse("t", "{% frobnicate %}", nil)
	assert.Error(t, err)

	tplErr, can := err.(*TemplateError)
	assert.True(t, can)
	assert.Contains(t, tplErr.Message, "unknown block tag")
}

func TestExtension_LexerAPITags(t *testing.T) {
	// Sanity check that LexerAPI's Tags() surfaces the configured
	// delimiters to an extension that wants them, without the extension
	// needing direct access to *lexer.Lexer.
	var captured lexer.Tags
	probe := probeExtension{capture: &captured}
	_, err := Parse("t", "{% probe %}", &Options{Extensions: []Extension{probe}})
	assert.NoError(t, err)
	assert.Equal(t, "{{", captured.VariableStart)
}

type probeExtension struct {
	capture *lexer.Tags
}

func (probeExtension) Tags() []string { return []string{"probe"} }

func (p probeExtension) Parse(pr *Parser, nodes NodesAPI, lx LexerAPI) (Node, error) {
	*p.capture = lx.Tags()
	if err := pr.AdvanceAfterBlockEnd(); err != nil {
		return nil, err
	}
	return nil, nil
}
