/*
File    : gojinja/parser/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser's pretty-printer: walks a *Root and regenerates template
source text from it, a visitor keyed off node shape rather than a
generic string tag.

Print exists for two reasons: it backs the round-trip property test
(parse, Print, reparse, compare trees modulo whitespace-control
markers) and it is what the CLI shows a user instead of a raw tree
dump.
*/
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/gojinja/lexer"
)

// Print regenerates template source text from a parsed *Root. The output
// is not guaranteed to be byte-identical to the original source - in
// particular whitespace-control markers and exact literal spellings are
// not preserved - but reparsing it produces a structurally equal tree.
func Print(root *Root) string {
	var sb strings.Builder
	for _, child := range root.Children {
		printNode(&sb, child)
	}
	return sb.String()
}

func printNode(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Output:
		printOutput(sb, v)
	case *TemplateData:
		sb.WriteString(v.Data)
	case *If:
		printIf(sb, "if", v.Cond, v.Body, v.Else)
	case *IfAsync:
		printIf(sb, "ifAsync", v.Cond, v.Body, v.Else)
	case *For:
		printFor(sb, "for", "endfor", v.Name, v.Arr, v.Body, v.Else)
	case *AsyncEach:
		printFor(sb, "asyncEach", "endeach", v.Name, v.Arr, v.Body, v.Else)
	case *AsyncAll:
		printFor(sb, "asyncAll", "endall", v.Name, v.Arr, v.Body, v.Else)
	case *Block:
		fmt.Fprintf(sb, "{%% block %s %%}", v.Name)
		printBody(sb, v.Body)
		fmt.Fprintf(sb, "{%% endblock %s %%}", v.Name)
	case *Extends:
		fmt.Fprintf(sb, "{%% extends %s %%}", printExpr(v.Template))
	case *Include:
		sb.WriteString("{% include ")
		sb.WriteString(printExpr(v.Template))
		if v.IgnoreMissing {
			sb.WriteString(" ignore missing")
		}
		sb.WriteString(" %}")
	case *Set:
		printSet(sb, v)
	case *Macro:
		fmt.Fprintf(sb, "{%% macro %s%s %%}", printExpr(v.Name), printSignature(v.Args))
		printBody(sb, v.Body)
		sb.WriteString("{% endmacro %}")
	case *Import:
		sb.WriteString("{% import ")
		sb.WriteString(printExpr(v.Template))
		sb.WriteString(" as ")
		sb.WriteString(printExpr(v.Target))
		printWithContext(sb, v.WithContext)
		sb.WriteString(" %}")
	case *FromImport:
		sb.WriteString("{% from ")
		sb.WriteString(printExpr(v.Template))
		sb.WriteString(" import ")
		for i, name := range v.Names.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			printFromName(sb, name)
		}
		printWithContext(sb, v.WithContext)
		sb.WriteString(" %}")
	default:
		// A bare expression reached the statement position (shouldn't
		// happen for a well-formed tree, but fail soft rather than panic
		// on whatever an extension may have produced).
		sb.WriteString(printExpr(n))
	}
}

// printOutput prints an Output node: plain text (wrapped in a
// `{% raw %}` block when it contains template markers, as the text of a
// raw block can), a `{{ expr }}` interpolation, or - when Child is a
// Filter whose first argument is a Capture, or a FunCall carrying a
// `caller` keyword argument - the block forms the `filter` and `call`
// tags produce.
func printOutput(sb *strings.Builder, o *Output) {
	switch child := o.Child.(type) {
	case *TemplateData:
		if strings.Contains(child.Data, "{{") || strings.Contains(child.Data, "{%") || strings.Contains(child.Data, "{#") {
			sb.WriteString("{% raw %}" + child.Data + "{% endraw %}")
			return
		}
		sb.WriteString(child.Data)
	case *Filter:
		if cap, ok := filterCapture(child); ok {
			printFilterTag(sb, child, cap)
			return
		}
		fmt.Fprintf(sb, "{{ %s }}", printExpr(child))
	case *FunCall:
		if caller, ok := callerOf(child); ok {
			printCallTag(sb, child, caller)
			return
		}
		fmt.Fprintf(sb, "{{ %s }}", printExpr(child))
	default:
		fmt.Fprintf(sb, "{{ %s }}", printExpr(o.Child))
	}
}

// filterCapture reports whether f was built by the `filter` tag (its
// operand is a Capture rather than a user expression) and returns it.
func filterCapture(f *Filter) (*Capture, bool) {
	if len(f.Args.Children) == 0 {
		return nil, false
	}
	cap, ok := f.Args.Children[0].(*Capture)
	return cap, ok
}

func printFilterTag(sb *strings.Builder, f *Filter, body *Capture) {
	sb.WriteString("{% filter ")
	sb.WriteString(f.Name)
	if len(f.Args.Children) > 1 {
		sb.WriteString("(" + printArgList(f.Args.Children[1:]) + ")")
	}
	sb.WriteString(" %}")
	printBody(sb, body.Body)
	sb.WriteString("{% endfilter %}")
}

// callerOf reports whether a FunCall's keyword arguments carry a
// synthetic `caller` entry (the `call` tag's signature) and returns the
// Caller node.
func callerOf(f *FunCall) (*Caller, bool) {
	for _, c := range f.Args.Children {
		kw, ok := c.(*KeywordArgs)
		if !ok {
			continue
		}
		for _, pair := range kw.Children {
			if sym, ok := pair.Key.(*Symbol); ok && sym.Name == "caller" {
				if caller, ok := pair.Value.(*Caller); ok {
					return caller, true
				}
			}
		}
	}
	return nil, false
}

func printCallTag(sb *strings.Builder, f *FunCall, caller *Caller) {
	sb.WriteString("{% call")
	if len(caller.Args.Children) > 0 {
		sb.WriteString(printSignature(caller.Args))
	}
	sb.WriteString(" ")
	sb.WriteString(printExpr(f.Callee))
	sb.WriteString(printCallArgsWithoutCaller(f.Args))
	sb.WriteString(" %}")
	printBody(sb, caller.Body)
	sb.WriteString("{% endcall %}")
}

// printCallArgsWithoutCaller prints a FunCall's argument list with the
// synthetic `caller` keyword omitted, since it is represented by the
// surrounding `{% call %}...{% endcall %}` body instead.
func printCallArgsWithoutCaller(args *NodeList) string {
	var kept []Node
	for _, c := range args.Children {
		kw, ok := c.(*KeywordArgs)
		if !ok {
			kept = append(kept, c)
			continue
		}
		var pairs []*Pair
		for _, pair := range kw.Children {
			if sym, ok := pair.Key.(*Symbol); ok && sym.Name == "caller" {
				continue
			}
			pairs = append(pairs, pair)
		}
		if len(pairs) > 0 {
			kept = append(kept, &KeywordArgs{position: kw.position, Children: pairs})
		}
	}
	return "(" + printArgList(kept) + ")"
}

func printIf(sb *strings.Builder, open string, cond Node, body, elseBody *NodeList) {
	fmt.Fprintf(sb, "{%% %s %s %%}", open, printExpr(cond))
	printBody(sb, body)
	printIfElse(sb, elseBody)
	sb.WriteString("{% endif %}")
}

// printIfElse prints the else branch of an If/IfAsync. A single nested
// If/IfAsync child models an elif chain; anything else is a plain else
// body.
func printIfElse(sb *strings.Builder, elseBody *NodeList) {
	if elseBody == nil {
		return
	}
	if len(elseBody.Children) == 1 {
		switch nested := elseBody.Children[0].(type) {
		case *If:
			fmt.Fprintf(sb, "{%% elif %s %%}", printExpr(nested.Cond))
			printBody(sb, nested.Body)
			printIfElse(sb, nested.Else)
			return
		case *IfAsync:
			fmt.Fprintf(sb, "{%% elif %s %%}", printExpr(nested.Cond))
			printBody(sb, nested.Body)
			printIfElse(sb, nested.Else)
			return
		}
	}
	sb.WriteString("{% else %}")
	printBody(sb, elseBody)
}

func printFor(sb *strings.Builder, open, endTag string, name, arr Node, body, elseBody *NodeList) {
	sb.WriteString("{% ")
	sb.WriteString(open)
	sb.WriteString(" ")
	sb.WriteString(printForTargets(name))
	sb.WriteString(" in ")
	sb.WriteString(printExpr(arr))
	sb.WriteString(" %}")
	printBody(sb, body)
	if elseBody != nil {
		sb.WriteString("{% else %}")
		printBody(sb, elseBody)
	}
	fmt.Fprintf(sb, "{%% %s %%}", endTag)
}

// printForTargets prints a for-loop's target list: a single Symbol, or
// the Array wrapping more than one comma-separated target.
func printForTargets(name Node) string {
	if arr, ok := name.(*Array); ok {
		parts := make([]string, len(arr.Children))
		for i, c := range arr.Children {
			parts[i] = printExpr(c)
		}
		return strings.Join(parts, ", ")
	}
	return printExpr(name)
}

func printSet(sb *strings.Builder, s *Set) {
	targets := make([]string, len(s.Targets))
	for i, t := range s.Targets {
		targets[i] = printExpr(t)
	}
	joined := strings.Join(targets, ", ")

	if cap, ok := s.Value.(*Capture); ok {
		fmt.Fprintf(sb, "{%% set %s %%}", joined)
		printBody(sb, cap.Body)
		sb.WriteString("{% endset %}")
		return
	}
	fmt.Fprintf(sb, "{%% set %s = %s %%}", joined, printExpr(s.Value))
}

func printWithContext(sb *strings.Builder, withContext *bool) {
	if withContext == nil {
		return
	}
	if *withContext {
		sb.WriteString(" with context")
	} else {
		sb.WriteString(" without context")
	}
}

func printFromName(sb *strings.Builder, n Node) {
	if pair, ok := n.(*Pair); ok {
		sb.WriteString(printExpr(pair.Key))
		sb.WriteString(" as ")
		sb.WriteString(printExpr(pair.Value))
		return
	}
	sb.WriteString(printExpr(n))
}

func printBody(sb *strings.Builder, body *NodeList) {
	if body == nil {
		return
	}
	for _, child := range body.Children {
		printNode(sb, child)
	}
}

// printExpr renders any expression-level node as the fragment of
// template syntax inside a `{{ }}`/`{% %}` tag that would parse back to
// an equal node.
func printExpr(n Node) string {
	switch v := n.(type) {
	case *Literal:
		return printLiteral(v.Value)
	case *Symbol:
		return v.Name
	case *Array:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = printExpr(c)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Group:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = printExpr(c)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *Dict:
		parts := make([]string, len(v.Children))
		for i, p := range v.Children {
			parts[i] = printExpr(p.Key) + ": " + printExpr(p.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Pair:
		return printExpr(v.Key) + "=" + printExpr(v.Value)
	case *FunCall:
		return printExpr(v.Callee) + "(" + printArgList(v.Args.Children) + ")"
	case *Filter:
		operand := ""
		if len(v.Args.Children) > 0 {
			operand = printExpr(v.Args.Children[0])
		}
		s := operand + " | " + v.Name
		if len(v.Args.Children) > 1 {
			s += "(" + printArgList(v.Args.Children[1:]) + ")"
		}
		return s
	case *LookupVal:
		return printExpr(v.Target) + "[" + printExpr(v.Index) + "]"
	case *Compare:
		s := printExpr(v.Expr)
		for _, op := range v.Ops {
			s += " " + op.Op + " " + printExpr(op.Expr)
		}
		return s
	case *InlineIf:
		s := printExpr(v.Then) + " if " + printExpr(v.Cond)
		if v.Else != nil {
			s += " else " + printExpr(v.Else)
		}
		return s
	case *And:
		return printExpr(v.Left) + " and " + printExpr(v.Right)
	case *Or:
		return printExpr(v.Left) + " or " + printExpr(v.Right)
	case *Not:
		if in, ok := v.Target.(*In); ok {
			return printExpr(in.Left) + " not in " + printExpr(in.Right)
		}
		return "not " + printExpr(v.Target)
	case *In:
		return printExpr(v.Left) + " in " + printExpr(v.Right)
	case *Concat:
		return printExpr(v.Left) + " ~ " + printExpr(v.Right)
	case *Add:
		return printExpr(v.Left) + " + " + printExpr(v.Right)
	case *Sub:
		return printExpr(v.Left) + " - " + printExpr(v.Right)
	case *Mul:
		return printExpr(v.Left) + " * " + printExpr(v.Right)
	case *Div:
		return printExpr(v.Left) + " / " + printExpr(v.Right)
	case *FloorDiv:
		return printExpr(v.Left) + " // " + printExpr(v.Right)
	case *Mod:
		return printExpr(v.Left) + " % " + printExpr(v.Right)
	case *Pow:
		return printExpr(v.Left) + " ** " + printExpr(v.Right)
	case *Neg:
		return "-" + printExpr(v.Target)
	case *Pos:
		return "+" + printExpr(v.Target)
	case *Caller:
		return "caller" + printSignature(v.Args)
	default:
		return ""
	}
}

func printArgList(children []Node) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if kw, ok := c.(*KeywordArgs); ok {
			for _, pair := range kw.Children {
				parts = append(parts, printExpr(pair.Key)+"="+printExpr(pair.Value))
			}
			continue
		}
		parts = append(parts, printExpr(c))
	}
	return strings.Join(parts, ", ")
}

func printSignature(args *NodeList) string {
	if args == nil {
		return "()"
	}
	return "(" + printArgList(args.Children) + ")"
}

// printLiteral renders a Literal's scalar payload: a quoted string, a
// bare number/boolean, "none", or a `r/body/flags` regex. A float with
// no fractional digits keeps a ".0" so it reparses as a FLOAT.
func printLiteral(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "none"
	case *lexer.RegexValue:
		return "r/" + v.Body + "/" + v.Flags
	default:
		return fmt.Sprintf("%v", v)
	}
}
