/*
File    : gojinja/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "fmt"

// TemplateError is the single error type this package ever returns. It
// carries 1-based line/column coordinates (0, 0 when raised after the
// token stream is exhausted) and an optional template Name
// for embedders that parse more than one file through the same Parser
// configuration.
//
// Every routine returns a *TemplateError immediately and stops; nothing
// is recovered locally.
type TemplateError struct {
	Message string
	Lineno  int
	Colno   int
	Name    string
}

func (e *TemplateError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("[%d:%d] %s in %s", e.Lineno, e.Colno, e.Message, e.Name)
	}
	return fmt.Sprintf("[%d:%d] %s", e.Lineno, e.Colno, e.Message)
}

// newError builds a TemplateError at an explicit position.
func newError(lineno, colno int, format string, args ...any) *TemplateError {
	return &TemplateError{Message: fmt.Sprintf(format, args...), Lineno: lineno, Colno: colno}
}
