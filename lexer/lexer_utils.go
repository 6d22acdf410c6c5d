/*
File    : gojinja/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// Used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentStart reports whether c can begin a SYMBOL token: a letter or
// underscore.
func isIdentStart(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

// isIdentPart reports whether c can continue a SYMBOL token once started.
func isIdentPart(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_'
}

// isWhitespace checks if the given byte is ASCII whitespace: space, tab,
// newline, carriage return, form feed, vertical tab.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// booleanSpellings maps every surface spelling the lexer recognizes as
// a BOOLEAN token to nothing in particular - membership is all that
// matters. Only "true" and "false" are accepted once parsing reaches
// parser.parsePrimary; the rest exist so that misspellings like "True"
// produce an "invalid boolean" error instead of silently becoming an
// unrelated SYMBOL.
var booleanSpellings = map[string]bool{
	"true": true, "false": true,
	"True": true, "False": true,
	"TRUE": true, "FALSE": true,
}

// noneSpellings is the (intentionally narrow) set of spellings the
// lexer tags as a NONE token.
var noneSpellings = map[string]bool{
	"none": true,
}
