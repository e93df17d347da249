// Package textutil holds the small string helpers shared by the lexer and
// the document model.
package textutil

import "strings"

// cutset is the set of characters removed by Trim.
const cutset = " \t\r\n"

// Trim returns s without leading and trailing spaces, tabs, carriage
// returns and line feeds. Other Unicode whitespace is preserved.
func Trim(s string) string {
	return strings.Trim(s, cutset)
}

// StripComment returns the part of line before the first ';'.
// There is no escaping: a ';' inside a value always starts a comment.
func StripComment(line string) string {
	before, _, _ := strings.Cut(line, ";")
	return before
}
