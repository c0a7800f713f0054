/*
File    : rpal/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c is an ASCII letter, the only character class
// allowed to start an identifier (spec §4.1).
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWhitespace reports whether b is a space, tab, newline, carriage
// return, form feed, or vertical tab.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
