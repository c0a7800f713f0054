/*
File    : rpal/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/rpal/lexer"
	"github.com/akashmaji946/rpal/srcpos"
)

// SyntaxError reports an unexpected token or a missing terminator while
// parsing, per spec §7. It carries the offending token, a human
// description of what was expected, and the source position.
type SyntaxError struct {
	Token    lexer.Token
	Expected string
	Pos      srcpos.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: expected %s but found %s at %s", e.Expected, e.Token, e.Pos)
}
