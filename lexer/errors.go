/*
File    : rpal/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/rpal/srcpos"
)

// LexicalError reports an unrecognized character or an unterminated
// string literal, per spec §7.
type LexicalError struct {
	Message string
	Pos     srcpos.Position
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("LexicalError: %s at %s", e.Message, e.Pos)
}
