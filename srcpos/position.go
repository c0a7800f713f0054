/*
File    : rpal/srcpos/position.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package srcpos defines the source-location type shared by the lexer,
// parser and standardizer (and the ast nodes they pass along), so each
// of those stages' error types can point back at the same line/column
// coordinates without importing one another. The control and cse error
// types carry no source position.
package srcpos

import "fmt"

// Position is a 1-based line/column coordinate into the original source text.
type Position struct {
	Line   int
	Column int
}

// String renders a position as "line L column C", the form used by the
// lexer, parser and standardizer error messages (spec §7: "<Stage>Error: <message> at line L column C").
func (p Position) String() string {
	return fmt.Sprintf("line %d column %d", p.Line, p.Column)
}
