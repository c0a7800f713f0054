/*
File    : rpal/standardizer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package standardizer

import (
	"fmt"

	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/srcpos"
)

// StandardizationError reports a parse tree shape the standardizer does
// not recognize. Per spec §7 this should be unreachable on any tree
// produced by parser.Parse — it signals an internal inconsistency
// between the parser's output and the rewrite rules below, not a user
// error in the source program.
type StandardizationError struct {
	Message string
	Node    *ast.Node
	Pos     srcpos.Position
}

func (e *StandardizationError) Error() string {
	return fmt.Sprintf("StandardizationError: %s at %s", e.Message, e.Pos)
}
