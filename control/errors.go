/*
File    : rpal/control/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package control

import (
	"fmt"

	"github.com/akashmaji946/rpal/ast"
)

// FlattenError reports a standardized-tree node shape the flattener
// does not recognize. Like standardizer.StandardizationError, this
// should be unreachable for any tree produced by package standardizer
// — it indicates the two packages have fallen out of sync.
type FlattenError struct {
	Message string
	Node    *ast.Node
}

func (e *FlattenError) Error() string {
	return fmt.Sprintf("FlattenError: %s", e.Message)
}
