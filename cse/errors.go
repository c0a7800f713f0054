/*
File    : rpal/cse/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cse

import (
	"fmt"

	"github.com/akashmaji946/rpal/control"
)

// RuntimeErrorKind classifies a runtime failure, per spec §7.
type RuntimeErrorKind string

const (
	UnboundIdentifier  RuntimeErrorKind = "UnboundIdentifier"
	TypeMismatch       RuntimeErrorKind = "TypeMismatch"
	ArityMismatch      RuntimeErrorKind = "ArityMismatch"
	IndexOutOfRange    RuntimeErrorKind = "IndexOutOfRange"
	DivisionByZero     RuntimeErrorKind = "DivisionByZero"
	InvalidConditional RuntimeErrorKind = "InvalidConditional"
)

// RuntimeError reports a failure during CSE execution. Per spec §7's
// "Failure semantics", it carries the offending control element and
// the id of the environment active when the failure occurred, so a
// diagnostic can point at both the operation and the scope it ran in.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
	EnvId   int
	Element control.Element
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError: %s (%s, environment %d)", e.Message, e.Kind, e.EnvId)
}
