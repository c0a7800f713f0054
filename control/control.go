/*
File    : rpal/control/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package control implements the flattener (spec §4.4): it walks a
// standardized tree and linearizes it into an ordered list of control
// structures ("deltas"), each itself an ordered list of Elements. The
// CSE machine (package cse) consumes these deltas instead of walking
// the tree directly, exactly as spec §4.4/§4.5 describe: "flatten once,
// then run the control-stack-environment loop over flat structures."
package control

import (
	"github.com/akashmaji946/rpal/ast"
)

// ElementKind discriminates the handful of control-element shapes a
// flattened program is built from.
type ElementKind int

const (
	// Literal elements carry the ast node verbatim (Integer, String,
	// True, False, Nil, Dummy) for the CSE machine to turn into a
	// values.Value when it is pushed onto the stack.
	Literal ElementKind = iota
	// Name elements are identifier lookups against the environment.
	Name
	// Gamma is the application marker: pop a function and an argument
	// from the stack, apply, push the result.
	Gamma
	// LambdaElement pushes a not-yet-captured closure: the delta index
	// of the lambda's body and its bound-variable pattern.
	LambdaElement
	// TauElement builds an n-tuple from the top n stack values.
	TauElement
	// Op is a unary or binary built-in operator token (+, -, *, /, **,
	// gr, ge, ls, le, eq, ne, or, &, not, aug) applied to the top of
	// the stack.
	Op
	// Beta marks a conditional: pop a truth value, then follow either
	// the "then" or the "else" delta index recorded alongside it.
	Beta
	// YStarElement pushes the Y* fixed-point combinator value.
	YStarElement
)

// Element is one slot of a Delta's control list.
type Element struct {
	Kind ElementKind

	// Literal carries the literal ast node (Kind == Literal).
	Literal *ast.Node

	// Name carries the identifier text (Kind == Name).
	Name string

	// DeltaIndex carries the target delta index (Kind == LambdaElement,
	// or Beta's then-branch).
	DeltaIndex int
	// ElseIndex carries the else-branch delta index (Kind == Beta).
	ElseIndex int

	// BoundVar carries the lambda's bound-variable pattern — a lone
	// identifier node or a TagComma tuple pattern (Kind == LambdaElement).
	BoundVar *ast.Node

	// Arity carries the tuple size (Kind == TauElement).
	Arity int

	// Op carries the operator tag, e.g. "+", "gr", "not" (Kind == Op).
	Op string
	// Arity of Op: 1 for unary, 2 for binary.
	OpArity int
}

// Delta is one control structure: a flat, ordered instruction list
// produced from one lambda body (or the program's top level, which is
// delta 0).
type Delta struct {
	Elements []Element
}
