/*
File    : rpal/builtins/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import "fmt"

// TypeError reports a builtin or operator applied to a value of the
// wrong runtime type, e.g. Stem applied to an integer. The CSE machine
// wraps these into a cse.RuntimeError carrying the offending control
// element and environment id (spec §7); this package only needs to
// name what went wrong.
type TypeError struct {
	Where    string
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s expects %s, got %s", e.Where, e.Expected, e.Got)
}

// ArityError reports a Curried builtin applied to more arguments than
// it takes, e.g. a fully-applied Conc handed a third operand.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("builtin %q expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

// DivisionByZeroError reports integer division by zero.
type DivisionByZeroError struct {
	Dividend string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division of %s by zero", e.Dividend)
}
