/*
File    : rpal/values/values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package values defines the runtime value representation produced and
// consumed by the CSE machine. Every RPAL value implements the Value
// interface, mirroring go-mix/objects's GoMixType discriminator plus
// ToString/ToObject pair, but the concrete set is RPAL's fixed value
// universe (§3, §9) rather than GoMix's general-purpose object system:
// arbitrary-precision integers, strings, truth values, nil, dummy,
// immutable tuples, and the two function representations (Closure and
// EtaClosure) that the CSE machine's gamma rule unwinds.
package values

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/environment"
)

// Type names a value's runtime category, used by the Is* builtins and
// by RuntimeError messages.
type Type string

const (
	IntegerType  Type = "int"
	StringType   Type = "string"
	TruthType    Type = "bool"
	NilType      Type = "nil"
	DummyType    Type = "dummy"
	TupleType    Type = "tuple"
	FunctionType Type = "function"
)

// Value is the interface every RPAL runtime value implements.
type Value interface {
	// Type reports the value's runtime category.
	Type() Type
	// String renders the value the way Print (and the REPL) display it.
	String() string
}

// Integer is an arbitrary-precision RPAL integer (spec §9 deviates
// deliberately from go-mix/objects.Integer's int64 field: RPAL's
// factorial/fibonacci-style sample programs overflow int64 quickly).
type Integer struct {
	Val *big.Int
}

func NewInteger(v int64) Integer       { return Integer{Val: big.NewInt(v)} }
func (Integer) Type() Type             { return IntegerType }
func (i Integer) String() string       { return i.Val.String() }

// Str is an RPAL string value.
type Str struct {
	Val string
}

func (Str) Type() Type      { return StringType }
func (s Str) String() string { return s.Val }

// Truth is an RPAL boolean value.
type Truth struct {
	Val bool
}

func (Truth) Type() Type { return TruthType }
func (t Truth) String() string {
	if t.Val {
		return "true"
	}
	return "false"
}

// Nil is RPAL's empty-tuple value, written 'nil' in source.
type Nil struct{}

func (Nil) Type() Type      { return NilType }
func (Nil) String() string  { return "nil" }

// Dummy is RPAL's placeholder value, written 'dummy' in source.
type Dummy struct{}

func (Dummy) Type() Type     { return DummyType }
func (Dummy) String() string { return "dummy" }

// Tuple is RPAL's immutable, 1-indexed heterogeneous sequence. An empty
// Tuple and Nil are the same value (spec §3's "nil is the empty
// tuple"); NewTuple returns Nil{} when given no elements so the two
// never diverge at runtime.
type Tuple struct {
	Elements []Value
}

func NewTuple(elems ...Value) Value {
	if len(elems) == 0 {
		return Nil{}
	}
	return Tuple{Elements: elems}
}

func (Tuple) Type() Type { return TupleType }
func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// At returns the n'th element (1-indexed), per spec §3's tuple
// indexing convention, or an error if n is out of range.
func (t Tuple) At(n int) (Value, error) {
	if n < 1 || n > len(t.Elements) {
		return nil, fmt.Errorf("tuple index %d out of range [1,%d]", n, len(t.Elements))
	}
	return t.Elements[n-1], nil
}

// Order returns the tuple's arity.
func (t Tuple) Order() int { return len(t.Elements) }

// Closure is the value a lambda reduces to once it reaches the control
// stack: the flattened control structure's index (into the program's
// []control.Delta, stored here as a plain int to avoid an import
// cycle), the bound-variable pattern (a lone identifier or a TagComma
// tuple pattern, exactly as the standardizer left it), and the
// environment frame captured at the point the lambda was pushed.
type Closure struct {
	DeltaIndex int
	BoundVar   *ast.Node
	Captured   *environment.Environment
}

func (Closure) Type() Type { return FunctionType }
func (c Closure) String() string {
	return fmt.Sprintf("[lambda closure: %s]", boundVarDescriptor(c.BoundVar))
}

// boundVarDescriptor renders a lambda's bound-variable pattern the way
// Print's fixed "[lambda closure: bv]" format (spec §6) names it: a
// lone identifier by its own name, a tuple pattern as its
// comma-separated member names.
func boundVarDescriptor(n *ast.Node) string {
	if n == nil {
		return ""
	}
	if n.IsTag(ast.TagComma) {
		names := make([]string, len(n.Children))
		for i, c := range n.Children {
			names[i] = c.Ident
		}
		return strings.Join(names, ", ")
	}
	return n.Ident
}

// EtaClosure wraps a Closure to implement the Y* fixed-point rule
// (spec §4.5): applying an EtaClosure to an argument re-binds the
// closure's own name to the EtaClosure itself in a fresh frame before
// resuming the underlying closure, which is how 'rec' recursion
// reaches itself without a separate heap-allocated cell.
type EtaClosure struct {
	Name  string
	Inner Closure
}

func (EtaClosure) Type() Type { return FunctionType }
func (e EtaClosure) String() string {
	return fmt.Sprintf("[lambda closure: %s]", boundVarDescriptor(e.Inner.BoundVar))
}

// YStar is the fixed-point combinator value a control.YStarElement
// pushes. Applying it to a Closure is the only legal use (the
// standardizer only ever produces gamma(Y*, lambda(...)) from 'rec');
// the CSE machine turns that application into an EtaClosure.
type YStar struct{}

func (YStar) Type() Type      { return FunctionType }
func (YStar) String() string  { return "[Y*]" }

// Builtin wraps one of the fixed primitive functions of package
// builtins so it can travel through the environment and control stack
// like any other function value.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args ...Value) (Value, error)
}

func (Builtin) Type() Type { return FunctionType }
func (b Builtin) String() string {
	return fmt.Sprintf("[builtin: %s]", b.Name)
}

// Curried wraps a multi-argument Builtin (Conc) that still expects more
// arguments than it has received so far, so such builtins are applied
// one argument at a time rather than special-cased as variadic in the
// CSE machine. Single-argument builtins such as Print are applied
// directly and never become a Curried.
type Curried struct {
	Fn      Builtin
	Applied []Value
}

func (Curried) Type() Type { return FunctionType }
func (c Curried) String() string {
	return fmt.Sprintf("[builtin: %s, %d arg(s) applied]", c.Fn.Name, len(c.Applied))
}
