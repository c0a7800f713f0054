/*
File    : rpal/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package builtins implements RPAL's fixed primitive library (spec
// §4.5/§9: Print, Conc, Stern, Stem, Order, Null, the Is* type
// predicates, and ItoS) plus the operator table the CSE machine's Op
// control elements dispatch through (arithmetic, comparison, and
// logical operators). The registration pattern — a package-level table
// of name/callback pairs installed into the root environment at
// startup — is grounded on go-mix/std's Builtin{Name, Callback} plus
// init()-time registration (std/tuple.go, std/builtins.go), generalized
// from GoMixObject to values.Value and from a mutable global slice to
// a single root environment built once per program run.
package builtins

import (
	"fmt"
	"io"
	"math/big"

	"github.com/akashmaji946/rpal/environment"
	"github.com/akashmaji946/rpal/values"
)

// RootEnvironment builds frame 0, binding every fixed primitive. w
// receives everything Print writes, letting cmd/rpal and package repl
// each point output wherever they need to (stdout, a REPL's
// colorized writer, or a test's bytes.Buffer).
func RootEnvironment(w io.Writer) *environment.Environment {
	root := environment.NewRoot()
	for _, b := range table(w) {
		root.Vars[b.Name] = values.Builtin{Name: b.Name, Arity: b.Arity, Fn: b.Fn}
	}
	return root
}

func table(w io.Writer) []values.Builtin {
	return []values.Builtin{
		{Name: "Print", Arity: 1, Fn: func(args ...values.Value) (values.Value, error) {
			fmt.Fprint(w, args[0].String())
			return args[0], nil
		}},
		{Name: "Conc", Arity: 2, Fn: concFn},
		{Name: "Stem", Arity: 1, Fn: stemFn},
		{Name: "Stern", Arity: 1, Fn: sternFn},
		{Name: "Order", Arity: 1, Fn: orderFn},
		{Name: "Null", Arity: 1, Fn: nullFn},
		{Name: "Isinteger", Arity: 1, Fn: isType(values.IntegerType)},
		{Name: "Isstring", Arity: 1, Fn: isType(values.StringType)},
		{Name: "Istruthvalue", Arity: 1, Fn: isType(values.TruthType)},
		{Name: "Isfunction", Arity: 1, Fn: isType(values.FunctionType)},
		{Name: "Istuple", Arity: 1, Fn: isTuple},
		{Name: "Isdummy", Arity: 1, Fn: isType(values.DummyType)},
		{Name: "ItoS", Arity: 1, Fn: itosFn},
	}
}

func concFn(args ...values.Value) (values.Value, error) {
	s1, ok := args[0].(values.Str)
	if !ok {
		return nil, &TypeError{Where: "Conc", Expected: "string", Got: string(args[0].Type())}
	}
	s2, ok := args[1].(values.Str)
	if !ok {
		return nil, &TypeError{Where: "Conc", Expected: "string", Got: string(args[1].Type())}
	}
	return values.Str{Val: s1.Val + s2.Val}, nil
}

func stemFn(args ...values.Value) (values.Value, error) {
	s, ok := args[0].(values.Str)
	if !ok {
		return nil, &TypeError{Where: "Stem", Expected: "string", Got: string(args[0].Type())}
	}
	if s.Val == "" {
		return values.Str{Val: ""}, nil
	}
	return values.Str{Val: s.Val[:1]}, nil
}

func sternFn(args ...values.Value) (values.Value, error) {
	s, ok := args[0].(values.Str)
	if !ok {
		return nil, &TypeError{Where: "Stern", Expected: "string", Got: string(args[0].Type())}
	}
	if len(s.Val) <= 1 {
		return values.Str{Val: ""}, nil
	}
	return values.Str{Val: s.Val[1:]}, nil
}

func orderFn(args ...values.Value) (values.Value, error) {
	switch t := args[0].(type) {
	case values.Tuple:
		return values.NewInteger(int64(t.Order())), nil
	case values.Nil:
		return values.NewInteger(0), nil
	default:
		return nil, &TypeError{Where: "Order", Expected: "tuple", Got: string(args[0].Type())}
	}
}

func nullFn(args ...values.Value) (values.Value, error) {
	switch t := args[0].(type) {
	case values.Tuple:
		return values.Truth{Val: t.Order() == 0}, nil
	case values.Nil:
		return values.Truth{Val: true}, nil
	case values.Str:
		return values.Truth{Val: t.Val == ""}, nil
	default:
		return nil, &TypeError{Where: "Null", Expected: "tuple or string", Got: string(args[0].Type())}
	}
}

func isTuple(args ...values.Value) (values.Value, error) {
	switch args[0].(type) {
	case values.Tuple, values.Nil:
		return values.Truth{Val: true}, nil
	default:
		return values.Truth{Val: false}, nil
	}
}

func isType(want values.Type) func(args ...values.Value) (values.Value, error) {
	return func(args ...values.Value) (values.Value, error) {
		return values.Truth{Val: args[0].Type() == want}, nil
	}
}

func itosFn(args ...values.Value) (values.Value, error) {
	i, ok := args[0].(values.Integer)
	if !ok {
		return nil, &TypeError{Where: "ItoS", Expected: "integer", Got: string(args[0].Type())}
	}
	return values.Str{Val: i.Val.String()}, nil
}

// Apply applies a Builtin or Curried function value to a single
// argument, following RPAL's gamma rule for the built-in cases; the
// cse package handles Closure/EtaClosure itself since those need the
// control/environment stacks, and Apply returns a TypeError for any
// other value. Apply is only concerned with completing or continuing
// currying of a Builtin.
func Apply(fn values.Value, arg values.Value) (values.Value, error) {
	switch f := fn.(type) {
	case values.Builtin:
		if f.Arity == 1 {
			return f.Fn(arg)
		}
		return values.Curried{Fn: f, Applied: []values.Value{arg}}, nil
	case values.Curried:
		applied := append(append([]values.Value{}, f.Applied...), arg)
		if len(applied) > f.Fn.Arity {
			return nil, &ArityError{Name: f.Fn.Name, Expected: f.Fn.Arity, Got: len(applied)}
		}
		if len(applied) == f.Fn.Arity {
			return f.Fn.Fn(applied...)
		}
		return values.Curried{Fn: f.Fn, Applied: applied}, nil
	default:
		return nil, &TypeError{Where: "application", Expected: "function", Got: string(fn.Type())}
	}
}

// ApplyOperator dispatches one of the fixed arithmetic, comparison, or
// logical operators (spec §4.2's grammar, §4.5's operator set) to its
// operand(s), as popped off the CSE machine's stack by an Op control
// element.
func ApplyOperator(tag string, operands []values.Value) (values.Value, error) {
	switch tag {
	case "+", "-", "*", "/", "**":
		return arithmetic(tag, operands)
	case "gr", "ge", "ls", "le", "eq", "ne":
		return compare(tag, operands)
	case "or", "&":
		return logical(tag, operands)
	case "not":
		return not(operands)
	case "aug":
		return aug(operands)
	default:
		return nil, &TypeError{Where: "operator " + tag, Expected: "a recognized operator", Got: tag}
	}
}

func asInt(v values.Value, where string) (*big.Int, error) {
	i, ok := v.(values.Integer)
	if !ok {
		return nil, &TypeError{Where: where, Expected: "integer", Got: string(v.Type())}
	}
	return i.Val, nil
}

func arithmetic(tag string, operands []values.Value) (values.Value, error) {
	if len(operands) == 1 {
		x, err := asInt(operands[0], tag)
		if err != nil {
			return nil, err
		}
		result := new(big.Int)
		switch tag {
		case "+":
			result.Set(x)
		case "-":
			result.Neg(x)
		default:
			return nil, &TypeError{Where: tag, Expected: "unary + or -", Got: tag}
		}
		return values.Integer{Val: result}, nil
	}

	x, err := asInt(operands[0], tag)
	if err != nil {
		return nil, err
	}
	y, err := asInt(operands[1], tag)
	if err != nil {
		return nil, err
	}
	result := new(big.Int)
	switch tag {
	case "+":
		result.Add(x, y)
	case "-":
		result.Sub(x, y)
	case "*":
		result.Mul(x, y)
	case "/":
		if y.Sign() == 0 {
			return nil, &DivisionByZeroError{Dividend: x.String()}
		}
		result.Quo(x, y)
	case "**":
		if y.Sign() < 0 {
			return nil, &TypeError{Where: "**", Expected: "nonnegative exponent", Got: y.String()}
		}
		result.Exp(x, y, nil)
	}
	return values.Integer{Val: result}, nil
}

func compare(tag string, operands []values.Value) (values.Value, error) {
	x, y := operands[0], operands[1]
	if xi, ok := x.(values.Integer); ok {
		yi, ok := y.(values.Integer)
		if !ok {
			return nil, &TypeError{Where: tag, Expected: "integer", Got: string(y.Type())}
		}
		c := xi.Val.Cmp(yi.Val)
		return values.Truth{Val: compareResult(tag, c)}, nil
	}
	if xs, ok := x.(values.Str); ok {
		ys, ok := y.(values.Str)
		if !ok {
			return nil, &TypeError{Where: tag, Expected: "string", Got: string(y.Type())}
		}
		var c int
		switch {
		case xs.Val < ys.Val:
			c = -1
		case xs.Val > ys.Val:
			c = 1
		}
		return values.Truth{Val: compareResult(tag, c)}, nil
	}
	return nil, &TypeError{Where: tag, Expected: "integer or string", Got: string(x.Type())}
}

func compareResult(tag string, c int) bool {
	switch tag {
	case "gr":
		return c > 0
	case "ge":
		return c >= 0
	case "ls":
		return c < 0
	case "le":
		return c <= 0
	case "eq":
		return c == 0
	case "ne":
		return c != 0
	}
	return false
}

func logical(tag string, operands []values.Value) (values.Value, error) {
	x, ok := operands[0].(values.Truth)
	if !ok {
		return nil, &TypeError{Where: tag, Expected: "truth value", Got: string(operands[0].Type())}
	}
	y, ok := operands[1].(values.Truth)
	if !ok {
		return nil, &TypeError{Where: tag, Expected: "truth value", Got: string(operands[1].Type())}
	}
	if tag == "or" {
		return values.Truth{Val: x.Val || y.Val}, nil
	}
	return values.Truth{Val: x.Val && y.Val}, nil
}

func not(operands []values.Value) (values.Value, error) {
	x, ok := operands[0].(values.Truth)
	if !ok {
		return nil, &TypeError{Where: "not", Expected: "truth value", Got: string(operands[0].Type())}
	}
	return values.Truth{Val: !x.Val}, nil
}

// aug implements tuple augmentation: (T aug X) appends X as T's last
// element, building a new tuple rather than mutating T (spec §3's
// tuples are immutable).
func aug(operands []values.Value) (values.Value, error) {
	left, right := operands[0], operands[1]
	var elems []values.Value
	switch l := left.(type) {
	case values.Tuple:
		elems = append(elems, l.Elements...)
	case values.Nil:
		// empty tuple, nothing to carry forward
	default:
		return nil, &TypeError{Where: "aug", Expected: "tuple", Got: string(left.Type())}
	}
	elems = append(elems, right)
	return values.NewTuple(elems...), nil
}
