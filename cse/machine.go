/*
File    : rpal/cse/machine.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package cse implements the control-stack-environment abstract
// machine that executes a flattened program (spec §4.5). Function
// application is modeled as ordinary Go recursion — applying a closure
// recursively evaluates its body delta in a fresh child environment
// and returns the resulting value — rather than as a hand-rolled
// "environment marker" bookkept on a shared control stack. Go's own
// call stack already is a control stack; reusing it keeps the
// traversal a direct, readable recursive-descent evaluator in the same
// spirit as go-mix/eval's tree-walking evaluator, adapted here to walk
// flattened control structures instead of the parse tree.
package cse

import (
	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/builtins"
	"github.com/akashmaji946/rpal/control"
	"github.com/akashmaji946/rpal/environment"
	"github.com/akashmaji946/rpal/values"
)

// Run executes deltas[0] (the program's top-level control structure)
// in root and returns the value the program reduces to.
func Run(deltas []control.Delta, root *environment.Environment) (values.Value, error) {
	return execute(deltas, 0, root)
}

// execute evaluates one control structure's elements, left to right,
// against a private value stack. A Beta element recursively executes
// whichever branch delta the condition selects and folds the result
// back into this stack; a Gamma element applies the function found on
// the stack, which for a Closure recurses into execute again with a
// fresh environment.
func execute(deltas []control.Delta, idx int, env *environment.Environment) (values.Value, error) {
	elems := deltas[idx].Elements
	var stack []values.Value

	push := func(v values.Value) { stack = append(stack, v) }
	pop := func() values.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, elem := range elems {
		switch elem.Kind {
		case control.Literal:
			v, err := literalValue(elem.Literal)
			if err != nil {
				return nil, wrapRuntime(err, TypeMismatch, env, elem)
			}
			push(v)

		case control.Name:
			v, ok := env.Lookup(elem.Name)
			if !ok {
				return nil, &RuntimeError{
					Kind:    UnboundIdentifier,
					Message: "unbound identifier \"" + elem.Name + "\"",
					EnvId:   env.Id,
					Element: elem,
				}
			}
			push(v.(values.Value))

		case control.YStarElement:
			push(values.YStar{})

		case control.LambdaElement:
			push(values.Closure{DeltaIndex: elem.DeltaIndex, BoundVar: elem.BoundVar, Captured: env})

		case control.TauElement:
			elements := make([]values.Value, elem.Arity)
			for i := elem.Arity - 1; i >= 0; i-- {
				elements[i] = pop()
			}
			push(values.NewTuple(elements...))

		case control.Op:
			operands := make([]values.Value, elem.OpArity)
			for i := elem.OpArity - 1; i >= 0; i-- {
				operands[i] = pop()
			}
			result, err := builtins.ApplyOperator(elem.Op, operands)
			if err != nil {
				kind := TypeMismatch
				if _, ok := err.(*builtins.DivisionByZeroError); ok {
					kind = DivisionByZero
				}
				return nil, wrapRuntime(err, kind, env, elem)
			}
			push(result)

		case control.Beta:
			cond, ok := pop().(values.Truth)
			if !ok {
				return nil, &RuntimeError{
					Kind:    InvalidConditional,
					Message: "conditional guard did not evaluate to a truth value",
					EnvId:   env.Id,
					Element: elem,
				}
			}
			branch := elem.ElseIndex
			if cond.Val {
				branch = elem.DeltaIndex
			}
			v, err := execute(deltas, branch, env)
			if err != nil {
				return nil, err
			}
			push(v)

		case control.Gamma:
			arg := pop()
			fn := pop()
			result, err := apply(deltas, fn, arg, env, elem)
			if err != nil {
				return nil, err
			}
			push(result)
		}
	}

	if len(stack) == 0 {
		return nil, &RuntimeError{Kind: TypeMismatch, Message: "control structure produced no value", EnvId: env.Id}
	}
	return stack[len(stack)-1], nil
}

// apply dispatches one function application. site identifies the
// Gamma element that triggered it, for RuntimeError diagnostics.
func apply(deltas []control.Delta, fn, arg values.Value, env *environment.Environment, site control.Element) (values.Value, error) {
	switch f := fn.(type) {
	case values.Closure:
		bindings, err := bindPattern(f.BoundVar, arg)
		if err != nil {
			return nil, wrapRuntime(err, ArityMismatch, env, site)
		}
		child := environment.New(f.Captured, bindings)
		return execute(deltas, f.DeltaIndex, child)

	case values.EtaClosure:
		// Y*'s fixed-point unwind: bind the closure's own name to the
		// eta-closure, letting a recursive call reach this same rule
		// again, then apply the freshly produced function to arg.
		unwound, err := apply(deltas, f.Inner, f, env, site)
		if err != nil {
			return nil, err
		}
		return apply(deltas, unwound, arg, env, site)

	case values.YStar:
		c, ok := arg.(values.Closure)
		if !ok {
			return nil, &RuntimeError{Kind: TypeMismatch, Message: "Y* applied to a non-function", EnvId: env.Id, Element: site}
		}
		return values.EtaClosure{Name: boundVarName(c.BoundVar), Inner: c}, nil

	case values.Builtin, values.Curried:
		result, err := builtins.Apply(f, arg)
		if err != nil {
			kind := TypeMismatch
			if _, ok := err.(*builtins.ArityError); ok {
				kind = ArityMismatch
			}
			return nil, wrapRuntime(err, kind, env, site)
		}
		return result, nil

	case values.Tuple:
		n, ok := arg.(values.Integer)
		if !ok {
			return nil, &RuntimeError{Kind: TypeMismatch, Message: "tuple selection requires an integer index", EnvId: env.Id, Element: site}
		}
		elem, err := f.At(int(n.Val.Int64()))
		if err != nil {
			return nil, &RuntimeError{Kind: IndexOutOfRange, Message: err.Error(), EnvId: env.Id, Element: site}
		}
		return elem, nil

	default:
		return nil, &RuntimeError{Kind: TypeMismatch, Message: "value is not callable", EnvId: env.Id, Element: site}
	}
}

// bindPattern destructures arg against a lambda's bound-variable
// pattern: a lone identifier binds directly, a TagComma pattern
// destructures a tuple element-wise, and TagEmptyTuple expects Nil.
func bindPattern(pattern *ast.Node, arg values.Value) (map[string]environment.Value, error) {
	switch {
	case pattern.Kind == ast.IdentifierKind:
		return map[string]environment.Value{pattern.Ident: arg}, nil

	case pattern.IsTag(ast.TagEmptyTuple):
		if _, ok := arg.(values.Nil); !ok {
			return nil, &bindError{"function taking no arguments applied to a non-nil value"}
		}
		return map[string]environment.Value{}, nil

	case pattern.IsTag(ast.TagComma):
		tup, ok := arg.(values.Tuple)
		if !ok || tup.Order() != len(pattern.Children) {
			return nil, &bindError{"tuple-pattern argument count mismatch"}
		}
		bindings := make(map[string]environment.Value, len(pattern.Children))
		for i, child := range pattern.Children {
			v, _ := tup.At(i + 1)
			bindings[child.Ident] = v
		}
		return bindings, nil

	default:
		return nil, &bindError{"unrecognized bound-variable pattern"}
	}
}

func boundVarName(n *ast.Node) string {
	if n.Kind == ast.IdentifierKind {
		return n.Ident
	}
	return ""
}

func literalValue(n *ast.Node) (values.Value, error) {
	switch n.Kind {
	case ast.IntegerKind:
		return values.Integer{Val: n.IntVal}, nil
	case ast.StringKind:
		return values.Str{Val: n.StrVal}, nil
	case ast.TrueKind:
		return values.Truth{Val: true}, nil
	case ast.FalseKind:
		return values.Truth{Val: false}, nil
	case ast.NilKind:
		return values.Nil{}, nil
	case ast.DummyKind:
		return values.Dummy{}, nil
	default:
		return nil, &bindError{"unrecognized literal node"}
	}
}

type bindError struct{ msg string }

func (e *bindError) Error() string { return e.msg }

func wrapRuntime(err error, kind RuntimeErrorKind, env *environment.Environment, elem control.Element) error {
	if re, ok := err.(*RuntimeError); ok {
		return re
	}
	return &RuntimeError{Kind: kind, Message: err.Error(), EnvId: env.Id, Element: elem}
}
