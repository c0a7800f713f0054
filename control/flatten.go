/*
File    : rpal/control/flatten.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package control

import (
	"github.com/akashmaji946/rpal/ast"
)

// operatorTags reports whether tag is one of RPAL's fixed operator
// tags. An operator's operand count is taken from len(n.Children) at
// the node itself, since the parser/standardizer never leave an
// operator node with a mismatched arity.
var operatorTags = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "**": true,
	"gr": true, "ge": true, "ls": true, "le": true, "eq": true, "ne": true,
	ast.TagOr: true, ast.TagAnd2: true, ast.TagNot: true, ast.TagAug: true,
}

// flattener accumulates the program's control structures as it walks
// the standardized tree; index 0 is always the top-level program.
type flattener struct {
	deltas []Delta
}

// Flatten linearizes a standardized tree into an ordered []Delta, per
// spec §4.4. deltas[0] is the program's top-level control structure.
func Flatten(root *ast.Node) ([]Delta, error) {
	f := &flattener{deltas: []Delta{{}}}
	elems, err := f.compile(root)
	if err != nil {
		return nil, err
	}
	f.deltas[0] = Delta{Elements: elems}
	return f.deltas, nil
}

// newDelta reserves the next delta slot, compiles body into it, and
// returns the slot's index.
func (f *flattener) newDelta(body *ast.Node) (int, error) {
	idx := len(f.deltas)
	f.deltas = append(f.deltas, Delta{})
	elems, err := f.compile(body)
	if err != nil {
		return 0, err
	}
	f.deltas[idx] = Delta{Elements: elems}
	return idx, nil
}

// compile flattens n into a flat, post-order element list: operands
// are compiled (and so pushed) before the operator/marker that
// consumes them, matching the CSE machine's stack-based evaluation
// order (spec §4.5).
func (f *flattener) compile(n *ast.Node) ([]Element, error) {
	switch {
	case n.Kind == ast.IdentifierKind:
		return []Element{{Kind: Name, Name: n.Ident}}, nil

	case n.Kind != ast.GenericKind:
		// IntegerKind, StringKind, TrueKind, FalseKind, NilKind, DummyKind.
		return []Element{{Kind: Literal, Literal: n}}, nil

	case n.IsTag(ast.TagGamma):
		fn, err := f.compile(n.Children[0])
		if err != nil {
			return nil, err
		}
		arg, err := f.compile(n.Children[1])
		if err != nil {
			return nil, err
		}
		elems := append(append([]Element{}, fn...), arg...)
		return append(elems, Element{Kind: Gamma}), nil

	case n.IsTag(ast.TagLambda):
		idx, err := f.newDelta(n.Children[1])
		if err != nil {
			return nil, err
		}
		return []Element{{Kind: LambdaElement, DeltaIndex: idx, BoundVar: n.Children[0]}}, nil

	case n.IsTag(ast.TagTau):
		var elems []Element
		for _, c := range n.Children {
			ce, err := f.compile(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ce...)
		}
		return append(elems, Element{Kind: TauElement, Arity: len(n.Children)}), nil

	case n.IsTag(ast.TagConditional):
		thenIdx, err := f.newDelta(n.Children[1])
		if err != nil {
			return nil, err
		}
		elseIdx, err := f.newDelta(n.Children[2])
		if err != nil {
			return nil, err
		}
		cond, err := f.compile(n.Children[0])
		if err != nil {
			return nil, err
		}
		return append(cond, Element{Kind: Beta, DeltaIndex: thenIdx, ElseIndex: elseIdx}), nil

	case n.IsTag(ast.TagYStar):
		return []Element{{Kind: YStarElement}}, nil

	case operatorTags[n.Tag]:
		var elems []Element
		for _, c := range n.Children {
			ce, err := f.compile(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ce...)
		}
		return append(elems, Element{Kind: Op, Op: n.Tag, OpArity: len(n.Children)}), nil

	default:
		return nil, &FlattenError{Message: "unrecognized standardized-tree node \"" + n.Tag + "\"", Node: n}
	}
}
