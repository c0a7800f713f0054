/*
File    : rpal/standardizer/standardizer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package standardizer rewrites a parse tree produced by package parser
// into the standard binary tree used by the flattener and CSE machine,
// following the rewrite table of spec §4.3: let/where collapse to
// gamma-lambda pairs, fn and function_form collapse to right-nested
// single-variable lambdas, within chains two scopes through a lambda,
// and simultaneous (and) bindings collapse to a single tuple binding.
// rec ties the knot through the Y* fixed-point combinator, and the
// infix '@' application expands to nested gamma nodes.
package standardizer

import (
	"fmt"

	"github.com/akashmaji946/rpal/ast"
)

// Standardize rewrites root (and everything beneath it) into standard
// form. The result shares no children in-place mutation with root; a
// fresh tree is built bottom-up.
func Standardize(root *ast.Node) (*ast.Node, error) {
	return standardizeExpr(root)
}

// standardizeExpr rewrites an expression-position node. D-position
// nodes (equals, function_form, rec, and, within) are only ever
// reached through standardizeDefinition, called from the let/where
// cases below.
func standardizeExpr(n *ast.Node) (*ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	switch {
	case n.IsTag(ast.TagLet):
		return standardizeLet(n)
	case n.IsTag(ast.TagWhere):
		return standardizeWhere(n)
	case n.IsTag(ast.TagLambda):
		return standardizeLambda(n)
	case n.IsTag("@"):
		return standardizeAt(n)
	case n.IsTag(ast.TagFunctionForm), n.IsTag(ast.TagRec), n.IsTag(ast.TagAndSimul),
		n.IsTag(ast.TagWithin), n.IsTag(ast.TagEquals):
		return nil, &StandardizationError{
			Message: fmt.Sprintf("definition node %q reached in expression position", n.Tag),
			Node:    n,
			Pos:     n.Pos,
		}
	default:
		return standardizeChildren(n)
	}
}

// standardizeChildren rewrites every child of n and rebuilds n with the
// same tag/kind/leaf payload, for node shapes the rewrite table leaves
// structurally alone (gamma, tau, conditional, aug, boolean and
// arithmetic operators, comparisons, and leaves).
func standardizeChildren(n *ast.Node) (*ast.Node, error) {
	if len(n.Children) == 0 {
		return n, nil
	}
	children := make([]*ast.Node, len(n.Children))
	for i, c := range n.Children {
		sc, err := standardizeExpr(c)
		if err != nil {
			return nil, err
		}
		children[i] = sc
	}
	out := ast.New(n.Tag, n.Pos, children...)
	out.Kind = n.Kind
	return out, nil
}

// standardizeLet rewrites 'let D in E' to gamma(lambda(X, E), E1),
// where X = E1 is D's standardized (name, value) pair.
func standardizeLet(n *ast.Node) (*ast.Node, error) {
	lhs, rhs, err := standardizeDefinition(n.Children[0])
	if err != nil {
		return nil, err
	}
	body, err := standardizeExpr(n.Children[1])
	if err != nil {
		return nil, err
	}
	lambdaNode := ast.New(ast.TagLambda, n.Pos, lhs, body)
	return ast.New(ast.TagGamma, n.Pos, lambdaNode, rhs), nil
}

// standardizeWhere rewrites 'T where Dr' identically to 'let Dr in T'.
func standardizeWhere(n *ast.Node) (*ast.Node, error) {
	body, err := standardizeExpr(n.Children[0])
	if err != nil {
		return nil, err
	}
	lhs, rhs, err := standardizeDefinition(n.Children[1])
	if err != nil {
		return nil, err
	}
	lambdaNode := ast.New(ast.TagLambda, n.Pos, lhs, body)
	return ast.New(ast.TagGamma, n.Pos, lambdaNode, rhs), nil
}

// standardizeLambda right-nests a multi-variable 'fn V1 V2 ... Vn . E'
// parse node into single-bound-variable lambdas:
// lambda(V1, lambda(V2, ... lambda(Vn, E))).
func standardizeLambda(n *ast.Node) (*ast.Node, error) {
	bound := n.Children[:len(n.Children)-1]
	body, err := standardizeExpr(n.Children[len(n.Children)-1])
	if err != nil {
		return nil, err
	}
	for i := len(bound) - 1; i >= 0; i-- {
		body = ast.New(ast.TagLambda, n.Pos, bound[i], body)
	}
	return body, nil
}

// standardizeAt rewrites the infix application 'E1 @N E2' into nested
// gamma applications: gamma(gamma(N, E1), E2).
func standardizeAt(n *ast.Node) (*ast.Node, error) {
	left, err := standardizeExpr(n.Children[0])
	if err != nil {
		return nil, err
	}
	name := n.Children[1]
	right, err := standardizeExpr(n.Children[2])
	if err != nil {
		return nil, err
	}
	inner := ast.New(ast.TagGamma, n.Pos, name, left)
	return ast.New(ast.TagGamma, n.Pos, inner, right), nil
}

// standardizeDefinition reduces any D-position node to a single
// (boundVariable, value) pair, standardizing the value along the way.
// boundVariable is either a lone identifier or a TagComma pattern node
// for tuple-destructuring bindings.
func standardizeDefinition(d *ast.Node) (lhs *ast.Node, rhs *ast.Node, err error) {
	switch {
	case d.IsTag(ast.TagEquals):
		rhs, err = standardizeExpr(d.Children[1])
		if err != nil {
			return nil, nil, err
		}
		return d.Children[0], rhs, nil

	case d.IsTag(ast.TagFunctionForm):
		return standardizeFunctionForm(d)

	case d.IsTag(ast.TagRec):
		innerLhs, innerRhs, err := standardizeDefinition(d.Children[0])
		if err != nil {
			return nil, nil, err
		}
		yStar := ast.New(ast.TagYStar, d.Pos)
		lambdaNode := ast.New(ast.TagLambda, d.Pos, innerLhs, innerRhs)
		knot := ast.New(ast.TagGamma, d.Pos, yStar, lambdaNode)
		return innerLhs, knot, nil

	case d.IsTag(ast.TagWithin):
		lhs1, rhs1, err := standardizeDefinition(d.Children[0])
		if err != nil {
			return nil, nil, err
		}
		lhs2, rhs2, err := standardizeDefinition(d.Children[1])
		if err != nil {
			return nil, nil, err
		}
		lambdaNode := ast.New(ast.TagLambda, d.Pos, lhs1, rhs2)
		gammaNode := ast.New(ast.TagGamma, d.Pos, lambdaNode, rhs1)
		return lhs2, gammaNode, nil

	case d.IsTag(ast.TagAndSimul):
		names := make([]*ast.Node, len(d.Children))
		values := make([]*ast.Node, len(d.Children))
		for i, sub := range d.Children {
			name, value, err := standardizeDefinition(sub)
			if err != nil {
				return nil, nil, err
			}
			names[i] = name
			values[i] = value
		}
		return ast.New(ast.TagComma, d.Pos, names...), ast.New(ast.TagTau, d.Pos, values...), nil

	default:
		return nil, nil, &StandardizationError{
			Message: fmt.Sprintf("unrecognized definition node %q", d.Tag),
			Node:    d,
			Pos:     d.Pos,
		}
	}
}

// standardizeFunctionForm rewrites '<ID> Vb+ = E' into
// (<ID>, lambda(Vb1, lambda(Vb2, ... lambda(Vbn, E)))).
func standardizeFunctionForm(d *ast.Node) (*ast.Node, *ast.Node, error) {
	name := d.Children[0]
	bound := d.Children[1 : len(d.Children)-1]
	body, err := standardizeExpr(d.Children[len(d.Children)-1])
	if err != nil {
		return nil, nil, err
	}
	for i := len(bound) - 1; i >= 0; i-- {
		body = ast.New(ast.TagLambda, d.Pos, bound[i], body)
	}
	return name, body, nil
}
