/*
File    : rpal/standardizer/standardizer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package standardizer

import (
	"testing"

	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStandardize(t *testing.T, src string) *ast.Node {
	t.Helper()
	tree, err := parser.Parse(src)
	require.NoError(t, err)
	st, err := Standardize(tree)
	require.NoError(t, err)
	return st
}

func TestStandardize_Let(t *testing.T) {
	st := mustStandardize(t, `let x = 5 in x + 1`)
	require.True(t, st.IsTag(ast.TagGamma))
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	assert.Equal(t, "x", lambdaNode.Children[0].Ident)
	rhs := st.Children[1]
	assert.Equal(t, "5", rhs.IntVal.String())
}

func TestStandardize_Where(t *testing.T) {
	st := mustStandardize(t, `x + 1 where x = 5`)
	require.True(t, st.IsTag(ast.TagGamma))
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	assert.Equal(t, "x", lambdaNode.Children[0].Ident)
}

func TestStandardize_FnMultiVarRightNests(t *testing.T) {
	st := mustStandardize(t, `fn x y . x + y`)
	require.True(t, st.IsTag(ast.TagLambda))
	assert.Equal(t, "x", st.Children[0].Ident)
	inner := st.Children[1]
	require.True(t, inner.IsTag(ast.TagLambda))
	assert.Equal(t, "y", inner.Children[0].Ident)
	assert.True(t, inner.Children[1].IsTag("+"))
}

func TestStandardize_FunctionFormCurries(t *testing.T) {
	st := mustStandardize(t, `let f x y = x + y in f 1 2`)
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	assert.Equal(t, "f", lambdaNode.Children[0].Ident)
	value := st.Children[1]
	require.True(t, value.IsTag(ast.TagLambda))
	assert.Equal(t, "x", value.Children[0].Ident)
	innerLambda := value.Children[1]
	require.True(t, innerLambda.IsTag(ast.TagLambda))
	assert.Equal(t, "y", innerLambda.Children[0].Ident)
}

func TestStandardize_RecBuildsYStarKnot(t *testing.T) {
	st := mustStandardize(t, `let rec f n = n in f 1`)
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	assert.Equal(t, "f", lambdaNode.Children[0].Ident)

	value := st.Children[1]
	require.True(t, value.IsTag(ast.TagGamma))
	yStar := value.Children[0]
	assert.True(t, yStar.IsTag(ast.TagYStar))
	innerLambda := value.Children[1]
	require.True(t, innerLambda.IsTag(ast.TagLambda))
	assert.Equal(t, "f", innerLambda.Children[0].Ident)
}

func TestStandardize_AndSimulBuildsTupleBinding(t *testing.T) {
	st := mustStandardize(t, `let x = 1 and y = 2 in x + y`)
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	namesPattern := lambdaNode.Children[0]
	require.True(t, namesPattern.IsTag(ast.TagComma))
	assert.Equal(t, "x", namesPattern.Children[0].Ident)
	assert.Equal(t, "y", namesPattern.Children[1].Ident)

	values := st.Children[1]
	require.True(t, values.IsTag(ast.TagTau))
	assert.Equal(t, "1", values.Children[0].IntVal.String())
	assert.Equal(t, "2", values.Children[1].IntVal.String())
}

func TestStandardize_WithinChainsScopes(t *testing.T) {
	st := mustStandardize(t, `let x = 1 within y = x + 1 in y`)
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	assert.Equal(t, "y", lambdaNode.Children[0].Ident)

	innerGamma := st.Children[1]
	require.True(t, innerGamma.IsTag(ast.TagGamma))
	innerLambda := innerGamma.Children[0]
	require.True(t, innerLambda.IsTag(ast.TagLambda))
	assert.Equal(t, "x", innerLambda.Children[0].Ident)
}

func TestStandardize_AtRewritesToNestedGamma(t *testing.T) {
	st := mustStandardize(t, `S @Conc T`)
	require.True(t, st.IsTag(ast.TagGamma))
	inner := st.Children[0]
	require.True(t, inner.IsTag(ast.TagGamma))
	assert.Equal(t, "Conc", inner.Children[0].Ident)
	assert.Equal(t, "S", inner.Children[1].Ident)
	assert.Equal(t, "T", st.Children[1].Ident)
}

func TestStandardize_TupleVlPatternSurvives(t *testing.T) {
	st := mustStandardize(t, `let f (x,y) = x + y in f(1,2)`)
	lambdaNode := st.Children[0]
	require.True(t, lambdaNode.IsTag(ast.TagLambda))
	value := st.Children[1]
	require.True(t, value.IsTag(ast.TagLambda))
	pattern := value.Children[0]
	require.True(t, pattern.IsTag(ast.TagComma))
	assert.Equal(t, "x", pattern.Children[0].Ident)
	assert.Equal(t, "y", pattern.Children[1].Ident)
}
