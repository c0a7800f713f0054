/*
File    : rpal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/rpal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_LetInPrint(t *testing.T) {
	root, err := Parse(`let x = 5 in Print(x+3)`)
	require.NoError(t, err)
	require.True(t, root.IsTag(ast.TagLet))
	require.Len(t, root.Children, 2)

	def := root.Children[0]
	assert.True(t, def.IsTag(ast.TagEquals))
	assert.Equal(t, "x", def.Children[0].Ident)
}

func TestParse_RecFactorial(t *testing.T) {
	root, err := Parse(`let rec fact n = n eq 0 -> 1 | n * fact(n-1) in Print(fact 5)`)
	require.NoError(t, err)
	require.True(t, root.IsTag(ast.TagLet))

	def := root.Children[0]
	require.True(t, def.IsTag(ast.TagRec))
	fnForm := def.Children[0]
	require.True(t, fnForm.IsTag(ast.TagFunctionForm))
	assert.Equal(t, "fact", fnForm.Children[0].Ident)
}

func TestParse_TupleAndWhere(t *testing.T) {
	root, err := Parse(`let Sum A = Psum (A, Order A) where rec Psum (T,N) = N eq 0 -> 0 | Psum(T, N-1) + T N in Print(Sum(1,2,3,4,5))`)
	require.NoError(t, err)
	require.True(t, root.IsTag(ast.TagLet))
}

func TestParse_FunctionFormTuplePattern(t *testing.T) {
	root, err := Parse(`let f (x,y) = x + y in Print(f(3,4))`)
	require.NoError(t, err)
	def := root.Children[0]
	require.True(t, def.IsTag(ast.TagFunctionForm))
	// Children: F, Vb(tuple-pattern), body
	assert.True(t, def.Children[1].IsTag(ast.TagComma))
}

func TestParse_AugTuple(t *testing.T) {
	root, err := Parse(`Print( (1,2,3) aug 4 )`)
	require.NoError(t, err)
	require.True(t, root.IsTag(ast.TagGamma))
	arg := root.Children[1]
	require.True(t, arg.IsTag(ast.TagAug))
	assert.True(t, arg.Children[0].IsTag(ast.TagTau))
}

func TestParse_ComparisonAliasesCanonicalize(t *testing.T) {
	forSymbol, err := Parse(`x > y`)
	require.NoError(t, err)
	forKeyword, err := Parse(`x gr y`)
	require.NoError(t, err)
	assert.Equal(t, forKeyword.Tag, forSymbol.Tag)
	assert.Equal(t, "gr", forSymbol.Tag)
}

func TestParse_RightAssociativePower(t *testing.T) {
	root, err := Parse(`2 ** 3 ** 2`)
	require.NoError(t, err)
	require.True(t, root.IsTag("**"))
	// Right child should itself be a '**' node: 2 ** (3 ** 2).
	assert.True(t, root.Children[1].IsTag("**"))
}

func TestParse_UnaryMinus(t *testing.T) {
	root, err := Parse(`-5 + 2`)
	require.NoError(t, err)
	require.True(t, root.IsTag("+"))
	neg := root.Children[0]
	assert.True(t, neg.IsTag("-"))
	assert.Len(t, neg.Children, 1)
}

func TestParse_InfixAt(t *testing.T) {
	root, err := Parse(`S @Conc (Stem S)`)
	require.NoError(t, err)
	require.True(t, root.IsTag("@"))
	assert.Equal(t, "Conc", root.Children[1].Ident)
}

func TestParse_EmptyParams(t *testing.T) {
	root, err := Parse(`fn () . 42`)
	require.NoError(t, err)
	require.True(t, root.IsTag(ast.TagLambda))
	assert.True(t, root.Children[0].IsTag(ast.TagEmptyTuple))
}

func TestParse_SyntaxErrorReportsPosition(t *testing.T) {
	_, err := Parse(`let x = in Print(x)`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	// The offending 'in' starts at line 1, column 9.
	assert.Equal(t, 1, synErr.Pos.Line)
	assert.Equal(t, 9, synErr.Pos.Column)
}
