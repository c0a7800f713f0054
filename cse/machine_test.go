/*
File    : rpal/cse/machine_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cse

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/rpal/builtins"
	"github.com/akashmaji946/rpal/control"
	"github.com/akashmaji946/rpal/parser"
	"github.com/akashmaji946/rpal/standardizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runProgram parses, standardizes, flattens and executes src, returning
// everything Print wrote plus the final reduced value's string form.
func runProgram(t *testing.T, src string) (string, string) {
	t.Helper()
	tree, err := parser.Parse(src)
	require.NoError(t, err)
	st, err := standardizer.Standardize(tree)
	require.NoError(t, err)
	deltas, err := control.Flatten(st)
	require.NoError(t, err)
	var out bytes.Buffer
	root := builtins.RootEnvironment(&out)
	result, err := Run(deltas, root)
	require.NoError(t, err)
	return out.String(), result.String()
}

func TestRun_LetArithmeticPrint(t *testing.T) {
	printed, _ := runProgram(t, `let x = 5 in Print(x+3)`)
	assert.Equal(t, "8", printed)
}

func TestRun_RecFactorial(t *testing.T) {
	printed, _ := runProgram(t,
		`let rec fact n = n eq 0 -> 1 | n * fact(n-1) in Print(fact 5)`)
	assert.Equal(t, "120", printed)
}

func TestRun_WhereAndTupleSelection(t *testing.T) {
	printed, _ := runProgram(t,
		`let Sum A = Psum (A, Order A)
		 where rec Psum (T,N) = N eq 0 -> 0 | Psum(T, N-1) + T N
		 in Print(Sum(1,2,3,4,5))`)
	assert.Equal(t, "15", printed)
}

func TestRun_TuplePatternFunction(t *testing.T) {
	printed, _ := runProgram(t, `let f (x,y) = x + y in Print(f(3,4))`)
	assert.Equal(t, "7", printed)
}

func TestRun_StringReversalViaSternStemConc(t *testing.T) {
	printed, _ := runProgram(t,
		`let rec Rev S = S eq '' -> '' | Conc (Rev (Stern S)) (Stem S)
		 in Print(Rev 'abc')`)
	assert.Equal(t, "cba", printed)
}

func TestRun_AugOnTuple(t *testing.T) {
	printed, _ := runProgram(t, `Print((1,2,3) aug 4)`)
	assert.Equal(t, "(1, 2, 3, 4)", printed)
}

func TestRun_ConditionalBoolean(t *testing.T) {
	printed, _ := runProgram(t, `Print(1 gr 0 -> true | false)`)
	assert.Equal(t, "true", printed)
}

func TestRun_AndSimultaneousBinding(t *testing.T) {
	printed, _ := runProgram(t, `let x = 1 and y = 2 in Print(x+y)`)
	assert.Equal(t, "3", printed)
}

func TestRun_WithinChainsScopes(t *testing.T) {
	printed, _ := runProgram(t, `let a = 3 within b = a * 2 in Print(b+1)`)
	assert.Equal(t, "7", printed)
}

func TestRun_UnboundIdentifierReportsRuntimeError(t *testing.T) {
	tree, err := parser.Parse(`Print(nope)`)
	require.NoError(t, err)
	st, err := standardizer.Standardize(tree)
	require.NoError(t, err)
	deltas, err := control.Flatten(st)
	require.NoError(t, err)
	var out bytes.Buffer
	root := builtins.RootEnvironment(&out)
	_, err = Run(deltas, root)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, UnboundIdentifier, rerr.Kind)
}

func TestRun_DivisionByZeroReportsRuntimeError(t *testing.T) {
	tree, err := parser.Parse(`Print(1/0)`)
	require.NoError(t, err)
	st, err := standardizer.Standardize(tree)
	require.NoError(t, err)
	deltas, err := control.Flatten(st)
	require.NoError(t, err)
	var out bytes.Buffer
	root := builtins.RootEnvironment(&out)
	_, err = Run(deltas, root)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, DivisionByZero, rerr.Kind)
}

func TestRun_ArityMismatchOnTuplePattern(t *testing.T) {
	tree, err := parser.Parse(`let f (x,y) = x+y in Print(f(1,2,3))`)
	require.NoError(t, err)
	st, err := standardizer.Standardize(tree)
	require.NoError(t, err)
	deltas, err := control.Flatten(st)
	require.NoError(t, err)
	var out bytes.Buffer
	root := builtins.RootEnvironment(&out)
	_, err = Run(deltas, root)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, ArityMismatch, rerr.Kind)
}
