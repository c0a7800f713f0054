/*
File    : rpal/control/flatten_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package control

import (
	"testing"

	"github.com/akashmaji946/rpal/parser"
	"github.com/akashmaji946/rpal/standardizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFlatten(t *testing.T, src string) []Delta {
	t.Helper()
	tree, err := parser.Parse(src)
	require.NoError(t, err)
	st, err := standardizer.Standardize(tree)
	require.NoError(t, err)
	deltas, err := Flatten(st)
	require.NoError(t, err)
	return deltas
}

func TestFlatten_SimpleArithmeticPostOrder(t *testing.T) {
	deltas := mustFlatten(t, `x + 1`)
	require.Len(t, deltas, 1)
	elems := deltas[0].Elements
	require.Len(t, elems, 3)
	assert.Equal(t, Name, elems[0].Kind)
	assert.Equal(t, "x", elems[0].Name)
	assert.Equal(t, Literal, elems[1].Kind)
	assert.Equal(t, Op, elems[2].Kind)
	assert.Equal(t, "+", elems[2].Op)
	assert.Equal(t, 2, elems[2].OpArity)
}

func TestFlatten_LetCreatesNewDeltaForLambdaBody(t *testing.T) {
	deltas := mustFlatten(t, `let x = 5 in x + 1`)
	require.Len(t, deltas, 2)

	top := deltas[0].Elements
	// gamma(lambda(x, x+1), 5): [ LambdaElement, Literal(5), Gamma ]
	require.Len(t, top, 3)
	assert.Equal(t, LambdaElement, top[0].Kind)
	assert.Equal(t, 1, top[0].DeltaIndex)
	assert.Equal(t, "x", top[0].BoundVar.Ident)
	assert.Equal(t, Literal, top[1].Kind)
	assert.Equal(t, Gamma, top[2].Kind)

	body := deltas[1].Elements
	require.Len(t, body, 3)
	assert.Equal(t, Name, body[0].Kind)
	assert.Equal(t, "x", body[0].Name)
}

func TestFlatten_ConditionalCreatesTwoBranchDeltas(t *testing.T) {
	deltas := mustFlatten(t, `x gr 0 -> 1 | 0`)
	require.Len(t, deltas, 3)
	top := deltas[0].Elements
	last := top[len(top)-1]
	assert.Equal(t, Beta, last.Kind)
	assert.NotEqual(t, last.DeltaIndex, last.ElseIndex)
}

func TestFlatten_TauBuildsArityElement(t *testing.T) {
	deltas := mustFlatten(t, `1, 2, 3`)
	elems := deltas[0].Elements
	last := elems[len(elems)-1]
	assert.Equal(t, TauElement, last.Kind)
	assert.Equal(t, 3, last.Arity)
}

func TestFlatten_RecIntroducesYStarElement(t *testing.T) {
	deltas := mustFlatten(t, `let rec f n = n in f 1`)
	found := false
	for _, d := range deltas {
		for _, e := range d.Elements {
			if e.Kind == YStarElement {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestFlatten_GammaOperandOrderFunctionThenArgument(t *testing.T) {
	deltas := mustFlatten(t, `f 1`)
	elems := deltas[0].Elements
	require.Len(t, elems, 3)
	assert.Equal(t, Name, elems[0].Kind)
	assert.Equal(t, "f", elems[0].Name)
	assert.Equal(t, Literal, elems[1].Kind)
	assert.Equal(t, Gamma, elems[2].Kind)
}
