/*
File    : rpal/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoot_HasIdZero(t *testing.T) {
	root := NewRoot()
	assert.Equal(t, 0, root.Id)
	assert.Nil(t, root.Parent)
}

func TestNew_AssignsIncrementingIds(t *testing.T) {
	root := NewRoot()
	child1 := New(root, map[string]Value{"x": 1})
	child2 := New(child1, map[string]Value{"y": 2})

	assert.Equal(t, 1, child1.Id)
	assert.Equal(t, 2, child2.Id)
}

func TestLookup_SearchesAncestorChain(t *testing.T) {
	root := NewRoot()
	root.Vars["Print"] = "builtin-print"
	child := New(root, map[string]Value{"x": 5})
	grandchild := New(child, map[string]Value{"y": 6})

	v, ok := grandchild.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = grandchild.Lookup("Print")
	require.True(t, ok)
	assert.Equal(t, "builtin-print", v)

	_, ok = grandchild.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestLookup_InnerShadowsOuter(t *testing.T) {
	root := NewRoot()
	root.Vars["x"] = "outer"
	child := New(root, map[string]Value{"x": "inner"})

	v, _ := child.Lookup("x")
	assert.Equal(t, "inner", v)
}
