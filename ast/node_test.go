/*
File    : rpal/ast/node_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"math/big"
	"testing"

	"github.com/akashmaji946/rpal/srcpos"
	"github.com/stretchr/testify/assert"
)

func TestPrint_DottedPreOrder(t *testing.T) {
	pos := srcpos.Position{Line: 1, Column: 1}
	root := New(TagGamma, pos,
		NewIdentifier("Print", pos),
		New("+", pos,
			NewIdentifier("x", pos),
			NewInteger(big.NewInt(3), pos),
		),
	)

	got := Print(root)
	want := "gamma\n" +
		".<ID:Print>\n" +
		".+\n" +
		"..<ID:x>\n" +
		"..<INT:3>\n"
	assert.Equal(t, want, got)
}

func TestLabel_Literals(t *testing.T) {
	pos := srcpos.Position{}
	assert.Equal(t, "<ID:foo>", NewIdentifier("foo", pos).Label())
	assert.Equal(t, "<INT:42>", NewInteger(big.NewInt(42), pos).Label())
	assert.Equal(t, "<STR:'hi'>", NewString("hi", pos).Label())
	assert.Equal(t, "true", NewTrue(pos).Label())
	assert.Equal(t, "nil", NewNil(pos).Label())
	assert.Equal(t, "dummy", NewDummy(pos).Label())
}
