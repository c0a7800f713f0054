/*
File    : rpal/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package lexer tokenizes RPAL source text per spec §4.1.
package lexer

import (
	"fmt"
	"math/big"

	"github.com/akashmaji946/rpal/srcpos"
)

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	Identifier Kind = iota
	Integer
	String
	Operator
	Punctuation
	Keyword
	EOF
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Integer:
		return "Integer"
	case String:
		return "String"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	case Keyword:
		return "Keyword"
	case EOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a tagged lexical unit produced by the Lexer.
//
// Integer tokens carry their parsed value in IntValue (arbitrary
// precision, per spec §9); String tokens carry the unescaped character
// sequence in Lexeme.
type Token struct {
	Kind     Kind
	Lexeme   string
	IntValue *big.Int
	Pos      srcpos.Position
}

// String renders a token the way error messages (parser.SyntaxError) need it.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

// reservedWords is the fixed keyword set of spec §4.1. Anything not in
// this table that starts with a letter is an Identifier.
var reservedWords = map[string]bool{
	"let": true, "in": true, "fn": true, "where": true, "aug": true,
	"or": true, "not": true, "gr": true, "ge": true, "ls": true, "le": true,
	"eq": true, "ne": true, "true": true, "false": true, "nil": true,
	"dummy": true, "within": true, "and": true, "rec": true,
}

// operatorChars is the set of punctuation-operator characters from which
// Operator tokens are built by longest match (spec §4.1).
const operatorChars = "+-*/<>&.@:=~|$!#%^_[]{}\"'?"

func isOperatorChar(b byte) bool {
	for i := 0; i < len(operatorChars); i++ {
		if operatorChars[i] == b {
			return true
		}
	}
	return false
}
