/*
File    : rpal/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package ast defines the RPAL parse tree (§3): variant-tagged nodes
// with a label drawn from a fixed set, each owning an ordered sequence
// of children. A single generic Node type stands in for what go-mix's
// parser package expresses as one struct per grammar production
// (parser.BinaryExpressionNode, parser.NumberLiteralExpressionNode,
// ...) — spec §3 asks for exactly this shape ("each node owns an
// ordered sequence of child nodes"), so here the label is data, not
// the Go type.
package ast

import (
	"math/big"

	"github.com/akashmaji946/rpal/srcpos"
)

// Kind distinguishes the handful of node categories whose payload is
// not just an ordered child list: identifiers and the three literal
// forms. Every other parse-tree or standard-tree construct (let,
// lambda, where, tau, aug, ->, or, &, not, gr/ge/ls/le/eq/ne, the
// arithmetic operators, gamma, function_form, within, and, rec, =, the
// comma node, and the empty-tuple "()") is a GenericKind node
// identified by its Tag string, per spec §3.
type Kind int

const (
	GenericKind Kind = iota
	IdentifierKind
	IntegerKind
	StringKind
	TrueKind
	FalseKind
	NilKind
	DummyKind
)

// Fixed tags for the node kinds the standardizer and flattener match on
// by name. Operator tags (gr, +, -, and so on) are not enumerated here;
// the parser stamps the operator's own lexeme as the Tag.
const (
	TagLet          = "let"
	TagLambda       = "lambda"
	TagWhere        = "where"
	TagTau          = "tau"
	TagAug          = "aug"
	TagConditional  = "->"
	TagOr           = "or"
	TagAnd2         = "&"
	TagNot          = "not"
	TagGamma        = "gamma"
	TagFunctionForm = "function_form"
	TagWithin       = "within"
	TagAndSimul     = "and"
	TagRec          = "rec"
	TagEquals       = "="
	TagComma        = ","
	TagEmptyTuple   = "()"
	TagYStar        = "Y*"
)

// Node is one tagged vertex of the RPAL parse tree (and, after
// standardization, of the strictly binary standard tree).
type Node struct {
	Kind     Kind
	Tag      string // meaningful when Kind == GenericKind
	Ident    string // meaningful when Kind == IdentifierKind
	IntVal   *big.Int
	StrVal   string
	Children []*Node
	Pos      srcpos.Position
}

// New builds a GenericKind node with the given tag and children.
func New(tag string, pos srcpos.Position, children ...*Node) *Node {
	return &Node{Kind: GenericKind, Tag: tag, Children: children, Pos: pos}
}

// NewIdentifier builds an identifier leaf.
func NewIdentifier(name string, pos srcpos.Position) *Node {
	return &Node{Kind: IdentifierKind, Ident: name, Pos: pos}
}

// NewInteger builds an integer literal leaf.
func NewInteger(val *big.Int, pos srcpos.Position) *Node {
	return &Node{Kind: IntegerKind, IntVal: val, Pos: pos}
}

// NewString builds a string literal leaf.
func NewString(val string, pos srcpos.Position) *Node {
	return &Node{Kind: StringKind, StrVal: val, Pos: pos}
}

// NewTrue, NewFalse, NewNil and NewDummy build the four constant leaves.
func NewTrue(pos srcpos.Position) *Node  { return &Node{Kind: TrueKind, Pos: pos} }
func NewFalse(pos srcpos.Position) *Node { return &Node{Kind: FalseKind, Pos: pos} }
func NewNil(pos srcpos.Position) *Node   { return &Node{Kind: NilKind, Pos: pos} }
func NewDummy(pos srcpos.Position) *Node { return &Node{Kind: DummyKind, Pos: pos} }

// Label renders the node's tag in the dotted pre-order form required by
// the -ast/-st CLI flags (spec §6): literal nodes are wrapped as
// <ID:name>, <INT:n>, <STR:'...'>, everything else prints its own tag.
func (n *Node) Label() string {
	switch n.Kind {
	case IdentifierKind:
		return "<ID:" + n.Ident + ">"
	case IntegerKind:
		return "<INT:" + n.IntVal.String() + ">"
	case StringKind:
		return "<STR:'" + n.StrVal + "'>"
	case TrueKind:
		return "true"
	case FalseKind:
		return "false"
	case NilKind:
		return "nil"
	case DummyKind:
		return "dummy"
	default:
		return n.Tag
	}
}

// IsTag reports whether n is a GenericKind node carrying the given tag.
func (n *Node) IsTag(tag string) bool {
	return n.Kind == GenericKind && n.Tag == tag
}
