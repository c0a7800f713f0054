/*
File    : rpal/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "strings"

// DottedPrinter walks a tree in pre-order and renders one node per
// line, indented by depth with '.' characters, per spec §6. This is a
// direct generalization of go-mix/main/print_visitor.go's
// PrintingVisitor: instead of one Visit method per concrete node type,
// a single recursive walk handles every tag uniformly because Node is
// already a generic tagged tree (ast.Node, not one struct per
// production).
type DottedPrinter struct {
	buf strings.Builder
}

// Print renders root and every descendant in dotted pre-order form and
// returns the accumulated text.
func Print(root *Node) string {
	p := &DottedPrinter{}
	p.walk(root, 0)
	return p.buf.String()
}

func (p *DottedPrinter) walk(n *Node, depth int) {
	if n == nil {
		return
	}
	p.buf.WriteString(strings.Repeat(".", depth))
	p.buf.WriteString(n.Label())
	p.buf.WriteByte('\n')
	for _, child := range n.Children {
		p.walk(child, depth+1)
	}
}
