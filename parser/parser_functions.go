/*
File    : rpal/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// This file implements the "definition" half of the grammar (§4.2):
// D, Da, Dr, Db, Vb and Vl — everything to the right of 'let'/'within'
// and to the left of '=' in a binding.
package parser

import (
	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/lexer"
)

// parseD implements D → Da 'within' D | Da.
func (p *Parser) parseD() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseDa()
	if err != nil {
		return nil, err
	}
	if p.atKeyword("within") {
		p.advance()
		right, err := p.parseD()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagWithin, pos, left, right), nil
	}
	return left, nil
}

// parseDa implements Da → Dr ('and' Dr)+ | Dr.
func (p *Parser) parseDa() (*ast.Node, error) {
	pos := p.current().Pos
	first, err := p.parseDr()
	if err != nil {
		return nil, err
	}
	if !p.atKeyword("and") {
		return first, nil
	}
	items := []*ast.Node{first}
	for p.atKeyword("and") {
		p.advance()
		next, err := p.parseDr()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.New(ast.TagAndSimul, pos, items...), nil
}

// parseDr implements Dr → 'rec' Db | Db.
func (p *Parser) parseDr() (*ast.Node, error) {
	pos := p.current().Pos
	if p.atKeyword("rec") {
		p.advance()
		db, err := p.parseDb()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagRec, pos, db), nil
	}
	return p.parseDb()
}

// parseDb implements Db → Vl '=' E | <ID> Vb+ '=' E | '(' D ')'.
func (p *Parser) parseDb() (*ast.Node, error) {
	pos := p.current().Pos

	if p.atPunctuation("(") {
		p.advance()
		d, err := p.parseD()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return d, nil
	}

	idTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	// Vl '=' E: the leading identifier is followed directly by ',' or '='.
	if p.atPunctuation(",") || p.atOperator("=") {
		idents := []lexer.Token{idTok}
		for p.atPunctuation(",") {
			p.advance()
			next, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			idents = append(idents, next)
		}
		if err := p.expectOperator("="); err != nil {
			return nil, err
		}
		rhs, err := p.parseE()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagEquals, pos, buildVlNode(idents), rhs), nil
	}

	// <ID> Vb+ '=' E: function_form.
	var vbs []*ast.Node
	for p.startsVb() {
		vb, err := p.parseVb()
		if err != nil {
			return nil, err
		}
		vbs = append(vbs, vb)
	}
	if len(vbs) == 0 {
		return nil, &SyntaxError{Token: p.current(), Expected: "'=' or a bound variable", Pos: p.current().Pos}
	}
	if err := p.expectOperator("="); err != nil {
		return nil, err
	}
	rhs, err := p.parseE()
	if err != nil {
		return nil, err
	}
	children := append([]*ast.Node{ast.NewIdentifier(idTok.Lexeme, idTok.Pos)}, vbs...)
	children = append(children, rhs)
	return ast.New(ast.TagFunctionForm, pos, children...), nil
}

// startsVb reports whether the current token can begin a Vb.
func (p *Parser) startsVb() bool {
	return p.atKind(lexer.Identifier) || p.atPunctuation("(")
}

// parseVb implements Vb → <ID> | '(' ')' | '(' Vl ')'.
func (p *Parser) parseVb() (*ast.Node, error) {
	pos := p.current().Pos
	if p.atKind(lexer.Identifier) {
		tok := p.advance()
		return ast.NewIdentifier(tok.Lexeme, tok.Pos), nil
	}
	if err := p.expectPunctuation("("); err != nil {
		return nil, err
	}
	if p.atPunctuation(")") {
		p.advance()
		return ast.New(ast.TagEmptyTuple, pos), nil
	}
	idents, err := p.parseVl()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return buildVlNode(idents), nil
}

// parseVl implements Vl → <ID> (',' <ID>)* and returns the raw
// identifier tokens so both Db and Vb can decide how to wrap them.
func (p *Parser) parseVl() ([]lexer.Token, error) {
	first, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	idents := []lexer.Token{first}
	for p.atPunctuation(",") {
		p.advance()
		next, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		idents = append(idents, next)
	}
	return idents, nil
}

// buildVlNode wraps a variable list as a single identifier (when there
// is exactly one) or as a comma-tuple pattern node (spec §4.3: "Tuple
// patterns on the left of '=' standardize to tau of identifiers").
func buildVlNode(idents []lexer.Token) *ast.Node {
	if len(idents) == 1 {
		return ast.NewIdentifier(idents[0].Lexeme, idents[0].Pos)
	}
	children := make([]*ast.Node, len(idents))
	for i, tok := range idents {
		children[i] = ast.NewIdentifier(tok.Lexeme, tok.Pos)
	}
	return ast.New(ast.TagComma, children[0].Pos, children...)
}
