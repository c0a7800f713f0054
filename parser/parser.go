/*
File    : rpal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package parser implements the recursive-descent parser for the RPAL
// grammar of spec §4.2. Each grammar production below has its own
// method (split across parser.go, parser_expressions.go and
// parser_functions.go, mirroring go-mix/parser's one-file-per-grammar-area
// layout: parser_conditionals.go, parser_functions.go, parser_literals.go,
// and so on). Left-associative productions are parsed with an
// accumulating loop rather than left recursion, per spec §9's note on
// avoiding unbounded host-stack growth on long chains.
package parser

import (
	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/lexer"
)

// Parser holds the token stream and the cursor into it.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes src and parses it as a complete RPAL program,
// returning the root of the parse tree.
func Parse(src string) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	root, err := p.parseE()
	if err != nil {
		return nil, err
	}
	if !p.atKind(lexer.EOF) {
		return nil, &SyntaxError{Token: p.current(), Expected: "end of input", Pos: p.current().Pos}
	}
	return root, nil
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) atKind(k lexer.Kind) bool {
	return p.current().Kind == k
}

func (p *Parser) atKeyword(word string) bool {
	return p.current().Kind == lexer.Keyword && p.current().Lexeme == word
}

func (p *Parser) atOperator(op string) bool {
	return p.current().Kind == lexer.Operator && p.current().Lexeme == op
}

func (p *Parser) atPunctuation(sym string) bool {
	return p.current().Kind == lexer.Punctuation && p.current().Lexeme == sym
}

func (p *Parser) expectKeyword(word string) error {
	if !p.atKeyword(word) {
		return &SyntaxError{Token: p.current(), Expected: "keyword '" + word + "'", Pos: p.current().Pos}
	}
	p.advance()
	return nil
}

func (p *Parser) expectOperator(op string) error {
	if !p.atOperator(op) {
		return &SyntaxError{Token: p.current(), Expected: "operator '" + op + "'", Pos: p.current().Pos}
	}
	p.advance()
	return nil
}

func (p *Parser) expectPunctuation(sym string) error {
	if !p.atPunctuation(sym) {
		return &SyntaxError{Token: p.current(), Expected: "'" + sym + "'", Pos: p.current().Pos}
	}
	p.advance()
	return nil
}

func (p *Parser) expectIdentifier() (lexer.Token, error) {
	if !p.atKind(lexer.Identifier) {
		return lexer.Token{}, &SyntaxError{Token: p.current(), Expected: "identifier", Pos: p.current().Pos}
	}
	return p.advance(), nil
}

// parseE implements E → 'let' D 'in' E | 'fn' Vb+ '.' E | Ew.
func (p *Parser) parseE() (*ast.Node, error) {
	pos := p.current().Pos

	if p.atKeyword("let") {
		p.advance()
		d, err := p.parseD()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("in"); err != nil {
			return nil, err
		}
		e, err := p.parseE()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagLet, pos, d, e), nil
	}

	if p.atKeyword("fn") {
		p.advance()
		var vbs []*ast.Node
		for p.startsVb() {
			vb, err := p.parseVb()
			if err != nil {
				return nil, err
			}
			vbs = append(vbs, vb)
		}
		if len(vbs) == 0 {
			return nil, &SyntaxError{Token: p.current(), Expected: "at least one bound variable after 'fn'", Pos: p.current().Pos}
		}
		if err := p.expectOperator("."); err != nil {
			return nil, err
		}
		body, err := p.parseE()
		if err != nil {
			return nil, err
		}
		children := append(append([]*ast.Node{}, vbs...), body)
		return ast.New(ast.TagLambda, pos, children...), nil
	}

	return p.parseEw()
}

// parseEw implements Ew → T 'where' Dr | T.
func (p *Parser) parseEw() (*ast.Node, error) {
	pos := p.current().Pos
	t, err := p.parseT()
	if err != nil {
		return nil, err
	}
	if p.atKeyword("where") {
		p.advance()
		dr, err := p.parseDr()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagWhere, pos, t, dr), nil
	}
	return t, nil
}

// parseT implements T → Ta (',' Ta)* (tau if more than one).
func (p *Parser) parseT() (*ast.Node, error) {
	pos := p.current().Pos
	first, err := p.parseTa()
	if err != nil {
		return nil, err
	}
	if !p.atPunctuation(",") {
		return first, nil
	}
	items := []*ast.Node{first}
	for p.atPunctuation(",") {
		p.advance()
		next, err := p.parseTa()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return ast.New(ast.TagTau, pos, items...), nil
}

// parseTa implements Ta → Ta 'aug' Tc | Tc, left-associative.
func (p *Parser) parseTa() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseTc()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("aug") {
		p.advance()
		right, err := p.parseTc()
		if err != nil {
			return nil, err
		}
		left = ast.New(ast.TagAug, pos, left, right)
	}
	return left, nil
}

// parseTc implements Tc → B '->' Tc '|' Tc | B.
func (p *Parser) parseTc() (*ast.Node, error) {
	pos := p.current().Pos
	cond, err := p.parseB()
	if err != nil {
		return nil, err
	}
	if !p.atOperator("->") {
		return cond, nil
	}
	p.advance()
	thenExpr, err := p.parseTc()
	if err != nil {
		return nil, err
	}
	if err := p.expectOperator("|"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseTc()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.TagConditional, pos, cond, thenExpr, elseExpr), nil
}
