/*
File    : rpal/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"math/big"

	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/lexer"
)

// comparisonCanonical maps every surface spelling of a comparison
// operator (keyword or symbol) onto the single canonical tag the
// standardizer and CSE machine match on, per spec §4.2's alias list
// (gr/>, ge/>=, ls/<, le/<=, eq/=, ne/><).
var comparisonCanonical = map[string]string{
	"gr": "gr", ">": "gr",
	"ge": "ge", ">=": "ge",
	"ls": "ls", "<": "ls",
	"le": "le", "<=": "le",
	"eq": "eq", "=": "eq",
	"ne": "ne", "><": "ne",
}

func (p *Parser) atComparisonOperator() (string, bool) {
	tok := p.current()
	if tok.Kind != lexer.Keyword && tok.Kind != lexer.Operator {
		return "", false
	}
	canon, ok := comparisonCanonical[tok.Lexeme]
	return canon, ok
}

// parseB implements B → B 'or' Bt | Bt, left-associative.
func (p *Parser) parseB() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseBt()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("or") {
		p.advance()
		right, err := p.parseBt()
		if err != nil {
			return nil, err
		}
		left = ast.New(ast.TagOr, pos, left, right)
	}
	return left, nil
}

// parseBt implements Bt → Bt '&' Bs | Bs, left-associative.
func (p *Parser) parseBt() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseBs()
	if err != nil {
		return nil, err
	}
	for p.atOperator("&") {
		p.advance()
		right, err := p.parseBs()
		if err != nil {
			return nil, err
		}
		left = ast.New(ast.TagAnd2, pos, left, right)
	}
	return left, nil
}

// parseBs implements Bs → 'not' Bp | Bp.
func (p *Parser) parseBs() (*ast.Node, error) {
	pos := p.current().Pos
	if p.atKeyword("not") {
		p.advance()
		operand, err := p.parseBp()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.TagNot, pos, operand), nil
	}
	return p.parseBp()
}

// parseBp implements Bp → A (cmp) A | A. Comparisons are non-associative:
// at most one comparison operator may appear at this level.
func (p *Parser) parseBp() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseA()
	if err != nil {
		return nil, err
	}
	if canon, ok := p.atComparisonOperator(); ok {
		p.advance()
		right, err := p.parseA()
		if err != nil {
			return nil, err
		}
		return ast.New(canon, pos, left, right), nil
	}
	return left, nil
}

// parseA implements A → A ('+'|'-') At | ('+'|'-') At | At. A leading
// '+'/'-' is unary (one child); subsequent ones are binary (two
// children) — both share the same tag, distinguished by arity, per the
// parse-tree's variant-tag design (ast.Node).
func (p *Parser) parseA() (*ast.Node, error) {
	pos := p.current().Pos
	var left *ast.Node

	if p.atOperator("+") || p.atOperator("-") {
		op := p.advance()
		operand, err := p.parseAt()
		if err != nil {
			return nil, err
		}
		left = ast.New(op.Lexeme, op.Pos, operand)
	} else {
		var err error
		left, err = p.parseAt()
		if err != nil {
			return nil, err
		}
	}

	for p.atOperator("+") || p.atOperator("-") {
		op := p.advance()
		right, err := p.parseAt()
		if err != nil {
			return nil, err
		}
		left = ast.New(op.Lexeme, pos, left, right)
	}
	return left, nil
}

// parseAt implements At → At ('*'|'/') Af | Af, left-associative.
func (p *Parser) parseAt() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseAf()
	if err != nil {
		return nil, err
	}
	for p.atOperator("*") || p.atOperator("/") {
		op := p.advance()
		right, err := p.parseAf()
		if err != nil {
			return nil, err
		}
		left = ast.New(op.Lexeme, pos, left, right)
	}
	return left, nil
}

// parseAf implements Af → Ap '**' Af | Ap, right-associative.
func (p *Parser) parseAf() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseAp()
	if err != nil {
		return nil, err
	}
	if p.atOperator("**") {
		p.advance()
		right, err := p.parseAf()
		if err != nil {
			return nil, err
		}
		return ast.New("**", pos, left, right), nil
	}
	return left, nil
}

// parseAp implements Ap → Ap '@' <ID> R | R, left-associative. The '@'
// node keeps its three operands (left, function name, right) as parsed;
// the standardizer rewrites it into nested gamma applications (spec
// §4.3's "@ infix" rule).
func (p *Parser) parseAp() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseR()
	if err != nil {
		return nil, err
	}
	for p.atOperator("@") {
		p.advance()
		idTok, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		right, err := p.parseR()
		if err != nil {
			return nil, err
		}
		left = ast.New("@", pos, left, ast.NewIdentifier(idTok.Lexeme, idTok.Pos), right)
	}
	return left, nil
}

// parseR implements R → R Rn | Rn, left-associative function
// application, standing for gamma nodes directly in the parse tree.
func (p *Parser) parseR() (*ast.Node, error) {
	pos := p.current().Pos
	left, err := p.parseRn()
	if err != nil {
		return nil, err
	}
	for p.startsRn() {
		right, err := p.parseRn()
		if err != nil {
			return nil, err
		}
		left = ast.New(ast.TagGamma, pos, left, right)
	}
	return left, nil
}

// startsRn reports whether the current token can begin an Rn.
func (p *Parser) startsRn() bool {
	tok := p.current()
	switch tok.Kind {
	case lexer.Identifier, lexer.Integer, lexer.String:
		return true
	case lexer.Keyword:
		switch tok.Lexeme {
		case "true", "false", "nil", "dummy":
			return true
		}
		return false
	case lexer.Punctuation:
		return tok.Lexeme == "("
	default:
		return false
	}
}

// parseRn implements Rn → <ID>|<INT>|<STR>|'true'|'false'|'nil'|'dummy'|'(' E ')'.
func (p *Parser) parseRn() (*ast.Node, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.Identifier:
		p.advance()
		return ast.NewIdentifier(tok.Lexeme, tok.Pos), nil
	case lexer.Integer:
		p.advance()
		val := tok.IntValue
		if val == nil {
			val = new(big.Int)
		}
		return ast.NewInteger(val, tok.Pos), nil
	case lexer.String:
		p.advance()
		return ast.NewString(tok.Lexeme, tok.Pos), nil
	case lexer.Keyword:
		switch tok.Lexeme {
		case "true":
			p.advance()
			return ast.NewTrue(tok.Pos), nil
		case "false":
			p.advance()
			return ast.NewFalse(tok.Pos), nil
		case "nil":
			p.advance()
			return ast.NewNil(tok.Pos), nil
		case "dummy":
			p.advance()
			return ast.NewDummy(tok.Pos), nil
		}
	case lexer.Punctuation:
		if tok.Lexeme == "(" {
			p.advance()
			e, err := p.parseE()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunctuation(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, &SyntaxError{Token: tok, Expected: "an identifier, literal, or parenthesized expression", Pos: tok.Pos}
}
