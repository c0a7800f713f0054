/*
File    : rpal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"math/big"

	"github.com/akashmaji946/rpal/srcpos"
)

// Lexer performs lexical analysis of RPAL source text. It scans the
// source byte by byte, tracking line/column for error reporting, and
// hands out one Token at a time via NextToken.
//
// This mirrors the scan-by-byte, line/column-tracking design of
// go-mix/lexer.Lexer, generalized to RPAL's token set (§4.1) and to
// returning an error instead of an INVALID token on unrecognized input.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int
}

// New creates a Lexer ready to tokenize src.
func New(src string) *Lexer {
	l := &Lexer{
		src:       src,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if l.srcLength > 0 {
		l.current = src[0]
	}
	return l
}

// Tokenize consumes the entire source and returns every token up to and
// including the trailing Eof sentinel, or the first LexicalError.
func Tokenize(src string) ([]Token, error) {
	lex := New(src)
	var tokens []Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) pos() srcpos.Position {
	return srcpos.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
	} else {
		l.current = l.src[l.position]
	}
}

func (l *Lexer) atEnd() bool { return l.position >= l.srcLength }

// skipWhitespaceAndComments skips spaces and `//`-to-end-of-line comments,
// per spec §4.1.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(l.current):
			l.advance()
		case l.current == '/' && l.peek() == '/':
			for !l.atEnd() && l.current != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token, or a LexicalError if the
// current character cannot begin any valid token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()
	start := l.pos()

	switch {
	case l.atEnd():
		return Token{Kind: EOF, Lexeme: "", Pos: start}, nil

	case l.current == '\'':
		return l.readString(start)

	case isDigitASCII(l.current):
		return l.readInteger(start), nil

	case isLetter(l.current):
		return l.readIdentifierOrKeyword(start), nil

	case isPunctuation(l.current):
		ch := l.current
		l.advance()
		return Token{Kind: Punctuation, Lexeme: string(ch), Pos: start}, nil

	case isOperatorChar(l.current):
		return l.readOperator(start), nil

	default:
		return Token{}, &LexicalError{
			Message: "unrecognized character '" + string(l.current) + "'",
			Pos:     start,
		}
	}
}

// isPunctuation reports the single-character structural tokens of §4.1:
// '(' ')' ';' ','.
func isPunctuation(b byte) bool {
	return b == '(' || b == ')' || b == ';' || b == ','
}

// readOperator performs longest-match scanning over consecutive
// operator-set characters (spec §4.1).
func (l *Lexer) readOperator(start srcpos.Position) Token {
	begin := l.position
	for !l.atEnd() && isOperatorChar(l.current) {
		l.advance()
	}
	return Token{Kind: Operator, Lexeme: l.src[begin:l.position], Pos: start}
}

// readInteger scans one or more digits into an arbitrary-precision value
// (spec §9: integers are arbitrary precision where the host permits).
func (l *Lexer) readInteger(start srcpos.Position) Token {
	begin := l.position
	for !l.atEnd() && isDigitASCII(l.current) {
		l.advance()
	}
	lexeme := l.src[begin:l.position]
	val := new(big.Int)
	val.SetString(lexeme, 10)
	return Token{Kind: Integer, Lexeme: lexeme, IntValue: val, Pos: start}
}

// readIdentifierOrKeyword scans a letter followed by letters, digits or
// underscore, then classifies it against the reserved-word table.
func (l *Lexer) readIdentifierOrKeyword(start srcpos.Position) Token {
	begin := l.position
	for !l.atEnd() && (isLetter(l.current) || isDigitASCII(l.current) || l.current == '_') {
		l.advance()
	}
	lexeme := l.src[begin:l.position]
	if reservedWords[lexeme] {
		return Token{Kind: Keyword, Lexeme: lexeme, Pos: start}
	}
	return Token{Kind: Identifier, Lexeme: lexeme, Pos: start}
}

// readString scans a single-quoted string literal with escape handling
// for \t, \n, \\, \' (spec §4.1). Reports a LexicalError if the source
// ends before the closing quote.
func (l *Lexer) readString(start srcpos.Position) (Token, error) {
	l.advance() // consume opening quote
	var buf []byte
	for {
		if l.atEnd() {
			return Token{}, &LexicalError{Message: "unterminated string literal", Pos: start}
		}
		if l.current == '\'' {
			l.advance()
			break
		}
		if l.current == '\\' {
			l.advance()
			if l.atEnd() {
				return Token{}, &LexicalError{Message: "unterminated string literal", Pos: start}
			}
			switch l.current {
			case 't':
				buf = append(buf, '\t')
			case 'n':
				buf = append(buf, '\n')
			case '\\':
				buf = append(buf, '\\')
			case '\'':
				buf = append(buf, '\'')
			default:
				buf = append(buf, '\\', l.current)
			}
			l.advance()
			continue
		}
		buf = append(buf, l.current)
		l.advance()
	}
	return Token{Kind: String, Lexeme: string(buf), Pos: start}, nil
}
