package syntax

import (
	"fmt"
	"unicode"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenLet
	TokenPrint
	TokenEqual
	TokenSemicolon
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIdent
	TokenNumber
	TokenImport
	TokenHeaderExtension
)

var tokenNames = [...]string{
	TokenEOF:             "END_OF_FILE",
	TokenError:           "ERROR",
	TokenLet:             "LET",
	TokenPrint:           "PRINT",
	TokenEqual:           "EQUAL",
	TokenSemicolon:       "SEMICOLON",
	TokenLambda:          "LAMBDA",
	TokenDot:             "DOT",
	TokenLParen:          "LPAREN",
	TokenRParen:          "RPAREN",
	TokenIdent:           "ID",
	TokenNumber:          "NUM",
	TokenImport:          "IMPORT",
	TokenHeaderExtension: "HEADER_EXTENSION",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// FileExtension is the extension of importable source files.
const FileExtension = "lc"

var keywords = map[string]TokenKind{
	"let":         TokenLet,
	"print":       TokenPrint,
	"printnum":    TokenPrint,
	"printbool":   TokenPrint,
	"import":      TokenImport,
	FileExtension: TokenHeaderExtension,
}

type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("{%s , %s , %d}", t.Lexeme, t.Kind, t.Line)
}

// Lexer turns an Input into tokens. Tokens can be pushed back with Unget
// and are returned again, most recent first.
type Lexer struct {
	in     *Input
	tokens []Token
}

func NewLexer(in *Input) *Lexer {
	return &Lexer{in: in}
}

// Input exposes the underlying character stream, for splicing imports.
func (l *Lexer) Input() *Input {
	return l.in
}

func (l *Lexer) Unget(t Token) {
	l.tokens = append(l.tokens, t)
}

func (l *Lexer) Peek() Token {
	t := l.Next()
	l.Unget(t)
	return t
}

func (l *Lexer) Next() Token {
	if n := len(l.tokens); n > 0 {
		t := l.tokens[n-1]
		l.tokens = l.tokens[:n-1]
		return t
	}

	l.skipSpace()
	line := l.in.Line()
	c, ok := l.in.Next()
	if !ok {
		return Token{Kind: TokenEOF, Line: line}
	}

	switch c {
	case '=':
		return Token{Kind: TokenEqual, Lexeme: "=", Line: line}
	case ';':
		return Token{Kind: TokenSemicolon, Lexeme: ";", Line: line}
	case '!':
		return Token{Kind: TokenLambda, Lexeme: "!", Line: line}
	case '.':
		return Token{Kind: TokenDot, Lexeme: ".", Line: line}
	case '(':
		return Token{Kind: TokenLParen, Lexeme: "(", Line: line}
	case ')':
		return Token{Kind: TokenRParen, Lexeme: ")", Line: line}
	case '/':
		if !l.skipComment() {
			return Token{Kind: TokenError, Lexeme: "/", Line: line}
		}
		return l.Next()
	}

	switch {
	case isDigit(c):
		l.in.Unget(c)
		return l.scan(TokenNumber, isDigit)
	case isLetter(c):
		l.in.Unget(c)
		t := l.scan(TokenIdent, func(r rune) bool { return isLetter(r) || isDigit(r) })
		if kind, ok := keywords[t.Lexeme]; ok {
			t.Kind = kind
		}
		return t
	default:
		return Token{Kind: TokenError, Lexeme: string(c), Line: line}
	}
}

func (l *Lexer) scan(kind TokenKind, accept func(rune) bool) Token {
	line := l.in.Line()
	var lexeme []rune
	for {
		c, ok := l.in.Next()
		if !ok {
			break
		}
		if !accept(c) {
			l.in.Unget(c)
			break
		}
		lexeme = append(lexeme, c)
	}
	return Token{Kind: kind, Lexeme: string(lexeme), Line: line}
}

func (l *Lexer) skipSpace() {
	for {
		c, ok := l.in.Next()
		if !ok {
			return
		}
		if !unicode.IsSpace(c) {
			l.in.Unget(c)
			return
		}
	}
}

// skipComment consumes the rest of a /* ... */ comment after the leading
// slash. It reports false if the comment is malformed or never closed.
func (l *Lexer) skipComment() bool {
	c, ok := l.in.Next()
	if !ok || c != '*' {
		if ok {
			l.in.Unget(c)
		}
		return false
	}
	star := false
	for {
		c, ok := l.in.Next()
		if !ok {
			return false
		}
		if star && c == '/' {
			return true
		}
		star = c == '*'
	}
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
