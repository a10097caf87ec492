package syntax

import (
	"path/filepath"
	"strconv"

	"github.com/samber/lo"

	"github.com/vic/golam/pkg/lambda"
)

// Importer supplies the text behind an import statement.
type Importer interface {
	// Library returns the source of a built-in library.
	Library(name string) (string, error)
	// File locates name, searching relative to the importing source first,
	// and returns its resolved path and contents.
	File(name, from string) (string, string, error)
}

// MaxNumeral is the largest numeric literal accepted. A literal n expands to
// a numeral of n nodes.
const MaxNumeral = 1 << 20

type Parser struct {
	lex      *Lexer
	importer Importer
	names    *lambda.Names
	prog     *Program
}

// NewParser returns a parser over input. names is the run's fresh-name
// allocator; numeric literals take their binder names from it.
func NewParser(name, input string, importer Importer, names *lambda.Names) *Parser {
	return &Parser{
		lex:      NewLexer(NewInput(name, input)),
		importer: importer,
		names:    names,
		prog:     &Program{Definitions: make(map[string]*lambda.Term)},
	}
}

// Parse reads a whole program:
//
//	program   ::= { def | import } reduction { reduction } EOF
//	def       ::= "let" ID "=" term ";"
//	import    ::= "import" ( ID | ID "." EXT ) ";"
//	reduction ::= PRINT term ";"
func (p *Parser) Parse() (*Program, error) {
	for {
		t := p.lex.Peek()
		if t.Kind == TokenLet {
			if err := p.parseDef(); err != nil {
				return nil, err
			}
		} else if t.Kind == TokenImport {
			if err := p.parseImport(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	for {
		if err := p.parseReduction(); err != nil {
			return nil, err
		}
		if p.lex.Peek().Kind == TokenEOF {
			break
		}
	}

	if err := p.expect(TokenEOF, "Expected end of file"); err != nil {
		return nil, err
	}
	return p.prog, nil
}

func (p *Parser) parseDef() error {
	if err := p.expect(TokenLet, "Expected 'let'"); err != nil {
		return err
	}
	id := p.lex.Next()
	if id.Kind != TokenIdent {
		return lambda.Syntaxf(id.Line, "Expected definition name")
	}
	if err := p.expect(TokenEqual, "Expected '='"); err != nil {
		return err
	}
	term, err := p.parseTerm()
	if err != nil {
		return err
	}
	p.prog.Definitions[id.Lexeme] = term
	return p.expect(TokenSemicolon, "Expected semicolon")
}

func (p *Parser) parseImport() error {
	if err := p.expect(TokenImport, "Expected 'import'"); err != nil {
		return err
	}
	id := p.lex.Next()
	if id.Kind != TokenIdent {
		return lambda.Syntaxf(id.Line, "Expected import name")
	}

	name, isFile := id.Lexeme, false
	if p.lex.Peek().Kind == TokenDot {
		p.lex.Next()
		ext := p.lex.Next()
		if ext.Kind != TokenHeaderExtension {
			return lambda.Syntaxf(ext.Line, "Expected header extension")
		}
		name, isFile = id.Lexeme+"."+ext.Lexeme, true
	}

	if err := p.expect(TokenSemicolon, "Expected semicolon"); err != nil {
		return err
	}

	in := p.lex.Input()
	if !isFile {
		text, err := p.importer.Library(name)
		if err != nil {
			return err
		}
		in.Splice(name, text)
		return nil
	}

	path, text, err := p.importer.File(name, filepath.Dir(in.Name()))
	if err != nil {
		return err
	}
	if lo.Contains(in.Importers(), path) {
		return lambda.Importf("import cycle through %s", name)
	}
	in.Splice(path, text)
	return nil
}

func (p *Parser) parseReduction() error {
	t := p.lex.Next()
	if t.Kind != TokenPrint {
		return lambda.Syntaxf(t.Line, "Expected print type")
	}
	kind, ok := printKinds[t.Lexeme]
	if !ok {
		return lambda.Syntaxf(t.Line, "Invalid print type")
	}
	term, err := p.parseTerm()
	if err != nil {
		return err
	}
	p.prog.Reductions = append(p.prog.Reductions, Reduction{Term: term, Kind: kind, Line: t.Line})
	return p.expect(TokenSemicolon, "Expected semicolon")
}

// parseTerm builds one term of the chain encoding:
//
//	term ::= "!" ID "." term
//	       | "(" term ")" [ term ]
//	       | ( ID | NUM ) [ term ]
func (p *Parser) parseTerm() (*lambda.Term, error) {
	t := p.lex.Peek()

	switch t.Kind {
	case TokenLambda:
		p.lex.Next()
		id := p.lex.Next()
		if id.Kind != TokenIdent {
			return nil, lambda.Syntaxf(id.Line, "Expected variable name")
		}
		if err := p.expect(TokenDot, "Expected '.'"); err != nil {
			return nil, err
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return lambda.Abs(id.Lexeme, body), nil

	case TokenLParen:
		p.lex.Next()
		head, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, "Expected ')'"); err != nil {
			return nil, err
		}
		next, err := p.parseRest()
		if err != nil {
			return nil, err
		}
		return lambda.App(head, next), nil

	case TokenIdent:
		p.lex.Next()
		next, err := p.parseRest()
		if err != nil {
			return nil, err
		}
		return lambda.Prim(t.Lexeme, next), nil

	case TokenNumber:
		p.lex.Next()
		n, err := strconv.Atoi(t.Lexeme)
		if err != nil {
			return nil, lambda.Syntaxf(t.Line, "Number %s out of range", t.Lexeme).Wrap(err)
		}
		if n > MaxNumeral {
			return nil, lambda.Syntaxf(t.Line, "Number %s out of range", t.Lexeme)
		}
		numeral := lambda.EncodeNumeral(n, p.names)
		next, err := p.parseRest()
		if err != nil {
			return nil, err
		}
		return lambda.App(numeral, next), nil

	default:
		return nil, lambda.Syntaxf(t.Line, "Unable to parse term")
	}
}

// parseRest parses the continuation of a chain, if there is one.
func (p *Parser) parseRest() (*lambda.Term, error) {
	switch p.lex.Peek().Kind {
	case TokenRParen, TokenSemicolon, TokenEOF:
		return nil, nil
	}
	return p.parseTerm()
}

func (p *Parser) expect(kind TokenKind, msg string) error {
	t := p.lex.Next()
	if t.Kind != kind {
		return lambda.Syntaxf(t.Line, "%s", msg)
	}
	return nil
}
