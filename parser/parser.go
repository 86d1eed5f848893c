// Package parser turns the lexer's token stream into an ast.Program.
package parser

import (
	"fmt"

	"go.creack.net/zipette/ast"
	"go.creack.net/zipette/lexer"
)

// Language keywords. Each one starts a statement.
const (
	keywordPrint        = "zipette"
	keywordPrintColored = "zipettecolor"
	keywordAssign       = "vicer"
)

// ParseError is returned for any malformed input, carrying the
// offending token. All parse failures go through it, including
// unmatched parentheses.
type ParseError struct {
	Msg   string
	Token lexer.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s (got %s)", e.Msg, e.Token)
}

// Parser consumes tokens one at a time, holding a single token of
// lookahead. The lexer is driven on demand and never rewound.
type Parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token
}

// New creates a Parser pulling from the given lexer and primes the
// lookahead.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.nextToken()
	return p
}

// Parse is a convenience helper scanning and parsing a full source
// string in one call.
func Parse(input string) (ast.Program, error) {
	return New(lexer.New(input)).Parse()
}

// Parse consumes the whole token stream and returns the program.
// An empty input yields an empty program.
func (p *Parser) Parse() (ast.Program, error) {
	var stmts []ast.Stmt

	for p.curToken.Type != lexer.TokEOF {
		stmt, err := parseStmt(p)
		if err != nil {
			return ast.Program{}, err
		}
		// Every statement ends with ';', no exception.
		if p.curToken.Type != lexer.TokEndOfStatement {
			return ast.Program{}, p.errorf("statement terminator ';' required")
		}
		p.nextToken()
		stmts = append(stmts, stmt)
	}

	return ast.Program{Statements: stmts}, nil
}

func (p *Parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.lex.NextToken()
	return p.curToken
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Msg:   fmt.Sprintf(format, args...),
		Token: p.curToken,
	}
}
