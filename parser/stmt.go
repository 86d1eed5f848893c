package parser

import (
	"go.creack.net/zipette/ast"
	"go.creack.net/zipette/lexer"
)

func parseStmt(p *Parser) (ast.Stmt, error) {
	if p.curToken.Type == lexer.TokIdentifier {
		switch p.curToken.Value {
		case keywordPrint:
			return parsePrintStmt(p)
		case keywordPrintColored:
			return parsePrintColoredStmt(p)
		case keywordAssign:
			return parseAssignStmt(p)
		default:
			// Identifiers may only start a statement as a keyword.
			return nil, p.errorf("unexpected identifier %q at start of statement", p.curToken.Value)
		}
	}

	expression, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.ExpressionStmt{Expression: expression}, nil
}

func parsePrintStmt(p *Parser) (ast.Stmt, error) {
	p.nextToken() // Consume the keyword.
	expression, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.PrintStmt{Expression: expression}, nil
}

func parsePrintColoredStmt(p *Parser) (ast.Stmt, error) {
	p.nextToken() // Consume the keyword.
	if p.curToken.Type != lexer.TokIdentifier {
		return nil, p.errorf("%s requires a color name", keywordPrintColored)
	}
	color, ok := ast.LookupColor(p.curToken.Value)
	if !ok {
		return nil, p.errorf("unknown color %q", p.curToken.Value)
	}
	p.nextToken() // Consume the color.
	expression, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.PrintColoredStmt{Color: color, Expression: expression}, nil
}

func parseAssignStmt(p *Parser) (ast.Stmt, error) {
	p.nextToken() // Consume the keyword.
	if p.curToken.Type != lexer.TokIdentifier {
		return nil, p.errorf("%s requires a variable name", keywordAssign)
	}
	name := p.curToken.Value
	p.nextToken() // Consume the name.
	expression, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.AssignStmt{Name: name, Expression: expression}, nil
}
