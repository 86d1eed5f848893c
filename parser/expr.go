package parser

import (
	"go.creack.net/zipette/ast"
	"go.creack.net/zipette/lexer"
)

// Expression grammar, lowest precedence first:
//
//	term     : factor (('+' | '-') factor)*
//	factor   : exponent (('*' | '/' | '<<' | '>>') exponent)*
//	exponent : literal (('^' | '**') exponent)?
//	literal  : NUMBER | IDENTIFIER | '(' term ')'
//
// term and factor are left-associative, exponent is right-associative.
func parseExpr(p *Parser) (ast.Expr, error) {
	return parseTerm(p)
}

func parseTerm(p *Parser) (ast.Expr, error) {
	left, err := parseFactor(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		operator := p.curToken.Type
		p.nextToken()
		right, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func parseFactor(p *Parser) (ast.Expr, error) {
	left, err := parseExponent(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokProduct, lexer.TokDivision, lexer.TokShiftLeft, lexer.TokShiftRight) {
		operator := p.curToken.Type
		p.nextToken()
		right, err := parseExponent(p)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func parseExponent(p *Parser) (ast.Expr, error) {
	left, err := parseLiteral(p)
	if err != nil {
		return nil, err
	}
	// Recursing into exponent rather than literal makes '^' bind to
	// the right: 2^3^2 is 2^(3^2).
	if p.curToken.Type == lexer.TokExponent {
		p.nextToken()
		right, err := parseExponent(p)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Left: left, Operator: lexer.TokExponent, Right: right}, nil
	}
	return left, nil
}

func parseLiteral(p *Parser) (ast.Expr, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		expression := ast.NumberExpr{Value: p.curToken.Num}
		p.nextToken()
		return expression, nil
	case lexer.TokIdentifier:
		expression := ast.SymbolExpr{Value: p.curToken.Value}
		p.nextToken()
		return expression, nil
	case lexer.TokParenLeft:
		p.nextToken()
		expression, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != lexer.TokParenRight {
			return nil, p.errorf("expected ')'")
		}
		p.nextToken()
		return expression, nil
	case lexer.TokError:
		// The scanner reports malformed input inline; reject it here.
		return nil, p.errorf("%s", p.curToken.Value)
	default:
		return nil, p.errorf("expected a number")
	}
}
