package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/zipette/lexer"
)

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (e NumberExpr) Dump() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

// SymbolExpr is a variable reference, resolved at evaluation time.
type SymbolExpr struct {
	Value string
}

func (SymbolExpr) expr() {}

func (e SymbolExpr) Dump() string { return e.Value }

// BinaryExpr applies an operator to two fully-owned sub trees.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // '+', '-', '*', '/', '^', '<<' or '>>'.
	Right    Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.Dump(), e.Operator, e.Right.Dump())
}
