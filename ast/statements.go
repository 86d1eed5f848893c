package ast

import "fmt"

// ExpressionStmt evaluates an expression for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt() {}

func (s ExpressionStmt) Dump() string { return s.Expression.Dump() }

// PrintStmt is the 'zipette' statement.
type PrintStmt struct {
	Expression Expr
}

func (PrintStmt) stmt() {}

func (s PrintStmt) Dump() string {
	return fmt.Sprintf("zipette %s", s.Expression.Dump())
}

// PrintColoredStmt is the 'zipettecolor' statement.
type PrintColoredStmt struct {
	Color      Color
	Expression Expr
}

func (PrintColoredStmt) stmt() {}

func (s PrintColoredStmt) Dump() string {
	return fmt.Sprintf("zipettecolor %s %s", s.Color, s.Expression.Dump())
}

// AssignStmt is the 'vicer' statement, binding a value to a name.
type AssignStmt struct {
	Name       string
	Expression Expr
}

func (AssignStmt) stmt() {}

func (s AssignStmt) Dump() string {
	return fmt.Sprintf("vicer %s %s", s.Name, s.Expression.Dump())
}
