// Package ast defines the syntax tree for the zipette language.
package ast

// Program represents the top-level program: the ordered list of
// statements to execute.
type Program struct {
	Statements []Stmt
}

func (p Program) Dump() string {
	result := ""
	for _, stmt := range p.Statements {
		result += stmt.Dump() + ";\n"
	}
	return result
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Dump() string
	stmt()
}

// Expr is implemented by every expression node.
type Expr interface {
	Dump() string
	expr()
}
