// Package executor walks an ast.Program and executes it.
package executor

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"go.creack.net/zipette/ast"
	"go.creack.net/zipette/lexer"
	"go.creack.net/zipette/style"
)

// UndefinedVariableError reports a reference to a name that was never
// assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Option configures an Executor.
type Option func(*Executor)

// WithStdout redirects print output, defaulting to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Executor) { e.stdout = w }
}

// WithEnv makes the executor use (and mutate) the given environment
// instead of starting empty. Used to share one environment across
// several runs, e.g. between REPL lines.
func WithEnv(env map[string]float64) Option {
	return func(e *Executor) { e.env = env }
}

// WithStyler sets the color renderer, defaulting to one seeded from
// the clock.
func WithStyler(s *style.Styler) Option {
	return func(e *Executor) { e.styler = s }
}

// Executor owns the variable environment for the duration of a run.
type Executor struct {
	prog ast.Program

	env    map[string]float64
	stdout io.Writer
	styler *style.Styler
}

// New creates an Executor for the given program.
func New(prog ast.Program, opts ...Option) *Executor {
	e := &Executor{
		prog:   prog,
		env:    map[string]float64{},
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.styler == nil {
		e.styler = style.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Run executes the program's statements in order. The first failure
// aborts the run; output already printed stands.
func (e *Executor) Run() error {
	for _, stmt := range e.prog.Statements {
		if err := e.executeStmt(stmt); err != nil {
			return fmt.Errorf("execute %q: %w", stmt.Dump(), err)
		}
	}
	return nil
}

func (e *Executor) executeStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		_, err := e.evaluateExpr(s.Expression)
		return err
	case ast.PrintStmt:
		v, err := e.evaluateExpr(s.Expression)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.stdout, formatNumber(v))
		return err
	case ast.PrintColoredStmt:
		v, err := e.evaluateExpr(s.Expression)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.stdout, e.styler.Render(formatNumber(v), s.Color))
		return err
	case ast.AssignStmt:
		v, err := e.evaluateExpr(s.Expression)
		if err != nil {
			return err
		}
		e.env[s.Name] = v
		return nil
	default:
		return fmt.Errorf("unsupported statement type %T", s)
	}
}

func (e *Executor) evaluateExpr(expr ast.Expr) (float64, error) {
	switch x := expr.(type) {
	case ast.NumberExpr:
		return x.Value, nil
	case ast.SymbolExpr:
		v, ok := e.env[x.Value]
		if !ok {
			return 0, &UndefinedVariableError{Name: x.Value}
		}
		return v, nil
	case ast.BinaryExpr:
		// Left before right, always.
		left, err := e.evaluateExpr(x.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.evaluateExpr(x.Right)
		if err != nil {
			return 0, err
		}
		return applyBinaryOp(x.Operator, left, right)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", x)
	}
}

func applyBinaryOp(op lexer.TokenType, left, right float64) (float64, error) {
	switch op {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokMinus:
		return left - right, nil
	case lexer.TokProduct:
		return left * right, nil
	case lexer.TokDivision:
		// IEEE semantics: dividing by zero yields Inf/NaN.
		return left / right, nil
	case lexer.TokExponent:
		return math.Pow(left, right), nil
	case lexer.TokShiftLeft:
		return shift(left, right, false), nil
	case lexer.TokShiftRight:
		return shift(left, right, true), nil
	default:
		return 0, fmt.Errorf("unsupported binary operator %s", op)
	}
}

// shift truncates both operands to uint64 and shifts. Amounts of 64 or
// more saturate to zero instead of wrapping.
func shift(left, right float64, toRight bool) float64 {
	operand := truncateUint64(left)
	amount := truncateUint64(right)
	if amount >= 64 {
		return 0
	}
	if toRight {
		return float64(operand >> amount)
	}
	return float64(operand << amount)
}

func truncateUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= float64(math.MaxUint64):
		return math.MaxUint64
	}
	return uint64(f)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
