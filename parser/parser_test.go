package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/zipette/ast"
)

// parseDump parses the input and returns the canonical dump of the
// resulting program.
func parseDump(t *testing.T, input string) string {
	t.Helper()

	prog, err := Parse(input)
	require.NoError(t, err, "parse %q", input)
	return prog.Dump()
}

func TestParserEmptyInput(t *testing.T) {
	prog, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, prog.Statements)
}

func TestParserPrecedence(t *testing.T) {
	assert.Equal(t, "(2 + (3 * 4));\n", parseDump(t, "2 + 3 * 4;"))
	assert.Equal(t, "((2 * 3) + 4);\n", parseDump(t, "2 * 3 + 4;"))
	assert.Equal(t, "((2 + 3) * (2 ^ 2));\n", parseDump(t, "(2 + 3) * 2 ^ 2;"))
}

func TestParserLeftAssociativity(t *testing.T) {
	assert.Equal(t, "((1 + 2) + 3);\n", parseDump(t, "1 + 2 + 3;"))
	assert.Equal(t, "((8 / 2) / 2);\n", parseDump(t, "8 / 2 / 2;"))
	assert.Equal(t, "((1 << 2) >> 3);\n", parseDump(t, "1 << 2 >> 3;"))
}

func TestParserExponentRightAssociativity(t *testing.T) {
	assert.Equal(t, "(2 ^ (3 ^ 2));\n", parseDump(t, "2 ^ 3 ^ 2;"))
	// '**' is the same operator as '^'.
	assert.Equal(t, "(2 ^ (3 ^ 2));\n", parseDump(t, "2 ** 3 ** 2;"))
}

func TestParserShiftPrecedence(t *testing.T) {
	// Shifts share the factor level with '*' and '/'.
	assert.Equal(t, "(1 + (2 << 3));\n", parseDump(t, "1 + 2 << 3;"))
}

func TestParserStatements(t *testing.T) {
	prog, err := Parse("zipette 3.5 + 34; vicer x 5; zipettecolor red x; x + 1;")
	require.Error(t, err) // Bare 'x + 1' starts with an identifier.

	prog, err = Parse("zipette 3.5 + 34; vicer x 5; zipettecolor red x;")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 3)
	t.Logf("%# v", pretty.Formatter(prog))

	require.IsType(t, ast.PrintStmt{}, prog.Statements[0])
	require.IsType(t, ast.AssignStmt{}, prog.Statements[1])
	require.IsType(t, ast.PrintColoredStmt{}, prog.Statements[2])

	assign := prog.Statements[1].(ast.AssignStmt)
	assert.Equal(t, "x", assign.Name)

	colored := prog.Statements[2].(ast.PrintColoredStmt)
	assert.Equal(t, ast.ColorRed, colored.Color)
}

func TestParserBareExpressionStatement(t *testing.T) {
	prog, err := Parse("1 + 2;")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	require.IsType(t, ast.ExpressionStmt{}, prog.Statements[0])
}

func TestParserAllColors(t *testing.T) {
	for _, name := range []string{
		"red", "blue", "green", "yellow", "purple", "cyan",
		"orange", "white", "brown", "pink", "multicolor",
	} {
		_, err := Parse("zipettecolor " + name + " 1;")
		assert.NoError(t, err, "color %q", name)
	}
}

func requireParseError(t *testing.T, input, msg string) {
	t.Helper()

	_, err := Parse(input)
	require.Error(t, err, "parse %q", input)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr, "parse %q", input)
	assert.Contains(t, parseErr.Error(), msg, "parse %q", input)
}

func TestParserErrors(t *testing.T) {
	requireParseError(t, "zipette 5", "statement terminator")
	requireParseError(t, "zipette 5; zipette 6", "statement terminator")
	requireParseError(t, "1 2;", "statement terminator")
	requireParseError(t, "foo 5;", "unexpected identifier")
	requireParseError(t, "zipettecolor mauve 5;", "unknown color")
	requireParseError(t, "zipettecolor 5;", "requires a color name")
	requireParseError(t, "vicer 5;", "requires a variable name")
	requireParseError(t, "zipette + 5;", "expected a number")
	requireParseError(t, "zipette 1 < 2;", "statement terminator")
	requireParseError(t, "@;", "expected a number")
}

func TestParserUnclosedParen(t *testing.T) {
	// Must come back as a regular error, not a panic.
	requireParseError(t, "zipette (2 + 3;", "expected ')'")
	requireParseError(t, "(1;", "expected ')'")
}

func TestParserGluedMinus(t *testing.T) {
	// '2-5' scans as the numbers 2 and -5; with no operator between
	// them, the statement cannot terminate properly.
	requireParseError(t, "2-5;", "statement terminator")
	// Spaced out, it is a plain subtraction.
	assert.Equal(t, "(2 - 5);\n", parseDump(t, "2 - 5;"))
}
