package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals + identifiers.
	TokNumber
	TokIdentifier

	// Operators.
	TokPlus
	TokMinus
	TokProduct
	TokDivision
	TokExponent
	TokShiftLeft  // DLESS (<<).
	TokShiftRight // DGREAT (>>).

	// Delimiters.
	TokParenLeft
	TokParenRight
	TokEndOfStatement // ';'.

	// Anything the scanner doesn't recognize. Consumed and yielded,
	// never fatal; rejecting it is the parser's job.
	TokUnknown

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",

	TokPlus:       "+",
	TokMinus:      "-",
	TokProduct:    "*",
	TokDivision:   "/",
	TokExponent:   "^",
	TokShiftLeft:  "<<",
	TokShiftRight: ">>",

	TokParenLeft:      "PAREN_LEFT",
	TokParenRight:     "PAREN_RIGHT",
	TokEndOfStatement: "END_OF_STATEMENT",

	TokUnknown: "UNKNOWN",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of the zipette language.
type Token struct {
	Type  TokenType
	Value string

	// Num holds the parsed value for TokNumber tokens.
	Num float64

	pos  int
	line int
}

// Pos returns the column offset of the token within its line.
func (t Token) Pos() int { return t.pos }

// Line returns the line the token was scanned on.
func (t Token) Line() int { return t.line }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case t.Type == TokNumber:
		return fmt.Sprintf("%s[%d:%d]: %v", t.Type, t.line, t.pos, t.Num)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d:%d]: %s", t.line, t.pos, t.Value)
}
