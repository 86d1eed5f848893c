package lexer

import (
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	l.skipWhitespace()

	if l.atEOF {
		return l.emit(TokEOF)
	}

	// List of runes that just advance one and emit a token.
	singles := map[rune]TokenType{
		'+': TokPlus,
		'/': TokDivision,
		'^': TokExponent,
		'(': TokParenLeft,
		')': TokParenRight,
		';': TokEndOfStatement,
	}

	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case r == '-':
		l.next()
		if p := l.peek(); p >= '0' && p <= '9' {
			// '-' glued to a digit is part of the number,
			// not a subtraction.
			return lexNumber
		}
		return l.emit(TokMinus)
	case r == '*':
		l.next()
		if l.peek() == '*' {
			l.next()
			return l.emit(TokExponent)
		}
		return l.emit(TokProduct)
	case r == '<':
		l.next()
		if l.peek() == '<' {
			l.next()
			return l.emit(TokShiftLeft)
		}
		return l.emit(TokUnknown)
	case r == '>':
		l.next()
		if l.peek() == '>' {
			l.next()
			return l.emit(TokShiftRight)
		}
		return l.emit(TokUnknown)
	case r >= '0' && r <= '9':
		return lexNumber
	case strings.ContainsRune(identifierChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		l.next()
		return l.emit(TokUnknown)
	}
}

// lexNumber scans an ASCII digit run with at most one '.' or ','
// decimal separator. A leading '-' may already have been consumed by
// lexText. The accumulated text always parses; the check is defensive.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	if l.accept(".,") {
		l.acceptRun(digitChars)
	}

	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseFloat(strings.ReplaceAll(tok.Value, ",", "."), 64)
	if err != nil {
		return l.errorToken("invalid number: " + tok.Value)
	}
	tok.Num = n
	return l.emitToken(tok)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	return l.emit(TokIdentifier)
}
