package climb

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/exprkit/climb/ast"
)

//////////////////////////////////////////////////////////////////////////////
// Helpers

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierFirst(r rune) bool {
	return isUpper(r) || isLower(r) || r == '_'
}

func isIdentifier(r rune) bool {
	return isIdentifierFirst(r) || isNumber(r)
}

func isSymbol(r rune) bool {
	switch r {
	case '!', '$', '%', '&', '*', '+', '-', '.', '/', ':',
		'<', '=', '>', '?', '@', '^', '|', '~':
		return true
	}
	return false
}

//////////////////////////////////////////////////////////////////////////////
// Lexer

type lexer struct {
	fileName string // The file name being lexed, only used for errors
	input    string // The input string

	pos        int // Current byte position in input
	lineNumber int // Current line number for pos
	lineStart  int // Byte position of start of line

	// Data about the state position of the lexer before previous call to
	// 'next'. If this state is lost then prevPos is set to lexEOF and panic
	// ensues.
	prevPos        int // Byte position of last rune read
	prevLineNumber int // The line number before last rune read
	prevLineStart  int // The line start before last rune read

	tokens []Token // The tokens that we've generated so far

	// Information about the token we are working on right now
	tokenStart    int
	tokenStartLoc ast.Location
}

const lexEOF = -1

func makeLexer(fn string, input string) *lexer {
	return &lexer{
		fileName:       fn,
		input:          input,
		lineNumber:     1,
		prevPos:        lexEOF,
		prevLineNumber: 1,
		tokenStartLoc:  ast.Location{Line: 1, Column: 1},
	}
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	l.prevPos = l.pos
	l.prevLineNumber = l.lineNumber
	l.prevLineStart = l.lineStart
	if l.pos >= len(l.input) {
		return lexEOF
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.lineNumber++
		l.lineStart = l.pos
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	if l.prevPos == lexEOF {
		panic("backup called with no valid previous rune")
	}
	l.lineNumber = l.prevLineNumber
	l.lineStart = l.prevLineStart
	l.pos = l.prevPos
	l.prevPos = lexEOF
}

func (l *lexer) location() ast.Location {
	return ast.Location{Line: l.lineNumber, Column: l.pos - l.lineStart + 1}
}

func (l *lexer) prevLocation() ast.Location {
	if l.prevPos == lexEOF {
		panic("prevLocation called with no valid previous rune")
	}
	return ast.Location{Line: l.prevLineNumber, Column: l.prevPos - l.prevLineStart + 1}
}

// Reset the current working token start to the current cursor position. This
// may throw away some characters.
func (l *lexer) resetTokenStart() {
	l.tokenStart = l.pos
	l.tokenStartLoc = l.location()
}

func (l *lexer) emitToken(kind Kind) {
	l.tokens = append(l.tokens, Token{
		Kind: kind,
		Data: l.input[l.tokenStart:l.pos],
		Loc:  ast.MakeLocationRange(l.fileName, l.tokenStartLoc, l.location()),
	})
	l.resetTokenStart()
}

// lexNumber consumes a number and emits an operand token. It is assumed that
// the next rune to be served by the lexer will be a leading digit.
func (l *lexer) lexNumber() error {
	type numLexState int
	const (
		numBegin numLexState = iota
		numAfterZero
		numAfterOneToNine
		numAfterDot
		numAfterDigit
	)

	state := numBegin

outerLoop:
	for {
		r := l.next()
		switch state {
		case numBegin:
			switch {
			case r == '0':
				state = numAfterZero
			case r >= '1' && r <= '9':
				state = numAfterOneToNine
			default:
				// The caller should ensure the first rune is a digit.
				panic("Couldn't lex number")
			}
		case numAfterZero:
			if r == '.' {
				state = numAfterDot
			} else {
				break outerLoop
			}
		case numAfterOneToNine:
			switch {
			case r == '.':
				state = numAfterDot
			case r >= '0' && r <= '9':
				state = numAfterOneToNine
			default:
				break outerLoop
			}
		case numAfterDot:
			if r >= '0' && r <= '9' {
				state = numAfterDigit
			} else {
				return makeSyntaxErrorPoint(ErrUnexpectedToken,
					fmt.Sprintf("couldn't lex number, junk after decimal point: %v", strconv.QuoteRuneToASCII(r)),
					l.fileName, l.prevLocation())
			}
		case numAfterDigit:
			if r >= '0' && r <= '9' {
				state = numAfterDigit
			} else {
				break outerLoop
			}
		}
	}

	l.backup()
	l.emitToken(TokenOperand)
	return nil
}

// lexIdentifier consumes an identifier and emits an operand token. It is
// assumed that the next rune to be served by the lexer will be a valid first
// identifier rune.
func (l *lexer) lexIdentifier() {
	r := l.next()
	if !isIdentifierFirst(r) {
		panic("Unexpected character in lexIdentifier")
	}
	for ; r != lexEOF; r = l.next() {
		if !isIdentifier(r) {
			break
		}
	}
	l.backup()
	l.emitToken(TokenOperand)
}

// lexSymbol consumes a maximal run of symbol runes and emits it as a single
// operator token. Which runs are meaningful is the operator table's concern,
// not the lexer's.
func (l *lexer) lexSymbol() {
	var r rune
	for r = l.next(); isSymbol(r); r = l.next() {
	}
	l.backup()
	l.emitToken(TokenOperator)
}

// Lex turns input into a token stream terminated by a TokenEndOfInput
// sentinel. Identifiers and numbers become operand tokens, maximal runs of
// symbol runes become operator tokens, and # comments are skipped.
func Lex(fn string, input string) ([]Token, error) {
	l := makeLexer(fn, input)

	for r := l.next(); r != lexEOF; r = l.next() {
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.resetTokenStart()

		case r == '(':
			l.emitToken(TokenParenL)
		case r == ')':
			l.emitToken(TokenParenR)

		case r == '#':
			// Comment until end of line.
			for r = l.next(); r != lexEOF && r != '\n'; r = l.next() {
			}
			if r != lexEOF {
				l.backup()
			}
			l.resetTokenStart()

		case r >= '0' && r <= '9':
			l.backup()
			if err := l.lexNumber(); err != nil {
				return nil, err
			}

		case isIdentifierFirst(r):
			l.backup()
			l.lexIdentifier()

		case isSymbol(r):
			l.backup()
			l.lexSymbol()

		default:
			return nil, makeSyntaxErrorPoint(ErrUnexpectedToken,
				fmt.Sprintf("could not lex the character %s", strconv.QuoteRuneToASCII(r)),
				l.fileName, l.prevLocation())
		}
	}

	// We are currently at the end of input. Emit the sentinel that carries
	// its location.
	l.emitToken(TokenEndOfInput)
	return l.tokens, nil
}
