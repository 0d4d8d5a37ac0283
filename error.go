package climb

import (
	"fmt"

	"github.com/exprkit/climb/ast"
)

//////////////////////////////////////////////////////////////////////////////
// SyntaxError

// ErrKind discriminates the ways an expression can be rejected. Every
// rejection path returns a distinct, inspectable kind; callers dispatch on
// it rather than on message text.
type ErrKind int

const (
	// ErrUnexpectedToken means an operand or prefix operator was expected
	// but something else was found.
	ErrUnexpectedToken ErrKind = iota

	// ErrUnmatchedOpenParen means the input ended before a "(" was closed.
	ErrUnmatchedOpenParen

	// ErrUnmatchedCloseParen means a stray ")" with no matching open.
	ErrUnmatchedCloseParen

	// ErrIllegalOperatorChain means a non-associative or precedence-
	// incompatible operator adjacency, e.g. a = b = c for non-associative =.
	ErrIllegalOperatorChain

	// ErrTrailingInput means extra tokens after a complete expression.
	ErrTrailingInput

	// ErrNestingTooDeep means the expression exceeded the parser's
	// configured recursion limit.
	ErrNestingTooDeep
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnmatchedOpenParen:
		return "unmatched open parenthesis"
	case ErrUnmatchedCloseParen:
		return "unmatched close parenthesis"
	case ErrIllegalOperatorChain:
		return "illegal operator chain"
	case ErrTrailingInput:
		return "trailing input"
	case ErrNestingTooDeep:
		return "nesting too deep"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// SyntaxError represents an error while lexing or parsing an expression.
// It is terminal for the current parse: no partial tree is ever returned
// alongside one.
type SyntaxError struct {
	Kind  ErrKind
	Token Token // The offending token; zero for pure lexing errors.
	Loc   ast.LocationRange
	Msg   string
}

func makeSyntaxError(kind ErrKind, tok Token, msg string) SyntaxError {
	return SyntaxError{Kind: kind, Token: tok, Loc: tok.Loc, Msg: msg}
}

func makeSyntaxErrorPoint(kind ErrKind, msg string, fn string, l ast.Location) SyntaxError {
	return SyntaxError{Kind: kind, Loc: ast.MakeLocationRange(fn, l, l), Msg: msg}
}

func (err SyntaxError) Error() string {
	loc := ""
	if err.Loc.IsSet() {
		loc = err.Loc.String()
	}
	return fmt.Sprintf("%v %v", loc, err.Msg)
}
