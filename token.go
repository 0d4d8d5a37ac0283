package climb

import (
	"fmt"

	"github.com/exprkit/climb/ast"
)

//////////////////////////////////////////////////////////////////////////////
// Token

// Kind classifies a token in the input stream.
type Kind int

const (
	// TokenInvalid is the zero value; no lexer produces it.
	TokenInvalid Kind = iota

	// TokenOperand is a value or identifier; its payload is in Data.
	TokenOperand

	// TokenOperator is an operator symbol, classified by the Table.
	TokenOperator

	// TokenParenL and TokenParenR group subexpressions.
	TokenParenL
	TokenParenR

	// TokenEndOfInput is a sentinel holding location information about the
	// end of the input. A Cursor returns it forever once the real tokens
	// run out.
	TokenEndOfInput
)

func (k Kind) String() string {
	switch k {
	case TokenOperand:
		return "operand"
	case TokenOperator:
		return "operator"
	case TokenParenL:
		return `"("`
	case TokenParenR:
		return `")"`
	case TokenEndOfInput:
		return "end of input"
	default:
		return "invalid token"
	}
}

// Token is one unit of the input stream. Tokens are immutable once produced.
type Token struct {
	Kind Kind   // The type of the token
	Data string // Payload for operands, symbol text for operators
	Loc  ast.LocationRange
}

func (t Token) String() string {
	if t.Data == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Data)
}

//////////////////////////////////////////////////////////////////////////////
// Cursor

// Cursor is the pull interface the engine consumes tokens through. It is
// typically backed by a lexer. The engine never looks ahead by more than
// one token and never reads past the end-of-input sentinel.
//
// A Cursor is owned exclusively by the in-flight Parse call and must not be
// accessed concurrently.
type Cursor interface {
	// Peek returns the next token without consuming it. At and past the
	// end of the stream it returns a TokenEndOfInput token.
	Peek() Token

	// Advance consumes one token. Advancing past end of input is a no-op.
	Advance()
}

// TokenCursor is a Cursor over a slice of tokens, such as the one Lex
// produces.
type TokenCursor struct {
	tokens []Token
	pos    int
}

// NewTokenCursor creates a TokenCursor reading from tokens.
func NewTokenCursor(tokens []Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Peek implements Cursor.
func (c *TokenCursor) Peek() Token {
	if c.pos >= len(c.tokens) {
		return Token{Kind: TokenEndOfInput}
	}
	return c.tokens[c.pos]
}

// Advance implements Cursor.
func (c *TokenCursor) Advance() {
	if c.pos < len(c.tokens) && c.tokens[c.pos].Kind != TokenEndOfInput {
		c.pos++
	}
}
