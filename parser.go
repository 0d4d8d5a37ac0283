// Package climb parses flat token streams into expression trees using
// precedence climbing.
//
// The engine is driven entirely by three per-operator numbers derived from
// the operator table (binding precedence, right binding precedence and next
// allowed precedence); code size and recursion shape do not depend on how
// many precedence levels the table declares.
package climb

import (
	"fmt"

	"github.com/exprkit/climb/ast"
)

// defaultMaxDepth bounds recursion in the default entry points so that
// deeply nested untrusted input fails with ErrNestingTooDeep instead of
// exhausting the call stack.
const defaultMaxDepth = 1000

// ---------------------------------------------------------------------------

func locFromTokenAST(begin Token, end ast.Node) ast.LocationRange {
	return ast.MakeLocationRange(begin.Loc.FileName, begin.Loc.Begin, end.Loc().End)
}

func locFromASTs(begin, end ast.Node) ast.LocationRange {
	return ast.MakeLocationRange(begin.Loc().FileName, begin.Loc().Begin, end.Loc().End)
}

func locFromASTToken(begin ast.Node, end Token) ast.LocationRange {
	return ast.MakeLocationRange(begin.Loc().FileName, begin.Loc().Begin, end.Loc.End)
}

// ---------------------------------------------------------------------------

type parser struct {
	cur      Cursor
	table    *Table
	maxDepth int
	depth    int
}

func makeParser(cur Cursor, table *Table, maxDepth int) *parser {
	return &parser{
		cur:      cur,
		table:    table,
		maxDepth: maxDepth,
	}
}

func (p *parser) pop() Token {
	t := p.cur.Peek()
	p.cur.Advance()
	return t
}

// parsePrimary parses a prefix application, a parenthesized expression or a
// single operand.
func (p *parser) parsePrimary() (ast.Node, error) {
	begin := p.cur.Peek()

	if op, ok := p.table.Prefix(begin); ok {
		p.pop()
		// The operand binds as tightly as the operator's declared
		// precedence dictates, so looser binary operators still claim the
		// overall expression.
		operand, err := p.parseExpr(op.Precedence)
		if err != nil {
			return nil, err
		}
		return &ast.Prefix{
			NodeBase: ast.NewNodeBase(locFromTokenAST(begin, operand)),
			Op:       op.Symbol,
			Operand:  operand,
		}, nil
	}

	switch begin.Kind {
	case TokenParenL:
		p.pop()
		expr, err := p.parseExpr(p.table.MinPrecedence())
		if err != nil {
			return nil, err
		}
		end := p.cur.Peek()
		if end.Kind != TokenParenR {
			if end.Kind == TokenEndOfInput {
				return nil, makeSyntaxError(ErrUnmatchedOpenParen, begin,
					fmt.Sprintf("%v is never closed", begin))
			}
			return nil, makeSyntaxError(ErrUnexpectedToken, end,
				fmt.Sprintf("expected ) but got %v", end))
		}
		p.pop()
		// Grouping is not materialized; the parentheses only shaped the
		// recursion.
		return expr, nil

	case TokenOperand:
		p.pop()
		return &ast.Operand{
			NodeBase: ast.NewNodeBase(begin.Loc),
			Value:    begin.Data,
		}, nil

	case TokenParenR:
		return nil, makeSyntaxError(ErrUnmatchedCloseParen, begin,
			fmt.Sprintf("%v has no matching open parenthesis", begin))

	default:
		return nil, makeSyntaxError(ErrUnexpectedToken, begin,
			fmt.Sprintf("expected operand or prefix operator but got %v", begin))
	}
}

// parseExpr parses one expression whose operators all have precedence of at
// least minPrec, leaving anything looser for the enclosing call.
func (p *parser) parseExpr(minPrec int) (ast.Node, error) {
	if p.maxDepth > 0 {
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > p.maxDepth {
			t := p.cur.Peek()
			return nil, makeSyntaxError(ErrNestingTooDeep, t,
				fmt.Sprintf("expression exceeds %d levels of nesting", p.maxDepth))
		}
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// r is the ratchet bound: it starts wide open and tightens every time
	// an operator fires, so that operators already handled by recursion (or
	// forbidden from chaining) cannot fire again in this loop.
	r := p.table.MaxPrecedence()
	for {
		t := p.cur.Peek()

		if op, ok := p.table.Binary(t); ok {
			if op.Precedence < minPrec {
				break
			}
			if op.Precedence > r {
				return nil, makeSyntaxError(ErrIllegalOperatorChain, t,
					fmt.Sprintf("operator %v cannot appear here", t))
			}
			p.pop()
			right, err := p.parseExpr(op.rightBinding)
			if err != nil {
				return nil, err
			}
			left = &ast.Binary{
				NodeBase: ast.NewNodeBase(locFromASTs(left, right)),
				Op:       op.Symbol,
				Left:     left,
				Right:    right,
			}
			r = op.nextAllowed
			continue
		}

		if op, ok := p.table.Postfix(t); ok {
			if op.Precedence < minPrec {
				break
			}
			if op.Precedence > r {
				return nil, makeSyntaxError(ErrIllegalOperatorChain, t,
					fmt.Sprintf("operator %v cannot appear here", t))
			}
			p.pop()
			left = &ast.Postfix{
				NodeBase: ast.NewNodeBase(locFromASTToken(left, t)),
				Op:       op.Symbol,
				Operand:  left,
			}
			r = op.nextAllowed
			continue
		}

		break
	}

	return left, nil
}

// ---------------------------------------------------------------------------

// Parse reads one complete expression from cur, classifying operators via
// table, and returns its tree. The cursor must be positioned at the end-of-
// input sentinel afterwards; trailing tokens are a syntax error. Recursion
// is bounded by a generous default limit; use ParseWithLimit to change it.
func Parse(cur Cursor, table *Table) (ast.Node, error) {
	return ParseWithLimit(cur, table, defaultMaxDepth)
}

// ParseWithLimit is Parse with an explicit recursion limit. Input nested
// more than maxDepth levels fails with ErrNestingTooDeep. A maxDepth of 0
// disables the limit, leaving the host call stack as the only bound.
func ParseWithLimit(cur Cursor, table *Table, maxDepth int) (ast.Node, error) {
	p := makeParser(cur, table, maxDepth)
	expr, err := p.parseExpr(table.MinPrecedence())
	if err != nil {
		return nil, err
	}

	switch t := p.cur.Peek(); t.Kind {
	case TokenEndOfInput:
		return expr, nil
	case TokenParenR:
		return nil, makeSyntaxError(ErrUnmatchedCloseParen, t,
			fmt.Sprintf("%v has no matching open parenthesis", t))
	default:
		return nil, makeSyntaxError(ErrTrailingInput, t,
			fmt.Sprintf("did not expect %v after a complete expression", t))
	}
}

// ParseString lexes input and parses the resulting token stream with table.
// The filename only appears in error locations.
func ParseString(table *Table, filename, input string) (ast.Node, error) {
	tokens, err := Lex(filename, input)
	if err != nil {
		return nil, err
	}
	return Parse(NewTokenCursor(tokens), table)
}
