package climb

import (
	"fmt"
)

//////////////////////////////////////////////////////////////////////////////
// Fixity and associativity

// Fixity says where an operator sits relative to its operands.
type Fixity int

const (
	// FixityPrefix operators precede one operand, e.g. -x.
	FixityPrefix Fixity = iota
	// FixityBinary operators sit between two operands, e.g. x + y.
	FixityBinary
	// FixityPostfix operators follow one operand, e.g. x!.
	FixityPostfix
)

func (f Fixity) String() string {
	switch f {
	case FixityPrefix:
		return "prefix"
	case FixityBinary:
		return "binary"
	case FixityPostfix:
		return "postfix"
	default:
		return fmt.Sprintf("fixity(%d)", int(f))
	}
}

// Assoc says how a chain of same-precedence binary applications groups.
// For postfix operators it selects the chaining rule instead: AssocLeft
// permits an immediately following operator at the same precedence (a!!),
// AssocNone forbids it.
type Assoc int

const (
	// AssocLeft groups a op b op c as (a op b) op c.
	AssocLeft Assoc = iota
	// AssocRight groups a op b op c as a op (b op c).
	AssocRight
	// AssocNone makes a op b op c a syntax error.
	AssocNone
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	case AssocNone:
		return "none"
	default:
		return fmt.Sprintf("assoc(%d)", int(a))
	}
}

//////////////////////////////////////////////////////////////////////////////
// Operator descriptors

// PrefixOp describes one prefix operator. Its operand is parsed with
// Precedence as the minimum threshold, so only operators binding at least
// that tightly end up inside it.
type PrefixOp struct {
	Symbol     string
	Precedence int
}

// BinaryOp describes one binary operator. The two derived thresholds are
// computed once at table construction:
//
//	rightBinding — minimum precedence passed to the recursive call that
//	               parses the right operand. Precedence+1 for left- or
//	               non-associative operators, Precedence for right-
//	               associative ones.
//	nextAllowed  — highest precedence the enclosing loop may still accept
//	               after this operator fires. Precedence for left-
//	               associative operators, Precedence-1 otherwise.
type BinaryOp struct {
	Symbol     string
	Precedence int
	Assoc      Assoc

	rightBinding int
	nextAllowed  int
}

// PostfixOp describes one postfix operator. It parses no right operand;
// nextAllowed controls whether another operator at the same precedence may
// fire in the same loop, which is what decides if a!! is legal.
type PostfixOp struct {
	Symbol     string
	Precedence int
	Assoc      Assoc

	nextAllowed int
}

//////////////////////////////////////////////////////////////////////////////
// Table

// OpSpec is one entry of the operator table configuration.
type OpSpec struct {
	Symbol     string
	Fixity     Fixity
	Precedence int
	// Assoc applies to binary operators (left, right or none) and to
	// postfix operators (left or none, selecting the chaining rule). It is
	// ignored for prefix operators.
	Assoc Assoc
}

// Table maps operator symbols to their descriptors. It is immutable after
// construction and safe for concurrent reads.
type Table struct {
	prefix  map[string]PrefixOp
	binary  map[string]BinaryOp
	postfix map[string]PostfixOp
	minPrec int
	maxPrec int
}

// NewTable builds a Table from specs. Malformed configurations are rejected
// here, once, so parsing itself never has to deal with them: duplicate
// entries per fixity, a symbol that is both prefix and postfix (the one
// token of lookahead could not tell them apart after an operand), a symbol
// that is both binary and postfix (same reason), and postfix operators
// declared right-associative.
func NewTable(specs []OpSpec) (*Table, error) {
	t := &Table{
		prefix:  make(map[string]PrefixOp),
		binary:  make(map[string]BinaryOp),
		postfix: make(map[string]PostfixOp),
	}
	for i, s := range specs {
		if s.Symbol == "" {
			return nil, fmt.Errorf("operator with empty symbol")
		}
		if i == 0 || s.Precedence < t.minPrec {
			t.minPrec = s.Precedence
		}
		if i == 0 || s.Precedence > t.maxPrec {
			t.maxPrec = s.Precedence
		}
		switch s.Fixity {
		case FixityPrefix:
			if _, ok := t.prefix[s.Symbol]; ok {
				return nil, fmt.Errorf("duplicate prefix operator %q", s.Symbol)
			}
			if _, ok := t.postfix[s.Symbol]; ok {
				return nil, fmt.Errorf("operator %q cannot be both prefix and postfix", s.Symbol)
			}
			t.prefix[s.Symbol] = PrefixOp{Symbol: s.Symbol, Precedence: s.Precedence}

		case FixityBinary:
			if _, ok := t.binary[s.Symbol]; ok {
				return nil, fmt.Errorf("duplicate binary operator %q", s.Symbol)
			}
			if _, ok := t.postfix[s.Symbol]; ok {
				return nil, fmt.Errorf("operator %q cannot be both binary and postfix", s.Symbol)
			}
			op := BinaryOp{
				Symbol:       s.Symbol,
				Precedence:   s.Precedence,
				Assoc:        s.Assoc,
				rightBinding: s.Precedence + 1,
				nextAllowed:  s.Precedence,
			}
			switch s.Assoc {
			case AssocRight:
				op.rightBinding = s.Precedence
				op.nextAllowed = s.Precedence - 1
			case AssocNone:
				op.nextAllowed = s.Precedence - 1
			}
			t.binary[s.Symbol] = op

		case FixityPostfix:
			if _, ok := t.postfix[s.Symbol]; ok {
				return nil, fmt.Errorf("duplicate postfix operator %q", s.Symbol)
			}
			if _, ok := t.prefix[s.Symbol]; ok {
				return nil, fmt.Errorf("operator %q cannot be both prefix and postfix", s.Symbol)
			}
			if _, ok := t.binary[s.Symbol]; ok {
				return nil, fmt.Errorf("operator %q cannot be both binary and postfix", s.Symbol)
			}
			if s.Assoc == AssocRight {
				return nil, fmt.Errorf("postfix operator %q cannot be right-associative", s.Symbol)
			}
			op := PostfixOp{
				Symbol:      s.Symbol,
				Precedence:  s.Precedence,
				Assoc:       s.Assoc,
				nextAllowed: s.Precedence,
			}
			if s.Assoc == AssocNone {
				op.nextAllowed = s.Precedence - 1
			}
			t.postfix[s.Symbol] = op

		default:
			return nil, fmt.Errorf("operator %q has unknown fixity %v", s.Symbol, s.Fixity)
		}
	}
	return t, nil
}

// Prefix returns the prefix descriptor for tok, if tok can act as a prefix
// operator. A miss is not an error by itself.
func (t *Table) Prefix(tok Token) (PrefixOp, bool) {
	if tok.Kind != TokenOperator {
		return PrefixOp{}, false
	}
	op, ok := t.prefix[tok.Data]
	return op, ok
}

// Binary returns the binary descriptor for tok, if any.
func (t *Table) Binary(tok Token) (BinaryOp, bool) {
	if tok.Kind != TokenOperator {
		return BinaryOp{}, false
	}
	op, ok := t.binary[tok.Data]
	return op, ok
}

// Postfix returns the postfix descriptor for tok, if any.
func (t *Table) Postfix(tok Token) (PostfixOp, bool) {
	if tok.Kind != TokenOperator {
		return PostfixOp{}, false
	}
	op, ok := t.postfix[tok.Data]
	return op, ok
}

// MinPrecedence returns the lowest precedence in the table. It is the
// threshold that admits a full expression, used at the top level and inside
// parentheses.
func (t *Table) MinPrecedence() int {
	return t.minPrec
}

// MaxPrecedence returns the highest precedence in the table. It seeds the
// ratchet bound of each parsing loop.
func (t *Table) MaxPrecedence() int {
	return t.maxPrec
}

//////////////////////////////////////////////////////////////////////////////
// Ready-made tables

// Arithmetic returns a table with the usual arithmetic operators:
//
//	=        binary, non-associative
//	+ -      binary, left
//	* / %    binary, left
//	^        binary, right
//	- !      prefix
//	?        postfix, chainable
func Arithmetic() *Table {
	t, err := NewTable([]OpSpec{
		{Symbol: "=", Fixity: FixityBinary, Precedence: 1, Assoc: AssocNone},
		{Symbol: "+", Fixity: FixityBinary, Precedence: 2, Assoc: AssocLeft},
		{Symbol: "-", Fixity: FixityBinary, Precedence: 2, Assoc: AssocLeft},
		{Symbol: "*", Fixity: FixityBinary, Precedence: 3, Assoc: AssocLeft},
		{Symbol: "/", Fixity: FixityBinary, Precedence: 3, Assoc: AssocLeft},
		{Symbol: "%", Fixity: FixityBinary, Precedence: 3, Assoc: AssocLeft},
		{Symbol: "^", Fixity: FixityBinary, Precedence: 4, Assoc: AssocRight},
		{Symbol: "-", Fixity: FixityPrefix, Precedence: 5},
		{Symbol: "!", Fixity: FixityPrefix, Precedence: 5},
		{Symbol: "?", Fixity: FixityPostfix, Precedence: 6, Assoc: AssocLeft},
	})
	if err != nil {
		panic(err)
	}
	return t
}
