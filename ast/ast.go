// Package ast defines the expression trees produced by the climb parser.
//
// Trees are built bottom-up during parsing and never mutated afterwards.
// Every node is owned exclusively by its parent; the root is owned by the
// caller once parsing completes.
package ast

// ---------------------------------------------------------------------------

// Node is implemented by every expression tree node.
type Node interface {
	Loc() *LocationRange
}

// Nodes is a slice of Node.
type Nodes []Node

// ---------------------------------------------------------------------------

// NodeBase carries the fields common to all nodes.
type NodeBase struct {
	loc LocationRange
}

// NewNodeBase creates a NodeBase covering the given range.
func NewNodeBase(loc LocationRange) NodeBase {
	return NodeBase{loc: loc}
}

// Loc returns the location range covered by this node.
func (n *NodeBase) Loc() *LocationRange {
	return &n.loc
}

// ---------------------------------------------------------------------------

// Operand is a leaf node wrapping a single operand token's payload.
type Operand struct {
	NodeBase
	Value string
}

// Prefix represents the application of a prefix operator to its operand,
// e.g. -x.
type Prefix struct {
	NodeBase
	Op      string
	Operand Node
}

// Postfix represents the application of a postfix operator to its operand,
// e.g. x!.
type Postfix struct {
	NodeBase
	Op      string
	Operand Node
}

// Binary represents the application of a binary operator to a left and a
// right operand, e.g. x + y.
type Binary struct {
	NodeBase
	Op    string
	Left  Node
	Right Node
}
