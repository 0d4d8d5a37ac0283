package ast

// Equal reports whether two trees have the same shape, the same operators
// and the same operand payloads. Locations are ignored.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Operand:
		b, ok := b.(*Operand)
		return ok && a.Value == b.Value
	case *Prefix:
		b, ok := b.(*Prefix)
		return ok && a.Op == b.Op && Equal(a.Operand, b.Operand)
	case *Postfix:
		b, ok := b.(*Postfix)
		return ok && a.Op == b.Op && Equal(a.Operand, b.Operand)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
	return false
}
