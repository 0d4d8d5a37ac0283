package ast

import "testing"

func leaf(v string) Node {
	return &Operand{Value: v}
}

func bin(op string, l, r Node) Node {
	return &Binary{Op: op, Left: l, Right: r}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same leaf", leaf("a"), leaf("a"), true},
		{"different leaf", leaf("a"), leaf("b"), false},
		{"leaf vs binary", leaf("a"), bin("+", leaf("a"), leaf("b")), false},
		{
			"same binary",
			bin("+", leaf("a"), leaf("b")),
			bin("+", leaf("a"), leaf("b")),
			true,
		},
		{
			"different operator",
			bin("+", leaf("a"), leaf("b")),
			bin("-", leaf("a"), leaf("b")),
			false,
		},
		{
			"swapped children",
			bin("-", leaf("a"), leaf("b")),
			bin("-", leaf("b"), leaf("a")),
			false,
		},
		{
			"different shape",
			bin("-", bin("-", leaf("a"), leaf("b")), leaf("c")),
			bin("-", leaf("a"), bin("-", leaf("b"), leaf("c"))),
			false,
		},
		{
			"prefix vs postfix",
			&Prefix{Op: "-", Operand: leaf("a")},
			&Postfix{Op: "-", Operand: leaf("a")},
			false,
		},
		{
			"same prefix",
			&Prefix{Op: "-", Operand: leaf("a")},
			&Prefix{Op: "-", Operand: leaf("a")},
			true,
		},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("%s: Equal returned %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEqualIgnoresLocations(t *testing.T) {
	a := &Operand{NodeBase: NewNodeBase(MakeLocationRange("x", Location{1, 1}, Location{1, 2})), Value: "a"}
	b := &Operand{Value: "a"}
	if !Equal(a, b) {
		t.Error("Equal must ignore locations")
	}
}
