package climb

import (
	"fmt"
	"strings"

	"github.com/exprkit/climb/ast"
)

// Unparse renders node as a fully parenthesized expression. Reparsing the
// result with the table that produced the node yields a structurally
// identical tree; the parentheses carry all the grouping, so precedence and
// associativity never get a say.
func Unparse(node ast.Node) string {
	var sb strings.Builder
	unparse(&sb, node)
	return sb.String()
}

func unparse(sb *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Operand:
		sb.WriteString(n.Value)
	case *ast.Prefix:
		sb.WriteString("(")
		sb.WriteString(n.Op)
		// A non-leaf operand opens with "(", so the operator symbol can
		// never fuse with whatever follows it.
		unparse(sb, n.Operand)
		sb.WriteString(")")
	case *ast.Postfix:
		sb.WriteString("(")
		unparse(sb, n.Operand)
		sb.WriteString(n.Op)
		sb.WriteString(")")
	case *ast.Binary:
		sb.WriteString("(")
		unparse(sb, n.Left)
		sb.WriteString(" ")
		sb.WriteString(n.Op)
		sb.WriteString(" ")
		unparse(sb, n.Right)
		sb.WriteString(")")
	default:
		panic(fmt.Sprintf("Unparse: unhandled node type %T", node))
	}
}
