package export

import (
	"strings"

	"github.com/dusk-indust/cky/internal/parsetree"
)

// RenderText draws n as an indented tree:
//
//	S
//	|____A
//	|    |____a
//	|____B
//	     |____b
func RenderText(n parsetree.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Symbol)
	sb.WriteByte('\n')
	writeChildren(&sb, n.Children, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, children []parsetree.Node, prefix string) {
	for i, c := range children {
		sb.WriteString(prefix)
		sb.WriteString("|____")
		sb.WriteString(c.Symbol)
		sb.WriteByte('\n')

		childPrefix := prefix + "|    "
		if i == len(children)-1 {
			childPrefix = prefix + "     "
		}
		writeChildren(sb, c.Children, childPrefix)
	}
}
