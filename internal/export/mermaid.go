package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/cky/internal/parsetree"
)

// GenerateMermaid produces a Mermaid graph TD diagram of a parse tree.
// Nodes are numbered N0, N1, ... in pre-order; leaves are drawn rounded.
func GenerateMermaid(n parsetree.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	next := 0
	writeMermaid(&sb, n, &next)
	return sb.String()
}

func writeMermaid(sb *strings.Builder, n parsetree.Node, next *int) string {
	id := fmt.Sprintf("N%d", *next)
	*next++

	label := mermaidLabel(n.Symbol)
	if n.IsLeaf() {
		sb.WriteString(fmt.Sprintf("  %s(\"%s\")\n", id, label))
		return id
	}
	sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", id, label))
	for _, c := range n.Children {
		childID := writeMermaid(sb, c, next)
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", id, childID))
	}
	return id
}

// mermaidLabel escapes double quotes, which end a Mermaid label.
func mermaidLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
