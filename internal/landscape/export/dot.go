package export

import (
	"fmt"
	"strings"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// ToDOT renders a diagram as GraphViz DOT for offline inspection.
func ToDOT(d *domain.Diagram, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	for _, n := range d.Nodes {
		style := `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
		switch n.Type {
		case domain.NodeCoreSystem:
			style = `shape=box,style="rounded,filled",fillcolor="#d1e7dd"`
		case domain.NodeMiddleware:
			style = `shape=cds,style="filled",fillcolor="#fff3cd"`
		case domain.NodeExternal:
			style = `shape=box,style="rounded,dashed"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", %s];`+"\n", n.ID, n.Name, style))
	}

	for _, l := range d.Links {
		lbl := l.Pattern
		if l.Frequency != "" {
			lbl = fmt.Sprintf("%s (%s)", lbl, l.Frequency)
		}
		if l.Count > 0 {
			lbl = fmt.Sprintf("%d flows", l.Count)
		}
		if l.Middleware != "" {
			lbl = fmt.Sprintf("%s via %s", lbl, l.Middleware)
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s"];`+"\n", l.Source, l.Target, strings.TrimSpace(lbl)))
	}

	b.WriteString("}\n")
	return b.String()
}
