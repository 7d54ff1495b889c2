package generator

import (
	"strings"

	"csdiag/internal/syntax"
)

// RenderDiagram assembles a complete PlantUML document from top-level
// declarations: @startuml framing around one core rendering per declaration.
// The framing is file assembly, not part of the visitor.
func RenderDiagram(decls []*syntax.Declaration, indent string) string {
	var sb strings.Builder
	sb.WriteString("@startuml\n")

	g := NewClassDiagramGenerator(&sb, indent)
	for _, d := range decls {
		g.Visit(d)
	}

	sb.WriteString("@enduml\n")
	return sb.String()
}
