package generator

import (
	"fmt"
	"io"
	"strings"

	"csdiag/internal/syntax"
)

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "    "

// ClassDiagramGenerator renders declaration trees as PlantUML class-diagram
// lines. It is a straight recursive descent over the tree: one mutable depth
// counter, one append-only line sink, no validation. Malformed input (empty
// names, missing types) degrades to empty segments in the output; the tree is
// assumed well-formed and acyclic by the upstream parser.
type ClassDiagramGenerator struct {
	w      io.Writer
	indent string
	depth  int
}

// NewClassDiagramGenerator creates a generator writing to w. indent is the
// unit repeated once per nesting level; empty selects DefaultIndent.
func NewClassDiagramGenerator(w io.Writer, indent string) *ClassDiagramGenerator {
	if indent == "" {
		indent = DefaultIndent
	}
	return &ClassDiagramGenerator{w: w, indent: indent}
}

// Visit emits the diagram lines for one declaration and its members.
// Depth is conserved: it returns to its pre-visit value on every path.
func (g *ClassDiagramGenerator) Visit(d *syntax.Declaration) {
	switch d.Kind {
	case syntax.KindInterface, syntax.KindClass, syntax.KindStruct:
		g.visitContainer(d)
	case syntax.KindEnum:
		g.visitEnum(d)
	case syntax.KindConstructor:
		g.writeLine(fmt.Sprintf("%s%s(%s)", translateMemberModifiers(d.Modifiers), d.Name, formatParams(d.Params)))
	case syntax.KindField:
		g.visitField(d)
	case syntax.KindProperty:
		g.visitProperty(d)
	case syntax.KindMethod:
		g.writeLine(fmt.Sprintf("%s%s(%s) : %s", translateMemberModifiers(d.Modifiers), d.Name, formatParams(d.Params), d.Type))
	case syntax.KindEnumMember:
		g.writeLine(d.Name + d.ValueClause + ",")
	}
}

// visitContainer handles interface, class and struct declarations:
// header, members at depth+1, closing brace, then one inheritance edge per
// base-list entry. The edges come strictly after the close so they are never
// interleaved with member lines.
func (g *ClassDiagramGenerator) visitContainer(d *syntax.Declaration) {
	g.writeLine(fmt.Sprintf("%s %s%s %s{", containerKeyword(d), d.Name, d.TypeParams, translateTypeModifiers(d.Modifiers)))

	g.depth++
	for _, m := range d.Members {
		g.Visit(m)
	}
	g.depth--

	g.writeLine("}")

	for _, base := range d.BaseTypes {
		g.writeLine(fmt.Sprintf("%s <|-- %s", d.Name, base))
	}
}

func (g *ClassDiagramGenerator) visitEnum(d *syntax.Declaration) {
	g.writeLine("enum " + d.Name + " {")

	g.depth++
	for _, m := range d.Members {
		g.Visit(m)
	}
	g.depth--

	g.writeLine("}")
}

// visitField emits one line per declared variable, in source order.
func (g *ClassDiagramGenerator) visitField(d *syntax.Declaration) {
	mods := translateMemberModifiers(d.Modifiers)
	for _, v := range d.Variables {
		g.writeLine(fmt.Sprintf("%s%s : %s%s", mods, v.Name, d.Type, initSuffix(v.Init)))
	}
}

func (g *ClassDiagramGenerator) visitProperty(d *syntax.Declaration) {
	g.writeLine(fmt.Sprintf("%s%s : %s %s%s",
		translateMemberModifiers(d.Modifiers), d.Name, d.Type,
		accessorStereotypes(d.Accessors), initSuffix(d.Init)))
}

// containerKeyword folds the abstract modifier into the class keyword and
// gives structs their fixed stereotype; visibility never shows on containers.
func containerKeyword(d *syntax.Declaration) string {
	switch d.Kind {
	case syntax.KindInterface:
		return "interface"
	case syntax.KindStruct:
		return "class <<struct>>"
	default:
		if hasModifier(d.Modifiers, "abstract") {
			return "abstract class"
		}
		return "class"
	}
}

// accessorStereotypes renders one <<...>> token per accessor that is not
// declared private, accessor-level modifiers prefixed. Private accessors are
// omitted entirely.
func accessorStereotypes(accessors []syntax.Accessor) string {
	var tokens []string
	for _, a := range accessors {
		if hasModifier(a.Modifiers, "private") {
			continue
		}
		parts := append(append([]string{}, a.Modifiers...), a.Keyword)
		tokens = append(tokens, "<<"+strings.Join(parts, " ")+">>")
	}
	return strings.Join(tokens, " ")
}

func formatParams(params []syntax.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+":"+p.Type)
	}
	return strings.Join(parts, ", ")
}

// initSuffix shows literal initializers only; expressions, constructions and
// calls are suppressed without a placeholder.
func initSuffix(init *syntax.Initializer) string {
	if init == nil || !init.Literal {
		return ""
	}
	return " = " + init.Text
}

func (g *ClassDiagramGenerator) writeLine(text string) {
	io.WriteString(g.w, strings.Repeat(g.indent, g.depth)+text+"\n")
}
