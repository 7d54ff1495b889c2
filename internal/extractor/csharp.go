package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"csdiag/internal/syntax"
)

// CSharpExtractor implements LanguageExtractor for C#.
type CSharpExtractor struct{}

func (c *CSharpExtractor) GetLanguage() *sitter.Language {
	return csharp.GetLanguage()
}

// ExtractTree collects type declarations from a compilation unit. Namespace
// declarations (block-scoped and file-scoped) are transparent: their members
// surface as top-level declarations.
func (c *CSharpExtractor) ExtractTree(root *sitter.Node, source []byte, filepath string) []*syntax.Declaration {
	var decls []*syntax.Declaration
	c.collect(root, source, filepath, &decls)
	return decls
}

func (c *CSharpExtractor) collect(node *sitter.Node, source []byte, filepath string, out *[]*syntax.Declaration) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "namespace_declaration", "file_scoped_namespace_declaration":
			if body := childOfType(child, "declaration_list"); body != nil {
				c.collect(body, source, filepath, out)
			} else {
				// File-scoped namespaces keep their members as siblings
				// of the namespace node under the same parent.
				c.collect(child, source, filepath, out)
			}
		default:
			if d := c.extractDeclaration(child, source, filepath); d != nil {
				*out = append(*out, d)
			}
		}
	}
}

// extractDeclaration dispatches on the tree-sitter node type. Unknown node
// kinds (operators, events, delegates, attributes) yield nil and are skipped.
func (c *CSharpExtractor) extractDeclaration(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	switch node.Type() {
	case "class_declaration":
		return c.extractContainer(syntax.KindClass, node, source, filepath)
	case "interface_declaration":
		return c.extractContainer(syntax.KindInterface, node, source, filepath)
	case "struct_declaration":
		return c.extractContainer(syntax.KindStruct, node, source, filepath)
	case "enum_declaration":
		return c.extractEnum(node, source, filepath)
	case "constructor_declaration":
		return c.extractConstructor(node, source, filepath)
	case "field_declaration":
		return c.extractField(node, source, filepath)
	case "property_declaration":
		return c.extractProperty(node, source, filepath)
	case "method_declaration":
		return c.extractMethod(node, source, filepath)
	case "enum_member_declaration":
		return c.extractEnumMember(node, source, filepath)
	}
	return nil
}

func (c *CSharpExtractor) extractContainer(kind syntax.Kind, node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	d := &syntax.Declaration{
		Kind:      kind,
		Name:      fieldContent(node, "name", source),
		Modifiers: modifierTokens(node, source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}

	if tp := childOfType(node, "type_parameter_list"); tp != nil {
		d.TypeParams = tp.Content(source)
	}
	if bl := childOfType(node, "base_list"); bl != nil {
		for i := 0; i < int(bl.NamedChildCount()); i++ {
			d.BaseTypes = append(d.BaseTypes, bl.NamedChild(i).Content(source))
		}
	}
	if body := childOfType(node, "declaration_list"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			if m := c.extractDeclaration(body.NamedChild(i), source, filepath); m != nil {
				d.Members = append(d.Members, m)
			}
		}
	}
	return d
}

func (c *CSharpExtractor) extractEnum(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	d := &syntax.Declaration{
		Kind:      syntax.KindEnum,
		Name:      fieldContent(node, "name", source),
		Modifiers: modifierTokens(node, source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
	if body := childOfType(node, "enum_member_declaration_list"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			if m := c.extractDeclaration(body.NamedChild(i), source, filepath); m != nil {
				d.Members = append(d.Members, m)
			}
		}
	}
	return d
}

func (c *CSharpExtractor) extractEnumMember(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	d := &syntax.Declaration{
		Kind:      syntax.KindEnumMember,
		Name:      fieldContent(node, "name", source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
	if value := node.ChildByFieldName("value"); value != nil {
		d.ValueClause = " = " + value.Content(source)
	}
	return d
}

func (c *CSharpExtractor) extractConstructor(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	return &syntax.Declaration{
		Kind:      syntax.KindConstructor,
		Name:      fieldContent(node, "name", source),
		Modifiers: modifierTokens(node, source),
		Params:    c.extractParams(node.ChildByFieldName("parameters"), source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
}

func (c *CSharpExtractor) extractMethod(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	d := &syntax.Declaration{
		Kind:      syntax.KindMethod,
		Name:      fieldContent(node, "name", source),
		Modifiers: modifierTokens(node, source),
		Params:    c.extractParams(node.ChildByFieldName("parameters"), source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
	if rt := node.ChildByFieldName("type"); rt != nil {
		d.Type = rt.Content(source)
	}
	if tp := childOfType(node, "type_parameter_list"); tp != nil {
		d.TypeParams = tp.Content(source)
	}
	return d
}

func (c *CSharpExtractor) extractField(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	varDecl := childOfType(node, "variable_declaration")
	if varDecl == nil {
		return nil
	}

	d := &syntax.Declaration{
		Kind:      syntax.KindField,
		Modifiers: modifierTokens(node, source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
	if tn := varDecl.ChildByFieldName("type"); tn != nil {
		d.Type = tn.Content(source)
	}

	for i := 0; i < int(varDecl.NamedChildCount()); i++ {
		declarator := varDecl.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		v := syntax.Variable{Name: fieldContent(declarator, "name", source)}
		if expr := initializerExpression(declarator); expr != nil {
			v.Init = initializerFrom(expr, source)
		}
		d.Variables = append(d.Variables, v)
	}
	if d.Name == "" && len(d.Variables) > 0 {
		d.Name = d.Variables[0].Name
	}
	return d
}

func (c *CSharpExtractor) extractProperty(node *sitter.Node, source []byte, filepath string) *syntax.Declaration {
	d := &syntax.Declaration{
		Kind:      syntax.KindProperty,
		Name:      fieldContent(node, "name", source),
		Modifiers: modifierTokens(node, source),
		Filepath:  filepath,
		StartLine: int(node.StartPoint().Row + 1),
	}
	if tn := node.ChildByFieldName("type"); tn != nil {
		d.Type = tn.Content(source)
	}

	if list := childOfType(node, "accessor_list"); list != nil {
		for i := 0; i < int(list.NamedChildCount()); i++ {
			acc := list.NamedChild(i)
			if acc.Type() != "accessor_declaration" {
				continue
			}
			d.Accessors = append(d.Accessors, syntax.Accessor{
				Keyword:   accessorKeyword(acc, source),
				Modifiers: modifierTokens(acc, source),
			})
		}
	} else if childOfType(node, "arrow_expression_clause") != nil {
		// Expression-bodied property: a lone getter.
		d.Accessors = []syntax.Accessor{{Keyword: "get"}}
	}

	if value := node.ChildByFieldName("value"); value != nil && value.Type() != "arrow_expression_clause" {
		d.Init = initializerFrom(value, source)
	}
	return d
}

func (c *CSharpExtractor) extractParams(paramList *sitter.Node, source []byte) []syntax.Param {
	if paramList == nil {
		return nil
	}
	var params []syntax.Param
	for i := 0; i < int(paramList.NamedChildCount()); i++ {
		p := paramList.NamedChild(i)
		if p.Type() != "parameter" {
			continue
		}
		param := syntax.Param{Name: fieldContent(p, "name", source)}
		if tn := p.ChildByFieldName("type"); tn != nil {
			param.Type = tn.Content(source)
		}
		params = append(params, param)
	}
	return params
}

// initializerFrom classifies the initializer expression by node type: only
// plain literals are marked Literal, everything else is carried as
// non-literal and suppressed by the generator.
func initializerFrom(expr *sitter.Node, source []byte) *syntax.Initializer {
	return &syntax.Initializer{
		Text:    expr.Content(source),
		Literal: isLiteralExpression(expr.Type()),
	}
}

func isLiteralExpression(nodeType string) bool {
	switch nodeType {
	case "integer_literal", "real_literal", "string_literal",
		"verbatim_string_literal", "raw_string_literal",
		"character_literal", "boolean_literal", "null_literal":
		return true
	}
	return false
}

// accessorKeyword finds the accessor's keyword token (get/set/init/add/remove).
func accessorKeyword(acc *sitter.Node, source []byte) string {
	for i := 0; i < int(acc.ChildCount()); i++ {
		switch acc.Child(i).Type() {
		case "get", "set", "init", "add", "remove":
			return acc.Child(i).Content(source)
		}
	}
	return ""
}

// modifierTokens collects the ordered modifier keywords declared on a node.
func modifierTokens(node *sitter.Node, source []byte) []string {
	var mods []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifier" {
			mods = append(mods, strings.TrimSpace(child.Content(source)))
		}
	}
	return mods
}

func fieldContent(node *sitter.Node, field string, source []byte) string {
	if n := node.ChildByFieldName(field); n != nil {
		return n.Content(source)
	}
	return ""
}

func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// initializerExpression returns the expression of a declarator's initializer.
// The grammar inlines the initializer as a bare "=" token followed by the
// expression node, so the expression is the first named child after "=".
func initializerExpression(declarator *sitter.Node) *sitter.Node {
	seenEquals := false
	for i := 0; i < int(declarator.ChildCount()); i++ {
		child := declarator.Child(i)
		if child.Type() == "=" {
			seenEquals = true
			continue
		}
		if seenEquals && child.IsNamed() {
			return child
		}
	}
	return nil
}
