package extractor

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"csdiag/internal/syntax"
)

// LanguageExtractor turns a parsed tree-sitter tree into declaration nodes.
type LanguageExtractor interface {
	GetLanguage() *sitter.Language

	// ExtractTree walks the root node and returns the top-level type
	// declarations, with namespace members lifted to the top level.
	ExtractTree(root *sitter.Node, source []byte, filepath string) []*syntax.Declaration
}

// Extractor orchestrates the extraction process using language-specific extractors.
type Extractor struct {
	langExtractor LanguageExtractor
	langName      string
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "csharp":
		langExt = &CSharpExtractor{}
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return &Extractor{langExtractor: langExt, langName: lang}, nil
}

// ExtractFromFile parses a single source file and extracts its declarations.
func (e *Extractor) ExtractFromFile(filepath string) ([]*syntax.Declaration, error) {
	sourceCode, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return e.Extract(sourceCode, filepath)
}

// Extract parses source bytes and extracts the declaration tree.
func (e *Extractor) Extract(sourceCode []byte, filepath string) ([]*syntax.Declaration, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filepath, err)
	}

	return e.langExtractor.ExtractTree(tree.RootNode(), sourceCode, filepath), nil
}
