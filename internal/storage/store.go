package storage

import (
	"context"

	"csdiag/internal/syntax"
)

// TypeSummary is one indexed type declaration, without its members.
type TypeSummary struct {
	ID       string
	Name     string
	Kind     string
	Filepath string
}

// TypeStore defines operations for persisting extracted type declarations.
type TypeStore interface {
	// SaveFileDeclarations replaces the indexed declarations of one file.
	SaveFileDeclarations(ctx context.Context, filepath string, decls []*syntax.Declaration) error

	// ListTypes returns summaries of all indexed top-level types.
	ListTypes(ctx context.Context) ([]TypeSummary, error)

	// FindByName returns the full declarations of all indexed types with
	// the given identifier.
	FindByName(ctx context.Context, name string) ([]*syntax.Declaration, error)

	Close() error
}
