package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csdiag/internal/syntax"
)

func testDecl(name string, kind syntax.Kind, file string, line int) *syntax.Declaration {
	return &syntax.Declaration{
		Kind:      kind,
		Name:      name,
		Modifiers: []string{"public"},
		Filepath:  file,
		StartLine: line,
	}
}

func TestSQLiteStore_SaveFileDeclarations_ReplacesFileRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	// Initial index: two types in one file, one in another.
	require.NoError(t, store.SaveFileDeclarations(ctx, "a.cs", []*syntax.Declaration{
		testDecl("Foo", syntax.KindClass, "a.cs", 1),
		testDecl("Bar", syntax.KindInterface, "a.cs", 10),
	}))
	require.NoError(t, store.SaveFileDeclarations(ctx, "b.cs", []*syntax.Declaration{
		testDecl("Baz", syntax.KindEnum, "b.cs", 1),
	}))

	// Re-scan of a.cs: Bar is gone, Qux appeared.
	require.NoError(t, store.SaveFileDeclarations(ctx, "a.cs", []*syntax.Declaration{
		testDecl("Foo", syntax.KindClass, "a.cs", 1),
		testDecl("Qux", syntax.KindStruct, "a.cs", 20),
	}))

	summaries, err := store.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	names := make(map[string]string)
	for _, s := range summaries {
		names[s.Name] = s.Kind
	}
	assert.NotContains(t, names, "Bar")
	assert.Equal(t, "class", names["Foo"])
	assert.Equal(t, "struct", names["Qux"])
	assert.Equal(t, "enum", names["Baz"])
}

func TestSQLiteStore_FindByName_RoundTripsDeclarationTree(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	decl := &syntax.Declaration{
		Kind:      syntax.KindClass,
		Name:      "Shape",
		Modifiers: []string{"public", "abstract"},
		BaseTypes: []string{"IDrawable"},
		Filepath:  "shape.cs",
		StartLine: 3,
		Members: []*syntax.Declaration{
			{
				Kind:      syntax.KindField,
				Name:      "_id",
				Modifiers: []string{"private"},
				Type:      "int",
				Variables: []syntax.Variable{{Name: "_id", Init: &syntax.Initializer{Text: "7", Literal: true}}},
			},
			{
				Kind:      syntax.KindProperty,
				Name:      "Name",
				Modifiers: []string{"public"},
				Type:      "string",
				Accessors: []syntax.Accessor{{Keyword: "get"}, {Keyword: "set", Modifiers: []string{"private"}}},
			},
		},
	}
	require.NoError(t, store.SaveFileDeclarations(ctx, "shape.cs", []*syntax.Declaration{decl}))

	loaded, err := store.FindByName(ctx, "Shape")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, decl, loaded[0])

	missing, err := store.FindByName(ctx, "Nope")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestSQLiteStore_EmptyScanClearsFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.SaveFileDeclarations(ctx, "a.cs", []*syntax.Declaration{
		testDecl("Foo", syntax.KindClass, "a.cs", 1),
	}))
	require.NoError(t, store.SaveFileDeclarations(ctx, "a.cs", nil))

	summaries, err := store.ListTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
