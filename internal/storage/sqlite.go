package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"csdiag/internal/syntax"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS types (
			id TEXT PRIMARY KEY,
			name TEXT,
			kind TEXT,
			filepath TEXT,
			decl JSON
		);`,
		`CREATE INDEX IF NOT EXISTS idx_types_file ON types(filepath);`,
		`CREATE INDEX IF NOT EXISTS idx_types_name ON types(name);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveFileDeclarations replaces the rows of one file in a single transaction,
// so a re-scan never leaves stale types behind.
func (s *SQLiteStore) SaveFileDeclarations(ctx context.Context, filepath string, decls []*syntax.Declaration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM types WHERE filepath = ?`, filepath); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO types (id, name, kind, filepath, decl)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			kind=excluded.kind,
			filepath=excluded.filepath,
			decl=excluded.decl
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range decls {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to encode declaration %s: %w", d.Name, err)
		}
		id := fmt.Sprintf("%s:%s:%d", filepath, d.Name, d.StartLine)
		if _, err := stmt.ExecContext(ctx, id, d.Name, string(d.Kind), filepath, data); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListTypes(ctx context.Context) ([]TypeSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, kind, filepath FROM types ORDER BY filepath, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query types: %w", err)
	}
	defer rows.Close()

	var summaries []TypeSummary
	for rows.Next() {
		var t TypeSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Kind, &t.Filepath); err != nil {
			return nil, fmt.Errorf("failed to scan type: %w", err)
		}
		summaries = append(summaries, t)
	}
	return summaries, rows.Err()
}

func (s *SQLiteStore) FindByName(ctx context.Context, name string) ([]*syntax.Declaration, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT decl FROM types WHERE name = ? ORDER BY filepath`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query type %s: %w", name, err)
	}
	defer rows.Close()

	var decls []*syntax.Declaration
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan declaration: %w", err)
		}
		var d syntax.Declaration
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to decode declaration: %w", err)
		}
		decls = append(decls, &d)
	}
	return decls, rows.Err()
}
