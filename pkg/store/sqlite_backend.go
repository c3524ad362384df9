package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// SQLiteBackend stores the document as a YAML blob in a single-row table,
// keyed by document name so one database file can hold several documents.
type SQLiteBackend struct {
	db     *sql.DB
	path   string
	name   string
	closed bool
}

var _ Backend = (*SQLiteBackend)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS yamldb_documents (
	name       TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// NewSQLiteBackend creates a backend storing the document in the SQLite
// database at the path carried by the "sqlite://" URI.
func NewSQLiteBackend(spec string, opts Options) (Backend, error) {
	path := strings.TrimPrefix(spec, sqliteScheme)
	if path == "" {
		return nil, fmt.Errorf("%w: the sqlite backend requires a database path", errUtils.ErrInvalidBackend)
	}

	if err := u.EnsureDir(path); err != nil {
		return nil, errors.Join(errUtils.ErrCreateDir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUtils.ErrInvalidBackend, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, path, err)
	}

	return &SQLiteBackend{db: db, path: path, name: opts.documentName()}, nil
}

func (b *SQLiteBackend) Load() (map[string]any, bool, error) {
	if b.closed {
		return nil, false, errUtils.ErrBackendClosed
	}

	var blob string
	err := b.db.QueryRow(`SELECT document FROM yamldb_documents WHERE name = ?`, b.name).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.path, err)
	}

	doc, err := u.UnmarshalYAML[any](blob)
	if err != nil {
		return nil, false, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.path, err)
	}

	switch v := doc.(type) {
	case nil:
		return map[string]any{}, true, nil
	case map[string]any:
		return v, true, nil
	default:
		return nil, false, fmt.Errorf("%w: '%s'", errUtils.ErrDocumentNotMap, b.path)
	}
}

func (b *SQLiteBackend) Save(data map[string]any) error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}

	y, err := u.ConvertToYAML(data)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.path, err)
	}

	_, err = b.db.Exec(`
		INSERT INTO yamldb_documents (name, document, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`,
		b.name, y)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.path, err)
	}
	return nil
}

func (b *SQLiteBackend) Delete() error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}
	if _, err := b.db.Exec(`DELETE FROM yamldb_documents WHERE name = ?`, b.name); err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrDeleteDocument, b.path, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}

func (b *SQLiteBackend) Name() string {
	return sqliteScheme + b.path
}
