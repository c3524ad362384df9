// Package yamldb implements a hierarchical key/value database whose document
// is a YAML mapping. Values are addressed with dotted paths ("db.mongo.port"),
// persisted through a pluggable backend (a YAML file by default), and every
// operation is safe for concurrent use.
package yamldb

import (
	"os"
	"sync"

	"github.com/cloudmesh/yamldb/pkg/merge"
	"github.com/cloudmesh/yamldb/pkg/schema"
	"github.com/cloudmesh/yamldb/pkg/store"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

const (
	// DefaultFile is where the database lives when no location is configured.
	DefaultFile = "yamldb.yml"

	// DefaultFileMode is the permission applied to database files this
	// package creates.
	DefaultFileMode os.FileMode = 0o644

	defaultIDKey = "id"
)

// DB is a YAML document database. The zero value is not usable; construct
// instances with New.
type DB struct {
	mu      sync.RWMutex
	data    map[string]any
	backend store.Backend

	file        string
	spec        string
	fileMode    os.FileMode
	autoFlush   bool
	idKey       string
	cfg         *schema.Configuration
	backendOpts map[string]any
}

// Option configures a DB during construction. Later options override
// earlier ones.
type Option func(*DB) error

// WithFile sets the document location for the file backend.
func WithFile(path string) Option {
	return func(db *DB) error {
		if path != "" {
			db.file = path
		}
		return nil
	}
}

// WithBackend selects the persistence backend: ":file:" (default),
// ":memory:", or a "redis://" or "sqlite://" URI.
func WithBackend(spec string) Option {
	return func(db *DB) error {
		if spec != "" {
			db.spec = spec
		}
		return nil
	}
}

// WithBackendOptions passes raw backend options (for example "prefix" or
// "document_name" for Redis) decoded the same way configuration files are.
func WithBackendOptions(options map[string]any) Option {
	return func(db *DB) error {
		db.backendOpts = options
		return nil
	}
}

// WithData seeds the database with an initial document. The map is
// deep-copied, so the caller keeps ownership of the argument.
func WithData(data map[string]any) Option {
	return func(db *DB) error {
		if data == nil {
			return nil
		}
		copied, err := u.DeepCopyMap(data)
		if err != nil {
			return err
		}
		db.data = copied
		return nil
	}
}

// WithAutoFlush controls whether every mutation persists the document.
// Enabled by default.
func WithAutoFlush(enabled bool) Option {
	return func(db *DB) error {
		db.autoFlush = enabled
		return nil
	}
}

// WithFileMode sets the permission for files the database creates.
func WithFileMode(mode os.FileMode) Option {
	return func(db *DB) error {
		if mode != 0 {
			db.fileMode = mode
		}
		return nil
	}
}

// WithIDKey changes the top-level key MergeFile requires in external
// documents. Defaults to "id".
func WithIDKey(key string) Option {
	return func(db *DB) error {
		if key != "" {
			db.idKey = key
		}
		return nil
	}
}

// WithConfiguration adopts the database section of a CLI configuration:
// document file, backend spec, auto-flush, and merge settings. Explicit
// options given after this one still win.
func WithConfiguration(cfg *schema.Configuration) Option {
	return func(db *DB) error {
		if cfg == nil {
			return nil
		}
		if cfg.Database.File != "" {
			db.file = cfg.Database.File
		}
		if cfg.Database.Backend != "" {
			db.spec = cfg.Database.Backend
		}
		db.autoFlush = cfg.Database.AutoFlush
		db.cfg = cfg
		return nil
	}
}

func defaultConfiguration() *schema.Configuration {
	return &schema.Configuration{
		Settings: schema.Settings{
			ListMergeStrategy: merge.ListMergeStrategyReplace,
			Indent:            u.DefaultYAMLIndent,
		},
	}
}

// New opens (or creates) a database.
//
// When the backend already holds a document and no initial data is given,
// the stored document is loaded. When initial data is given it becomes the
// document and is saved, replacing whatever was stored. A brand-new database
// starts as an empty mapping and is saved immediately so the document
// exists on disk.
func New(opts ...Option) (*DB, error) {
	db := &DB{
		file:      DefaultFile,
		spec:      store.BackendFile,
		fileMode:  DefaultFileMode,
		autoFlush: true,
		idKey:     defaultIDKey,
		cfg:       defaultConfiguration(),
	}

	for _, opt := range opts {
		if err := opt(db); err != nil {
			return nil, err
		}
	}

	if err := db.openBackend(); err != nil {
		return nil, err
	}

	stored, exists, err := db.backend.Load()
	if err != nil {
		return nil, err
	}

	if exists && db.data == nil {
		db.data = stored
		return db, nil
	}

	// Initial data (or a brand-new empty document) replaces whatever the
	// backend holds.
	if db.data == nil {
		db.data = map[string]any{}
	}
	if err := db.backend.Save(db.data); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) openBackend() error {
	storeOpts := store.Options{}
	if db.backendOpts != nil {
		parsed, err := store.ParseOptions(db.backendOpts)
		if err != nil {
			return err
		}
		storeOpts = parsed
	}
	if storeOpts.File == "" {
		storeOpts.File = db.file
	}
	if storeOpts.FileMode == 0 {
		storeOpts.FileMode = db.fileMode
	}

	backend, err := store.NewBackend(db.spec, storeOpts)
	if err != nil {
		return err
	}
	db.backend = backend
	return nil
}

// Name reports where the document is stored (a file path or backend URI).
func (db *DB) Name() string {
	return db.backend.Name()
}
