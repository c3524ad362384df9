package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/filesystem"
	log "github.com/cloudmesh/yamldb/pkg/logger"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// FileBackend persists the document to a YAML file. Writes are atomic and
// guarded by a cross-process lock on a dedicated lock file, so the document
// file itself can be replaced by rename without losing the lock.
type FileBackend struct {
	path     string
	fileMode os.FileMode
	closed   bool
}

var _ Backend = (*FileBackend)(nil)

const (
	// Retry up to 50 times with 10ms between (500ms total).
	lockMaxRetries = 50
	lockRetryDelay = 10 * time.Millisecond
)

// NewFileBackend creates a backend storing the document at opts.File.
func NewFileBackend(opts Options) (Backend, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("%w: the file backend requires a file path", errUtils.ErrInvalidBackend)
	}
	path, err := u.GetFileAbsolutePath(opts.File)
	if err != nil {
		return nil, err
	}
	return &FileBackend{path: path, fileMode: opts.fileMode()}, nil
}

// Load reads and parses the document file. A missing file is not an error;
// it reports that no document exists yet. An empty file yields an empty
// document.
func (b *FileBackend) Load() (map[string]any, bool, error) {
	if b.closed {
		return nil, false, errUtils.ErrBackendClosed
	}
	if !u.FileExists(b.path) {
		return nil, false, nil
	}

	var data map[string]any
	err := b.withReadLock(func() error {
		content, err := os.ReadFile(b.path)
		if err != nil {
			return fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.path, err)
		}

		doc, err := u.UnmarshalYAML[any](string(content))
		if err != nil {
			return fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.path, err)
		}

		switch v := doc.(type) {
		case nil:
			data = map[string]any{}
		case map[string]any:
			data = v
		default:
			return fmt.Errorf("%w: '%s'", errUtils.ErrDocumentNotMap, b.path)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save writes the document atomically, creating parent directories as needed.
func (b *FileBackend) Save(data map[string]any) error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}
	if err := u.EnsureDir(b.path); err != nil {
		return errors.Join(errUtils.ErrCreateDir, err)
	}

	y, err := u.ConvertToYAML(data)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.path, err)
	}

	return b.withWriteLock(func() error {
		if err := filesystem.WriteFileAtomic(b.path, []byte(y), b.fileMode); err != nil {
			return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.path, err)
		}
		return nil
	})
}

// Delete removes the document file. A missing file is not an error.
func (b *FileBackend) Delete() error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}
	return b.withWriteLock(func() error {
		if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w '%s': %v", errUtils.ErrDeleteDocument, b.path, err)
		}
		return nil
	})
}

func (b *FileBackend) Close() error {
	b.closed = true
	return nil
}

func (b *FileBackend) Name() string {
	return b.path
}

// withWriteLock runs fn holding the exclusive cross-process lock.
// A dedicated lock file prevents lock loss during the atomic rename.
func (b *FileBackend) withWriteLock(fn func() error) error {
	return b.withLock(fn, func(l *flock.Flock) (bool, error) { return l.TryLock() })
}

// withReadLock runs fn holding the shared cross-process lock.
func (b *FileBackend) withReadLock(fn func() error) error {
	return b.withLock(fn, func(l *flock.Flock) (bool, error) { return l.TryRLock() })
}

func (b *FileBackend) withLock(fn func() error, try func(*flock.Flock) (bool, error)) error {
	lockPath := b.path + ".lock"
	lock := flock.New(lockPath)

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = try(lock)
		if err != nil {
			return errors.Join(errUtils.ErrFileLocked, err)
		}
		if locked {
			break
		}
		time.Sleep(lockRetryDelay)
	}

	if !locked {
		return fmt.Errorf("%w: '%s' is locked by another process", errUtils.ErrFileLocked, b.path)
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Trace("Failed to unlock database file", "error", err, "path", lockPath)
		}
	}()
	return fn()
}
