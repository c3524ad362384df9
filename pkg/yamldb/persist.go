package yamldb

import "github.com/cloudmesh/yamldb/pkg/store"

// Load re-reads the document from the backend, replacing the in-memory
// document. A backend with no stored document yields an empty mapping.
func (db *DB) Load() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, exists, err := db.backend.Load()
	if err != nil {
		return err
	}
	if !exists {
		db.data = map[string]any{}
		return nil
	}
	db.data = stored
	return nil
}

// Save persists the document unconditionally.
func (db *DB) Save() error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.backend.Save(db.data)
}

// Flush persists the document. It is a no-op for the :memory: backend,
// where there is nothing durable to write.
func (db *DB) Flush() error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.flushLocked()
}

// Close flushes the document and releases backend resources. The database
// must not be used afterwards.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.flushLocked(); err != nil {
		return err
	}
	return db.backend.Close()
}

// Discard releases backend resources without persisting the in-memory
// document. Read-only consumers and dry runs use it instead of Close.
func (db *DB) Discard() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.backend.Close()
}

func (db *DB) flushLocked() error {
	if db.backend.Name() == store.BackendMemory {
		return nil
	}
	return db.backend.Save(db.data)
}

func (db *DB) flushIfAuto() error {
	if !db.autoFlush {
		return nil
	}
	return db.flushLocked()
}
