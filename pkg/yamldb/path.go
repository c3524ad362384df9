package yamldb

import (
	"errors"
	"fmt"
	"strings"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

// Get returns the value stored at the dotted path. Missing paths (including
// paths that traverse a scalar) return an error wrapping ErrKeyNotFound.
func (db *DB) Get(key string) (any, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.getLocked(key)
}

// GetWithDefault returns the value stored at the dotted path. When the path
// is missing, the default is stored there first (auto-flush applies) and the
// stored value is returned.
func (db *DB) GetWithDefault(key string, defaultValue any) (any, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	value, err := db.getLocked(key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, errUtils.ErrKeyNotFound) {
		return nil, err
	}

	if err := db.setLocked(key, defaultValue); err != nil {
		return nil, err
	}
	return db.getLocked(key)
}

// Set stores the value at the dotted path, creating intermediate mappings as
// needed. The strings "true" and "false" (any case) are stored as booleans.
// An intermediate segment that already holds a non-mapping value fails with
// ErrPathConflict.
func (db *DB) Set(key string, value any) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.setLocked(key, value)
}

// Delete removes the entry at the dotted path. Missing paths return an error
// wrapping ErrKeyNotFound.
func (db *DB) Delete(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	segments, err := splitKey(key)
	if err != nil {
		return err
	}

	parent, err := db.parentOf(key, segments)
	if err != nil {
		return err
	}

	leaf := segments[len(segments)-1]
	if _, ok := parent[leaf]; !ok {
		return db.keyNotFoundError(key)
	}
	delete(parent, leaf)

	return db.flushIfAuto()
}

// Has reports whether the dotted path exists.
func (db *DB) Has(key string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	_, err := db.getLocked(key)
	return err == nil
}

func (db *DB) getLocked(key string) (any, error) {
	segments, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	var current any = db.data
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, db.keyNotFoundError(key)
		}
		current, ok = node[segment]
		if !ok {
			return nil, db.keyNotFoundError(key)
		}
	}
	return current, nil
}

func (db *DB) setLocked(key string, value any) error {
	segments, err := splitKey(key)
	if err != nil {
		return err
	}

	current := db.data
	for i, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok || next == nil {
			child := map[string]any{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: '%s' at '%s'", errUtils.ErrPathConflict, key, strings.Join(segments[:i+1], "."))
		}
		current = child
	}
	current[segments[len(segments)-1]] = coerceBoolString(value)

	return db.flushIfAuto()
}

// parentOf walks to the mapping holding the final path segment.
func (db *DB) parentOf(key string, segments []string) (map[string]any, error) {
	current := db.data
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			return nil, db.keyNotFoundError(key)
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, db.keyNotFoundError(key)
		}
		current = child
	}
	return current, nil
}

func (db *DB) keyNotFoundError(key string) error {
	return fmt.Errorf("%w: '%s' in database '%s'", errUtils.ErrKeyNotFound, key, db.backend.Name())
}

func splitKey(key string) ([]string, error) {
	if key == "" {
		return nil, errUtils.ErrEmptyKey
	}
	return strings.Split(key, "."), nil
}

// coerceBoolString turns the strings "true" and "false" into booleans so
// shell-quoted flags round-trip as YAML booleans.
func coerceBoolString(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
