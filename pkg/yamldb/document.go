package yamldb

import (
	"sort"

	log "github.com/cloudmesh/yamldb/pkg/logger"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// Keys returns the dotted path of every leaf in the document, sorted.
// A leaf is any value that is not a non-empty mapping.
func (db *DB) Keys() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	keys := flattenKeys("", db.data)
	sort.Strings(keys)
	return keys
}

func flattenKeys(prefix string, node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok && len(child) > 0 {
			keys = append(keys, flattenKeys(path, child)...)
			continue
		}
		keys = append(keys, path)
	}
	return keys
}

// Len returns the number of top-level entries.
func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.data)
}

// Clear resets the document to an empty mapping and flushes (honoring
// auto-flush).
func (db *DB) Clear() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.data = map[string]any{}
	return db.flushIfAuto()
}

// Map returns a deep copy of the document.
func (db *DB) Map() map[string]any {
	db.mu.RLock()
	defer db.mu.RUnlock()

	copied, err := u.DeepCopyMap(db.data)
	if err != nil {
		log.Error("Failed to copy document", "database", db.backend.Name(), "error", err)
		return nil
	}
	return copied
}

// String renders the document as YAML.
func (db *DB) String() string {
	rendered, err := db.YAML()
	if err != nil {
		log.Error("Failed to render document", "database", db.backend.Name(), "error", err)
		return ""
	}
	return rendered
}

// YAML renders the document as YAML using the configured indentation.
func (db *DB) YAML() (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return u.ConvertToYAML(db.data, u.YAMLOptions{Indent: db.cfg.Settings.Indent})
}

// JSON renders the document as indented JSON.
func (db *DB) JSON() (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return u.ConvertToJSON(db.data)
}
