package yamldb

import (
	"fmt"
	"os"

	"github.com/spf13/cast"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/filetype"
	log "github.com/cloudmesh/yamldb/pkg/logger"
	"github.com/cloudmesh/yamldb/pkg/merge"
)

// MergeFile reads an external document (YAML or JSON, by extension) and
// inserts it into the database under its own id: the document must carry a
// top-level id key whose value is neither empty, "unknown", nor "MISSING".
// The whole document, id included, is stored at data[id] and flushed
// (honoring auto-flush).
func (db *DB) MergeFile(path string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	parsed, err := filetype.ParseFileByExtension(os.ReadFile, path)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, path, err)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: '%s'", errUtils.ErrDocumentNotMap, path)
	}

	id, err := db.documentID(doc, path)
	if err != nil {
		return err
	}

	db.data[id] = doc
	log.Debug("Merged document", "id", id, "file", path)

	return db.flushIfAuto()
}

// MergeFiles inserts each file in order, stopping at the first failure.
func (db *DB) MergeFiles(paths ...string) error {
	for _, path := range paths {
		if err := db.MergeFile(path); err != nil {
			return err
		}
	}
	return nil
}

// Merge deep-merges the given documents into the current one, later
// documents taking precedence. Lists are combined according to the
// configured list merge strategy.
func (db *DB) Merge(docs ...map[string]any) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	inputs := make([]map[string]any, 0, len(docs)+1)
	inputs = append(inputs, db.data)
	inputs = append(inputs, docs...)

	merged, err := merge.Merge(db.cfg, inputs)
	if err != nil {
		return err
	}
	db.data = merged

	return db.flushIfAuto()
}

func (db *DB) documentID(doc map[string]any, path string) (string, error) {
	raw, ok := doc[db.idKey]
	if !ok {
		return "", fmt.Errorf("%w: '%s' has no top-level '%s' key", errUtils.ErrMissingID, path, db.idKey)
	}
	id := cast.ToString(raw)
	if id == "" || id == "unknown" || id == "MISSING" {
		return "", fmt.Errorf("%w: '%s' has unusable id '%s'", errUtils.ErrMissingID, path, id)
	}
	return id, nil
}
