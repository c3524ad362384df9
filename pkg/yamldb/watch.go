package yamldb

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	errUtils "github.com/cloudmesh/yamldb/errors"
	log "github.com/cloudmesh/yamldb/pkg/logger"
	"github.com/cloudmesh/yamldb/pkg/store"
)

// Event reports an external change to the document file.
type Event struct {
	// Path is the document file that changed.
	Path string
	// Data is the document after reloading.
	Data map[string]any
}

// Rapid consecutive writes are collapsed into one reload.
const watchSettleDelay = 100 * time.Millisecond

// Watch reloads the document whenever another process rewrites the database
// file and delivers the new revision on the returned channel. Cancelling the
// context stops the watcher and closes the channel. Only the file backend
// supports watching; other backends return ErrWatchUnsupported.
func (db *DB) Watch(ctx context.Context) (<-chan Event, error) {
	fileBackend, ok := db.backend.(*store.FileBackend)
	if !ok {
		return nil, errUtils.ErrWatchUnsupported
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory: editors and atomic renames replace the
	// file instead of writing it in place, and a watch on the old inode
	// would go stale.
	file := fileBackend.Name()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan Event)
	go db.watchLoop(ctx, watcher, file, events)

	return events, nil
}

func (db *DB) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, file string, events chan<- Event) {
	defer close(events)
	defer watcher.Close()

	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != file {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			settle = time.After(watchSettleDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("Watcher error", "file", file, "error", err)

		case <-settle:
			settle = nil
			if err := db.Load(); err != nil {
				log.Error("Failed to reload database after external change", "file", file, "error", err)
				continue
			}
			log.Debug("Reloaded database after external change", "file", file)

			select {
			case events <- Event{Path: file, Data: db.Map()}:
			case <-ctx.Done():
				return
			}
		}
	}
}
