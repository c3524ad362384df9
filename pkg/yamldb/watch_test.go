package yamldb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

const watchTestTimeout = 10 * time.Second

func TestWatchUnsupportedBackend(t *testing.T) {
	db, err := New(WithBackend(":memory:"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Watch(context.Background())
	assert.ErrorIs(t, err, errUtils.ErrWatchUnsupported)
}

func TestWatchDeliversExternalChanges(t *testing.T) {
	file := testFile(t)

	db, err := New(WithFile(file))
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := db.Watch(ctx)
	require.NoError(t, err)

	writer, err := New(WithFile(file))
	require.NoError(t, err)
	require.NoError(t, writer.Set("service.port", 9090))
	require.NoError(t, writer.Close())

	select {
	case ev, ok := <-events:
		require.True(t, ok)
		assert.Equal(t, file, ev.Path)
		assert.Equal(t, 9090, ev.Data["service"].(map[string]any)["port"])
	case <-time.After(watchTestTimeout):
		t.Fatal("timed out waiting for a change event")
	}

	// The watching database reloaded the new revision.
	assert.Equal(t, 9090, db.GetInt("service.port"))
}

func TestWatchStopsOnCancel(t *testing.T) {
	db := newTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := db.Watch(ctx)
	require.NoError(t, err)

	cancel()

	for {
		select {
		case _, ok := <-events:
			if !ok {
				return // channel closed, watcher stopped
			}
		case <-time.After(watchTestTimeout):
			t.Fatal("watcher did not stop after cancellation")
		}
	}
}
