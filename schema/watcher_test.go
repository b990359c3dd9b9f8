package schema

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesSchemaWrites(t *testing.T) {
	root := t.TempDir()
	schemaPath := filepath.Join(root, "vehicle", "schema.json")
	writeFile(t, schemaPath, `{"attributes": {}}`)

	var runs int32
	w, err := NewWatcher([]string{root}, 100*time.Millisecond, func() error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(schemaPath, []byte(`{"attributes": {"vin": {"type": "string"}}}`), 0644))
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 }, 2*time.Second, 20*time.Millisecond)

	// Nothing else pending
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestWatcher_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	var runs int32
	w, err := NewWatcher([]string{root}, 30*time.Millisecond, func() error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "fleet"), 0755))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 1 }, 2*time.Second, 20*time.Millisecond)

	before := atomic.LoadInt32(&runs)
	require.NoError(t, os.WriteFile(filepath.Join(root, "fleet", "tyre.json"), []byte(`{}`), 0644))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) > before }, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_MissingRootIsAwaited(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "nope")}, 0, func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debouncePeriod)
	assert.Len(t, w.pending, 1)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop(), "Stop is idempotent")
}

func TestWatcher_WatchesRootCreatedLater(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "src", "api")

	var runs int32
	w, err := NewWatcher([]string{root}, 30*time.Millisecond, func() error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	// Unrelated files next to the missing root do not regenerate
	require.NoError(t, os.WriteFile(filepath.Join(base, "package.json"), []byte(`{}`), 0644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "vehicle"), 0755))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 1 }, 2*time.Second, 20*time.Millisecond)

	before := atomic.LoadInt32(&runs)
	require.NoError(t, os.WriteFile(filepath.Join(root, "vehicle", "schema.json"), []byte(`{"attributes": {}}`), 0644))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) > before }, 2*time.Second, 20*time.Millisecond)
}

func TestNearestExisting(t *testing.T) {
	base := t.TempDir()
	assert.Equal(t, base, nearestExisting(filepath.Join(base, "a", "b", "c")))
	assert.Equal(t, base, nearestExisting(filepath.Join(base, "a")))
}

func TestIsWithin(t *testing.T) {
	assert.True(t, isWithin("/srv/app/src/api/vehicle", "/srv/app/src/api"))
	assert.False(t, isWithin("/srv/app/src/api", "/srv/app/src/api"))
	assert.False(t, isWithin("/srv/app/src/apis", "/srv/app/src/api"))
}

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"schema write", fsnotify.Event{Name: "/a/vehicle/schema.json", Op: fsnotify.Write}, true},
		{"schema create", fsnotify.Event{Name: "/a/vehicle/schema.json", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/a/vehicle/schema.json", Op: fsnotify.Chmod}, false},
		{"controller", fsnotify.Event{Name: "/a/vehicle/controller.js", Op: fsnotify.Write}, false},
		{"vim swap", fsnotify.Event{Name: "/a/vehicle/.schema.json.swp", Op: fsnotify.Write}, false},
		{"backup", fsnotify.Event{Name: "/a/vehicle/schema.json~", Op: fsnotify.Write}, false},
		{"directory removed", fsnotify.Event{Name: "/a/vehicle", Op: fsnotify.Remove}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRelevant(tt.event))
		})
	}
}
