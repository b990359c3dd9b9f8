package schema

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/logger"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces editor save bursts into one regeneration
const DefaultDebounce = 500 * time.Millisecond

// ChangeCallback runs after schema files change
type ChangeCallback func() error

// Watcher watches schema roots recursively and triggers a debounced callback.
// Callbacks never overlap. A root that does not exist yet is awaited through
// its nearest existing parent and watched once it is created.
type Watcher struct {
	roots          []string
	pending        map[string]bool // roots not created yet, touched only by the event loop after start
	watcher        *fsnotify.Watcher
	onChange       ChangeCallback
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer
	runMu         sync.Mutex
	done          chan struct{}
}

// NewWatcher creates a watcher over every existing directory below roots.
func NewWatcher(roots []string, debounce time.Duration, onChange ChangeCallback) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:        fw,
		pending:        make(map[string]bool),
		onChange:       onChange,
		debouncePeriod: debounce,
		logger:         logger.ComponentLogger("schema-watcher"),
		done:           make(chan struct{}),
	}

	for _, root := range roots {
		if root == "" {
			continue
		}
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		w.roots = append(w.roots, root)

		if _, err := w.watchRoot(root); err != nil {
			fw.Close()
			return nil, err
		}
	}

	return w, nil
}

// watchRoot watches root recursively when it exists and reports true.
// Otherwise it marks root pending and watches its nearest existing ancestor.
func (w *Watcher) watchRoot(root string) (bool, error) {
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		delete(w.pending, root)
		return true, w.addTree(root)
	}

	w.pending[root] = true
	parent := nearestExisting(root)
	if parent == "" {
		return false, nil
	}
	w.logger.Debugw("Schema root missing, waiting for it",
		logger.FieldPath, root,
		"parent", parent)
	if err := w.watcher.Add(parent); err != nil {
		return false, errors.Wrapf(err, "failed to watch %s", parent)
	}

	// Created between the stat and the watch
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		delete(w.pending, root)
		return true, w.addTree(root)
	}
	return false, nil
}

// nearestExisting returns the closest existing directory above path, or ""
func nearestExisting(path string) string {
	dir := filepath.Dir(path)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// addTree registers root and all its subdirectories
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		return nil
	})
}

// Start begins watching for schema changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Schema watcher error", logger.FieldError, err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if w.awaitRoots(event) {
		return
	}
	if !w.underRoot(event.Name) {
		// Parent directories are watched only while a root is missing
		return
	}

	// New directories (a new content type or component category) need their own watch
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warnw("Failed to watch new directory",
					logger.FieldPath, event.Name,
					logger.FieldError, err)
			}
			w.scheduleRun()
			return
		}
	}

	// A removed root is awaited again
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && w.isRoot(event.Name) {
		if _, err := w.watchRoot(event.Name); err != nil {
			w.logger.Warnw("Failed to await removed schema root",
				logger.FieldPath, event.Name,
				logger.FieldError, err)
		}
	}

	if !isRelevant(event) {
		return
	}

	w.logger.Debugw("Schema change detected",
		logger.FieldFile, event.Name,
		logger.FieldOperation, event.Op.String())
	w.scheduleRun()
}

// awaitRoots handles directories created on the way to a pending root.
// It reports whether the event was consumed.
func (w *Watcher) awaitRoots(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create == 0 || len(w.pending) == 0 {
		return false
	}

	consumed := false
	for root := range w.pending {
		if event.Name != root && !isWithin(root, event.Name) {
			continue
		}
		consumed = true

		created, err := w.watchRoot(root)
		if err != nil {
			w.logger.Warnw("Failed to watch schema root",
				logger.FieldPath, root,
				logger.FieldError, err)
			continue
		}
		if created {
			w.logger.Infow("Schema root created", logger.FieldPath, root)
			w.scheduleRun()
		}
	}
	return consumed
}

func (w *Watcher) isRoot(path string) bool {
	for _, root := range w.roots {
		if path == root {
			return true
		}
	}
	return false
}

func (w *Watcher) underRoot(path string) bool {
	for _, root := range w.roots {
		if path == root || isWithin(path, root) {
			return true
		}
	}
	return false
}

// isWithin reports whether path lies strictly below dir
func isWithin(path, dir string) bool {
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}

// isRelevant filters editor swap files and non-schema writes
func isRelevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	// Removing a directory removes every schema in it
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && filepath.Ext(base) == "" {
		return true
	}
	return strings.HasSuffix(base, ".json")
}

// scheduleRun debounces rapid file changes and triggers the callback
func (w *Watcher) scheduleRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.run)
}

func (w *Watcher) run() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if err := w.onChange(); err != nil {
		w.logger.Errorw("Regeneration after schema change failed", logger.FieldError, err)
	}
}

// Stop stops watching for schema changes
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
