// Package watcher observes a corpus directory for document changes.
// It backs `eggspert index --watch`, re-indexing files as they change.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// ChangeType describes what happened to a watched file.
type ChangeType string

const (
	// ChangeCreated indicates a new file appeared.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated indicates an existing file was written.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted indicates a file was removed or renamed away.
	ChangeDeleted ChangeType = "deleted"
)

// Change is a single observed file change.
type Change struct {
	Path string
	Type ChangeType
}

// Watcher emits Change events for files under a root directory.
// Hidden files and directories are ignored, as are directory-only events.
type Watcher struct {
	root    string
	fsw     *fsnotify.Watcher
	changes chan Change
	stopCh  chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New creates a watcher rooted at dir. All non-hidden subdirectories are
// watched recursively; directories created later are added on the fly.
func New(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch root %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		root:    dir,
		fsw:     fsw,
		changes: make(chan Change, 64),
		stopCh:  make(chan struct{}),
	}

	if err := w.addRecursive(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Start begins emitting changes. Call Close to stop.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

// Changes returns the channel of observed file changes.
// The channel closes when the watcher stops.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher and releases resources. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.changes)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if change := w.handleFsEvent(event); change != nil {
				select {
				case w.changes <- *change:
				case <-w.stopCh:
					return
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a Change, or nil when the
// event is not interesting. Directory creations extend the watch set.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *Change {
	if isHidden(event.Name) {
		return nil
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				logger.Warn("watch new directory %s: %v", event.Name, err)
			}
			return nil
		}
		return &Change{Path: event.Name, Type: ChangeCreated}

	case event.Op.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return nil
		}
		return &Change{Path: event.Name, Type: ChangeUpdated}

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		// The path is gone; treat rename-away the same as delete.
		return &Change{Path: event.Name, Type: ChangeDeleted}

	default:
		// Chmod and friends carry no content change.
		return nil
	}
}

// addRecursive watches dir and every non-hidden subdirectory beneath it.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// isHidden reports whether any element of the path starts with a dot.
// "." and ".." are not considered hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
