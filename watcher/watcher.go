// Package watcher reloads a layout file whenever it changes on disk and hands
// the new snapshot to registered callbacks.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/widget"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// ReloadCallback receives each successfully loaded layout.
type ReloadCallback func(*widget.Layout) error

// LayoutWatcher watches a single layout file.
//
// The parent directory is watched rather than the file so that editors which
// save by rename keep triggering reloads.
type LayoutWatcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// New creates a watcher for the layout at path. A debounce of zero or less
// uses DefaultDebounce.
func New(path string, debounce time.Duration) (*LayoutWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	// Events carry the watched directory's real path
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	return &LayoutWatcher{
		path:           abs,
		watcher:        w,
		debouncePeriod: debounce,
	}, nil
}

// Path returns the absolute path being watched.
func (lw *LayoutWatcher) Path() string {
	return lw.path
}

// OnReload registers a callback. Callbacks run in registration order on the
// debounce timer's goroutine.
func (lw *LayoutWatcher) OnReload(callback ReloadCallback) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.callbacks = append(lw.callbacks, callback)
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (lw *LayoutWatcher) Run(ctx context.Context) error {
	defer lw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != lw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugw("Layout change detected",
				logger.FieldPath, event.Name,
				"op", event.Op.String())
			lw.scheduleReload()

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Layout watcher error", logger.FieldError, err)
		}
	}
}

// scheduleReload restarts the debounce timer.
func (lw *LayoutWatcher) scheduleReload() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.debounceTimer != nil {
		lw.debounceTimer.Stop()
	}
	lw.debounceTimer = time.AfterFunc(lw.debouncePeriod, lw.reload)
}

// reload loads the layout and runs every callback. A layout that fails to load
// is logged and skipped so the next save can fix it.
func (lw *LayoutWatcher) reload() {
	layout, err := widget.Load(lw.path)
	if err != nil {
		logger.Errorw("Layout reload failed",
			logger.FieldPath, lw.path,
			logger.FieldError, err)
		return
	}

	logger.Infow("Layout reloaded",
		logger.FieldPath, lw.path,
		logger.FieldCount, layout.Len())

	lw.mu.RLock()
	callbacks := make([]ReloadCallback, len(lw.callbacks))
	copy(callbacks, lw.callbacks)
	lw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(layout); err != nil {
			logger.Warnw("Layout reload callback error", logger.FieldError, err)
		}
	}
}

// Close stops the watcher and any pending reload.
func (lw *LayoutWatcher) Close() error {
	lw.mu.Lock()
	if lw.debounceTimer != nil {
		lw.debounceTimer.Stop()
	}
	lw.mu.Unlock()
	return lw.watcher.Close()
}
