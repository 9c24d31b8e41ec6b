// Package watch re-runs a callback whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/satishbabariya/sqlkit/internal/debug"
)

// DefaultDebounce is how long writes must settle before the callback runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a file for changes
type Watcher struct {
	file     string
	callback func() error
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a new file watcher. The containing directory is
// watched so editors that replace the file on save are still seen.
func NewWatcher(file string, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		file:     absPath,
		callback: callback,
		watcher:  watcher,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the settle interval. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Run calls the callback once, then again after every settled change,
// until ctx is done. Callback errors are reported through onError and do
// not stop the watch; an error from the first call does.
func (w *Watcher) Run(ctx context.Context, onError func(error)) error {
	defer w.watcher.Close()
	log := debug.With("component", "watch", "file", w.file)

	if err := w.callback(); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var settled <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if path, err := filepath.Abs(event.Name); err != nil || path != w.file {
				continue
			}
			log.Debug("file changed", "op", event.Op.String())
			timer.Reset(w.debounce)
			settled = timer.C

		case <-settled:
			settled = nil
			if err := w.callback(); err != nil && onError != nil {
				onError(err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch failed", "error", err)
			if onError != nil {
				onError(fmt.Errorf("watch error: %w", err))
			}

		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil
		}
	}
}
