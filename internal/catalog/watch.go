package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the minimum delay between two reloads.
const WatchDebounce = 300 * time.Millisecond

// Watcher signals when the catalog file changes on disk.
//
// The parent directory is watched rather than the file itself so that editors
// replacing the file through a rename are still noticed.
type Watcher struct {
	Path        string
	Events      chan struct{}
	LastRefresh time.Time

	mu      sync.Mutex
	started bool
	waiting bool
	done    chan struct{}
	watcher *fsnotify.Watcher
	logf    func(string, ...any)
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, logf func(string, ...any)) *Watcher {
	return &Watcher{Path: path, logf: logf}
}

// Start begins watching. Calling Start twice is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil
	}
	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.Path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w.Path = abs
	w.watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.started = true

	go w.run(watcher, w.done)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	_ = w.watcher.Close()
}

// NextEvent returns the event channel unless a reader is already waiting.
func (w *Watcher) NextEvent() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Events == nil || w.waiting {
		return nil
	}
	w.waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *Watcher) ResetWaiting() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.waiting = false
}

// ShouldReload applies the debounce window.
func (w *Watcher) ShouldReload(now time.Time) bool {
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < WatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

// Remaining returns how long until the debounce window opens again.
func (w *Watcher) Remaining(now time.Time) time.Duration {
	if w.LastRefresh.IsZero() {
		return 0
	}
	return max(0, WatchDebounce-now.Sub(w.LastRefresh))
}

func (w *Watcher) signal(done chan struct{}) {
	select {
	case <-done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

func (w *Watcher) run(watcher *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debugf("catalog watcher: %s", event)
			w.signal(done)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.debugf("catalog watcher error: %v", err)
		}
	}
}

func (w *Watcher) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
