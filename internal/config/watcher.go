package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"prism/pkg/logging"
)

// Watcher reloads the configuration file when it changes on disk.
//
// It watches the file's directory rather than the file itself so editors that
// replace the file (write-then-rename) keep being observed. Rapid successive
// events are debounced into a single reload.
type Watcher struct {
	mu sync.Mutex

	// path is the configuration file being watched
	path string

	// watcher is the fsnotify watcher instance
	watcher *fsnotify.Watcher

	// debounceInterval is how long to wait for additional changes
	debounceInterval time.Duration

	// timer tracks the pending debounced reload
	timer *time.Timer

	// onChange receives the reloaded configuration
	onChange func(Config)

	// running indicates if the watcher is active
	running bool
}

// NewWatcher creates a watcher for the configuration file at path. onChange
// is invoked with the freshly loaded configuration after each change settles.
func NewWatcher(path string, debounceInterval time.Duration, onChange func(Config)) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}
	return &Watcher{
		path:             path,
		debounceInterval: debounceInterval,
		onChange:         onChange,
	}
}

// Start begins watching for configuration changes. It returns immediately;
// reloads happen on a background goroutine until the context is cancelled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		w.mu.Unlock()
		return err
	}
	w.watcher = watcher
	w.running = true
	w.mu.Unlock()

	go w.loop(ctx)

	logging.Debug("Config", "Watching %s for changes", w.path)
	return nil
}

// Stop ends watching. Safe to call multiple times.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Config", "Watcher error: %v", err)
		}
	}
}

// scheduleReload debounces bursts of change events into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceInterval, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		logging.Warn("Config", "Reload failed: %v", err)
		return
	}
	logging.Info("Config", "Configuration reloaded from %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
