package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// catalogWatcher reports debounced changes to the catalog file.
// The directory is watched rather than the file because editors usually
// save by writing a temp file and renaming it over the original.
type catalogWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	changes  chan struct{}
	done     chan struct{}
	once     sync.Once
	log      *slog.Logger
}

func newCatalogWatcher(path string, debounce time.Duration, log *slog.Logger) (*catalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	w := &catalogWatcher{
		watcher:  watcher,
		target:   filepath.Clean(path),
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		log:      log,
	}
	go w.run()
	return w, nil
}

func (w *catalogWatcher) run() {
	var debounceTimer *time.Timer

	fire := func() {
		// Coalesce: one pending change is enough
		select {
		case w.changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.target {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(w.debounce, fire)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("catalog watcher error", "error", err)

		case <-w.done:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

// Changes delivers one value per debounced burst of catalog writes
func (w *catalogWatcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *catalogWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// catalogChangedMsg is sent when the catalog file changed on disk
type catalogChangedMsg struct{}

// waitForChange blocks until the next catalog change
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}
