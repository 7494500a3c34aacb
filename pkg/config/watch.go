package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever its file changes.
// onReload is called after each successful reload; it may be nil. The
// watcher runs until stop is closed.
//
// The parent directory is watched rather than the file itself so that
// editors and config-management tools that replace the file atomically
// (write + rename) still trigger a reload.
func Watch(stop <-chan struct{}, onReload func()) error {
	cfg := Get()
	path := cfg.FilePath()
	if path == "" {
		return fmt.Errorf("config file path is not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	go func() {
		defer watcher.Close()
		watchLoop(watcher.Events, watcher.Errors, stop, path, onReload)
	}()

	return nil
}

func watchLoop(events <-chan fsnotify.Event, errs <-chan error, stop <-chan struct{}, path string, onReload func()) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := Reload(); err != nil {
				continue
			}
			if onReload != nil {
				onReload()
			}
		case _, ok := <-errs:
			if !ok {
				return
			}
		case <-stop:
			return
		}
	}
}
