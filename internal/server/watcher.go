package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher rebuilds the site when anything under its paths changes.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	// Rebuild runs after changes settle. A failed rebuild is logged and the
	// previous output stays in place.
	Rebuild func(context.Context) error
	// Rebuilt runs after every successful rebuild.
	Rebuilt func()
	Logger  *slog.Logger
}

// Run watches until ctx is done. Rebuilds run one at a time on the
// watcher's goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, p := range w.Paths {
		if err := addTree(fw, p); err != nil {
			logger.Warn("not watching", "path", p, "error", err)
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fw, event.Name); err != nil {
						logger.Warn("not watching", "path", event.Name, "error", err)
					}
				}
			}
			timer.Reset(debounce)

		case <-timer.C:
			logger.Info("rebuilding site")
			if err := w.Rebuild(ctx); err != nil {
				logger.Error("rebuild failed", "error", err)
				continue
			}
			if w.Rebuilt != nil {
				w.Rebuilt()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// addTree watches path and, for directories, every directory below it.
func addTree(fw *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.Add(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
}
