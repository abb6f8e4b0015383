// Package watch re-runs validation whenever the input file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events most editors emit on save.
const debounceWindow = 200 * time.Millisecond

// Run watches the input file and invokes fn after every change, until the
// context is cancelled. The containing directory is watched rather than the
// file itself because editors commonly replace files on save, which would
// drop a file-level watch.
func Run(ctx context.Context, input string, logger *slog.Logger, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	absInput, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absInput)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absInput), err)
	}

	var debounceTimer *time.Timer
	runs := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, _ := filepath.Abs(event.Name); abs != absInput {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceWindow, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})

		case <-runs:
			logger.Info("input changed, re-validating", "path", input)
			if err := fn(); err != nil {
				// Keep watching; a transient error (e.g. half-written file)
				// resolves on the next save.
				logger.Error("validation failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
