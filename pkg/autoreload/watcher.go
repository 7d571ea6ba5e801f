package autoreload

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval collapses bursts of write events (editors often emit
// several per save) into a single reload.
const DebounceInterval = 250 * time.Millisecond

// Watch blocks watching the given file and invokes onChange after it is
// written, created or replaced. It returns when ctx is cancelled or the
// watcher fails.
//
// The parent directory is watched rather than the file itself so that
// rename-and-replace saves keep triggering.
func Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(DebounceInterval)
				debounceC = debounce.C
			} else {
				// Drain a fired-but-unread tick before resetting, or the
				// stale tick would trigger an extra reload.
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(DebounceInterval)
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
