package policy

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor or atomic rename produces
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads the policy file when it changes on disk
type Watcher struct {
	debounce time.Duration
	onChange func(ctx context.Context, doc domain.PolicyDocument)
	store    *TOMLStore
}

// NewWatcher creates a watcher calling onChange with every successfully parsed revision
func NewWatcher(store *TOMLStore, debounce time.Duration, onChange func(ctx context.Context, doc domain.PolicyDocument)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		onChange: onChange,
		store:    store,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so that
// atomic replacements are seen.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create policy watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.store.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Logger.Info("Watching policy file", "path", w.store.Path())

	name := filepath.Clean(w.store.Path())
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Policy watcher error", "error", err)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	doc, err := w.store.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Ignoring unreadable policy revision", "error", err)
		return
	}
	logging.Logger.Info("Policy reloaded", "version", doc.Version)
	w.onChange(ctx, doc)
}
