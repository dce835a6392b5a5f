package resumes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/telemetry"
)

// DirWatcher loads record files that appear in a local data directory.
type DirWatcher struct {
	store   *Store
	dir     string
	watcher *fsnotify.Watcher
}

// WatchDir registers a watch on dir. Call Run to start delivering events.
func (s *Store) WatchDir(dir string) (*DirWatcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &DirWatcher{store: s, dir: dir, watcher: watcher}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *DirWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	telemetry.Info("resume.watch.start", map[string]any{"dir": w.dir})

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			telemetry.Warn("resume.watch.error", map[string]any{
				"dir":   w.dir,
				"error": err,
			})
		}
	}
}

func (w *DirWatcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	name := filepath.Base(event.Name)
	if ok, _ := doublestar.Match(filePattern, name); !ok {
		return
	}
	id := idFromKey(name)
	if w.store.has(id) {
		return
	}

	rec, err := w.store.load(ctx, name)
	if err != nil {
		// Writers that do not rename into place emit several Write events; a later one retries.
		telemetry.Warn("resume.watch.load_failed", map[string]any{
			"key":   name,
			"error": err,
		})
		return
	}
	if _, added := w.store.remember(rec); added {
		metrics.AddResumesLoaded(1)
		telemetry.Info("resume.watch.loaded", map[string]any{"resume_id": id})
	}
}
