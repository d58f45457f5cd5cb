package runner

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors dir for record files and evaluates each *.yaml / *.yml
// file as it is written. It runs until ctx is cancelled.
//
// A record that fails to load, derive, or score is logged and skipped;
// the watcher stays up. Editors that save via rename emit Create events,
// so both Write and Create trigger evaluation.
func (r *Runner) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	slog.Info("runner: watching for records", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isRecordFile(event.Name) {
				continue
			}
			if _, err := r.EvaluateFile(event.Name); err != nil {
				slog.Error("runner: record failed — skipping",
					"path", event.Name, "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("runner: watcher error", "err", err)
		}
	}
}

func isRecordFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
