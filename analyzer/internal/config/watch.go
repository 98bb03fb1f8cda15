package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file and any extra files (typically the dataset)
// and calls onChange with a freshly loaded Config each time one of them is
// written. It runs until ctx is cancelled.
//
// An empty configPath means "no config file": only the extra files are
// watched and onChange receives Default().
//
// If a reload fails (e.g., invalid YAML), the error is logged and onChange
// is not called, so the previous config stays active.
func Watch(ctx context.Context, configPath string, onChange func(*Config), extra ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	paths := extra
	if configPath != "" {
		paths = append([]string{configPath}, extra...)
	}
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
		slog.Info("config: watching for changes", "path", p)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename, so Create counts as a write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := reload(configPath)
			if err != nil {
				slog.Error("config: reload failed, keeping previous config",
					"path", configPath, "err", err)
				continue
			}

			slog.Info("config: change detected", "path", event.Name)
			onChange(cfg)

			// Re-add in case an atomic save replaced the inode.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

func reload(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}
	return Load(configPath)
}
