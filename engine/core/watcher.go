package core

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// SettingsWatcher keeps the active settings in sync with a file on disk.
type SettingsWatcher struct {
	path string

	fsnotify *fsnotify.Watcher
	errors   chan error
	reloaded chan Settings
	done     chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatchSettings applies the settings file at path and reloads it every time it
// is written or re-created. A file that fails to parse is reported on Errors
// and the previous settings stay active. The watcher stops when ctx is
// cancelled or Close is called.
func WatchSettings(ctx context.Context, path string) (*SettingsWatcher, error) {
	path = filepath.Clean(path)

	s, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if err := ApplySettings(s); err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory so that editors replacing the file are seen too.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	sw := &SettingsWatcher{
		path:     path,
		fsnotify: fsWatch,
		errors:   make(chan error, 8),
		reloaded: make(chan Settings, 8),
		done:     make(chan struct{}),
	}

	sw.wg.Add(1)
	go sw.start(ctx)

	LogInfo("settings loaded from %s (level=%s)", path, s.LogLevel)
	return sw, nil
}

// Errors reports reload failures. Errors are dropped when nobody reads them.
// The channel is closed once the watcher stops, so it can be ranged over.
func (sw *SettingsWatcher) Errors() <-chan error {
	return sw.errors
}

// Reloaded delivers every successfully applied settings snapshot. Snapshots
// are dropped when nobody reads them. The channel is closed once the watcher
// stops.
func (sw *SettingsWatcher) Reloaded() <-chan Settings {
	return sw.reloaded
}

// Close stops watching. It is safe to call more than once.
func (sw *SettingsWatcher) Close() error {
	var err error
	sw.closeOnce.Do(func() {
		close(sw.done)
		sw.wg.Wait()
		err = sw.fsnotify.Close()
	})
	return err
}

// start is the only sender on errors and reloaded, so it owns closing them.
func (sw *SettingsWatcher) start(ctx context.Context) {
	defer sw.wg.Done()
	defer close(sw.reloaded)
	defer close(sw.errors)
	for {
		select {
		case e, ok := <-sw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != sw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				sw.reload()
			}

		case err, ok := <-sw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError("settings watcher: %v", err)
			sw.report(err)

		case <-ctx.Done():
			go sw.Close()
			return

		case <-sw.done:
			return
		}
	}
}

func (sw *SettingsWatcher) reload() {
	s, err := LoadSettings(sw.path)
	if err == nil {
		err = ApplySettings(s)
	}
	if err != nil {
		LogWarn("keeping previous settings: %v", err)
		sw.report(err)
		return
	}
	LogInfo("settings reloaded from %s (level=%s)", sw.path, s.LogLevel)
	select {
	case sw.reloaded <- s:
	default:
	}
}

func (sw *SettingsWatcher) report(err error) {
	select {
	case sw.errors <- err:
	default:
	}
}
