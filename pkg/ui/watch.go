package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/style"
)

// ReloadStyleFile re-imports a style file and restyles every loaded widget
// whose style, or one of its bases, it redefines.
func (m *Manager) ReloadStyleFile(path string) error {
	node, err := style.DecodeFile(path)
	if err != nil {
		return err
	}
	changed, importErr := m.importStyles(node)
	m.restyle(changed)
	m.metrics.StyleReloads.Inc()
	return importErr
}

// WatchStyles reloads the given style files whenever they change on disk
// until ctx is done. Reloads run on the queue goroutine during Poll; a
// burst of writes to one file between two polls causes a single reload.
func (m *Manager) WatchStyles(ctx context.Context, files ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		// Editors replace files on save, so the directory is watched
		// rather than the file.
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				path := filepath.Clean(ev.Name)
				if !watched[path] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				m.scheduleReload(path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Report(&errors.UIError{
					Op:   "ui.WatchStyles",
					Kind: errors.KindResource,
					Err:  err,
				})
			}
		}
	}()
	return nil
}

func (m *Manager) scheduleReload(path string) {
	m.watchMu.Lock()
	defer m.watchMu.Unlock()
	if m.watchPending[path] {
		return
	}
	m.watchPending[path] = m.Post(func() {
		m.watchMu.Lock()
		delete(m.watchPending, path)
		m.watchMu.Unlock()

		if err := m.ReloadStyleFile(path); err != nil {
			errors.Report(&errors.UIError{
				Op:   "ui.ReloadStyleFile",
				Kind: errors.KindStyle,
				Err:  err,
			})
		}
	})
}
