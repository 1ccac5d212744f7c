// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package imageopt

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const watchDebounce = 200 * time.Millisecond

// Watch optimizes images in opts.SrcDir whenever they are created or written until ctx
// is cancelled. Editors and copy tools write in bursts, events are debounced per file.
func Watch(ctx context.Context, opts Options, onResult func(Result)) error {
	opts = opts.withDefaults()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	if err := addRecursive(watcher, opts.SrcDir); err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		pending = map[string]*time.Timer{}
		wg      sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		for _, t := range pending {
			if t.Stop() {
				wg.Done()
			}
		}
		mu.Unlock()
		wg.Wait()
	}()

	schedule := func(rel string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := pending[rel]; ok && t.Stop() {
			wg.Done()
		}
		wg.Add(1)
		pending[rel] = time.AfterFunc(watchDebounce, func() {
			defer wg.Done()
			mu.Lock()
			delete(pending, rel)
			mu.Unlock()
			onResult(OptimizeFile(opts, rel))
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// new sub directories need their own watch
				if isDir(event.Name) {
					if err := addRecursive(watcher, event.Name); err != nil {
						slog.Warn("could not watch new directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			rel, err := filepath.Rel(opts.SrcDir, event.Name)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			if ok, _ := doublestar.Match(opts.Pattern, rel); !ok {
				continue
			}
			schedule(rel)
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return errors.Wrapf(err, "could not watch %s", path)
			}
		}
		return nil
	})
}
