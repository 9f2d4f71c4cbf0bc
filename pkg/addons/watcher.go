// D64CE Launcher
// Copyright (c) 2026 The D64CE Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of D64CE Launcher.
//
// D64CE Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// D64CE Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with D64CE Launcher.  If not, see <http://www.gnu.org/licenses/>.

package addons

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher invokes a callback whenever the catalog file is rewritten, so
// the UI can refresh its addon lists without a restart.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// WatchCatalog watches the directory containing path. Watching the parent
// instead of the file itself survives editors that replace the file on
// save. Close the returned watcher to stop the background goroutine.
func WatchCatalog(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if event.Name != abs {
					continue
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					log.Debug().Msgf("catalog changed: %s", event.Name)
					onChange()
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("catalog watcher error")
			}
		}
	}()

	return &Watcher{fsw: fsw}, nil
}

func (w *Watcher) Close() error {
	//nolint:wrapcheck // Close errors pass through unchanged
	return w.fsw.Close()
}
