// NOW Core
// Copyright (c) 2026 The Project NOW Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of NOW Core.
//
// NOW Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// NOW Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with NOW Core.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/platforms"
)

func ConfigDir(pl platforms.Platform) string {
	return pl.Settings().ConfigDir
}

func DataDir(pl platforms.Platform) string {
	return pl.Settings().DataDir
}

// IconCacheDir is where resolved game icons are stored between runs.
func IconCacheDir(pl platforms.Platform) string {
	return filepath.Join(pl.Settings().DataDir, config.IconCacheDir)
}

// ShortcutsIndexPath is the persisted shortcut index file.
func ShortcutsIndexPath(pl platforms.Platform) string {
	return filepath.Join(pl.Settings().DataDir, config.ShortcutsFile)
}

// EnsureDirectories creates every directory the app writes into. Called
// before logging is up, so errors go back to the caller untouched by log
// output.
func EnsureDirectories(pl platforms.Platform) error {
	dirs := []string{
		pl.Settings().ConfigDir,
		pl.Settings().DataDir,
		pl.Settings().TempDir,
		IconCacheDir(pl),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
