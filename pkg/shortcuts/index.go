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

package shortcuts

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Placement selects which filesystem locations a shortcut lands in.
type Placement string

const (
	// PlacementDesktop targets the user's desktop only.
	PlacementDesktop Placement = "desktop"
	// PlacementMenu targets the start menu (Windows) or XDG applications
	// directory (Linux). Unused on macOS.
	PlacementMenu Placement = "menu"
	// PlacementBoth targets desktop and menu.
	PlacementBoth Placement = "both"
)

// Entry is a persisted record of one created shortcut. TargetPaths reflects
// the files written for it; the files may have been removed behind our back,
// which readers must tolerate.
type Entry struct {
	ID          string     `json:"id"`
	GameName    string     `json:"gameName"`
	GameID      string     `json:"gameId"`
	Placement   Placement  `json:"placement"`
	TargetPaths []string   `json:"targetPaths"`
	IconPath    string     `json:"iconPath,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Store persists the shortcut index as a single pretty-printed JSON document
// in the application data directory. It assumes a single writer: the shell
// is a single-user interactive tool and operations arrive one at a time from
// the overlay.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the index file location.
func (s *Store) Path() string {
	return s.path
}

// List reads all entries. A missing or corrupt index reads as empty: the
// index is recoverable state, recreated on the next write, and must never
// surface a parse error to the overlay.
func (s *Store) List() []Entry {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Msgf("unreadable shortcut index, treating as empty: %s", s.path)
		return []Entry{}
	}

	return entries
}

// Save writes the full entry list, creating the data directory on first use.
func (s *Store) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shortcut index: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write shortcut index: %w", err)
	}

	return nil
}
