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
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrNotFound is returned by Delete and Rename for an unknown shortcut id.
// It is a distinct, user-visible failure class, never merged with write
// errors.
var ErrNotFound = errors.New("shortcut not found")

// IconResolver produces a local icon file path for a game name, or "" when
// no icon could be obtained. Implementations must degrade, never fail hard.
type IconResolver interface {
	Resolve(ctx context.Context, gameName string) string
}

// CreateRequest is the input to shortcut creation.
type CreateRequest struct {
	GameName  string    `json:"gameName"  validate:"required"`
	GameID    string    `json:"gameId"    validate:"required"`
	Placement Placement `json:"placement" validate:"omitempty,oneof=desktop menu both"`
}

// CreateResult reports what creation wrote. Path is the first succeeded
// target; Paths holds every succeeded target.
type CreateResult struct {
	ID    string   `json:"id"`
	Path  string   `json:"path"`
	Paths []string `json:"paths"`
}

// EditResult reports the paths a rename produced.
type EditResult struct {
	Paths []string `json:"paths"`
}

// Service composes icon resolution, platform shortcut writing and the
// persisted index into the create/list/edit/delete operations the overlay
// drives. Operations are invoked one at a time by the UI; no locking is
// done across the read-modify-write of the index.
type Service struct {
	pl       platforms.Platform
	fs       afero.Fs
	store    *Store
	icons    IconResolver
	clock    clockwork.Clock
	validate *validator.Validate
}

func NewService(
	pl platforms.Platform,
	fs afero.Fs,
	store *Store,
	icons IconResolver,
	clock clockwork.Clock,
) *Service {
	return &Service{
		pl:       pl,
		fs:       fs,
		store:    store,
		icons:    icons,
		clock:    clock,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns every indexed shortcut.
func (s *Service) List() []Entry {
	return s.store.List()
}

// Create resolves an icon, writes the platform artifacts and persists a new
// index entry. A request succeeds when at least one target path was written;
// per-path errors are aggregated into a single error only when all targets
// failed, and the index is not touched in that case.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid shortcut request: %w", err)
	}

	placement := req.Placement
	if placement == "" {
		placement = PlacementDesktop
	}

	var iconPath string
	if s.icons != nil {
		iconPath = s.icons.Resolve(ctx, req.GameName)
	}

	written, err := s.writeArtifacts(ctx, req.GameName, req.GameID, placement, iconPath)
	if err != nil {
		return nil, err
	}

	entry := Entry{
		ID:          s.newID(),
		GameName:    req.GameName,
		GameID:      req.GameID,
		Placement:   placement,
		TargetPaths: written,
		IconPath:    iconPath,
		CreatedAt:   s.clock.Now().UTC(),
	}

	entries := append(s.store.List(), entry)
	if err := s.store.Save(entries); err != nil {
		return nil, err
	}

	log.Info().
		Str("id", entry.ID).
		Str("game", entry.GameName).
		Strs("paths", written).
		Msg("created shortcut")

	return &CreateResult{ID: entry.ID, Path: written[0], Paths: written}, nil
}

// Delete unlinks an entry's artifacts and removes it from the index.
// Artifacts already missing on disk are not errors: the index tolerates
// divergence from the filesystem.
func (s *Service) Delete(id string) error {
	entries := s.store.List()
	idx := findEntry(entries, id)
	if idx < 0 {
		return ErrNotFound
	}

	for _, p := range entries[idx].TargetPaths {
		s.removeArtifact(p)
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := s.store.Save(entries); err != nil {
		return err
	}

	log.Info().Str("id", id).Msg("deleted shortcut")
	return nil
}

// Rename re-runs the creation pipeline under the new name with the original
// game id and placement, then removes only the old artifacts the new path
// set does not reuse. If recreation fails the original entry and its files
// are left untouched.
func (s *Service) Rename(ctx context.Context, id, newName string) (*EditResult, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, errors.New("invalid shortcut request: new name is empty")
	}

	entries := s.store.List()
	idx := findEntry(entries, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	entry := entries[idx]

	var iconPath string
	if s.icons != nil {
		iconPath = s.icons.Resolve(ctx, newName)
	}

	written, err := s.writeArtifacts(ctx, newName, entry.GameID, entry.Placement, iconPath)
	if err != nil {
		return nil, err
	}

	reused := make(map[string]bool, len(written))
	for _, p := range written {
		reused[p] = true
	}
	for _, old := range entry.TargetPaths {
		if !reused[old] {
			s.removeArtifact(old)
		}
	}

	now := s.clock.Now().UTC()
	entry.GameName = newName
	entry.TargetPaths = written
	entry.IconPath = iconPath
	entry.UpdatedAt = &now
	entries[idx] = entry

	if err := s.store.Save(entries); err != nil {
		return nil, err
	}

	log.Info().
		Str("id", id).
		Str("game", newName).
		Strs("paths", written).
		Msg("renamed shortcut")

	return &EditResult{Paths: written}, nil
}

// writeArtifacts materializes one artifact per target path and returns the
// paths that succeeded, or an aggregated error when none did.
func (s *Service) writeArtifacts(
	ctx context.Context,
	gameName, gameID string,
	placement Placement,
	iconPath string,
) ([]string, error) {
	execPath, err := s.pl.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	paths, err := s.targetPaths(gameName, placement)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("no target locations available for placement")
	}

	var written []string
	var writeErrs []string
	for _, p := range paths {
		spec := platforms.ShortcutSpec{
			Path:     p,
			GameName: gameName,
			GameID:   gameID,
			ExecPath: execPath,
			IconPath: iconPath,
		}
		if err := s.pl.WriteShortcut(ctx, &spec); err != nil {
			log.Warn().Err(err).Msgf("shortcut write failed: %s", p)
			writeErrs = append(writeErrs, fmt.Sprintf("%s: %s", p, err))
			continue
		}
		written = append(written, p)
	}

	if len(written) == 0 {
		return nil, errors.New(strings.Join(writeErrs, "; "))
	}

	return written, nil
}

// targetPaths maps a placement to the artifact paths it implies. A "both"
// placement silently drops the menu location on platforms without one;
// asking for the menu alone there is an error.
func (s *Service) targetPaths(gameName string, placement Placement) ([]string, error) {
	filename := SanitizeFilename(gameName) + s.pl.ShortcutExt()

	var paths []string
	if placement == PlacementDesktop || placement == PlacementBoth {
		dir, err := s.pl.DesktopDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve desktop directory: %w", err)
		}
		paths = append(paths, filepath.Join(dir, filename))
	}

	if placement == PlacementMenu || placement == PlacementBoth {
		dir, err := s.pl.MenuDir()
		switch {
		case errors.Is(err, platforms.ErrNotSupported) && placement == PlacementBoth:
			log.Debug().Msg("no secondary shortcut location on this platform")
		case err != nil:
			return nil, fmt.Errorf("failed to resolve menu directory: %w", err)
		default:
			paths = append(paths, filepath.Join(dir, filename))
		}
	}

	return paths, nil
}

// removeArtifact deletes a shortcut artifact, directory bundles included.
// Best-effort: a missing path is fine, anything else is logged and skipped.
func (s *Service) removeArtifact(path string) {
	if err := s.fs.RemoveAll(path); err != nil {
		log.Warn().Err(err).Msgf("unable to remove shortcut artifact: %s", path)
	}
}

// newID generates a process-unique entry id: creation timestamp plus a
// random suffix, never reused.
func (s *Service) newID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return strconv.FormatInt(s.clock.Now().UnixMilli(), 10) + "-" + suffix
}

func findEntry(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
