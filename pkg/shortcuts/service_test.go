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

package shortcuts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/oaojfr/now-core/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	path string
}

func (s stubResolver) Resolve(_ context.Context, _ string) string {
	return s.path
}

func newTestService(pl *mocks.MockPlatform, fs afero.Fs, icon string) (*shortcuts.Service, *shortcuts.Store) {
	store := shortcuts.NewStore(fs, "/data/shortcuts.json")
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC))
	svc := shortcuts.NewService(pl, fs, store, stubResolver{path: icon}, clock)
	return svc, store
}

func TestServiceCreateDefaultsToDesktop(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/home/user/Desktop", "/home/user/.local/share/applications", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil).Once()

	fs := afero.NewMemMapFs()
	svc, store := newTestService(pl, fs, "/data/icons/Fortnite.ico")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName: "Fortnite",
		GameID:   "4a8f1c2e-9b3d-4e5f-8a7b-6c5d4e3f2a1b",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "/home/user/Desktop/Fortnite.desktop", result.Path)
	assert.Equal(t, []string{"/home/user/Desktop/Fortnite.desktop"}, result.Paths)

	entries := store.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Fortnite", entries[0].GameName)
	assert.Equal(t, shortcuts.PlacementDesktop, entries[0].Placement)
	assert.Equal(t, "/data/icons/Fortnite.ico", entries[0].IconPath)

	pl.AssertExpectations(t)
}

func TestServiceCreateBothPlacement(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil).Twice()

	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName:  "Rocket League",
		GameID:    "id-1",
		Placement: shortcuts.PlacementBoth,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/desktop/Rocket League.desktop",
		"/menu/Rocket League.desktop",
	}, result.Paths)
}

func TestServiceCreateBothSkipsUnsupportedMenu(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.On("DesktopDir").Return("/desktop", nil)
	pl.On("MenuDir").Return("", platforms.ErrNotSupported)
	pl.On("ExecutablePath").Return("/Applications/NOW.app/Contents/MacOS/NOW", nil)
	pl.On("ShortcutExt").Return(".app")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil).Once()

	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName:  "Fortnite",
		GameID:    "id-1",
		Placement: shortcuts.PlacementBoth,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/desktop/Fortnite.app"}, result.Paths)
}

func TestServiceCreateMenuOnlyUnsupported(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.On("MenuDir").Return("", platforms.ErrNotSupported)
	pl.On("ExecutablePath").Return("/Applications/NOW.app/Contents/MacOS/NOW", nil)
	pl.On("ShortcutExt").Return(".app")

	svc, store := newTestService(pl, afero.NewMemMapFs(), "")

	_, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName:  "Fortnite",
		GameID:    "id-1",
		Placement: shortcuts.PlacementMenu,
	})
	require.Error(t, err)
	assert.Empty(t, store.List())
}

func TestServiceCreateAllWritesFail(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc, store := newTestService(pl, afero.NewMemMapFs(), "")

	_, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName:  "Fortnite",
		GameID:    "id-1",
		Placement: shortcuts.PlacementBoth,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, store.List(), "index must not change when nothing was created")
}

func TestServiceCreatePartialFailureSucceeds(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.MatchedBy(func(spec *platforms.ShortcutSpec) bool {
		return spec.Path == "/desktop/Fortnite.desktop"
	})).Return(errors.New("desktop is read-only"))
	pl.On("WriteShortcut", mock.Anything, mock.MatchedBy(func(spec *platforms.ShortcutSpec) bool {
		return spec.Path == "/menu/Fortnite.desktop"
	})).Return(nil)

	svc, store := newTestService(pl, afero.NewMemMapFs(), "")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName:  "Fortnite",
		GameID:    "id-1",
		Placement: shortcuts.PlacementBoth,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/menu/Fortnite.desktop"}, result.Paths)

	entries := store.List()
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"/menu/Fortnite.desktop"}, entries[0].TargetPaths)
}

func TestServiceCreateInvalidRequest(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	tests := []struct {
		name string
		req  shortcuts.CreateRequest
	}{
		{
			name: "missing_game_name",
			req:  shortcuts.CreateRequest{GameID: "id-1"},
		},
		{
			name: "missing_game_id",
			req:  shortcuts.CreateRequest{GameName: "Fortnite"},
		},
		{
			name: "unknown_placement",
			req: shortcuts.CreateRequest{
				GameName:  "Fortnite",
				GameID:    "id-1",
				Placement: "taskbar",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid shortcut request")
		})
	}
}

func TestServiceDeleteUnknownID(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	err := svc.Delete("no-such-id")
	require.ErrorIs(t, err, shortcuts.ErrNotFound)
}

func TestServiceDeleteRemovesEntryAndArtifacts(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil)

	fs := afero.NewMemMapFs()
	svc, store := newTestService(pl, fs, "")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName: "Fortnite",
		GameID:   "id-1",
	})
	require.NoError(t, err)

	// simulate the artifact the platform would have written
	require.NoError(t, afero.WriteFile(fs, result.Path, []byte("shortcut"), 0o644))

	require.NoError(t, svc.Delete(result.ID))

	exists, err := afero.Exists(fs, result.Path)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, store.List())
}

func TestServiceDeleteToleratesMissingArtifacts(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil)

	svc, store := newTestService(pl, afero.NewMemMapFs(), "")

	result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName: "Fortnite",
		GameID:   "id-1",
	})
	require.NoError(t, err)

	// artifact never existed on disk; delete must still succeed
	require.NoError(t, svc.Delete(result.ID))
	assert.Empty(t, store.List())
}

func TestServiceRenameUpdatesEntry(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil)

	fs := afero.NewMemMapFs()
	svc, store := newTestService(pl, fs, "")

	created, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName: "Fortnite",
		GameID:   "id-1",
	})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, created.Path, []byte("shortcut"), 0o644))

	result, err := svc.Rename(context.Background(), created.ID, "Fortnite OG")
	require.NoError(t, err)
	assert.Equal(t, []string{"/desktop/Fortnite OG.desktop"}, result.Paths)

	// old artifact is gone
	exists, err := afero.Exists(fs, created.Path)
	require.NoError(t, err)
	assert.False(t, exists)

	entries := store.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Fortnite OG", entries[0].GameName)
	assert.Equal(t, created.ID, entries[0].ID)
	require.NotNil(t, entries[0].UpdatedAt)
}

func TestServiceRenameKeepsReusedPath(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil)

	fs := afero.NewMemMapFs()
	svc, _ := newTestService(pl, fs, "")

	created, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
		GameName: "Fortnite",
		GameID:   "id-1",
	})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, created.Path, []byte("shortcut"), 0o644))

	// sanitization collapses the new name to the same filename
	result, err := svc.Rename(context.Background(), created.ID, "  Fortnite  ")
	require.NoError(t, err)
	assert.Equal(t, []string{created.Path}, result.Paths)

	exists, err := afero.Exists(fs, created.Path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestServiceRenameUnknownID(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	_, err := svc.Rename(context.Background(), "no-such-id", "New Name")
	require.ErrorIs(t, err, shortcuts.ErrNotFound)
}

func TestServiceRenameEmptyName(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	_, err := svc.Rename(context.Background(), "any", "   ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shortcuts.ErrNotFound)
}

func TestServiceIDsAreUnique(t *testing.T) {
	t.Parallel()

	pl := &mocks.MockPlatform{}
	pl.SetupBasicPlatform("/desktop", "/menu", "/usr/bin/now-core")
	pl.On("WriteShortcut", mock.Anything, mock.Anything).Return(nil)

	svc, _ := newTestService(pl, afero.NewMemMapFs(), "")

	seen := make(map[string]bool)
	for i := range 10 {
		result, err := svc.Create(context.Background(), &shortcuts.CreateRequest{
			GameName: "Game " + string(rune('A'+i)),
			GameID:   "id-1",
		})
		require.NoError(t, err)
		assert.False(t, seen[result.ID], "duplicate id: %s", result.ID)
		seen[result.ID] = true
	}
}
