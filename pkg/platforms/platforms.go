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

package platforms

import (
	"context"
	"errors"
)

var ErrNotSupported = errors.New("operation not supported on this platform")

const (
	PlatformIDLinux   = "linux"
	PlatformIDMac     = "mac"
	PlatformIDWindows = "windows"
)

// Settings defines all simple settings/configuration values available for a
// platform.
type Settings struct {
	// DataDir is the root folder where the shortcut index and downloaded
	// icons are permanently stored.
	DataDir string
	// ConfigDir is the directory where the config file is stored.
	ConfigDir string
	// TempDir is a temporary directory where the logs are stored. Expect it
	// to be deleted.
	TempDir string
}

// ShortcutSpec describes a single launcher artifact to materialize on disk.
// Path carries the platform's artifact extension already (.lnk, .desktop or
// .app) and is the unit of partial success: one spec per target path.
type ShortcutSpec struct {
	// Path is the absolute destination of the artifact.
	Path string
	// GameName is the display name, already safe for a filename when it
	// appears in Path but raw here for descriptions and labels.
	GameName string
	// GameID is the opaque game identifier encoded into the relaunch
	// argument.
	GameID string
	// ExecPath is the host executable the shortcut points back at.
	ExecPath string
	// IconPath is an absolute path to a local icon file, or empty when
	// resolution failed and the platform default should apply.
	IconPath string
}

// Platform is the central interface that defines how Core interacts with a
// supported operating system. Implementations are pure functions of the
// environment plus an injected filesystem and process-spawn boundary, so
// each variant is testable in isolation on any host.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns all simple platform-specific settings such as paths.
	Settings() Settings
	// DesktopDir returns the user's desktop directory.
	DesktopDir() (string, error)
	// MenuDir returns the secondary shortcut location (start menu programs
	// folder or XDG applications directory), creating it if missing.
	// Returns ErrNotSupported where no such location exists.
	MenuDir() (string, error)
	// ExecutablePath returns the path shortcuts should invoke to relaunch
	// the shell. Not necessarily the running binary: AppImage launches and
	// macOS bundles resolve to their outer artifact so shortcuts survive
	// the process exiting.
	ExecutablePath() (string, error)
	// ShortcutExt returns the artifact extension, dot included.
	ShortcutExt() string
	// WriteShortcut materializes a single launcher artifact at spec.Path.
	WriteShortcut(ctx context.Context, spec *ShortcutSpec) error
}
