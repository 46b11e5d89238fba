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

// Package models holds the wire shapes of the local overlay API. These are
// the contract with the overlay UI; nothing here leaks internal types.
package models

// Notification method names pushed over the events websocket.
const (
	NotificationShortcutCreated = "shortcuts.created"
	NotificationShortcutUpdated = "shortcuts.updated"
	NotificationShortcutRemoved = "shortcuts.removed"
	NotificationUpdateAvailable = "updates.available"
)

// Notification is a one-way push message to connected overlay sessions.
type Notification struct {
	Params any    `json:"params,omitempty"`
	Method string `json:"method"`
}

// CreateShortcutResponse reports the outcome of a creation request. Error
// is set only when every target path failed and nothing was created.
type CreateShortcutResponse struct {
	ID      string   `json:"id,omitempty"`
	Path    string   `json:"path,omitempty"`
	Error   string   `json:"error,omitempty"`
	Paths   []string `json:"paths,omitempty"`
	Success bool     `json:"success"`
}

// EditShortcutParams carries the new display name for a rename.
type EditShortcutParams struct {
	NewName string `json:"newName"`
}

// EditShortcutResponse reports the outcome of a rename.
type EditShortcutResponse struct {
	Error   string   `json:"error,omitempty"`
	Paths   []string `json:"paths,omitempty"`
	Success bool     `json:"success"`
}

// StatusResponse is the generic success/error envelope for operations with
// no other payload.
type StatusResponse struct {
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// PlatformResponse identifies the running platform to the overlay.
type PlatformResponse struct {
	Platform string `json:"platform"`
}

// GameIDResponse carries an extracted game id, null when nothing matched.
type GameIDResponse struct {
	GameID *string `json:"gameId"`
}

// DataURLResponse carries a file rendered as a data URL, null when the file
// could not be read.
type DataURLResponse struct {
	DataURL *string `json:"dataUrl"`
}

// VersionResponse reports the running build version.
type VersionResponse struct {
	Version string `json:"version"`
}
