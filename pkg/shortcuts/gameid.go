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
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// gameIDParams covers every query parameter name the web client has used
// for the game id over time.
var gameIDParams = []string{"game-id", "gameId", "game_id"}

var uuidPattern = regexp.MustCompile(
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// ExtractGameID pulls a best-effort game identifier out of a deep-link URL.
// Query parameters win over path segments, which win over a bare UUID
// anywhere in the string. Returns "" when nothing matches; malformed URLs
// are not an error.
func ExtractGameID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err == nil {
		query := u.Query()
		for _, param := range gameIDParams {
			if v := query.Get(param); v != "" {
				return v
			}
		}

		for _, seg := range strings.Split(u.Path, "/") {
			if len(seg) != 36 {
				continue
			}
			if _, parseErr := uuid.Parse(seg); parseErr == nil {
				return seg
			}
		}
	}

	return uuidPattern.FindString(rawURL)
}
