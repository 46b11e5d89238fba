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

// Package presence reports the current game to Discord Rich Presence over
// the local IPC socket. Everything here is best-effort: Discord not running,
// login failures and activity errors are logged and swallowed, presence is
// decoration.
package presence

import (
	"time"

	"github.com/hugolgst/rich-go/client"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/rs/zerolog/log"
)

type Reporter struct {
	started   time.Time
	connected bool
}

// Connect logs into the local Discord client. Returns a Reporter that is
// safe to use even when the connection failed.
func Connect() *Reporter {
	r := &Reporter{started: time.Now()}

	if err := client.Login(config.DiscordAppID); err != nil {
		log.Warn().Err(err).Msg("discord presence unavailable")
		return r
	}

	r.connected = true
	log.Info().Msg("discord presence connected")
	r.SetPlaying("")
	return r
}

// SetPlaying updates the presence activity. An empty title reports idling.
func (r *Reporter) SetPlaying(gameTitle string) {
	if !r.connected {
		return
	}

	state := "Idling..."
	if gameTitle != "" {
		state = "Playing " + gameTitle
	}

	err := client.SetActivity(client.Activity{
		State:      state,
		LargeImage: "infinity_logo",
		LargeText:  "Project NOW",
		Timestamps: &client.Timestamps{
			Start: &r.started,
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to set presence activity")
	}
}

// Close drops the presence connection.
func (r *Reporter) Close() {
	if !r.connected {
		return
	}
	client.Logout()
	r.connected = false
}
