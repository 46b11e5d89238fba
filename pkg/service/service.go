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

// Package service wires the shortcut subsystem, icon resolver, overlay API,
// update checker and presence reporter into one running unit.
package service

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/oaojfr/now-core/pkg/api"
	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/helpers"
	"github.com/oaojfr/now-core/pkg/icons"
	"github.com/oaojfr/now-core/pkg/icons/steamgriddb"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/oaojfr/now-core/pkg/presence"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/oaojfr/now-core/pkg/updater"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Start brings up every component and returns a stop function that shuts
// them down. Optional components (updater, presence) degrade to disabled
// instead of failing startup.
func Start(pl platforms.Platform, cfg *config.Instance) (func() error, error) {
	log.Info().Msgf("version: %s", config.AppVersion)
	log.Info().Msgf("platform: %s", pl.ID())

	ctx, cancel := context.WithCancel(context.Background())

	fs := afero.NewOsFs()
	clock := clockwork.NewRealClock()

	store := shortcuts.NewStore(fs, helpers.ShortcutsIndexPath(pl))
	resolver := icons.NewResolver(fs, steamgriddb.NewClient(), helpers.IconCacheDir(pl))
	svc := shortcuts.NewService(pl, fs, store, resolver, clock)

	upd, err := updater.New()
	if err != nil {
		log.Warn().Err(err).Msg("update checks disabled")
		upd = nil
	}

	server := api.NewServer(api.Deps{
		Platform:  pl,
		Cfg:       cfg,
		Fs:        fs,
		Shortcuts: svc,
		Updater:   upd,
		MediaRoots: []string{
			helpers.IconCacheDir(pl),
			helpers.DataDir(pl),
		},
	})

	go func() {
		if err := server.Start(ctx); err != nil {
			log.Error().Err(err).Msg("overlay api server stopped")
		}
	}()

	if upd != nil && cfg.Notify() {
		upd.StartupCheck(ctx, clock, func(result updater.CheckResult) {
			server.Notify(models.Notification{
				Method: models.NotificationUpdateAvailable,
				Params: result,
			})
		})
	}

	var reporter *presence.Reporter
	if cfg.RPCEnabled() {
		reporter = presence.Connect()
	}

	stop := func() error {
		cancel()
		if reporter != nil {
			reporter.Close()
		}
		return nil
	}

	return stop, nil
}
