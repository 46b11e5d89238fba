//go:build darwin

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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaojfr/now-core/pkg/cli"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/helpers"
	"github.com/oaojfr/now-core/pkg/platforms/mac"
	"github.com/oaojfr/now-core/pkg/service"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	pl := mac.NewPlatform()
	flags := cli.SetupFlags()

	flags.Pre(pl)

	cfg := cli.Setup(pl, config.BaseDefaults, nil)
	flags.Post(cfg, pl)

	gameID := *flags.GameID
	if gameID == "" {
		gameID = config.ParseGameIDFromArgs(os.Args[1:])
	}
	if gameID != "" {
		if err := helpers.OpenBrowser(config.BuildGameURL(gameID)); err != nil {
			return fmt.Errorf("failed to open game: %w", err)
		}
	}

	stop, err := service.Start(pl, cfg)
	if err != nil {
		log.Error().Err(err).Msg("error starting service")
		return fmt.Errorf("error starting service: %w", err)
	}
	defer func() {
		if err := stop(); err != nil {
			log.Error().Err(err).Msg("error stopping service")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	return nil
}
