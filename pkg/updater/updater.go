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

// Package updater checks the GitHub releases feed for newer builds of the
// shell. It never installs anything: the overlay shows a notification and
// the user is sent to the releases page.
package updater

import (
	"context"
	"time"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/jonboulle/clockwork"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// ReleasesPageURL is where users are sent to download a new build.
const ReleasesPageURL = "https://github.com/" + config.UpdateRepo + "/releases"

// startupCheckDelay gives the shell time to finish coming up before the
// first outbound call.
const startupCheckDelay = 5 * time.Second

// CheckResult mirrors what the overlay's update banner renders. A check
// that failed still produces a usable result: no update, error recorded.
type CheckResult struct {
	CurrentVersion  string `json:"currentVersion"`
	LatestVersion   string `json:"latestVersion"`
	ReleaseURL      string `json:"releaseUrl"`
	ReleaseName     string `json:"releaseName"`
	ReleaseNotes    string `json:"releaseNotes"`
	Error           string `json:"error,omitempty"`
	UpdateAvailable bool   `json:"updateAvailable"`
}

// Updater performs release lookups against the project repository.
type Updater struct {
	updater *selfupdate.Updater
	current string
}

func New() (*Updater, error) {
	su, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return nil, err //nolint:wrapcheck // construction error is self-describing
	}
	return &Updater{
		updater: su,
		current: config.AppVersion,
	}, nil
}

// Check queries the latest release and compares it against the running
// build. Network or API failures degrade to "no update available" with the
// error recorded, never a hard failure.
func (u *Updater) Check(ctx context.Context) CheckResult {
	result := CheckResult{
		CurrentVersion: u.current,
		LatestVersion:  u.current,
		ReleaseURL:     ReleasesPageURL,
	}

	latest, found, err := u.updater.DetectLatest(ctx, selfupdate.ParseSlug(config.UpdateRepo))
	if err != nil {
		log.Warn().Err(err).Msg("update check failed")
		result.Error = err.Error()
		return result
	}
	if !found || latest == nil {
		log.Debug().Msg("no releases found for update check")
		return result
	}

	result.LatestVersion = latest.Version()
	result.ReleaseURL = latest.URL
	result.ReleaseName = latest.Name
	result.ReleaseNotes = latest.ReleaseNotes

	// development builds have no comparable version
	if u.current != "" && u.current != "DEVELOPMENT" {
		result.UpdateAvailable = latest.GreaterThan(u.current)
	}

	log.Info().
		Str("current", result.CurrentVersion).
		Str("latest", result.LatestVersion).
		Bool("available", result.UpdateAvailable).
		Msg("update check complete")

	return result
}

// StartupCheck runs a delayed background check and invokes notify when a
// newer release exists. Errors are swallowed: a startup check must never
// bother the user.
func (u *Updater) StartupCheck(ctx context.Context, clock clockwork.Clock, notify func(CheckResult)) {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-clock.After(startupCheckDelay):
		}

		result := u.Check(ctx)
		if result.UpdateAvailable && notify != nil {
			notify(result)
		}
	}()
}

// OpenReleases opens the releases page in the default browser.
func OpenReleases() error {
	return helpers.OpenBrowser(ReleasesPageURL)
}
