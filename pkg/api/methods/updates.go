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

package methods

import (
	"net/http"

	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/updater"
)

// HandleUpdateCheck runs a release check on demand. The check itself never
// hard-fails; errors come back inside the result body.
func HandleUpdateCheck(u *updater.Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, u.Check(r.Context()))
	}
}

// HandleOpenReleases opens the releases page in the system browser.
func HandleOpenReleases() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := updater.OpenReleases(); err != nil {
			writeJSON(w, http.StatusOK, models.StatusResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, models.StatusResponse{Success: true})
	}
}
