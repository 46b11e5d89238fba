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
	"encoding/json"
	"net/http"

	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/config"
)

// HandleSettings returns the full persisted settings block.
func HandleSettings(cfg *config.Instance) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, cfg.Settings())
	}
}

// HandleSettingsUpdate replaces the settings block and persists it. The
// overlay submits the whole form, so partial updates are not supported.
func HandleSettingsUpdate(cfg *config.Instance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vals := cfg.Settings()
		if err := json.NewDecoder(r.Body).Decode(&vals); err != nil {
			writeJSON(w, http.StatusBadRequest, models.StatusResponse{
				Success: false,
				Error:   "invalid request body: " + err.Error(),
			})
			return
		}

		cfg.SetSettings(vals)
		if err := cfg.Save(); err != nil {
			writeJSON(w, http.StatusOK, models.StatusResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Success: true})
	}
}
