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
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/rs/zerolog/log"
)

// Notifier pushes a notification to connected overlay sessions.
type Notifier func(models.Notification)

// HandleListShortcuts returns every indexed shortcut.
func HandleListShortcuts(svc *shortcuts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.List())
	}
}

// HandleCreateShortcut creates a shortcut from the posted request.
func HandleCreateShortcut(svc *shortcuts.Service, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shortcuts.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.CreateShortcutResponse{
				Success: false,
				Error:   "invalid request body: " + err.Error(),
			})
			return
		}

		log.Info().
			Str("game", req.GameName).
			Str("gameID", req.GameID).
			Msg("creating shortcut")

		result, err := svc.Create(r.Context(), &req)
		if err != nil {
			writeJSON(w, http.StatusOK, models.CreateShortcutResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		if notify != nil {
			notify(models.Notification{
				Method: models.NotificationShortcutCreated,
				Params: result,
			})
		}

		writeJSON(w, http.StatusOK, models.CreateShortcutResponse{
			Success: true,
			ID:      result.ID,
			Path:    result.Path,
			Paths:   result.Paths,
		})
	}
}

// HandleDeleteShortcut removes a shortcut by id. An unknown id is a 404,
// kept distinct from write failures.
func HandleDeleteShortcut(svc *shortcuts.Service, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(id)
		if errors.Is(err, shortcuts.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.StatusResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusOK, models.StatusResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		if notify != nil {
			notify(models.Notification{
				Method: models.NotificationShortcutRemoved,
				Params: map[string]string{"id": id},
			})
		}

		writeJSON(w, http.StatusOK, models.StatusResponse{Success: true})
	}
}

// HandleEditShortcut renames a shortcut, recreating its artifacts.
func HandleEditShortcut(svc *shortcuts.Service, notify Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var params models.EditShortcutParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeJSON(w, http.StatusBadRequest, models.EditShortcutResponse{
				Success: false,
				Error:   "invalid request body: " + err.Error(),
			})
			return
		}

		result, err := svc.Rename(r.Context(), id, params.NewName)
		if errors.Is(err, shortcuts.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.EditShortcutResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusOK, models.EditShortcutResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		if notify != nil {
			notify(models.Notification{
				Method: models.NotificationShortcutUpdated,
				Params: map[string]any{"id": id, "paths": result.Paths},
			})
		}

		writeJSON(w, http.StatusOK, models.EditShortcutResponse{
			Success: true,
			Paths:   result.Paths,
		})
	}
}
