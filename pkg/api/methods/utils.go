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
	"encoding/base64"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/oaojfr/now-core/pkg/api/models"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// HandlePlatform reports the running platform id to the overlay.
func HandlePlatform(pl platforms.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.PlatformResponse{Platform: pl.ID()})
	}
}

// HandleVersion reports the running build version.
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.VersionResponse{Version: config.AppVersion})
	}
}

// HandleExtractGameID extracts a game id from the url query parameter. No
// match is a null gameId, not an error.
func HandleExtractGameID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := r.URL.Query().Get("url")
		if rawURL == "" {
			writeJSON(w, http.StatusBadRequest, models.StatusResponse{
				Success: false,
				Error:   "missing url parameter",
			})
			return
		}

		var resp models.GameIDResponse
		if id := shortcuts.ExtractGameID(rawURL); id != "" {
			resp.GameID = &id
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleReadMedia renders a local file as a data URL for the overlay. Reads
// are restricted to the given roots so the endpoint cannot be used to walk
// the filesystem; anything outside them or unreadable yields a null dataUrl.
func HandleReadMedia(fs afero.Fs, roots ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqPath := r.URL.Query().Get("path")
		if reqPath == "" {
			writeJSON(w, http.StatusBadRequest, models.StatusResponse{
				Success: false,
				Error:   "missing path parameter",
			})
			return
		}

		var resp models.DataURLResponse
		if !pathAllowed(reqPath, roots) {
			log.Warn().Str("path", reqPath).Msg("media read outside allowed roots")
			writeJSON(w, http.StatusOK, resp)
			return
		}

		data, err := afero.ReadFile(fs, reqPath)
		if err != nil {
			log.Debug().Err(err).Str("path", reqPath).Msg("media read failed")
			writeJSON(w, http.StatusOK, resp)
			return
		}

		dataURL := "data:" + mediaType(reqPath) + ";base64," +
			base64.StdEncoding.EncodeToString(data)
		resp.DataURL = &dataURL
		writeJSON(w, http.StatusOK, resp)
	}
}

func pathAllowed(reqPath string, roots []string) bool {
	cleaned := filepath.Clean(reqPath)
	for _, root := range roots {
		if root == "" {
			continue
		}
		rel, err := filepath.Rel(filepath.Clean(root), cleaned)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func mediaType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ico":
		return "image/x-icon"
	case ".png":
		return "image/png"
	default:
		if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
			return mt
		}
		return "application/octet-stream"
	}
}
