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

// Package methods implements the request handlers of the local overlay API.
// Handlers are thin: they translate HTTP to service calls and convert every
// component failure into a {success:false, error} body. Nothing panics or
// throws across this boundary.
package methods

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
