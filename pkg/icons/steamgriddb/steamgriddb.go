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

// Package steamgriddb is a thin client for the SteamGridDB artwork catalog,
// used to look up shortcut icons by game name. Authentication is a bearer
// token configured in auth.toml for https://www.steamgriddb.com; requests
// without one simply come back unauthorized and the caller degrades to no
// icon.
package steamgriddb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oaojfr/now-core/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://www.steamgriddb.com/api/v2"

// Game is a catalog search result.
type Game struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Icon is one downloadable icon for a catalog game. The file format is
// whatever the URL's extension says it is.
type Icon struct {
	URL string `json:"url"`
	ID  int    `json:"id"`
}

type searchResponse struct {
	Data    []Game `json:"data"`
	Success bool   `json:"success"`
}

type iconsResponse struct {
	Data    []Icon `json:"data"`
	Success bool   `json:"success"`
}

// Client queries the SteamGridDB JSON API.
type Client struct {
	client  *httpclient.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		client:  httpclient.NewClientWithTimeout(30 * time.Second),
		baseURL: DefaultBaseURL,
	}
}

// NewClientWithBaseURL points the client at an alternate API root, used by
// tests to target a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// SearchAutocomplete looks up catalog games matching a raw (unsanitized)
// display name.
func (c *Client) SearchAutocomplete(ctx context.Context, term string) ([]Game, error) {
	reqURL := c.baseURL + "/search/autocomplete/" + url.PathEscape(term)
	log.Debug().Str("url", reqURL).Msg("SteamGridDB search request")

	var parsed searchResponse
	if err := c.getJSON(ctx, reqURL, &parsed); err != nil {
		return nil, err
	}
	if !parsed.Success {
		return nil, fmt.Errorf("catalog search rejected: %q", term)
	}

	return parsed.Data, nil
}

// GameIcons lists the icons available for a catalog game id.
func (c *Client) GameIcons(ctx context.Context, gameID int) ([]Icon, error) {
	reqURL := fmt.Sprintf("%s/icons/game/%d", c.baseURL, gameID)
	log.Debug().Str("url", reqURL).Msg("SteamGridDB icons request")

	var parsed iconsResponse
	if err := c.getJSON(ctx, reqURL, &parsed); err != nil {
		return nil, err
	}
	if !parsed.Success {
		return nil, fmt.Errorf("catalog icon listing rejected: %d", gameID)
	}

	return parsed.Data, nil
}

// DownloadIcon fetches an icon URL into a local file.
func (c *Client) DownloadIcon(ctx context.Context, args httpclient.DownloadFileArgs) error {
	if err := c.client.DownloadFile(ctx, args); err != nil {
		return fmt.Errorf("failed to download icon: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	resp, err := c.client.Get(ctx, reqURL)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
