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

package icons

import (
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/oaojfr/now-core/pkg/icons/steamgriddb"
	"github.com/oaojfr/now-core/pkg/shared/httpclient"
	"github.com/oaojfr/now-core/pkg/shortcuts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Catalog is the remote icon-lookup surface the resolver consumes. Satisfied
// by steamgriddb.Client; faked in tests.
type Catalog interface {
	SearchAutocomplete(ctx context.Context, term string) ([]steamgriddb.Game, error)
	GameIcons(ctx context.Context, gameID int) ([]steamgriddb.Icon, error)
	DownloadIcon(ctx context.Context, args httpclient.DownloadFileArgs) error
}

// cacheExts are the cached formats checked, in order. Existence of either
// short-circuits the remote lookup entirely.
var cacheExts = []string{".ico", ".png"}

// Resolver produces local icon files for shortcut creation, caching them by
// sanitized game name. Cached icons never expire; a stale icon persists
// until manually removed, an accepted trade-off for artwork that almost
// never changes.
type Resolver struct {
	fs       afero.Fs
	catalog  Catalog
	cacheDir string
}

func NewResolver(fs afero.Fs, catalog Catalog, cacheDir string) *Resolver {
	return &Resolver{
		fs:       fs,
		catalog:  catalog,
		cacheDir: cacheDir,
	}
}

// CacheDir returns the icon cache directory.
func (r *Resolver) CacheDir() string {
	return r.cacheDir
}

// Resolve returns an absolute path to a local icon for the game, or "" when
// none could be obtained. Every failure mode degrades to "": callers treat
// that as "use the fallback icon", never as a hard error.
func (r *Resolver) Resolve(ctx context.Context, gameName string) string {
	sanitized := shortcuts.SanitizeFilename(gameName)

	for _, ext := range cacheExts {
		cached := filepath.Join(r.cacheDir, sanitized+ext)
		if exists, _ := afero.Exists(r.fs, cached); exists {
			log.Debug().Str("game", gameName).Msgf("icon cache hit: %s", cached)
			return cached
		}
	}

	// search with the raw name: the catalog matches display titles, not
	// filesystem tokens
	games, err := r.catalog.SearchAutocomplete(ctx, gameName)
	if err != nil {
		log.Warn().Err(err).Str("game", gameName).Msg("icon search failed")
		return ""
	}
	if len(games) == 0 {
		log.Debug().Str("game", gameName).Msg("no catalog match for game")
		return ""
	}

	iconList, err := r.catalog.GameIcons(ctx, games[0].ID)
	if err != nil {
		log.Warn().Err(err).Str("game", gameName).Msg("icon listing failed")
		return ""
	}
	if len(iconList) == 0 {
		log.Debug().Str("game", gameName).Msg("catalog has no icons for game")
		return ""
	}

	icon := pickIcon(iconList)
	dest := filepath.Join(r.cacheDir, sanitized+"."+extFromURL(icon.URL))

	if err := r.fs.MkdirAll(r.cacheDir, 0o750); err != nil {
		log.Warn().Err(err).Msg("unable to create icon cache directory")
		return ""
	}

	err = r.catalog.DownloadIcon(ctx, httpclient.DownloadFileArgs{
		Fs:         r.fs,
		URL:        icon.URL,
		OutputPath: dest,
		TempPath:   dest + ".part",
	})
	if err != nil {
		log.Warn().Err(err).Str("game", gameName).Msg("icon download failed")
		return ""
	}

	log.Info().Str("game", gameName).Msgf("cached icon: %s", dest)
	return dest
}

// pickIcon prefers a Windows-native .ico source, falling back to the first
// icon of whatever format the catalog offered.
func pickIcon(iconList []steamgriddb.Icon) steamgriddb.Icon {
	for _, icon := range iconList {
		if strings.HasSuffix(strings.ToLower(urlPath(icon.URL)), ".ico") {
			return icon
		}
	}
	return iconList[0]
}

// extFromURL parses the file extension out of an icon URL, defaulting to
// png when the URL gives nothing usable.
func extFromURL(rawURL string) string {
	ext := strings.TrimPrefix(path.Ext(urlPath(rawURL)), ".")
	if ext == "" {
		return "png"
	}
	return strings.ToLower(ext)
}

func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
