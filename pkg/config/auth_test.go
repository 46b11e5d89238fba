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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuthFromDataRootFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.steamgriddb.com"]
bearer = "sgdb-token"
`)

	creds := LoadAuthFromData(data)
	require.Len(t, creds, 1)
	assert.Equal(t, "sgdb-token", creds["https://www.steamgriddb.com"].Bearer)
}

func TestLoadAuthFromDataCredsFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
[creds."https://api.example.com"]
username = "user"
password = "pass"
`)

	creds := LoadAuthFromData(data)
	require.Len(t, creds, 1)
	assert.Equal(t, "user", creds["https://api.example.com"].Username)
	assert.Equal(t, "pass", creds["https://api.example.com"].Password)
}

func TestLoadAuthFromDataMixedFormats(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://www.steamgriddb.com"]
bearer = "sgdb-token"

[creds."https://api.example.com"]
bearer = "other-token"
`)

	creds := LoadAuthFromData(data)
	require.Len(t, creds, 2)
	assert.Equal(t, "sgdb-token", creds["https://www.steamgriddb.com"].Bearer)
	assert.Equal(t, "other-token", creds["https://api.example.com"].Bearer)
}

func TestLoadAuthFromDataInvalid(t *testing.T) {
	t.Parallel()

	creds := LoadAuthFromData([]byte("not toml at all {{{"))
	assert.Empty(t, creds)
}

func TestLookupAuth(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"https://www.steamgriddb.com": {Bearer: "sgdb-token"},
		"https://api.example.com/v2":  {Bearer: "v2-token"},
		"cdn.example.com":             {Bearer: "cdn-token"},
	}

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "full_url_match",
			url:      "https://www.steamgriddb.com/api/v2/search/autocomplete/game",
			expected: "sgdb-token",
		},
		{
			name:     "path_prefix_match",
			url:      "https://api.example.com/v2/icons",
			expected: "v2-token",
		},
		{
			name:     "path_prefix_mismatch",
			url:      "https://api.example.com/v1/icons",
			expected: "",
		},
		{
			name:     "scheme_mismatch",
			url:      "http://www.steamgriddb.com/api/v2",
			expected: "",
		},
		{
			name:     "schemeless_host_match_https",
			url:      "https://cdn.example.com/file.ico",
			expected: "cdn-token",
		},
		{
			name:     "schemeless_host_match_http",
			url:      "http://cdn.example.com/file.ico",
			expected: "cdn-token",
		},
		{
			name:     "host_case_insensitive",
			url:      "https://WWW.STEAMGRIDDB.COM/api",
			expected: "sgdb-token",
		},
		{
			name:     "unknown_host",
			url:      "https://other.example.org/",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LookupAuth(creds, tt.url)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Bearer)
		})
	}
}

func TestLookupAuthEmptyCreds(t *testing.T) {
	t.Parallel()

	assert.Nil(t, LookupAuth(nil, "https://example.com"))
	assert.Nil(t, LookupAuth(map[string]CredentialEntry{}, "https://example.com"))
}
