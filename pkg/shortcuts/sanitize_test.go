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

package shortcuts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain_title",
			input:    "Fortnite",
			expected: "Fortnite",
		},
		{
			name:     "title_with_colon",
			input:    "Divinity: Original Sin 2",
			expected: "Divinity Original Sin 2",
		},
		{
			name:     "all_reserved_characters",
			input:    `a<b>c:d"e/f\g|h?i*j`,
			expected: "abcdefghij",
		},
		{
			name:     "whitespace_runs_collapse",
			input:    "The  Witcher   3",
			expected: "The Witcher 3",
		},
		{
			name:     "leading_and_trailing_whitespace",
			input:    "  Rocket League  ",
			expected: "Rocket League",
		},
		{
			name:     "removal_creates_double_space",
			input:    "Tom Clancy's : The Division",
			expected: "Tom Clancy's The Division",
		},
		{
			name:     "only_reserved_characters",
			input:    `<>:"/\|?*`,
			expected: "",
		},
		{
			name:     "empty_string",
			input:    "",
			expected: "",
		},
		{
			name:     "unicode_preserved",
			input:    "Pokémon UNITE",
			expected: "Pokémon UNITE",
		},
		{
			name:     "tabs_and_newlines",
			input:    "Apex\tLegends\n",
			expected: "Apex Legends",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Divinity: Original Sin 2",
		"  The  Witcher   3  ",
		`a<b>c:d"e/f\g|h?i*j`,
		"Fortnite",
	}

	for _, input := range inputs {
		once := SanitizeFilename(input)
		assert.Equal(t, once, SanitizeFilename(once), "input: %q", input)
	}
}
