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
)

func TestBuildGameURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://play.geforcenow.com/games?game-id=4a8f1c2e",
		BuildGameURL("4a8f1c2e"))
	assert.Equal(t, "https://play.geforcenow.com/", BuildGameURL(""))
}

func TestParseGameIDFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "flag_present",
			args:     []string{"--game-id=abc-123"},
			expected: "abc-123",
		},
		{
			name:     "flag_among_others",
			args:     []string{"--verbose", "--game-id=abc-123", "--other"},
			expected: "abc-123",
		},
		{
			name:     "no_flag",
			args:     []string{"--verbose"},
			expected: "",
		},
		{
			name:     "empty_value",
			args:     []string{"--game-id="},
			expected: "",
		},
		{
			name:     "no_args",
			args:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseGameIDFromArgs(tt.args))
		})
	}
}
