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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))

	vals := cfg.Settings()
	assert.Equal(t, SchemaVersion, vals.ConfigSchema)
	assert.True(t, vals.Notify)
	assert.True(t, vals.RPCEnabled)
	assert.Equal(t, 1920, vals.MonitorWidth)
	assert.Equal(t, "en", vals.Language)
}

func TestConfigSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	vals := cfg.Settings()
	vals.Language = "fr"
	vals.RPCEnabled = false
	vals.MonitorWidth = 2560
	cfg.SetSettings(vals)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	got := reloaded.Settings()
	assert.Equal(t, "fr", got.Language)
	assert.False(t, got.RPCEnabled)
	assert.Equal(t, 2560, got.MonitorWidth)
	// fields not written keep their defaults
	assert.Equal(t, 60, got.FramesPerSecond)
}

func TestConfigSchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, CfgFile),
		[]byte("config_schema = 99\n"),
		0o600,
	))

	_, err := NewConfig(dir, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestConfigEnvPathOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom", "my-config.toml")
	t.Setenv(CfgEnv, override)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, override, cfg.Path())
	assert.FileExists(t, override)
}

func TestSetSettingsPinsSchema(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	vals := cfg.Settings()
	vals.ConfigSchema = 42
	cfg.SetSettings(vals)

	assert.Equal(t, SchemaVersion, cfg.Settings().ConfigSchema)
}

func TestConfigLoadsAuthFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, AuthFile),
		[]byte("[\"https://www.steamgriddb.com\"]\nbearer = \"sgdb-token\"\n"),
		0o600,
	))

	_, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	creds := GetAuthCfg()
	require.NotNil(t, creds)
	assert.Equal(t, "sgdb-token", creds["https://www.steamgriddb.com"].Bearer)
}
