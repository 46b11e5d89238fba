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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/oaojfr/now-core/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "NOW_CFG"
)

// Values holds every persisted setting exposed by the settings overlay.
type Values struct {
	UserAgent              string `toml:"user_agent"`
	AccentColor            string `toml:"accent_color"`
	Language               string `toml:"language"`
	MonitorWidth           int    `toml:"monitor_width"`
	MonitorHeight          int    `toml:"monitor_height"`
	FramesPerSecond        int    `toml:"frames_per_second"`
	ConfigSchema           int    `toml:"config_schema"`
	Autofocus              bool   `toml:"autofocus"`
	Automute               bool   `toml:"automute"`
	Notify                 bool   `toml:"notify"`
	RPCEnabled             bool   `toml:"rpc_enabled"`
	Informed               bool   `toml:"informed"`
	InactivityNotification bool   `toml:"inactivity_notification"`
	DebugLogging           bool   `toml:"debug_logging"`
}

var BaseDefaults = Values{
	ConfigSchema:    SchemaVersion,
	Notify:          true,
	RPCEnabled:      true,
	MonitorWidth:    1920,
	MonitorHeight:   1080,
	FramesPerSecond: 60,
	Language:        "en",
}

type Instance struct {
	cfgPath  string
	authPath string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

type Auth struct {
	Creds map[string]CredentialEntry `toml:"creds,omitempty"`
}

var authCfg atomic.Value

func GetAuthCfg() map[string]CredentialEntry {
	val := authCfg.Load()
	if val == nil {
		return nil
	}
	auth, ok := val.(map[string]CredentialEntry)
	if !ok {
		return nil
	}
	return auth
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	cfg.authPath = filepath.Join(filepath.Dir(cfgPath), AuthFile)

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top so fields not
	// present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals

	if _, err := os.Stat(c.authPath); err == nil {
		authData, err := os.ReadFile(c.authPath)
		if err != nil {
			return fmt.Errorf("failed to read auth file: %w", err)
		}

		creds := LoadAuthFromData(authData)
		log.Info().Msgf("loaded %d auth entries", len(creds))
		authCfg.Store(creds)
	}

	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(c.cfgPath, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

//nolint:gocritic // returns a copy on purpose
func (c *Instance) Settings() Values {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals
}

// SetSettings replaces the full settings block, as submitted by the overlay
// settings form.
//
//nolint:gocritic // settings struct copied for immutability
func (c *Instance) SetSettings(vals Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vals.ConfigSchema = SchemaVersion
	c.vals = vals
}

func (c *Instance) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.UserAgent
}

func (c *Instance) RPCEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.RPCEnabled
}

func (c *Instance) Notify() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Notify
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Language
}
