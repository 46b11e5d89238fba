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

package mac

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const bundleInternalPath = "/Contents/MacOS/"

type Platform struct {
	fs   afero.Fs
	exec func() (string, error)
	home string
}

func NewPlatform() *Platform {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("unable to resolve home directory")
	}
	return &Platform{
		fs:   afero.NewOsFs(),
		exec: os.Executable,
		home: home,
	}
}

func (*Platform) ID() string {
	return platforms.PlatformIDMac
}

func (*Platform) Settings() platforms.Settings {
	return platforms.Settings{
		DataDir:   filepath.Join(xdg.DataHome, config.AppName),
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		TempDir:   filepath.Join(os.TempDir(), config.AppName),
	}
}

func (p *Platform) DesktopDir() (string, error) {
	return filepath.Join(p.home, "Desktop"), nil
}

// MenuDir is unsupported: macOS has no secondary shortcut location, apps
// land on the desktop only.
func (*Platform) MenuDir() (string, error) {
	return "", platforms.ErrNotSupported
}

// ExecutablePath returns the .app bundle root when running from a bundle,
// derived by stripping the internal Contents/MacOS suffix from the raw
// executable path.
func (p *Platform) ExecutablePath() (string, error) {
	exe, err := p.exec()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable: %w", err)
	}

	if idx := strings.Index(exe, bundleInternalPath); idx > 0 {
		return exe[:idx], nil
	}
	return exe, nil
}

func (*Platform) ShortcutExt() string {
	return ".app"
}

// WriteShortcut constructs a minimal application bundle at spec.Path: a
// shell-script launcher that re-invokes the shell with the game id, plus a
// fixed-schema Info.plist. No icon embedding is attempted.
func (p *Platform) WriteShortcut(_ context.Context, spec *platforms.ShortcutSpec) error {
	appName := strings.TrimSuffix(filepath.Base(spec.Path), ".app")
	contentsDir := filepath.Join(spec.Path, "Contents")
	macOSDir := filepath.Join(contentsDir, "MacOS")
	resourcesDir := filepath.Join(contentsDir, "Resources")

	if err := p.fs.MkdirAll(macOSDir, 0o755); err != nil {
		return fmt.Errorf("failed to create bundle directories: %w", err)
	}
	if err := p.fs.MkdirAll(resourcesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create bundle resources: %w", err)
	}

	launcher := "#!/bin/bash\n\"" + spec.ExecPath + "\" " +
		config.GameIDFlag + spec.GameID + "\n"
	launcherPath := filepath.Join(macOSDir, appName)
	if err := afero.WriteFile(p.fs, launcherPath, []byte(launcher), 0o755); err != nil {
		return fmt.Errorf("failed to write launcher script: %w", err)
	}
	if err := p.fs.Chmod(launcherPath, 0o755); err != nil {
		return fmt.Errorf("failed to chmod launcher script: %w", err)
	}

	plist := infoPlist(appName, spec.GameName, spec.GameID)
	plistPath := filepath.Join(contentsDir, "Info.plist")
	if err := afero.WriteFile(p.fs, plistPath, []byte(plist), 0o644); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	return nil
}

func infoPlist(appName, gameName, gameID string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" ` +
		`"http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	sb.WriteString(`<plist version="1.0">` + "\n")
	sb.WriteString("<dict>\n")
	sb.WriteString("    <key>CFBundleExecutable</key>\n")
	sb.WriteString("    <string>" + xmlEscape(appName) + "</string>\n")
	sb.WriteString("    <key>CFBundleIdentifier</key>\n")
	sb.WriteString("    <string>" + config.BundleIDPrefix + xmlEscape(gameID) + "</string>\n")
	sb.WriteString("    <key>CFBundleName</key>\n")
	sb.WriteString("    <string>" + xmlEscape(gameName) + "</string>\n")
	sb.WriteString("    <key>CFBundlePackageType</key>\n")
	sb.WriteString("    <string>APPL</string>\n")
	sb.WriteString("    <key>CFBundleShortVersionString</key>\n")
	sb.WriteString("    <string>1.0</string>\n")
	sb.WriteString("    <key>LSMinimumSystemVersion</key>\n")
	sb.WriteString("    <string>10.10</string>\n")
	sb.WriteString("</dict>\n")
	sb.WriteString("</plist>\n")
	return sb.String()
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}
