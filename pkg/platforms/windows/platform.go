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

package windows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/oaojfr/now-core/pkg/config"
	"github.com/oaojfr/now-core/pkg/helpers"
	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Platform struct {
	fs     afero.Fs
	cmd    helpers.CommandExecutor
	getenv func(string) string
	exec   func() (string, error)
	home   string
}

func NewPlatform() *Platform {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("unable to resolve home directory")
	}
	return &Platform{
		fs:     afero.NewOsFs(),
		cmd:    &helpers.RealCommandExecutor{},
		getenv: os.Getenv,
		exec:   os.Executable,
		home:   home,
	}
}

func (*Platform) ID() string {
	return platforms.PlatformIDWindows
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

// MenuDir returns the roaming Start Menu Programs folder, creating it if
// missing.
func (p *Platform) MenuDir() (string, error) {
	appData := p.getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(p.home, "AppData", "Roaming")
	}

	programs := filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs")
	if err := p.fs.MkdirAll(programs, 0o755); err != nil {
		return "", fmt.Errorf("failed to create start menu directory: %w", err)
	}

	return programs, nil
}

func (p *Platform) ExecutablePath() (string, error) {
	exe, err := p.exec()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable: %w", err)
	}
	return exe, nil
}

func (*Platform) ShortcutExt() string {
	return ".lnk"
}

// WriteShortcut creates a native .lnk file through a WScript.Shell
// PowerShell script. The script is staged to a uniquely named temp file
// rather than passed inline, which sidesteps quoting problems with game
// names, and removed again whether or not PowerShell succeeded.
func (p *Platform) WriteShortcut(ctx context.Context, spec *platforms.ShortcutSpec) error {
	script := shortcutScript(spec)

	tmp, err := afero.TempFile(p.fs, "", "now-shortcut-*.ps1")
	if err != nil {
		return fmt.Errorf("failed to create script file: %w", err)
	}
	scriptPath := tmp.Name()
	defer func() {
		if removeErr := p.fs.Remove(scriptPath); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("unable to remove script: %s", scriptPath)
		}
	}()

	if _, err := tmp.WriteString(script); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write script file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close script file: %w", err)
	}

	err = p.cmd.Run(ctx, "powershell",
		"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", scriptPath)
	if err != nil {
		return fmt.Errorf("shortcut script failed: %w", err)
	}

	return nil
}

// psQuote escapes a value for a single-quoted PowerShell string literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func shortcutScript(spec *platforms.ShortcutSpec) string {
	workDir := filepath.Dir(spec.ExecPath)
	desc := "Launch " + spec.GameName + " on GeForce NOW"

	var sb strings.Builder
	sb.WriteString("$WshShell = New-Object -ComObject WScript.Shell\n")
	sb.WriteString("$Shortcut = $WshShell.CreateShortcut(" + psQuote(spec.Path) + ")\n")
	sb.WriteString("$Shortcut.TargetPath = " + psQuote(spec.ExecPath) + "\n")
	sb.WriteString("$Shortcut.Arguments = " + psQuote(config.GameIDFlag+spec.GameID) + "\n")
	sb.WriteString("$Shortcut.WorkingDirectory = " + psQuote(workDir) + "\n")
	sb.WriteString("$Shortcut.Description = " + psQuote(desc) + "\n")
	if spec.IconPath != "" {
		sb.WriteString("if (Test-Path " + psQuote(spec.IconPath) + ") {\n")
		sb.WriteString("    $Shortcut.IconLocation = " + psQuote(spec.IconPath) + "\n")
		sb.WriteString("}\n")
	}
	sb.WriteString("$Shortcut.Save()\n")
	return sb.String()
}
