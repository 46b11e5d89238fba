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

package linux

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
	ini "gopkg.in/ini.v1"
)

// AppImageEnv points at the mounted AppImage file when the shell was
// launched from one. Shortcuts must target the AppImage itself, not the
// temporary mount point, or they break on the next launch.
const AppImageEnv = "APPIMAGE"

type Platform struct {
	fs     afero.Fs
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
		getenv: os.Getenv,
		exec:   os.Executable,
		home:   home,
	}
}

func (*Platform) ID() string {
	return platforms.PlatformIDLinux
}

func (*Platform) Settings() platforms.Settings {
	return platforms.Settings{
		DataDir:   filepath.Join(xdg.DataHome, config.AppName),
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		TempDir:   filepath.Join(os.TempDir(), config.AppName),
	}
}

// DesktopDir resolves the user's desktop from user-dirs.dirs when present,
// falling back to ~/Desktop.
func (p *Platform) DesktopDir() (string, error) {
	configHome := p.getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(p.home, ".config")
	}

	userDirsPath := filepath.Join(configHome, "user-dirs.dirs")
	data, err := afero.ReadFile(p.fs, userDirsPath)
	if err != nil {
		return filepath.Join(p.home, "Desktop"), nil
	}

	dir, err := parseDesktopDir(data, p.home)
	if err != nil || dir == "" {
		log.Debug().Err(err).Msg("no usable XDG_DESKTOP_DIR, using fallback")
		return filepath.Join(p.home, "Desktop"), nil
	}

	return dir, nil
}

// parseDesktopDir extracts XDG_DESKTOP_DIR from user-dirs.dirs content,
// substituting the leading $HOME token. The file is shell syntax but its
// key="value" lines parse fine as a sectionless INI document.
func parseDesktopDir(data []byte, home string) (string, error) {
	f, err := ini.Load(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse user-dirs.dirs: %w", err)
	}

	key := f.Section("").Key("XDG_DESKTOP_DIR")
	if key == nil {
		return "", nil
	}

	val := strings.Trim(key.String(), `"`)
	if val == "" {
		return "", nil
	}

	return strings.ReplaceAll(val, "$HOME", home), nil
}

// MenuDir returns the XDG applications directory, creating it if missing.
func (p *Platform) MenuDir() (string, error) {
	dataHome := p.getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(p.home, ".local", "share")
	}

	appsDir := filepath.Join(dataHome, "applications")
	if err := p.fs.MkdirAll(appsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create applications directory: %w", err)
	}

	return appsDir, nil
}

func (p *Platform) ExecutablePath() (string, error) {
	if appImage := p.getenv(AppImageEnv); appImage != "" {
		return appImage, nil
	}

	exe, err := p.exec()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable: %w", err)
	}
	return exe, nil
}

func (*Platform) ShortcutExt() string {
	return ".desktop"
}

// WriteShortcut writes a desktop entry at spec.Path with the executable bit
// set so launchers will run it without prompting.
func (p *Platform) WriteShortcut(_ context.Context, spec *platforms.ShortcutSpec) error {
	entry := desktopEntry(spec)

	if err := afero.WriteFile(p.fs, spec.Path, []byte(entry), 0o755); err != nil {
		return fmt.Errorf("failed to write desktop entry: %w", err)
	}

	// some launchers silently ignore non-executable .desktop files even
	// when the write mode was already correct
	if err := p.fs.Chmod(spec.Path, 0o755); err != nil {
		return fmt.Errorf("failed to chmod desktop entry: %w", err)
	}

	p.ensureExecutable(spec.ExecPath)

	return nil
}

func desktopEntry(spec *platforms.ShortcutSpec) string {
	var sb strings.Builder
	sb.WriteString("[Desktop Entry]\n")
	sb.WriteString("Name=" + spec.GameName + "\n")
	sb.WriteString("Comment=Launch " + spec.GameName + " on GeForce NOW via Project NOW\n")
	sb.WriteString("Exec=\"" + spec.ExecPath + "\" " + config.GameIDFlag + spec.GameID + "\n")
	sb.WriteString("Icon=" + spec.IconPath + "\n")
	sb.WriteString("Terminal=false\n")
	sb.WriteString("Type=Application\n")
	sb.WriteString("Categories=Game;\n")
	sb.WriteString("StartupNotify=true\n")
	return sb.String()
}

// ensureExecutable marks the target executable as runnable. Best-effort:
// AppImages downloaded through a browser commonly lack the bit.
func (p *Platform) ensureExecutable(execPath string) {
	info, err := p.fs.Stat(execPath)
	if err != nil {
		log.Warn().Err(err).Msgf("unable to stat executable: %s", execPath)
		return
	}

	mode := info.Mode()
	if mode&0o111 != 0 {
		return
	}

	if err := p.fs.Chmod(execPath, mode|0o111); err != nil {
		log.Warn().Err(err).Msgf("unable to mark executable: %s", execPath)
	}
}
