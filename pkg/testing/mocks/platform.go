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

package mocks

import (
	"context"

	"github.com/oaojfr/now-core/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

// MockPlatform is a mock implementation of the Platform interface using
// testify/mock.
type MockPlatform struct {
	mock.Mock
}

// ID returns the unique ID of this platform
func (m *MockPlatform) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlatform) Settings() platforms.Settings {
	args := m.Called()
	settings, _ := args.Get(0).(platforms.Settings)
	return settings
}

func (m *MockPlatform) DesktopDir() (string, error) {
	args := m.Called()
	//nolint:wrapcheck // mock returns are asserted by the caller
	return args.String(0), args.Error(1)
}

func (m *MockPlatform) MenuDir() (string, error) {
	args := m.Called()
	//nolint:wrapcheck // mock returns are asserted by the caller
	return args.String(0), args.Error(1)
}

func (m *MockPlatform) ExecutablePath() (string, error) {
	args := m.Called()
	//nolint:wrapcheck // mock returns are asserted by the caller
	return args.String(0), args.Error(1)
}

func (m *MockPlatform) ShortcutExt() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlatform) WriteShortcut(ctx context.Context, spec *platforms.ShortcutSpec) error {
	args := m.Called(ctx, spec)
	//nolint:wrapcheck // mock returns are asserted by the caller
	return args.Error(0)
}

// SetupBasicPlatform configures the common expectations most tests need: a
// desktop-only linux-like platform writing .desktop files.
func (m *MockPlatform) SetupBasicPlatform(desktopDir, menuDir, execPath string) {
	m.On("ID").Return(platforms.PlatformIDLinux).Maybe()
	m.On("DesktopDir").Return(desktopDir, nil).Maybe()
	m.On("MenuDir").Return(menuDir, nil).Maybe()
	m.On("ExecutablePath").Return(execPath, nil).Maybe()
	m.On("ShortcutExt").Return(".desktop").Maybe()
}
