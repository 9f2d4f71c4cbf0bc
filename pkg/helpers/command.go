// D64CE Launcher
// Copyright (c) 2026 The D64CE Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of D64CE Launcher.
//
// D64CE Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// D64CE Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with D64CE Launcher.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"context"
	"os"
	"os/exec"
)

// CommandExecutor provides an abstraction over exec.Command for testability.
// This allows game launches to be mocked in tests without spawning real
// processes.
type CommandExecutor interface {
	// Run executes a command with the given environment and waits for it
	// to complete.
	Run(ctx context.Context, env []string, name string, args ...string) error

	// Start starts a command without waiting for it to complete.
	Start(ctx context.Context, env []string, name string, args ...string) error
}

// RealCommandExecutor uses actual exec.Command to execute system commands.
// This is the production implementation used in normal operation.
type RealCommandExecutor struct{}

func (*RealCommandExecutor) command(
	ctx context.Context, env []string, name string, args ...string,
) *exec.Cmd {
	//nolint:gosec // Safe: runs the user's own selected game executable
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

//nolint:wrapcheck // Wrapping exec errors loses important context
func (e *RealCommandExecutor) Run(
	ctx context.Context, env []string, name string, args ...string,
) error {
	return e.command(ctx, env, name, args...).Run()
}

//nolint:wrapcheck // Wrapping exec errors loses important context
func (e *RealCommandExecutor) Start(
	ctx context.Context, env []string, name string, args ...string,
) error {
	return e.command(ctx, env, name, args...).Start()
}
