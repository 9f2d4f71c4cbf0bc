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

// Package launcher composes the final process invocation from the user's
// selections and the parsed launch options, and spawns the game.
package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Talon1024/d64ce-launcher/pkg/helpers"
	"github.com/Talon1024/d64ce-launcher/pkg/launchopts"
)

// Options are the user's selections for one launch.
type Options struct {
	Build        string   // selected GZDoom executable
	IWAD         string   // base data archive
	GZDoomConfig string   // optional engine config file
	ExtraArgs    string   // raw launch options string
	Files        []string // addon files, already resolved and ordered
}

// Plan is a fully composed invocation: the program to run, its argument
// list, and the environment overrides to apply on top of the parent
// environment.
type Plan struct {
	Exec    string
	Args    []string
	Overlay []launchopts.EnvVar
}

// NewPlan builds a launch plan. The extra-args run info comes first, then
// the synthesized -iwad / -config / -file flags, so users can rely on
// their own arguments preceding the launcher's.
func NewPlan(opts Options) Plan {
	info := launchopts.ParseRunInfo(opts.ExtraArgs, opts.Build)

	program := opts.Build
	if info.Exec != "" {
		program = info.Exec
	}

	args := make([]string, 0, len(info.Args)+6+len(opts.Files))
	args = append(args, info.Args...)
	if opts.IWAD != "" {
		args = append(args, "-iwad", opts.IWAD)
	}
	if opts.GZDoomConfig != "" {
		args = append(args, "-config", opts.GZDoomConfig)
	}
	if len(opts.Files) > 0 {
		args = append(args, "-file")
		args = append(args, opts.Files...)
	}

	return Plan{
		Exec:    program,
		Args:    args,
		Overlay: info.Env,
	}
}

// mergeEnv appends the overlay pairs to a base environment. Duplicate keys
// are left in place; the OS applies last-write-wins when the child starts.
func mergeEnv(base []string, overlay []launchopts.EnvVar) []string {
	env := make([]string, 0, len(base)+len(overlay))
	env = append(env, base...)
	for _, v := range overlay {
		env = append(env, v.Key+"="+v.Value)
	}
	return env
}

// Launch starts the planned process without waiting for it, inheriting the
// launcher's environment plus the plan's overrides.
func (p Plan) Launch(ctx context.Context, executor helpers.CommandExecutor) error {
	log.Info().
		Str("exec", p.Exec).
		Strs("args", p.Args).
		Int("envOverrides", len(p.Overlay)).
		Msg("launching game")

	env := mergeEnv(os.Environ(), p.Overlay)
	if err := executor.Start(ctx, env, p.Exec, p.Args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", p.Exec, err)
	}
	return nil
}
