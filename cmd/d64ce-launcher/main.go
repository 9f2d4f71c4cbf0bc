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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/Talon1024/d64ce-launcher/pkg/addons"
	"github.com/Talon1024/d64ce-launcher/pkg/builds"
	"github.com/Talon1024/d64ce-launcher/pkg/config"
	"github.com/Talon1024/d64ce-launcher/pkg/helpers"
	"github.com/Talon1024/d64ce-launcher/pkg/launcher"
	"github.com/Talon1024/d64ce-launcher/pkg/ui/tui"
)

type flags struct {
	BuildGlob  *string
	Addons     *string
	IWAD       *string
	Launch     *bool
	ListBuilds *bool
	ListIWADs  *bool
	Version    *bool
}

func setupFlags() *flags {
	return &flags{
		BuildGlob: flag.String(
			"build-glob",
			"",
			"glob pattern for finding GZDoom executables",
		),
		Addons: flag.String(
			"addons",
			"",
			"path to the addon catalog file",
		),
		IWAD: flag.String(
			"iwad",
			"",
			"path to the IWAD to use",
		),
		Launch: flag.Bool(
			"launch",
			false,
			"launch immediately with the saved selections",
		),
		ListBuilds: flag.Bool(
			"list-builds",
			false,
			"print discovered GZDoom builds and exit",
		),
		ListIWADs: flag.Bool(
			"list-iwads",
			false,
			"print discovered IWADs and exit",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	f := setupFlags()
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
		return nil
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := helpers.InitLogging(cfg.DebugLogging()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	log.Info().Msgf("%s v%s started", config.AppName, config.AppVersion)

	// Flags override saved settings for this run only; they are persisted
	// on launch like any other selection.
	if *f.BuildGlob != "" {
		cfg.SetBuildGlob(*f.BuildGlob)
	}
	if *f.IWAD != "" {
		cfg.SetIWAD(*f.IWAD)
	}

	fs := afero.NewOsFs()

	switch {
	case *f.ListBuilds:
		return listBuilds(fs, cfg)
	case *f.ListIWADs:
		return listIWADs(fs, cfg)
	case *f.Launch:
		return launchNow(fs, cfg, catalogPath(*f.Addons))
	}

	if err := tui.Run(cfg, catalogPath(*f.Addons), &helpers.RealCommandExecutor{}); err != nil {
		log.Error().Err(err).Msg("launcher UI failed")
		return tui.RunError(err.Error())
	}
	return cfg.Save()
}

// catalogPath prefers the flag, then the working directory, then the
// user's data dir.
func catalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if _, err := os.Stat(config.CatalogFile); err == nil {
		return config.CatalogFile
	}
	return filepath.Join(helpers.DataDir(), config.CatalogFile)
}

func buildGlob(cfg *config.Instance) string {
	if pattern := cfg.BuildGlob(); pattern != "" {
		return pattern
	}
	return helpers.DefaultBuildGlob()
}

func listBuilds(fs afero.Fs, cfg *config.Instance) error {
	found, err := builds.Scan(fs, buildGlob(cfg))
	if err != nil {
		return err
	}
	for _, build := range found {
		_, _ = fmt.Println(build)
	}
	return nil
}

func listIWADs(fs afero.Fs, cfg *config.Instance) error {
	steamDir := cfg.SteamDir()
	if steamDir == "" {
		steamDir = helpers.DefaultSteamDir()
	}
	for _, iwad := range builds.ScanSteamIWADs(fs, steamDir) {
		_, _ = fmt.Println(iwad)
	}
	if iwads, err := builds.ScanIWADs(fs, "."); err == nil {
		for _, iwad := range iwads {
			_, _ = fmt.Println(iwad)
		}
	}
	return nil
}

// launchNow runs the game with the saved selections, skipping the UI.
func launchNow(fs afero.Fs, cfg *config.Instance, catalogPath string) error {
	catalog, err := addons.LoadCatalog(fs, catalogPath)
	if err != nil {
		return err
	}

	build := cfg.SelectedBuild()
	if build == "" {
		found, err := builds.Scan(fs, buildGlob(cfg))
		if err != nil || len(found) == 0 {
			return fmt.Errorf("no GZDoom build selected or discovered")
		}
		build = found[0]
	}

	plan := launcher.NewPlan(launcher.Options{
		Build:        build,
		IWAD:         cfg.IWAD(),
		GZDoomConfig: cfg.GZDoomConfig(),
		ExtraArgs:    cfg.ExtraArgs(),
		Files:        catalog.FilesForSelection(cfg.PrimaryAddon(), cfg.SecondaryAddons()),
	})
	return plan.Launch(context.Background(), &helpers.RealCommandExecutor{})
}
