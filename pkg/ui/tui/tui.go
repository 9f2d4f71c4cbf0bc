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

// Package tui is the interactive launcher screen: pick a build, an IWAD
// and addons, edit launch options, hit Launch.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/Talon1024/d64ce-launcher/pkg/addons"
	"github.com/Talon1024/d64ce-launcher/pkg/builds"
	"github.com/Talon1024/d64ce-launcher/pkg/config"
	"github.com/Talon1024/d64ce-launcher/pkg/helpers"
	"github.com/Talon1024/d64ce-launcher/pkg/launcher"
)

const (
	pageMain  = "main"
	pageError = "error"
)

type launcherUI struct {
	app         *tview.Application
	pages       *tview.Pages
	cfg         *config.Instance
	fs          afero.Fs
	executor    helpers.CommandExecutor
	catalogPath string

	catalog   *addons.Catalog
	builds    []string
	iwads     []string
	secondary map[string]bool
}

// Run starts the launcher UI and blocks until the user exits or launches
// with quit-on-launch enabled.
func Run(cfg *config.Instance, catalogPath string, executor helpers.CommandExecutor) error {
	app := tview.NewApplication()
	ui := &launcherUI{
		app:         app,
		pages:       tview.NewPages(),
		cfg:         cfg,
		fs:          afero.NewOsFs(),
		executor:    executor,
		catalogPath: catalogPath,
	}

	if err := ui.reload(); err != nil {
		return err
	}

	watcher, err := addons.WatchCatalog(catalogPath, func() {
		app.QueueUpdateDraw(func() {
			if err := ui.reload(); err != nil {
				log.Error().Err(err).Msg("catalog reload failed")
			}
		})
	})
	if err != nil {
		log.Warn().Err(err).Msg("catalog watcher unavailable")
	} else {
		defer func() {
			if closeErr := watcher.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("error closing catalog watcher")
			}
		}()
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return event
	})

	//nolint:wrapcheck // tview errors are already descriptive
	return app.SetRoot(ui.pages, true).EnableMouse(true).Run()
}

// reload re-reads the catalog and rescans builds and IWADs, then rebuilds
// the form around the current config selections.
func (ui *launcherUI) reload() error {
	catalog, err := addons.LoadCatalog(ui.fs, ui.catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load addon catalog: %w", err)
	}
	ui.catalog = catalog

	pattern := ui.cfg.BuildGlob()
	if pattern == "" {
		pattern = helpers.DefaultBuildGlob()
	}
	ui.builds, err = builds.Scan(ui.fs, pattern)
	if err != nil {
		log.Warn().Err(err).Msgf("build scan failed for pattern: %s", pattern)
		ui.builds = nil
	}

	ui.iwads = nil
	if iwad := ui.cfg.IWAD(); iwad != "" {
		ui.iwads = append(ui.iwads, iwad)
	}
	if steamDir := ui.cfg.SteamDir(); steamDir != "" {
		ui.iwads = append(ui.iwads, builds.ScanSteamIWADs(ui.fs, steamDir)...)
	}

	ui.secondary = make(map[string]bool)
	selected := ui.cfg.SecondaryAddons()
	for _, name := range ui.catalog.Secondary() {
		// Everything defaults on; the saved selection narrows it.
		ui.secondary[name] = len(selected) == 0 || contains(selected, name)
	}

	ui.pages.RemovePage(pageMain)
	ui.pages.AddPage(pageMain, ui.buildForm(), true, true)
	return nil
}

func (ui *launcherUI) buildForm() tview.Primitive {
	form := tview.NewForm()

	form.AddDropDown(
		"GZDoom build:", ui.builds, indexOf(ui.builds, ui.cfg.SelectedBuild()),
		func(option string, _ int) {
			ui.cfg.SetSelectedBuild(option)
		})

	form.AddDropDown(
		"IWAD:", ui.iwads, indexOf(ui.iwads, ui.cfg.IWAD()),
		func(option string, _ int) {
			ui.cfg.SetIWAD(option)
		})

	primary := ui.catalog.Primary()
	form.AddDropDown(
		"Primary addon:", primary, indexOf(primary, ui.cfg.PrimaryAddon()),
		func(option string, _ int) {
			ui.cfg.SetPrimaryAddon(option)
		})

	for _, name := range ui.catalog.Secondary() {
		form.AddCheckbox(name, ui.secondary[name], func(checked bool) {
			ui.secondary[name] = checked
		})
	}

	form.AddInputField(
		"Extra args:", ui.cfg.ExtraArgs(), 0, nil,
		func(text string) {
			ui.cfg.SetExtraArgs(text)
		})

	form.AddCheckbox("Quit on launch", ui.cfg.QuitOnLaunch(), func(checked bool) {
		ui.cfg.SetQuitOnLaunch(checked)
	})

	form.AddButton("Launch", ui.launch)
	form.AddButton("Exit", ui.app.Stop)

	form.SetBorder(true).SetTitle(" Doom 64 CE Launcher ")
	return form
}

func (ui *launcherUI) launch() {
	var checked []string
	for _, name := range ui.catalog.Secondary() {
		if ui.secondary[name] {
			checked = append(checked, name)
		}
	}
	ui.cfg.SetSecondaryAddons(checked)

	plan := launcher.NewPlan(launcher.Options{
		Build:        ui.cfg.SelectedBuild(),
		IWAD:         ui.cfg.IWAD(),
		GZDoomConfig: ui.cfg.GZDoomConfig(),
		ExtraArgs:    ui.cfg.ExtraArgs(),
		Files:        ui.catalog.FilesForSelection(ui.cfg.PrimaryAddon(), checked),
	})

	if err := plan.Launch(context.Background(), ui.executor); err != nil {
		log.Error().Err(err).Msg("launch failed")
		ui.showError(err.Error())
		return
	}

	if err := ui.cfg.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save config after launch")
	}

	if ui.cfg.QuitOnLaunch() {
		ui.app.Stop()
	}
}

func (ui *launcherUI) showError(message string) {
	modal := tview.NewModal().
		SetText("Error!\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(_ int, _ string) {
			ui.pages.RemovePage(pageError)
		})
	ui.pages.AddPage(pageError, modal, true, true)
}

func indexOf(items []string, value string) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return 0
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
