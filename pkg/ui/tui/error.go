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

package tui

import (
	"github.com/rivo/tview"
)

const errorHelp = `This program is a helper for Doom mod launcher scripts.
Users may select one primary addon, and any secondary addons.

Addon information is read from addons.yml, looked up in the working
directory unless -addons points somewhere else.

Useful flags:
  -build-glob ptn   glob pattern for finding GZDoom executables
  -addons path      addon catalog file to load
  -launch           launch immediately with the saved selections`

// RunError shows a full-screen error page with usage help. Used when the
// addon catalog cannot be loaded at startup.
func RunError(message string) error {
	app := tview.NewApplication()

	text := tview.NewTextView().
		SetText("Error!\n\n" + message + "\n\n" + errorHelp)
	text.SetBorder(true).SetTitle(" Doom 64 CE Launcher ")

	form := tview.NewForm().
		AddButton("Exit", app.Stop)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(text, 0, 1, false).
		AddItem(form, 3, 0, true)

	//nolint:wrapcheck // tview errors are already descriptive
	return app.SetRoot(flex, true).Run()
}
