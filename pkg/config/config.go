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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const SchemaVersion = 1

// Values is everything persisted to the launcher's TOML config file.
type Values struct {
	ConfigSchema    int      `toml:"config_schema"`
	BuildGlob       string   `toml:"build_glob,omitempty"`
	SelectedBuild   string   `toml:"selected_build,omitempty"`
	IWAD            string   `toml:"iwad,omitempty"`
	GZDoomConfig    string   `toml:"gzdoom_config,omitempty"`
	ExtraArgs       string   `toml:"extra_args,omitempty"`
	PrimaryAddon    string   `toml:"primary_addon,omitempty"`
	SecondaryAddons []string `toml:"secondary_addons,omitempty,multiline"`
	SteamDir        string   `toml:"steam_dir,omitempty"`
	QuitOnLaunch    bool     `toml:"quit_on_launch"`
	DebugLogging    bool     `toml:"debug_logging"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	QuitOnLaunch: true,
}

// Instance is a live config backed by a file on disk. All access goes
// through the accessor methods, which take the instance lock.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// NewConfig loads the config file inside configDir, creating it with
// defaults on first run. The CfgEnv environment variable overrides the
// file location entirely.
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
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

	// Start from defaults so fields missing from the file keep their
	// default values.
	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema, SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals
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

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

func (c *Instance) BuildGlob() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.BuildGlob
}

func (c *Instance) SetBuildGlob(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.BuildGlob = pattern
}

func (c *Instance) SelectedBuild() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.SelectedBuild
}

func (c *Instance) SetSelectedBuild(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.SelectedBuild = path
}

func (c *Instance) IWAD() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.IWAD
}

func (c *Instance) SetIWAD(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.IWAD = path
}

func (c *Instance) GZDoomConfig() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.GZDoomConfig
}

func (c *Instance) ExtraArgs() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ExtraArgs
}

func (c *Instance) SetExtraArgs(args string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.ExtraArgs = args
}

func (c *Instance) PrimaryAddon() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.PrimaryAddon
}

func (c *Instance) SetPrimaryAddon(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.PrimaryAddon = name
}

func (c *Instance) SecondaryAddons() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	addons := make([]string, len(c.vals.SecondaryAddons))
	copy(addons, c.vals.SecondaryAddons)
	return addons
}

func (c *Instance) SetSecondaryAddons(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.SecondaryAddons = make([]string, len(names))
	copy(c.vals.SecondaryAddons, names)
}

func (c *Instance) SteamDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.SteamDir
}

func (c *Instance) QuitOnLaunch() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.QuitOnLaunch
}

func (c *Instance) SetQuitOnLaunch(quit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.QuitOnLaunch = quit
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}
