// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawerdemo shows drawers attached to the edges and corners of
// the terminal. Press a number to open or close the drawer with that
// number, click a tab, press a to move the first drawer to the next
// anchor, and press q to quit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/drawer/drawer"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration information for the drawerdemo cli.
type Config struct {

	// Drawers is a TOML file with one [[drawer]] table per drawer.
	// The four demo drawers are used if it is empty.
	Drawers string `posarg:"0" required:"-"`

	// Watch reloads the Drawers file when it changes.
	Watch bool `default:"true"`

	// FPS is the number of frames drawn per second.
	FPS int `default:"60"`

	// Slow multiplies the duration of every animation.
	Slow float64 `default:"1"`

	// Log is a file to write the log to; there is no log if it is empty.
	Log string

	// Debug logs every state transition and animation.
	Debug bool
}

// drawerFile is the layout of the [Config.Drawers] file. The tables are
// kept raw so that each one is read on top of [drawer.DefaultConfig].
type drawerFile struct {
	Drawer []map[string]any `toml:"drawer"`
}

func main() {
	opts := cli.DefaultOptions("drawerdemo", "Drawerdemo shows slide-out drawers in the terminal.")
	cli.Run(opts, &Config{}, Run)
}

// Run runs the demo until it is quit.
func Run(c *Config) error {
	if c.FPS <= 0 {
		return fmt.Errorf("drawerdemo: fps must be positive, not %d", c.FPS)
	}
	if c.Slow <= 0 {
		return fmt.Errorf("drawerdemo: slow must be positive, not %v", c.Slow)
	}
	if c.Log != "" {
		f, err := os.Create(c.Log)
		if err != nil {
			return err
		}
		defer f.Close()
		level := slog.LevelInfo
		if c.Debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}
	cfgs, err := drawerConfigs(c)
	if err != nil {
		return err
	}
	dm, err := newDemo(c, cfgs)
	if err != nil {
		return err
	}
	return dm.run()
}

// drawerConfigs returns the configurations of the drawers to show.
func drawerConfigs(c *Config) ([]drawer.Config, error) {
	if c.Drawers == "" {
		return demoDrawers(), nil
	}
	var df drawerFile
	if err := tomlx.Open(&df, c.Drawers); err != nil {
		return nil, err
	}
	if len(df.Drawer) == 0 {
		return nil, fmt.Errorf("drawerdemo: no [[drawer]] tables in %q", c.Drawers)
	}
	cfgs := make([]drawer.Config, len(df.Drawer))
	for i, tbl := range df.Drawer {
		b, err := toml.Marshal(tbl)
		if err != nil {
			return nil, err
		}
		cfgs[i], err = drawer.ReadConfig(b)
		if err != nil {
			return nil, fmt.Errorf("drawerdemo: drawer %d: %w", i+1, err)
		}
	}
	return cfgs, nil
}

// demoDrawers returns the drawers shown when no file is given,
// sized in terminal cells.
func demoDrawers() []drawer.Config {
	mk := func(anchor string, w, h float32, bringToFront bool) drawer.Config {
		c := drawer.DefaultConfig()
		c.Anchor = anchor
		c.Width, c.Height = w, h
		c.BringToFront = bringToFront
		return c
	}
	cs := []drawer.Config{
		mk("lt", 30, 10, true),
		mk("rt", 16, 6, false),
		mk("rm", 16, 6, false),
		mk("bm", 44, 7, true),
	}
	cs[1].Background = "#1f3a5f"
	cs[2].Background = "#3f2a1f"
	cs[3].Foreground = "#f0c040"
	return cs
}
