// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"fmt"
	"time"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/drawer/anchors"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of one drawer, as stored in TOML files.
type Config struct {

	// Anchor is the anchor, in kebab case ("left-middle")
	// or as a two letter code ("lm").
	Anchor string `toml:"anchor" default:"left-middle"`

	// Duration is the duration of each animation, in seconds.
	Duration float64 `toml:"duration" default:"0.3"`

	// BringToFront moves the drawer on top of its siblings when it opens.
	BringToFront bool `toml:"bring_to_front"`

	// Background is the panel and tab color, as "#rrggbb".
	Background string `toml:"background" default:"#222222"`

	// Foreground is the indicator color, as "#rrggbb".
	Foreground string `toml:"foreground" default:"#aaaaaa"`

	// Width is the width of the panel.
	Width float32 `toml:"width" default:"120"`

	// Height is the height of the panel.
	Height float32 `toml:"height" default:"80"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Anchor:     anchors.LeftMiddle.String(),
		Duration:   0.3,
		Background: FormatColor(DefaultBackground),
		Foreground: FormatColor(DefaultForeground),
		Width:      120,
		Height:     80,
	}
}

// OpenConfig reads a configuration from the given TOML file, on top of
// the default configuration, and validates it.
func OpenConfig(filename string) (Config, error) {
	c := DefaultConfig()
	if err := tomlx.Open(&c, filename); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// ReadConfig reads a configuration from TOML bytes, on top of
// the default configuration, and validates it.
func ReadConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := tomlx.ReadBytes(&c, b); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Bytes returns the configuration encoded as TOML.
func (c Config) Bytes() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate returns an error if any field is invalid. An invalid anchor
// wraps [anchors.ErrInvalidAnchor].
func (c *Config) Validate() error {
	if _, err := anchors.Parse(c.Anchor); err != nil {
		return err
	}
	if c.duration() <= 0 {
		return fmt.Errorf("drawer.Config: duration must be positive, not %v", c.Duration)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("drawer.Config: size must not be negative, not %vx%v", c.Width, c.Height)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	_, err := ParseColor(c.Foreground)
	return err
}

// Apply validates the configuration and applies it to the drawer.
// Changing the anchor restarts the drawer.
func (c *Config) Apply(d *Drawer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	a, _ := anchors.Parse(c.Anchor)
	bg, _ := ParseColor(c.Background)
	fg, _ := ParseColor(c.Foreground)
	d.SetDuration(c.duration()).
		SetBringToFront(c.BringToFront).
		SetBackground(bg).
		SetForeground(fg).
		SetSize(c.Width, c.Height)
	return d.SetAnchor(a)
}

// duration returns [Config.Duration] as a [time.Duration].
func (c *Config) duration() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

// Config returns the configuration of the drawer.
func (d *Drawer) Config() Config {
	return Config{
		Anchor:       d.Anchor.String(),
		Duration:     d.Duration.Seconds(),
		BringToFront: d.BringToFront,
		Background:   FormatColor(d.Background),
		Foreground:   FormatColor(d.Foreground),
		Width:        d.W,
		Height:       d.H,
	}
}
