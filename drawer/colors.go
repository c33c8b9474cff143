// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// DefaultBackground is the default [Drawer.Background], #222222.
	DefaultBackground = color.RGBA{0x22, 0x22, 0x22, 0xff}

	// DefaultForeground is the default [Drawer.Foreground], #AAAAAA.
	DefaultForeground = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
)

// ParseColor parses an opaque color in "#rrggbb" or "#rgb" form.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("drawer.ParseColor: %w", err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// FormatColor returns the color in "#rrggbb" form, ignoring alpha.
func FormatColor(c color.RGBA) string {
	c.A = 0xff
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
