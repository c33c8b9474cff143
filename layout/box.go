// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the host containers that drawers are placed in:
// the [Float] container, which positions its children freely using
// position hints, and the [Stack] container, which does not.
// Coordinates are y-up: Y is the bottom edge of a box and Top is Y+H.
package layout

import "cogentcore.org/drawer/anchors"

// Box is the rectangle a widget occupies, in the coordinates
// of its parent.
type Box struct {
	X, Y, W, H float32
}

// AsBox returns the box itself, so that embedding a Box
// satisfies part of [Widget].
func (b *Box) AsBox() *Box { return b }

// Right returns the right edge.
func (b *Box) Right() float32 { return b.X + b.W }

// Top returns the top edge.
func (b *Box) Top() float32 { return b.Y + b.H }

// Get returns the coordinate of the box named by the key.
func (b *Box) Get(k anchors.Keys) float32 {
	switch k {
	case anchors.X:
		return b.X
	case anchors.Right:
		return b.X + b.W
	case anchors.CenterX:
		return b.X + b.W/2
	case anchors.Y:
		return b.Y
	case anchors.Top:
		return b.Y + b.H
	case anchors.CenterY:
		return b.Y + b.H/2
	}
	return 0
}

// Set moves the box so that the coordinate named by the key is v,
// keeping its size.
func (b *Box) Set(k anchors.Keys, v float32) {
	switch k {
	case anchors.X:
		b.X = v
	case anchors.Right:
		b.X = v - b.W
	case anchors.CenterX:
		b.X = v - b.W/2
	case anchors.Y:
		b.Y = v
	case anchors.Top:
		b.Y = v - b.H
	case anchors.CenterY:
		b.Y = v - b.H/2
	}
}

// Place moves the box according to the position hint, where each
// value is relative to the given parent rectangle.
func (b *Box) Place(ph anchors.PosHint, parent Box) {
	for k, v := range ph {
		if k.Horizontal() {
			b.Set(k, parent.X+v*parent.W)
		} else {
			b.Set(k, parent.Y+v*parent.H)
		}
	}
}

// Contains returns whether the point is inside the box.
func (b *Box) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}
