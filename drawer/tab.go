// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"fmt"

	"github.com/chewxy/math32"

	"cogentcore.org/drawer/anchors"
	"cogentcore.org/drawer/layout"
)

// angleProperty is the animated property of a [Tab].
const angleProperty = "angle"

// TabSize is the default thickness of a [Tab].
const TabSize float32 = 24

// tabHints place the tab just outside of the panel, on the side facing
// the inside of the parent, centered along the edge.
var tabHints = [anchors.EdgesN]anchors.PosHint{
	anchors.EdgeLeft:   {anchors.X: 1, anchors.CenterY: 0.5},
	anchors.EdgeRight:  {anchors.Right: 0, anchors.CenterY: 0.5},
	anchors.EdgeBottom: {anchors.Y: 1, anchors.CenterX: 0.5},
	anchors.EdgeTop:    {anchors.Top: 0, anchors.CenterX: 0.5},
}

// Tab is the always visible part of a [Drawer] that opens and closes it
// when pressed. It shows a triangle indicator rotated to [Tab.Angle].
// Its box is in the coordinates of the drawer.
type Tab struct {
	layout.Box

	// Angle is the rotation of the indicator in degrees; at 0 it
	// points to the right.
	Angle float32

	// Size is the thickness of the tab across the edge.
	Size float32

	// Length is the length of the tab along the edge,
	// as a proportion of the length of the drawer.
	Length float32

	drawer *Drawer
	edge   anchors.Edges
}

func newTab(d *Drawer) *Tab {
	return &Tab{Size: TabSize, Length: 0.4, drawer: d}
}

// update sets up the tab for the given geometry.
func (tb *Tab) update(g anchors.Geometry) {
	tb.edge = g.Anchor.Edge()
	tb.Angle = g.ClosedAngle
}

// place sizes the tab and places it relative to the drawer.
func (tb *Tab) place() {
	d := tb.drawer
	if tb.edge == anchors.EdgeTop || tb.edge == anchors.EdgeBottom {
		tb.W = math32.Max(tb.Size, tb.Length*d.W)
		tb.H = tb.Size
	} else {
		tb.W = tb.Size
		tb.H = math32.Max(tb.Size, tb.Length*d.H)
	}
	tb.Place(tabHints[tb.edge], layout.Box{W: d.W, H: d.H})
}

// Triangle returns the three points of the indicator, in the coordinates
// of the drawer, pointing in the direction of [Tab.Angle].
func (tb *Tab) Triangle() [3][2]float32 {
	s := math32.Min(tb.W, tb.H) * 0.2
	cx, cy := tb.X+tb.W/2, tb.Y+tb.H/2
	sin, cos := math32.Sincos(tb.Angle * math32.Pi / 180)
	pts := [3][2]float32{{-s, -s}, {-s, s}, {s, 0}}
	for i, p := range pts {
		pts[i] = [2]float32{cx + p[0]*cos - p[1]*sin, cy + p[0]*sin + p[1]*cos}
	}
	return pts
}

// Property implements [anim.Target] for the angle property.
func (tb *Tab) Property(name string) (float32, error) {
	if name != angleProperty {
		return 0, fmt.Errorf("drawer.Tab: no property %q", name)
	}
	return tb.Angle, nil
}

// SetProperty implements [anim.Target] for the angle property.
func (tb *Tab) SetProperty(name string, v float32) error {
	if name != angleProperty {
		return fmt.Errorf("drawer.Tab: no property %q", name)
	}
	tb.Angle = v
	return nil
}
