// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/drawer/anchors"
)

// Float is a container that positions its children freely.
// Children that implement [Hinter] are placed by their position hints
// on every [Float.Layout]; the coordinates of any key missing from a
// hint are left as they are, so children can be moved directly.
type Float struct {
	Box

	// Relative makes children use coordinates local to the origin of
	// the float, instead of the coordinates of the float's own parent.
	Relative bool

	children    []Widget
	needsLayout bool
}

// NewFloat returns a new float container occupying the given rectangle.
func NewFloat(x, y, w, h float32) *Float {
	return &Float{Box: Box{X: x, Y: y, W: w, H: h}, needsLayout: true}
}

// Children implements [Parent].
func (fl *Float) Children() []Widget {
	return fl.children
}

// IndexOf returns the index of the child, or -1.
func (fl *Float) IndexOf(w Widget) int {
	return slices.Index(fl.children, w)
}

// AddChild implements [Parent]. The child ends up on top of the others.
func (fl *Float) AddChild(w Widget) error {
	if fl.IndexOf(w) >= 0 {
		return fmt.Errorf("layout.Float: widget %v is already a child", w)
	}
	fl.children = append(fl.children, w)
	if err := w.OnParent(fl); err != nil {
		fl.children = slices.DeleteFunc(fl.children, func(c Widget) bool { return c == w })
		return err
	}
	fl.needsLayout = true
	return nil
}

// DeleteChild implements [Parent].
func (fl *Float) DeleteChild(w Widget) bool {
	i := fl.IndexOf(w)
	if i < 0 {
		return false
	}
	fl.children = slices.Delete(fl.children, i, i+1)
	errors.Log(w.OnParent(nil))
	fl.needsLayout = true
	return true
}

// Raise moves the child on top of the others in paint and press order,
// by removing it and adding it again.
func (fl *Float) Raise(w Widget) error {
	if !fl.DeleteChild(w) {
		return fmt.Errorf("layout.Float: widget %v is not a child", w)
	}
	return fl.AddChild(w)
}

// ToLocal converts a point in the coordinates of the float's own parent
// to the coordinates of its children.
func (fl *Float) ToLocal(x, y float32) (float32, float32) {
	if fl.Relative {
		return x - fl.X, y - fl.Y
	}
	return x, y
}

// Edge returns the coordinate of the float named by the key,
// in the coordinates of the float's own parent.
func (fl *Float) Edge(k anchors.Keys) float32 {
	return fl.Box.Get(k)
}

// frame returns the rectangle that position hints are relative to,
// in the coordinates of the children.
func (fl *Float) frame() Box {
	if fl.Relative {
		return Box{W: fl.W, H: fl.H}
	}
	return fl.Box
}

// SetNeedsLayout marks the float as needing a layout pass, even if
// nothing it can observe has changed.
func (fl *Float) SetNeedsLayout() {
	fl.needsLayout = true
}

// NeedsLayout returns whether a layout pass is needed.
func (fl *Float) NeedsLayout() bool {
	return fl.needsLayout
}

// Resize sets the size of the float and marks it as needing layout.
func (fl *Float) Resize(w, h float32) {
	fl.W, fl.H = w, h
	fl.needsLayout = true
}

// Layout places every child by its position hint
// and then lets it lay out its own parts.
func (fl *Float) Layout() {
	fr := fl.frame()
	for _, c := range fl.children {
		if h, ok := c.(Hinter); ok {
			c.AsBox().Place(h.PosHint(), fr)
		}
		if l, ok := c.(Layouter); ok {
			l.Layout()
		}
	}
	fl.needsLayout = false
}

// LayoutIfNeeded calls [Float.Layout] if it is needed,
// and returns whether it did.
func (fl *Float) LayoutIfNeeded() bool {
	if !fl.needsLayout {
		return false
	}
	fl.Layout()
	return true
}

// Press sends a press at the given point, in the coordinates of the float's
// own parent, to the children from the top down, until one handles it.
func (fl *Float) Press(x, y float32) bool {
	lx, ly := fl.ToLocal(x, y)
	for i := len(fl.children) - 1; i >= 0; i-- {
		if p, ok := fl.children[i].(Presser); ok && p.Press(lx, ly) {
			slog.Debug("layout.Float: press handled", "child", i, "x", lx, "y", ly)
			return true
		}
	}
	return false
}
