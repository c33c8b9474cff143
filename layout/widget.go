// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "cogentcore.org/drawer/anchors"

// Widget is an object that can be a child of a [Parent].
type Widget interface {

	// AsBox returns the box of the widget.
	AsBox() *Box

	// OnParent is called after the widget is added to a parent, and with
	// nil after it is removed. Returning an error from an attachment
	// vetoes it: the parent removes the widget again and returns the error.
	OnParent(p Parent) error
}

// Parent is a container of widgets.
type Parent interface {

	// AddChild adds the widget at the end of the children.
	AddChild(w Widget) error

	// DeleteChild removes the widget, returning whether it was a child.
	DeleteChild(w Widget) bool

	// Children returns the children, in paint order.
	Children() []Widget
}

// Hinter is a widget that is placed by a position hint.
type Hinter interface {
	PosHint() anchors.PosHint
}

// Layouter is a widget that lays out its own parts
// after it has been placed.
type Layouter interface {
	Layout()
}

// Presser is a widget that handles presses.
type Presser interface {

	// Press handles a press at the given point in the coordinates of the
	// widget's parent, returning whether the press was handled.
	Press(x, y float32) bool
}
