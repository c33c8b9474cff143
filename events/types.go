// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of drawer event, and also the
// level at which one can select which events to listen to.
// Lifecycle events are sent by the drawer in program order
// relative to the animations that bound them.
type Types int32 //enums:enum -transform kebab

const (
	// Press is sent when the drawer tab is pressed. It is the
	// user gesture equivalent of an open or close request.
	Press Types = iota

	// PreOpen is sent when an open transition starts,
	// before the drawer begins to slide.
	PreOpen

	// Open is sent when an open transition has finished,
	// after both the slide and the tab rotation.
	Open

	// PreClose is sent when a close transition starts,
	// before the drawer begins to slide.
	PreClose

	// Close is sent when a close transition has finished,
	// after both the slide and the tab rotation.
	Close
)
