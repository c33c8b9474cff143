// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

// States are the states of the drawer state machine.
type States int32 //enums:enum -transform kebab

const (
	// Uninitialized is the state before the drawer has a parent,
	// and after it has been detached or destroyed.
	Uninitialized States = iota

	// ClosedIdle is the state of a closed drawer waiting for an
	// open request or a tab press.
	ClosedIdle

	// OpeningSliding is the first phase of opening, sliding the drawer in.
	OpeningSliding

	// OpeningRotating is the second phase of opening, rotating the tab indicator.
	OpeningRotating

	// OpenIdle is the state of an open drawer waiting for a
	// close request or a tab press.
	OpenIdle

	// ClosingSliding is the first phase of closing, sliding the drawer out.
	ClosingSliding

	// ClosingRotating is the second phase of closing, rotating the tab indicator.
	ClosingRotating

	// Failed is the state after the animator reported an error.
	// The drawer stays here until it is restarted.
	Failed
)

// Opening returns whether the state is a phase of opening.
func (s States) Opening() bool {
	return s == OpeningSliding || s == OpeningRotating
}

// Closing returns whether the state is a phase of closing.
func (s States) Closing() bool {
	return s == ClosingSliding || s == ClosingRotating
}

// Idle returns whether the state is waiting for a trigger.
func (s States) Idle() bool {
	return s == ClosedIdle || s == OpenIdle
}
