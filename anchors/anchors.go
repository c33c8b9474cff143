// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchors provides the anchor codes that pin a drawer to an
// edge or corner of its parent, and the pure geometry derived from them:
// the initial position hint, the indicator angles, the pair of position
// keys exchanged between the open and closed states, and the resting value.
package anchors

//go:generate core generate

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidAnchor is returned (or panicked with, for the pure lookups)
// when an [Anchors] value is not one of the twelve legal codes.
var ErrInvalidAnchor = errors.New("anchors: invalid anchor")

// Anchors names the edge or corner of the parent that a drawer is pinned to.
// The first word is the primary edge, which determines the moving axis, and
// the second word is the position along that edge.
type Anchors int32 //enums:enum -transform kebab

const (
	// LeftTop pins the drawer to the left edge, at the top.
	LeftTop Anchors = iota

	// LeftMiddle pins the drawer to the left edge, vertically centered.
	LeftMiddle

	// LeftBottom pins the drawer to the left edge, at the bottom.
	LeftBottom

	// RightTop pins the drawer to the right edge, at the top.
	RightTop

	// RightMiddle pins the drawer to the right edge, vertically centered.
	RightMiddle

	// RightBottom pins the drawer to the right edge, at the bottom.
	RightBottom

	// BottomLeft pins the drawer to the bottom edge, at the left.
	BottomLeft

	// BottomMiddle pins the drawer to the bottom edge, horizontally centered.
	BottomMiddle

	// BottomRight pins the drawer to the bottom edge, at the right.
	BottomRight

	// TopLeft pins the drawer to the top edge, at the left.
	TopLeft

	// TopMiddle pins the drawer to the top edge, horizontally centered.
	TopMiddle

	// TopRight pins the drawer to the top edge, at the right.
	TopRight
)

// Edges is the primary edge of an anchor.
type Edges int32 //enums:enum -trim-prefix Edge -transform lower

const (
	// EdgeLeft is the left edge of the parent; the drawer moves horizontally.
	EdgeLeft Edges = iota

	// EdgeRight is the right edge of the parent; the drawer moves horizontally.
	EdgeRight

	// EdgeTop is the top edge of the parent; the drawer moves vertically.
	EdgeTop

	// EdgeBottom is the bottom edge of the parent; the drawer moves vertically.
	EdgeBottom
)

// codes are the two letter short forms, indexed by anchor.
var codes = [AnchorsN]string{"lt", "lm", "lb", "rt", "rm", "rb", "bl", "bm", "br", "tl", "tm", "tr"}

// Validate returns an error wrapping [ErrInvalidAnchor] if the anchor
// is not one of the twelve legal codes.
func (a Anchors) Validate() error {
	if a < 0 || a >= AnchorsN {
		return fmt.Errorf("%w: %d", ErrInvalidAnchor, int32(a))
	}
	return nil
}

// mustValid panics if the anchor is not legal.
func (a Anchors) mustValid() {
	if err := a.Validate(); err != nil {
		panic(err)
	}
}

// Code returns the two letter short form of the anchor, such as "lm"
// for [LeftMiddle].
func (a Anchors) Code() string {
	a.mustValid()
	return codes[a]
}

// Edge returns the primary edge of the anchor.
func (a Anchors) Edge() Edges {
	a.mustValid()
	switch a {
	case LeftTop, LeftMiddle, LeftBottom:
		return EdgeLeft
	case RightTop, RightMiddle, RightBottom:
		return EdgeRight
	case TopLeft, TopMiddle, TopRight:
		return EdgeTop
	}
	return EdgeBottom
}

// Vertical returns whether a drawer with this anchor moves vertically.
func (a Anchors) Vertical() bool {
	e := a.Edge()
	return e == EdgeTop || e == EdgeBottom
}

// Forward returns whether the anchor is on the forward side
// (left or bottom), where the resting value is the leading edge.
func (a Anchors) Forward() bool {
	e := a.Edge()
	return e == EdgeLeft || e == EdgeBottom
}

// Parse returns the anchor for the given string, which can be either
// the kebab case name ("left-middle") or the two letter code ("lm").
func Parse(s string) (Anchors, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for i, c := range codes {
		if c == s {
			return Anchors(i), nil
		}
	}
	var a Anchors
	if err := a.SetString(s); err != nil {
		return a, fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}
	return a, nil
}
