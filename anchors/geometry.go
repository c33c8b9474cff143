// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchors

// initialHints pins a drawer along its edge before any animation runs.
// The moving key is added by the drawer itself.
var initialHints = [AnchorsN]PosHint{
	LeftTop:      {Top: 1},
	LeftMiddle:   {CenterY: 0.5},
	LeftBottom:   {Y: 0},
	RightTop:     {Top: 1},
	RightMiddle:  {CenterY: 0.5},
	RightBottom:  {Y: 0},
	BottomLeft:   {X: 0},
	BottomMiddle: {CenterX: 0.5},
	BottomRight:  {Right: 1},
	TopLeft:      {X: 0},
	TopMiddle:    {CenterX: 0.5},
	TopRight:     {Right: 1},
}

// InitialPosHint returns a new position hint that pins a drawer with the
// given anchor flush against its corner or the middle of its edge.
func InitialPosHint(a Anchors) PosHint {
	a.mustValid()
	return initialHints[a].Clone()
}

// InitialIconAngle returns the angle in degrees of the tab indicator
// when the drawer is closed. The open angle is 180 degrees more.
func InitialIconAngle(a Anchors) float32 {
	switch a.Edge() {
	case EdgeTop:
		return 270
	case EdgeRight:
		return 180
	case EdgeBottom:
		return 90
	}
	return 0
}

// PositionKeys returns the position hint keys that pin the drawer when it
// is open and when it is closed. The closed key places the drawer just
// outside of the parent with only its tab visible, and the open key places
// it flush inside. Both keys are measured on the moving axis.
func PositionKeys(a Anchors) (open, close Keys) {
	switch a.Edge() {
	case EdgeRight:
		return Right, X
	case EdgeTop:
		return Top, Y
	case EdgeBottom:
		return Y, Top
	}
	return X, Right
}

// RestingValue returns the value that the moving key settles to when the
// drawer is at rest: 0 (the leading edge) on the forward side (left, bottom)
// and 1 (the trailing edge) otherwise.
func RestingValue(a Anchors) float32 {
	if a.Forward() {
		return 0
	}
	return 1
}

// Geometry is all of the derived geometry for one anchor.
type Geometry struct {

	// Anchor is the anchor the geometry was computed for.
	Anchor Anchors

	// Initial is the position hint before the moving key is added.
	Initial PosHint

	// OpenKey is the position key that pins the drawer when open.
	OpenKey Keys

	// CloseKey is the position key that pins the drawer when closed.
	CloseKey Keys

	// ClosedAngle is the tab indicator angle when closed.
	ClosedAngle float32

	// OpenAngle is the tab indicator angle when open.
	OpenAngle float32

	// Resting is the value the moving key settles to.
	Resting float32

	// Vertical is whether the drawer moves vertically.
	Vertical bool
}

// NewGeometry returns the geometry for the given anchor, or an error
// wrapping [ErrInvalidAnchor].
func NewGeometry(a Anchors) (Geometry, error) {
	if err := a.Validate(); err != nil {
		return Geometry{}, err
	}
	g := Geometry{
		Anchor:      a,
		Initial:     InitialPosHint(a),
		ClosedAngle: InitialIconAngle(a),
		Resting:     RestingValue(a),
		Vertical:    a.Vertical(),
	}
	g.OpenAngle = g.ClosedAngle + 180
	g.OpenKey, g.CloseKey = PositionKeys(a)
	return g, nil
}

// ClosedHint returns the position hint of the drawer when closed:
// the initial hint plus the closed key at the resting value.
func (g *Geometry) ClosedHint() PosHint {
	ph := g.Initial.Clone()
	ph[g.CloseKey] = g.Resting
	return ph
}

// OpenHint returns the position hint of the drawer when open.
func (g *Geometry) OpenHint() PosHint {
	ph := g.Initial.Clone()
	ph[g.OpenKey] = g.Resting
	return ph
}
