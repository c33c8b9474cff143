// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchors

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Keys are the named coordinate fields of a [PosHint].
type Keys int32 //enums:enum -transform snake

const (
	// X is the left edge.
	X Keys = iota

	// Right is the right edge.
	Right

	// CenterX is the horizontal center.
	CenterX

	// Y is the bottom edge.
	Y

	// Top is the top edge.
	Top

	// CenterY is the vertical center.
	CenterY
)

// Horizontal returns whether the key is measured on the horizontal axis.
func (k Keys) Horizontal() bool {
	return k == X || k == Right || k == CenterX
}

// PosHint maps coordinate fields to values relative to the parent,
// where 0 is the leading edge and 1 is the trailing edge of the parent
// along the key's axis.
type PosHint map[Keys]float32

// Clone returns a copy of the hint.
func (ph PosHint) Clone() PosHint {
	if ph == nil {
		return PosHint{}
	}
	return maps.Clone(ph)
}

// Equal returns whether the two hints have the same keys, with
// values that differ by no more than tol.
func (ph PosHint) Equal(o PosHint, tol float32) bool {
	if len(ph) != len(o) {
		return false
	}
	for k, v := range ph {
		ov, ok := o[k]
		if !ok || math32.Abs(v-ov) > tol {
			return false
		}
	}
	return true
}

// String returns the hint in key order, such as "{right: 0, center_y: 0.5}".
func (ph PosHint) String() string {
	ks := slices.Sorted(maps.Keys(ph))
	var b strings.Builder
	b.WriteString("{")
	for i, k := range ks {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(float64(ph[k]), 'g', -1, 32))
	}
	b.WriteString("}")
	return b.String()
}
