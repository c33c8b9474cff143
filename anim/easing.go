// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "github.com/chewxy/math32"

// Easing maps linear progress in [0, 1] to eased progress,
// with Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float32) float32

// Linear is constant speed.
func Linear(t float32) float32 { return t }

// InOutQuad accelerates until halfway and then decelerates.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math32.Pow(-2*t+2, 2)/2
}

// OutCubic decelerates to a stop.
func OutCubic(t float32) float32 {
	return 1 - math32.Pow(1-t, 3)
}
