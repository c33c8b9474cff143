// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"maps"
	"slices"
	"time"
)

// Scene runs animations and scheduled functions on every call to
// [Scene.Step], which the host makes at each paint tick. A Scene is not
// safe for concurrent use; it is meant to be owned by a single event loop.
// It implements [Animator] and [cogentcore.org/drawer/events.Scheduler].
type Scene struct {

	// Animations are the currently running animations.
	Animations []*Animation

	// Easing is the easing used for new animations; it is [Linear] if nil.
	Easing Easing

	scheduled []func()
}

// NewScene returns a new scene with linear easing.
func NewScene() *Scene {
	return &Scene{Easing: Linear}
}

// Schedule arranges for f to be called at the start of the next step.
func (sc *Scene) Schedule(f func()) {
	sc.scheduled = append(sc.scheduled, f)
}

// Animate adds a new [Animation] to the scene. The starting values are read
// from t now; interpolation begins at the next step. A non-positive duration
// completes at the next step.
func (sc *Scene) Animate(t Target, d time.Duration, to map[string]float32, done func(err error)) Handle {
	a := &Animation{
		Target:   t,
		Duration: d,
		From:     make(map[string]float32, len(to)),
		To:       maps.Clone(to),
		Easing:   sc.Easing,
		done:     done,
	}
	if a.Easing == nil {
		a.Easing = Linear
	}
	for _, k := range slices.Sorted(maps.Keys(to)) {
		v, err := t.Property(k)
		if err != nil {
			a.err = err
			break
		}
		a.From[k] = v
	}
	sc.Animations = append(sc.Animations, a)
	return a
}

// Step runs the functions scheduled before this step, in order, and then
// advances every running animation by delta. Animations and functions
// added during the step run at the next step.
func (sc *Scene) Step(delta time.Duration) {
	fs := sc.scheduled
	sc.scheduled = nil
	for _, f := range fs {
		f()
	}
	running := slices.Clone(sc.Animations)
	for _, a := range running {
		a.step(delta)
	}
	sc.Animations = slices.DeleteFunc(sc.Animations, func(a *Animation) bool {
		return a.Done
	})
}

// Busy returns whether the scene has running animations
// or scheduled functions.
func (sc *Scene) Busy() bool {
	return len(sc.scheduled) > 0 || slices.ContainsFunc(sc.Animations, func(a *Animation) bool {
		return !a.Done
	})
}

// Run steps the scene by delta until it is no longer busy,
// or until maxSteps steps have been taken. It returns the number of steps.
func (sc *Scene) Run(delta time.Duration, maxSteps int) int {
	n := 0
	for n < maxSteps && sc.Busy() {
		sc.Step(delta)
		n++
	}
	return n
}
