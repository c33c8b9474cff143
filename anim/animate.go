// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the animation capability used by drawers:
// animating named float properties of a [Target] to target values
// over a duration, driven by the ticks of a [Scene].
package anim

import (
	"time"

	"github.com/chewxy/math32"
)

// Target is an object with named float properties that can be animated.
type Target interface {

	// Property returns the current value of the named property.
	Property(name string) (float32, error)

	// SetProperty sets the value of the named property.
	SetProperty(name string, v float32) error
}

// Handle is a running animation that can be abandoned.
type Handle interface {

	// Cancel abandons the animation. The properties keep the value
	// they reached, and the completion function is never called.
	Cancel()
}

// Animator starts animations.
type Animator interface {

	// Animate starts animating the given properties of t to the given
	// values over d, and returns a handle to it. done is called with nil
	// once every property has reached its target value, or with the error
	// if reading or setting a property fails.
	Animate(t Target, d time.Duration, to map[string]float32, done func(err error)) Handle
}

// Animation represents the data for one animation.
// You can call [Scene.Animate] to create an animation.
// Animations are stored on the [Scene].
type Animation struct {

	// Target is the object whose properties are animated.
	Target Target

	// Duration is the total length of the animation.
	Duration time.Duration

	// Elapsed is the amount of time the animation has run so far.
	Elapsed time.Duration

	// Delta is the amount of time that has passed since the
	// last animation frame/step.
	Delta time.Duration

	// From are the property values when the animation was created.
	From map[string]float32

	// To are the target property values.
	To map[string]float32

	// Easing maps linear progress to eased progress.
	Easing Easing

	// Done is set to true once the animation has finished or been
	// cancelled; the [Animation] object will be removed from the [Scene]
	// at the end of the step.
	Done bool

	err  error
	done func(err error)
}

// Cancel implements [Handle].
func (a *Animation) Cancel() {
	a.Done = true
	a.done = nil
}

// Progress returns the linear progress of the animation in [0, 1].
func (a *Animation) Progress() float32 {
	if a.Duration <= 0 {
		return 1
	}
	return math32.Min(1, float32(a.Elapsed)/float32(a.Duration))
}

// step advances the animation by delta.
func (a *Animation) step(delta time.Duration) {
	if a.Done {
		return
	}
	if a.err != nil {
		a.finish(a.err)
		return
	}
	a.Delta = delta
	a.Elapsed += delta
	p := a.Progress()
	if p >= 1 {
		for k, v := range a.To {
			if err := a.Target.SetProperty(k, v); err != nil {
				a.finish(err)
				return
			}
		}
		a.finish(nil)
		return
	}
	e := a.Easing(p)
	for k, to := range a.To {
		from := a.From[k]
		if err := a.Target.SetProperty(k, from+(to-from)*e); err != nil {
			a.finish(err)
			return
		}
	}
}

func (a *Animation) finish(err error) {
	a.Done = true
	if f := a.done; f != nil {
		a.done = nil
		f(err)
	}
}
