// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawer provides a slide-out drawer panel attached to an edge or
// corner of a floating container. A small tab is always visible; pressing it,
// or calling [Drawer.Open] and [Drawer.Close], slides the panel into and out
// of view while rotating the triangle indicator on the tab.
package drawer

//go:generate core generate

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/drawer/anchors"
	"cogentcore.org/drawer/anim"
	"cogentcore.org/drawer/events"
	"cogentcore.org/drawer/layout"
)

// ErrInvalidParent is returned when a drawer is added to a parent
// that does not implement [Container].
var ErrInvalidParent = errors.New("drawer: parent does not support free-form positioning")

// Container is the capability a parent must have for a drawer to be
// added to it. [layout.Float] is a Container.
type Container interface {
	layout.Parent

	// ToLocal converts a point in the coordinates of the container's own
	// parent to the coordinates of its children.
	ToLocal(x, y float32) (float32, float32)

	// Edge returns the coordinate of the container named by the key,
	// in the coordinates of the container's own parent.
	Edge(k anchors.Keys) float32

	// Raise moves the child on top of the others by removing it and
	// adding it again.
	Raise(w layout.Widget) error

	// SetNeedsLayout forces a layout pass.
	SetNeedsLayout()
}

// Drawer is a panel that slides into and out of its parent from the edge
// or corner named by its [anchors.Anchors]. It must be added to a
// [Container]; it does nothing until it has a parent.
//
// A Drawer is driven by the animator it is created with and is not safe
// for concurrent use: all of its methods, and the animator callbacks, must
// run on the same event loop.
type Drawer struct {
	layout.Box

	// Anchor is the edge or corner of the parent the drawer is attached to.
	// It must be set with [Drawer.SetAnchor], which validates it and
	// restarts the drawer; assigning it directly is not supported.
	Anchor anchors.Anchors

	// BringToFront moves the drawer on top of its siblings when it opens.
	BringToFront bool

	// Duration is the duration of each of the two animations of an
	// open or close transition.
	Duration time.Duration

	// Background is the color of the panel and the tab.
	Background color.RGBA

	// Foreground is the color of the tab indicator.
	Foreground color.RGBA

	// Tab is the always visible tab.
	Tab *Tab

	animator  anim.Animator
	listeners events.Listeners
	restarter *events.Trigger
	parent    Container
	hint      anchors.PosHint

	// state machine of the current run
	state States
	err   error
	geom  anchors.Geometry
	ctx   context.Context
	stop  context.CancelFunc
	anim  anim.Handle

	openRequested  signal
	closeRequested signal

	// reorderInProgress is set while the drawer removes and re-adds
	// itself to get on top of its siblings.
	reorderInProgress bool
	destroyed         bool
}

// New returns a new drawer animated by an. If an is also an
// [events.Scheduler], restarts caused by configuration changes are
// coalesced to one per scheduler tick; otherwise each change restarts
// the drawer immediately.
func New(an anim.Animator) *Drawer {
	d := &Drawer{
		Anchor:     anchors.LeftMiddle,
		Duration:   300 * time.Millisecond,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		animator:   an,
		hint:       anchors.PosHint{},
	}
	d.Tab = newTab(d)
	s, _ := an.(events.Scheduler)
	d.restarter = events.NewTrigger(s, d.restart)
	return d
}

func (d *Drawer) String() string {
	return fmt.Sprintf("Drawer{%v %v}", d.Anchor, d.state)
}

// State returns the current state.
func (d *Drawer) State() States {
	return d.state
}

// Err returns the error that put the drawer in the [Failed] state, if any.
func (d *Drawer) Err() error {
	return d.err
}

// Parent returns the parent of the drawer, or nil.
func (d *Drawer) Parent() Container {
	return d.parent
}

// PosHint returns the current position hint of the drawer.
// It implements [layout.Hinter]; it must not be modified.
func (d *Drawer) PosHint() anchors.PosHint {
	return d.hint
}

// SetAnchor sets the anchor and restarts the drawer, which closes it
// without any lifecycle events and recomputes its geometry.
// It returns an error wrapping [anchors.ErrInvalidAnchor] for an
// illegal anchor, leaving the drawer unchanged.
func (d *Drawer) SetAnchor(a anchors.Anchors) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a == d.Anchor && d.state != Failed {
		return nil
	}
	d.Anchor = a
	d.restarter.Fire()
	return nil
}

// SetBringToFront sets [Drawer.BringToFront].
func (d *Drawer) SetBringToFront(v bool) *Drawer {
	d.BringToFront = v
	return d
}

// SetDuration sets [Drawer.Duration]. Non-positive durations are
// logged and ignored.
func (d *Drawer) SetDuration(v time.Duration) *Drawer {
	if v <= 0 {
		errors.Log(fmt.Errorf("drawer.SetDuration: duration must be positive, not %v", v))
		return d
	}
	d.Duration = v
	return d
}

// SetBackground sets [Drawer.Background].
func (d *Drawer) SetBackground(c color.RGBA) *Drawer {
	d.Background = c
	return d
}

// SetForeground sets [Drawer.Foreground].
func (d *Drawer) SetForeground(c color.RGBA) *Drawer {
	d.Foreground = c
	return d
}

// SetSize sets the size of the panel.
func (d *Drawer) SetSize(w, h float32) *Drawer {
	d.W, d.H = w, h
	if d.parent != nil {
		d.parent.SetNeedsLayout()
	}
	return d
}

// On adds a listener for the given event type.
func (d *Drawer) On(typ events.Types, fun func(e *events.Event)) *Drawer {
	d.listeners.Add(typ, fun)
	return d
}

// OnPreOpen adds a listener called when an open transition starts.
func (d *Drawer) OnPreOpen(fun func(e *events.Event)) *Drawer {
	return d.On(events.PreOpen, fun)
}

// OnOpen adds a listener called when an open transition has finished.
func (d *Drawer) OnOpen(fun func(e *events.Event)) *Drawer {
	return d.On(events.Open, fun)
}

// OnPreClose adds a listener called when a close transition starts.
func (d *Drawer) OnPreClose(fun func(e *events.Event)) *Drawer {
	return d.On(events.PreClose, fun)
}

// OnClose adds a listener called when a close transition has finished.
func (d *Drawer) OnClose(fun func(e *events.Event)) *Drawer {
	return d.On(events.Close, fun)
}

// send sends a new event of the given type to the listeners,
// and returns whether it was handled.
func (d *Drawer) send(typ events.Types) bool {
	e := events.NewEvent(typ, d)
	d.listeners.Call(e)
	return e.IsHandled()
}

// OnParent implements [layout.Widget]. It returns an error wrapping
// [ErrInvalidParent] if p is not a [Container]. Attaching restarts the
// drawer, and detaching stops it.
func (d *Drawer) OnParent(p layout.Parent) error {
	if d.reorderInProgress {
		return nil
	}
	if p == nil {
		d.parent = nil
		d.restarter.Cancel()
		d.halt()
		d.setState(Uninitialized)
		return nil
	}
	if d.destroyed {
		return fmt.Errorf("drawer.OnParent: drawer has been destroyed")
	}
	c, ok := p.(Container)
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidParent, p)
	}
	d.parent = c
	d.restarter.Fire()
	return nil
}

// Layout implements [layout.Layouter] by placing the tab.
func (d *Drawer) Layout() {
	d.Tab.place()
}

// Press implements [layout.Presser]. A press on the tab is the same as
// [Drawer.PressTab]; a press on the panel is consumed without effect.
func (d *Drawer) Press(x, y float32) bool {
	lx, ly := x-d.X, y-d.Y
	if d.Tab.Contains(lx, ly) {
		d.PressTab()
		return true
	}
	return d.Contains(x, y)
}

// Destroy stops the drawer for good and removes it from its parent.
func (d *Drawer) Destroy() {
	d.destroyed = true
	if d.parent != nil {
		d.parent.DeleteChild(d)
	}
	d.restarter.Cancel()
	d.halt()
	d.setState(Uninitialized)
}

// Property implements [anim.Target] for the position keys that
// the drawer moves along: x, right, y and top.
func (d *Drawer) Property(name string) (float32, error) {
	k, err := moveKey(name)
	if err != nil {
		return 0, err
	}
	return d.Get(k), nil
}

// SetProperty implements [anim.Target].
func (d *Drawer) SetProperty(name string, v float32) error {
	k, err := moveKey(name)
	if err != nil {
		return err
	}
	d.Set(k, v)
	return nil
}

func moveKey(name string) (anchors.Keys, error) {
	var k anchors.Keys
	if err := k.SetString(name); err != nil {
		return k, err
	}
	if k == anchors.CenterX || k == anchors.CenterY {
		return k, fmt.Errorf("drawer: property %q cannot be animated", name)
	}
	return k, nil
}

func (d *Drawer) setState(s States) {
	if s == d.state {
		return
	}
	slog.Debug("drawer: state", "anchor", d.Anchor, "from", d.state, "to", s)
	d.state = s
}

// signal is a level-triggered one-shot request: any number of sets
// before it is cleared count as one.
type signal struct {
	set bool
}

func (s *signal) Set()        { s.set = true }
func (s *signal) Clear()      { s.set = false }
func (s *signal) IsSet() bool { return s.set }
