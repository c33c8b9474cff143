// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/drawer/anchors"
	"cogentcore.org/drawer/events"
)

// Open requests the drawer to open. It clears any pending close request.
// It does nothing if the drawer is already opening or open. A request made
// before the drawer has a parent, or while it is closing, is kept until the
// drawer is closed and idle.
func (d *Drawer) Open() {
	d.closeRequested.Clear()
	if d.state.Opening() || d.state == OpenIdle {
		return
	}
	d.openRequested.Set()
	d.poll()
}

// Close requests the drawer to close. It clears any pending open request.
// It does nothing if the drawer is already closing or closed. A request made
// while the drawer is opening is kept until the drawer is open and idle.
func (d *Drawer) Close() {
	d.openRequested.Clear()
	if !d.state.Opening() && d.state != OpenIdle {
		return
	}
	d.closeRequested.Set()
	d.poll()
}

// PressTab is a press on the tab: it opens a closed idle drawer and
// closes an open idle drawer. It is ignored during a transition, and
// when a [events.Press] listener handles the event.
func (d *Drawer) PressTab() {
	if d.send(events.Press) {
		return
	}
	if d.restarter.Pending() {
		return
	}
	switch d.state {
	case ClosedIdle:
		d.open()
	case OpenIdle:
		d.close()
	}
}

// Restart stops the current run, abandoning any transition without
// further lifecycle events, and starts again from the closed
// configuration of the current anchor. It is the way out of [Failed].
func (d *Drawer) Restart() {
	d.restarter.Fire()
}

// restart is the function of the restart trigger.
func (d *Drawer) restart() {
	if d.destroyed {
		return
	}
	d.halt()
	if d.parent == nil {
		d.setState(Uninitialized)
		return
	}
	d.start()
}

// halt cancels the current run, if any.
func (d *Drawer) halt() {
	if d.stop != nil {
		slog.Debug("drawer: run cancelled", "anchor", d.geom.Anchor, "state", d.state)
		d.stop()
		d.stop = nil
	}
	if d.anim != nil {
		d.anim.Cancel()
		d.anim = nil
	}
}

// start starts a new run: it computes the geometry for the current anchor
// from scratch and puts the drawer in its closed configuration.
func (d *Drawer) start() {
	g, err := anchors.NewGeometry(d.Anchor)
	if err != nil {
		d.fail(err)
		return
	}
	d.ctx, d.stop = context.WithCancel(context.Background())
	d.geom = g
	d.err = nil
	d.Tab.update(g)
	d.hint = g.ClosedHint()
	// a new angle or a swapped key may not change anything the parent
	// looks at, so force the layout
	d.parent.SetNeedsLayout()
	d.closeRequested.Clear()
	d.setState(ClosedIdle)
	d.poll()
}

// poll starts the transition for a pending request, if the drawer is idle.
func (d *Drawer) poll() {
	if d.restarter.Pending() {
		return
	}
	switch {
	case d.state == ClosedIdle && d.openRequested.IsSet():
		d.open()
	case d.state == OpenIdle && d.closeRequested.IsSet():
		d.close()
	}
}

// open runs the open transition: slide, then rotate.
func (d *Drawer) open() {
	ctx := d.ctx
	d.openRequested.Clear()
	d.setState(OpeningSliding)
	d.send(events.PreOpen)
	if ctx.Err() != nil {
		return
	}
	if d.BringToFront {
		d.raise()
	}
	delete(d.hint, d.geom.CloseKey)
	d.slide(ctx, d.geom.OpenKey, func() {
		d.setState(OpeningRotating)
		d.rotate(ctx, d.geom.OpenAngle, func() {
			d.hint[d.geom.OpenKey] = d.geom.Resting
			d.parent.SetNeedsLayout()
			d.setState(OpenIdle)
			d.send(events.Open)
			if ctx.Err() == nil {
				d.poll()
			}
		})
	})
}

// close runs the close transition: slide, then rotate.
func (d *Drawer) close() {
	ctx := d.ctx
	d.closeRequested.Clear()
	d.setState(ClosingSliding)
	d.send(events.PreClose)
	if ctx.Err() != nil {
		return
	}
	delete(d.hint, d.geom.OpenKey)
	d.slide(ctx, d.geom.CloseKey, func() {
		d.setState(ClosingRotating)
		d.rotate(ctx, d.geom.ClosedAngle, func() {
			d.hint[d.geom.CloseKey] = d.geom.Resting
			d.parent.SetNeedsLayout()
			d.setState(ClosedIdle)
			d.send(events.Close)
			if ctx.Err() == nil {
				d.poll()
			}
		})
	})
}

// raise moves the drawer on top of its siblings without restarting it.
func (d *Drawer) raise() {
	d.reorderInProgress = true
	err := d.parent.Raise(d)
	d.reorderInProgress = false
	errors.Log(err)
}

// restingPosition returns the position that the moving key animates to,
// which is the open side edge of the parent in the coordinates of the drawer.
func (d *Drawer) restingPosition() float32 {
	v := d.parent.Edge(d.geom.OpenKey)
	x, y := d.parent.ToLocal(v, v)
	if d.geom.Vertical {
		return y
	}
	return x
}

// slide animates the given key of the drawer to the resting position,
// and calls next if the run is still current when it is done.
func (d *Drawer) slide(ctx context.Context, key anchors.Keys, next func()) {
	to := map[string]float32{key.String(): d.restingPosition()}
	d.anim = d.animator.Animate(d, d.Duration, to, d.then(ctx, next))
}

// rotate animates the tab indicator to the given angle,
// and calls next if the run is still current when it is done.
func (d *Drawer) rotate(ctx context.Context, angle float32, next func()) {
	to := map[string]float32{angleProperty: angle}
	d.anim = d.animator.Animate(d.Tab, d.Duration, to, d.then(ctx, next))
}

// then returns an animation completion function that checks
// the run, handles failure, and otherwise calls next.
func (d *Drawer) then(ctx context.Context, next func()) func(err error) {
	return func(err error) {
		if ctx.Err() != nil {
			return
		}
		d.anim = nil
		if err != nil {
			d.fail(err)
			return
		}
		next()
	}
}

// fail ends the current run because of err.
func (d *Drawer) fail(err error) {
	msg := "drawer: animation failed"
	if errors.Is(err, anchors.ErrInvalidAnchor) {
		msg = "drawer: invalid anchor"
	}
	slog.Error(msg, "anchor", d.Anchor, "state", d.state, "err", err)
	d.halt()
	d.err = err
	d.setState(Failed)
}
