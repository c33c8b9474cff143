// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/drawer/anchors"
	"cogentcore.org/drawer/anim"
	"cogentcore.org/drawer/events"
	"cogentcore.org/drawer/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 20 * time.Millisecond

var lifecycle = []events.Types{events.PreOpen, events.Open, events.PreClose, events.Close}

type fixture struct {
	t      *testing.T
	scene  *anim.Scene
	rec    *anim.Recorder
	float  *layout.Float
	drawer *Drawer
	events []events.Types
}

func newFixture(t *testing.T, a anchors.Anchors) *fixture {
	f := &fixture{t: t, scene: anim.NewScene()}
	f.rec = anim.NewRecorder(f.scene)
	f.float = layout.NewFloat(0, 0, 400, 300)
	f.drawer = f.newDrawer(a)
	require.NoError(t, f.float.AddChild(f.drawer))
	f.settle()
	require.Equal(t, ClosedIdle, f.drawer.State())
	return f
}

func (f *fixture) newDrawer(a anchors.Anchors) *Drawer {
	d := New(f.rec).SetSize(100, 60).SetDuration(100 * time.Millisecond)
	require.NoError(f.t, d.SetAnchor(a))
	for _, typ := range lifecycle {
		d.On(typ, func(e *events.Event) {
			if e.Source == f.drawer {
				f.events = append(f.events, e.Type)
			}
		})
	}
	return d
}

// settle steps the scene and lays out the float until nothing is left to do.
func (f *fixture) settle() {
	for i := 0; i < 1000 && (f.scene.Busy() || f.float.NeedsLayout()); i++ {
		f.scene.Step(tick)
		f.float.LayoutIfNeeded()
	}
}

// steps steps the scene n times.
func (f *fixture) steps(n int) {
	for range n {
		f.scene.Step(tick)
		f.float.LayoutIfNeeded()
	}
}

func TestRoundTrip(t *testing.T) {
	for _, a := range anchors.AnchorsValues() {
		f := newFixture(t, a)
		d := f.drawer
		g, err := anchors.NewGeometry(a)
		require.NoError(t, err)

		hint := d.PosHint().Clone()
		box := d.Box
		assert.True(t, hint.Equal(g.ClosedHint(), 1e-6), "%v: %v", a, hint)
		assert.Equal(t, g.ClosedAngle, d.Tab.Angle)

		d.Open()
		f.settle()
		assert.Equal(t, OpenIdle, d.State(), a.String())
		assert.True(t, d.PosHint().Equal(g.OpenHint(), 1e-6), "%v: %v", a, d.PosHint())
		assert.Equal(t, g.OpenAngle, d.Tab.Angle)

		// the open drawer is inside the parent, against its edge
		b := d.Box
		assert.GreaterOrEqual(t, b.X, float32(0), a.String())
		assert.LessOrEqual(t, b.Right(), float32(400), a.String())
		assert.GreaterOrEqual(t, b.Y, float32(0), a.String())
		assert.LessOrEqual(t, b.Top(), float32(300), a.String())

		d.Close()
		f.settle()
		assert.Equal(t, ClosedIdle, d.State())
		assert.True(t, d.PosHint().Equal(hint, 1e-6), "%v: %v", a, d.PosHint())
		assert.InDelta(t, box.X, d.X, 1e-3)
		assert.InDelta(t, box.Y, d.Y, 1e-3)
		assert.Equal(t, g.ClosedAngle, d.Tab.Angle)
		assert.Equal(t, lifecycle, f.events, a.String())
	}
}

func TestClosedIsOutside(t *testing.T) {
	f := newFixture(t, anchors.LeftMiddle)
	d := f.drawer
	assert.Equal(t, layout.Box{X: -100, Y: 120, W: 100, H: 60}, d.Box)

	// the tab sticks out into the parent
	assert.Equal(t, layout.Box{X: 100, Y: 18, W: 24, H: 24}, d.Tab.Box)

	f = newFixture(t, anchors.TopRight)
	assert.Equal(t, layout.Box{X: 300, Y: 300, W: 100, H: 60}, f.drawer.Box)
	assert.Equal(t, layout.Box{X: 30, Y: -24, W: 40, H: 24}, f.drawer.Tab.Box)
}

func TestRelativeParent(t *testing.T) {
	f := newFixture(t, anchors.RightBottom)
	d := f.drawer
	f.float.DeleteChild(d)
	assert.Equal(t, Uninitialized, d.State())

	fl := layout.NewFloat(50, 40, 400, 300)
	fl.Relative = true
	f.float = fl
	require.NoError(t, fl.AddChild(d))
	f.settle()
	assert.Equal(t, layout.Box{X: 400, Y: 0, W: 100, H: 60}, d.Box)

	d.Open()
	f.settle()
	assert.Equal(t, OpenIdle, d.State())
	assert.InDelta(t, 300, d.X, 1e-3)

	// a press in the coordinates of the float's parent reaches the tab
	tb := d.Tab.Box
	assert.True(t, fl.Press(50+d.X+tb.X+1, 40+d.Y+tb.Y+1))
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.InDelta(t, 400, d.X, 1e-3)
}

func TestOpenTwice(t *testing.T) {
	f := newFixture(t, anchors.BottomMiddle)
	f.drawer.Open()
	f.steps(1)
	f.drawer.Open()
	f.settle()
	f.drawer.Open()
	f.settle()
	assert.Equal(t, []events.Types{events.PreOpen, events.Open}, f.events)
	assert.Equal(t, OpenIdle, f.drawer.State())
}

func TestCloseClearsOpen(t *testing.T) {
	f := &fixture{t: t, scene: anim.NewScene()}
	f.rec = anim.NewRecorder(f.scene)
	f.float = layout.NewFloat(0, 0, 400, 300)
	f.drawer = f.newDrawer(anchors.TopMiddle)
	d := f.drawer

	// requests before there is a parent stay pending
	d.Open()
	d.Close()
	require.NoError(t, f.float.AddChild(d))
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.Empty(t, f.events)

	// requests while a restart is pending wait for the restart
	require.NoError(t, d.SetAnchor(anchors.TopLeft))
	d.Open()
	assert.Equal(t, ClosedIdle, d.State())
	d.Close()
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.Empty(t, f.events)

	// and an open request survives the restart
	require.NoError(t, d.SetAnchor(anchors.TopRight))
	d.Open()
	f.settle()
	assert.Equal(t, OpenIdle, d.State())
	assert.Equal(t, []events.Types{events.PreOpen, events.Open}, f.events)
}

func TestRequestsDuringTransitions(t *testing.T) {
	f := newFixture(t, anchors.RightTop)
	d := f.drawer

	d.Open()
	f.steps(2)
	d.Close()
	assert.Equal(t, OpeningSliding, d.State())
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.Equal(t, lifecycle, f.events)

	f.events = nil
	d.Open()
	f.settle()
	d.Close()
	f.steps(6)
	assert.Equal(t, ClosingRotating, d.State())
	d.Open()
	f.settle()
	assert.Equal(t, OpenIdle, d.State())
	assert.Equal(t, []events.Types{events.PreOpen, events.Open, events.PreClose, events.Close, events.PreOpen, events.Open}, f.events)
}

func TestRestartMidOpening(t *testing.T) {
	f := newFixture(t, anchors.LeftMiddle)
	d := f.drawer
	d.Open()
	f.steps(2)
	assert.Equal(t, OpeningSliding, d.State())

	require.NoError(t, d.SetAnchor(anchors.TopRight))
	require.NoError(t, d.SetAnchor(anchors.BottomLeft))
	f.settle()
	assert.Equal(t, []events.Types{events.PreOpen}, f.events)
	assert.Equal(t, ClosedIdle, d.State())

	g, err := anchors.NewGeometry(anchors.BottomLeft)
	require.NoError(t, err)
	assert.True(t, d.PosHint().Equal(g.ClosedHint(), 1e-6), d.PosHint().String())
	assert.Equal(t, g.ClosedAngle, d.Tab.Angle)
	assert.Equal(t, layout.Box{X: 0, Y: -60, W: 100, H: 60}, d.Box)
	assert.Equal(t, []string{"start", "cancel"}, f.rec.Kinds("x"))
}

type immediate struct {
	anim.Animator
}

func TestRestartImmediate(t *testing.T) {
	sc := anim.NewScene()
	rec := anim.NewRecorder(immediate{sc})
	fl := layout.NewFloat(0, 0, 400, 300)
	d := New(immediate{rec}).SetSize(100, 60)
	var got []events.Types
	for _, typ := range lifecycle {
		d.On(typ, func(e *events.Event) { got = append(got, e.Type) })
	}
	require.NoError(t, fl.AddChild(d))
	assert.Equal(t, ClosedIdle, d.State())

	d.Open()
	sc.Step(tick)
	sc.Step(tick)
	assert.Equal(t, OpeningSliding, d.State())
	require.NoError(t, d.SetAnchor(anchors.RightMiddle))
	assert.Equal(t, ClosedIdle, d.State())
	assert.Equal(t, []string{"start", "cancel"}, rec.Kinds(""))
	sc.Run(tick, 100)
	assert.Equal(t, []events.Types{events.PreOpen}, got)
	assert.Equal(t, anchors.PosHint{anchors.CenterY: 0.5, anchors.X: 1}, d.PosHint())
}

func TestRestartFromListener(t *testing.T) {
	f := newFixture(t, anchors.LeftTop)
	d := f.drawer
	d.OnPreOpen(func(e *events.Event) {
		errors.Log(d.SetAnchor(anchors.LeftBottom))
	})
	d.Open()
	f.settle()
	assert.Equal(t, []events.Types{events.PreOpen}, f.events)
	assert.Equal(t, ClosedIdle, d.State())
	assert.Equal(t, anchors.LeftBottom, d.Anchor)
}

func TestInvalidParent(t *testing.T) {
	sc := anim.NewScene()
	d := New(sc)
	fired := 0
	for _, typ := range lifecycle {
		d.On(typ, func(e *events.Event) { fired++ })
	}
	d.Open()

	st := layout.NewStack(0, 0, 100, 100)
	err := st.AddChild(d)
	assert.True(t, errors.Is(err, ErrInvalidParent))
	assert.Empty(t, st.Children())
	assert.Nil(t, d.Parent())
	sc.Run(tick, 100)
	assert.Equal(t, Uninitialized, d.State())
	assert.Equal(t, 0, fired)
}

func TestInvalidAnchor(t *testing.T) {
	f := newFixture(t, anchors.RightMiddle)
	err := f.drawer.SetAnchor(anchors.Anchors(99))
	assert.True(t, errors.Is(err, anchors.ErrInvalidAnchor))
	assert.Equal(t, anchors.RightMiddle, f.drawer.Anchor)
	assert.False(t, f.scene.Busy())
}

func TestSlideThenRotate(t *testing.T) {
	for _, a := range anchors.AnchorsValues() {
		f := newFixture(t, a)
		open, close := anchors.PositionKeys(a)
		f.drawer.Open()
		f.settle()
		f.drawer.Close()
		f.settle()

		var props []string
		for _, r := range f.rec.Records {
			props = append(props, r.String())
		}
		assert.Equal(t, []string{
			"start 1 " + open.String(), "finish 1 " + open.String(),
			"start 2 angle", "finish 2 angle",
			"start 3 " + close.String(), "finish 3 " + close.String(),
			"start 4 angle", "finish 4 angle",
		}, props, a.String())
	}
}

func TestTabPress(t *testing.T) {
	f := newFixture(t, anchors.LeftMiddle)
	d := f.drawer

	// the panel itself is outside the parent and the tab is at x [0, 24)
	assert.True(t, f.float.Press(10, 150))
	assert.Equal(t, OpeningSliding, d.State())

	// presses during a transition are ignored
	f.steps(1)
	d.PressTab()
	f.settle()
	assert.Equal(t, OpenIdle, d.State())
	assert.False(t, f.float.Press(300, 10))

	// a press on the panel is consumed without effect
	assert.True(t, f.float.Press(50, 150))
	assert.Equal(t, OpenIdle, d.State())

	d.PressTab()
	f.settle()
	assert.Equal(t, lifecycle, f.events)

	// handling the press event vetoes the toggle
	d.On(events.Press, func(e *events.Event) { e.SetHandled() })
	d.PressTab()
	assert.Equal(t, ClosedIdle, d.State())
}

func TestBringToFront(t *testing.T) {
	f := newFixture(t, anchors.LeftMiddle)
	d := f.drawer.SetBringToFront(true)
	other := New(f.rec).SetSize(100, 60)
	require.NoError(t, f.float.AddChild(other))
	f.settle()
	assert.Equal(t, 0, f.float.IndexOf(d))

	d.Open()
	assert.Equal(t, 1, f.float.IndexOf(d))
	assert.Equal(t, OpeningSliding, d.State())
	assert.Same(t, f.float, d.Parent())
	f.settle()
	assert.Equal(t, OpenIdle, d.State())
	assert.Equal(t, []events.Types{events.PreOpen, events.Open}, f.events)
	assert.NotContains(t, f.rec.Kinds(""), "cancel")
}

func TestDetachMidTransition(t *testing.T) {
	f := newFixture(t, anchors.BottomRight)
	d := f.drawer
	d.Open()
	f.steps(7)
	assert.Equal(t, OpeningRotating, d.State())

	assert.True(t, f.float.DeleteChild(d))
	assert.Equal(t, Uninitialized, d.State())
	d.PressTab()
	f.settle()
	assert.Equal(t, []events.Types{events.PreOpen}, f.events)

	require.NoError(t, f.float.AddChild(d))
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.Equal(t, float32(90), d.Tab.Angle)
}

func TestDestroy(t *testing.T) {
	f := newFixture(t, anchors.TopMiddle)
	d := f.drawer
	d.Open()
	f.steps(1)
	d.Destroy()
	f.settle()
	assert.Equal(t, Uninitialized, d.State())
	assert.Equal(t, -1, f.float.IndexOf(d))
	assert.Error(t, f.float.AddChild(d))
	assert.Equal(t, []events.Types{events.PreOpen}, f.events)
}

type brokenTab struct{}

func (brokenTab) Property(name string) (float32, error) {
	return 0, errors.New("tab is gone")
}

func (brokenTab) SetProperty(name string, v float32) error {
	return errors.New("tab is gone")
}

type breakingAnimator struct {
	*anim.Scene
	broken bool
}

func (ba *breakingAnimator) Animate(t anim.Target, d time.Duration, to map[string]float32, done func(err error)) anim.Handle {
	if _, ok := to[angleProperty]; ok && ba.broken {
		t = brokenTab{}
	}
	return ba.Scene.Animate(t, d, to, done)
}

func TestAnimationFailure(t *testing.T) {
	ba := &breakingAnimator{Scene: anim.NewScene(), broken: true}
	fl := layout.NewFloat(0, 0, 400, 300)
	d := New(ba).SetSize(100, 60)
	var got []events.Types
	for _, typ := range lifecycle {
		d.On(typ, func(e *events.Event) { got = append(got, e.Type) })
	}
	require.NoError(t, fl.AddChild(d))
	ba.Run(tick, 100)

	d.Open()
	ba.Run(tick, 100)
	assert.Equal(t, Failed, d.State())
	assert.ErrorContains(t, d.Err(), "tab is gone")
	assert.Equal(t, []events.Types{events.PreOpen}, got)

	d.PressTab()
	assert.Equal(t, Failed, d.State())

	ba.broken = false
	d.Restart()
	ba.Run(tick, 100)
	assert.Equal(t, ClosedIdle, d.State())
	assert.NoError(t, d.Err())
	d.Open()
	ba.Run(tick, 100)
	assert.Equal(t, OpenIdle, d.State())
}

func TestAssignedInvalidAnchor(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	f := newFixture(t, anchors.LeftMiddle)
	d := f.drawer
	d.Anchor = anchors.AnchorsN + 3
	d.Restart()
	f.settle()
	assert.Equal(t, Failed, d.State())
	assert.True(t, errors.Is(d.Err(), anchors.ErrInvalidAnchor))
	assert.Contains(t, buf.String(), "drawer: invalid anchor")
	assert.NotContains(t, buf.String(), "animation failed")

	require.NoError(t, d.SetAnchor(anchors.RightMiddle))
	f.settle()
	assert.Equal(t, ClosedIdle, d.State())
	assert.NoError(t, d.Err())
}

func TestTargetProperties(t *testing.T) {
	d := New(anim.NewScene()).SetSize(10, 20)
	require.NoError(t, d.SetProperty("right", 15))
	v, err := d.Property("x")
	require.NoError(t, err)
	assert.Equal(t, float32(5), v)
	require.NoError(t, d.SetProperty("top", 30))
	assert.Equal(t, float32(10), d.Y)

	assert.Error(t, d.SetProperty("center_x", 1))
	_, err = d.Property("angle")
	assert.Error(t, err)
	assert.Error(t, d.Tab.SetProperty("x", 1))
}

func TestTriangle(t *testing.T) {
	f := newFixture(t, anchors.LeftMiddle)
	tb := f.drawer.Tab
	pts := tb.Triangle()

	// pointing right, into the parent
	assert.InDelta(t, tb.X+tb.W/2+4.8, pts[2][0], 1e-3)
	assert.InDelta(t, tb.Y+tb.H/2, pts[2][1], 1e-3)

	f.drawer.Open()
	f.settle()
	pts = tb.Triangle()
	assert.InDelta(t, tb.X+tb.W/2-4.8, pts[2][0], 1e-3)
}
