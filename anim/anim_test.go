// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type props map[string]float32

func (p props) Property(name string) (float32, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("no property %q", name)
	}
	return v, nil
}

func (p props) SetProperty(name string, v float32) error {
	if _, ok := p[name]; !ok {
		return fmt.Errorf("no property %q", name)
	}
	p[name] = v
	return nil
}

func TestSceneAnimate(t *testing.T) {
	sc := NewScene()
	p := props{"x": 0, "angle": 90}
	var done []error
	sc.Animate(p, 100*time.Millisecond, map[string]float32{"x": 10, "angle": 270}, func(err error) {
		done = append(done, err)
	})
	assert.True(t, sc.Busy())

	sc.Step(25 * time.Millisecond)
	assert.InDelta(t, 2.5, p["x"], 1e-4)
	assert.InDelta(t, 135, p["angle"], 1e-3)
	assert.Empty(t, done)

	sc.Step(50 * time.Millisecond)
	assert.InDelta(t, 7.5, p["x"], 1e-4)

	sc.Step(50 * time.Millisecond)
	assert.Equal(t, float32(10), p["x"])
	assert.Equal(t, float32(270), p["angle"])
	require.Len(t, done, 1)
	assert.NoError(t, done[0])
	assert.False(t, sc.Busy())
	assert.Empty(t, sc.Animations)
}

func TestSceneCancel(t *testing.T) {
	sc := NewScene()
	p := props{"x": 0}
	called := false
	h := sc.Animate(p, 100*time.Millisecond, map[string]float32{"x": 10}, func(err error) { called = true })
	sc.Step(50 * time.Millisecond)
	h.Cancel()
	sc.Step(50 * time.Millisecond)
	assert.InDelta(t, 5, p["x"], 1e-4)
	assert.False(t, called)
	assert.False(t, sc.Busy())
}

func TestSceneZeroDuration(t *testing.T) {
	sc := NewScene()
	p := props{"x": 3}
	n := 0
	sc.Animate(p, 0, map[string]float32{"x": -1}, func(err error) { n++ })
	assert.Equal(t, float32(3), p["x"])
	sc.Step(0)
	assert.Equal(t, float32(-1), p["x"])
	assert.Equal(t, 1, n)
}

func TestSceneFailure(t *testing.T) {
	sc := NewScene()
	var got error
	sc.Animate(props{"x": 0}, time.Second, map[string]float32{"y": 1}, func(err error) { got = err })
	assert.NoError(t, got)
	sc.Step(time.Millisecond)
	assert.ErrorContains(t, got, `no property "y"`)
	assert.False(t, sc.Busy())
}

func TestSceneSchedule(t *testing.T) {
	sc := NewScene()
	p := props{"x": 0}
	var order []string
	sc.Schedule(func() {
		order = append(order, "first")
		sc.Schedule(func() { order = append(order, "next tick") })
	})
	sc.Schedule(func() { order = append(order, "second") })
	sc.Animate(p, 10*time.Millisecond, map[string]float32{"x": 1}, func(err error) {
		order = append(order, "done")
		// chained animations start on the next step
		sc.Animate(p, 10*time.Millisecond, map[string]float32{"x": 2}, nil)
	})

	sc.Step(10 * time.Millisecond)
	assert.Equal(t, []string{"first", "second", "done"}, order)
	assert.Equal(t, float32(1), p["x"])
	require.Len(t, sc.Animations, 1)

	assert.Equal(t, 1, sc.Run(10*time.Millisecond, 10))
	assert.Equal(t, []string{"first", "second", "done", "next tick"}, order)
	assert.Equal(t, float32(2), p["x"])
}

func TestEasing(t *testing.T) {
	for _, e := range []Easing{Linear, InOutQuad, OutCubic} {
		assert.InDelta(t, 0, e(0), 1e-6)
		assert.InDelta(t, 1, e(1), 1e-6)
	}
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-6)
	assert.Greater(t, OutCubic(0.5), float32(0.5))
}

func TestRecorder(t *testing.T) {
	sc := NewScene()
	rc := NewRecorder(sc)
	p := props{"x": 0, "angle": 0}
	rc.Animate(p, 20*time.Millisecond, map[string]float32{"x": 1}, func(err error) {
		rc.Animate(p, 20*time.Millisecond, map[string]float32{"angle": 180}, nil)
	})
	ran := false
	rc.Schedule(func() { ran = true })
	assert.False(t, ran)

	sc.Run(10*time.Millisecond, 100)
	assert.True(t, ran)
	assert.Equal(t, []string{"start", "finish", "start", "finish"}, rc.Kinds(""))
	assert.Equal(t, []string{"start", "finish"}, rc.Kinds("angle"))
	assert.Equal(t, 2, rc.Records[2].ID)

	h := rc.Animate(p, time.Second, map[string]float32{"x": 0}, nil)
	h.Cancel()
	assert.Equal(t, "cancel", rc.Records[len(rc.Records)-1].Kind)
}
