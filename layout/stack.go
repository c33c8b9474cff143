// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

// Stack is a container that stacks its children from the top down,
// with no free-form positioning.
type Stack struct {
	Box

	// Gap is the space between children.
	Gap float32

	children []Widget
}

// NewStack returns a new stack occupying the given rectangle.
func NewStack(x, y, w, h float32) *Stack {
	return &Stack{Box: Box{X: x, Y: y, W: w, H: h}}
}

// Children implements [Parent].
func (st *Stack) Children() []Widget {
	return st.children
}

// AddChild implements [Parent].
func (st *Stack) AddChild(w Widget) error {
	if slices.Contains(st.children, w) {
		return fmt.Errorf("layout.Stack: widget %v is already a child", w)
	}
	st.children = append(st.children, w)
	if err := w.OnParent(st); err != nil {
		st.children = st.children[:len(st.children)-1]
		return err
	}
	return nil
}

// DeleteChild implements [Parent].
func (st *Stack) DeleteChild(w Widget) bool {
	i := slices.Index(st.children, w)
	if i < 0 {
		return false
	}
	st.children = slices.Delete(st.children, i, i+1)
	errors.Log(w.OnParent(nil))
	return true
}

// Layout stacks the children from the top down at the left edge.
func (st *Stack) Layout() {
	top := st.Y + st.H
	for _, c := range st.children {
		b := c.AsBox()
		b.X = st.X
		b.Y = top - b.H
		top = b.Y - st.Gap
	}
}
