// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the drawer event types, the listeners that
// receive them, and the debounced trigger used to coalesce restarts.
package events

import "fmt"

// Event is one drawer event.
type Event struct {

	// Type is the type of the event.
	Type Types

	// Source is the object that sent the event.
	Source any

	handled bool
}

// NewEvent returns a new event of the given type from the given source.
func NewEvent(typ Types, source any) *Event {
	return &Event{Type: typ, Source: source}
}

// SetHandled marks the event as handled, which stops
// any remaining listeners from being called.
func (e *Event) SetHandled() {
	e.handled = true
}

// IsHandled returns whether the event has been handled.
func (e *Event) IsHandled() bool {
	return e.handled
}

func (e *Event) String() string {
	return fmt.Sprintf("%v{Source: %v, Handled: %v}", e.Type, e.Source, e.handled)
}
