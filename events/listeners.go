// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners map[Types][]func(e *Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(e *Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Len returns the number of functions registered for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len((*ls)[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(e *Event) {
	if e.IsHandled() {
		return
	}
	ets := (*ls)[e.Type]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](e)
		if e.IsHandled() {
			break
		}
	}
}
