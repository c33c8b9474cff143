// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Scheduler runs functions on its next tick.
type Scheduler interface {

	// Schedule arranges for f to be called on the next tick.
	Schedule(f func())
}

// Trigger is a debounced function call: any number of [Trigger.Fire]
// calls within one scheduler tick result in a single call to the function
// on the next tick. With a nil Scheduler, every Fire calls the function
// immediately.
type Trigger struct {

	// Scheduler is the scheduler whose ticks the trigger is debounced on.
	Scheduler Scheduler

	// Func is the function to call.
	Func func()

	pending bool
}

// NewTrigger returns a new trigger calling f, debounced on s.
func NewTrigger(s Scheduler, f func()) *Trigger {
	return &Trigger{Scheduler: s, Func: f}
}

// Fire requests a call to the function.
func (tr *Trigger) Fire() {
	if tr.Scheduler == nil {
		tr.Func()
		return
	}
	if tr.pending {
		return
	}
	tr.pending = true
	tr.Scheduler.Schedule(tr.run)
}

// Pending returns whether a call has been scheduled but has not run yet.
func (tr *Trigger) Pending() bool {
	return tr.pending
}

// Cancel drops a scheduled call, if any.
func (tr *Trigger) Cancel() {
	tr.pending = false
}

func (tr *Trigger) run() {
	if !tr.pending {
		return
	}
	tr.pending = false
	tr.Func()
}
