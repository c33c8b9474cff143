// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"
)

// Record is one entry of a [Recorder].
type Record struct {

	// Kind is one of "start", "finish", "fail" or "cancel".
	Kind string

	// ID identifies the animation; it is the same for all of
	// the records of one animation.
	ID int

	// Properties are the sorted names of the animated properties.
	Properties []string
}

func (r Record) String() string {
	return fmt.Sprintf("%s %d %s", r.Kind, r.ID, strings.Join(r.Properties, ","))
}

// Recorder is an [Animator] that records the lifetime of every animation
// it starts on the wrapped Animator. It also forwards scheduling to the
// wrapped Animator if it is a scheduler, and runs scheduled functions
// immediately otherwise.
type Recorder struct {

	// Animator is the wrapped animator.
	Animator Animator

	// Records are the recorded entries, in order.
	Records []Record

	last int
}

// NewRecorder returns a new recorder wrapping an.
func NewRecorder(an Animator) *Recorder {
	return &Recorder{Animator: an}
}

func (rc *Recorder) add(kind string, id int, props []string) {
	r := Record{Kind: kind, ID: id, Properties: props}
	slog.Debug("anim.Recorder", "record", r.String())
	rc.Records = append(rc.Records, r)
}

// Animate implements [Animator].
func (rc *Recorder) Animate(t Target, d time.Duration, to map[string]float32, done func(err error)) Handle {
	rc.last++
	id := rc.last
	props := slices.Sorted(maps.Keys(to))
	rc.add("start", id, props)
	h := rc.Animator.Animate(t, d, to, func(err error) {
		if err != nil {
			rc.add("fail", id, props)
		} else {
			rc.add("finish", id, props)
		}
		if done != nil {
			done(err)
		}
	})
	return &recordedHandle{Handle: h, rc: rc, id: id, props: props}
}

// Schedule forwards to the wrapped animator if it can schedule,
// and calls f immediately otherwise.
func (rc *Recorder) Schedule(f func()) {
	if s, ok := rc.Animator.(interface{ Schedule(f func()) }); ok {
		s.Schedule(f)
		return
	}
	f()
}

// Kinds returns the kinds of all records, in order, for records
// whose properties include prop, or all records if prop is "".
func (rc *Recorder) Kinds(prop string) []string {
	var ks []string
	for _, r := range rc.Records {
		if prop == "" || slices.Contains(r.Properties, prop) {
			ks = append(ks, r.Kind)
		}
	}
	return ks
}

type recordedHandle struct {
	Handle
	rc    *Recorder
	id    int
	props []string
}

func (h *recordedHandle) Cancel() {
	h.rc.add("cancel", h.id, h.props)
	h.Handle.Cancel()
}
