// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/drawer/anchors"
	"cogentcore.org/drawer/anim"
	"cogentcore.org/drawer/drawer"
	"cogentcore.org/drawer/events"
	"cogentcore.org/drawer/layout"
	"github.com/chewxy/math32"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// demo is the state of a running demo. Everything except the event
// reader and the file watcher runs on the goroutine of [demo.run].
type demo struct {
	cfg     *Config
	screen  tcell.Screen
	scene   *anim.Scene
	root    *layout.Float
	drawers []*drawer.Drawer

	// pressed is the previous state of the primary mouse button,
	// so that a held button presses only once.
	pressed bool
	status  string

	// reader is the goroutine reading terminal events.
	reader sync.WaitGroup
}

func newDemo(c *Config, cfgs []drawer.Config) (*demo, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	w, h := s.Size()
	dm, err := setupDemo(c, float32(w), float32(h), cfgs)
	if err != nil {
		s.Fini()
		return nil, err
	}
	dm.screen = s
	return dm, nil
}

// setupDemo makes the scene and the drawers in a root of the given size.
func setupDemo(c *Config, w, h float32, cfgs []drawer.Config) (*demo, error) {
	dm := &demo{
		cfg:   c,
		scene: anim.NewScene(),
		root:  layout.NewFloat(0, 0, w, h),
	}
	dm.scene.Easing = anim.InOutQuad
	for i, dc := range cfgs {
		d := drawer.New(dm.scene)
		d.Tab.Size = 2
		if err := dm.apply(d, dc); err != nil {
			return nil, fmt.Errorf("drawerdemo: drawer %d: %w", i+1, err)
		}
		n := i + 1
		d.OnOpen(func(e *events.Event) {
			dm.status = fmt.Sprintf("drawer %d open", n)
		})
		d.OnClose(func(e *events.Event) {
			dm.status = fmt.Sprintf("drawer %d closed", n)
		})
		if err := dm.root.AddChild(d); err != nil {
			return nil, err
		}
		dm.drawers = append(dm.drawers, d)
	}
	return dm, nil
}

// apply applies a drawer configuration, slowed down by [Config.Slow].
func (dm *demo) apply(d *drawer.Drawer, dc drawer.Config) error {
	dc.Duration *= dm.cfg.Slow
	return dc.Apply(d)
}

// reload reads [Config.Drawers] again and applies it to the drawers,
// in order. A changed anchor restarts its drawer.
func (dm *demo) reload() error {
	cfgs, err := drawerConfigs(dm.cfg)
	if err != nil {
		return err
	}
	if len(cfgs) != len(dm.drawers) {
		slog.Warn("drawerdemo: number of drawers changed; restart to add or remove drawers", "file", dm.cfg.Drawers, "was", len(dm.drawers), "now", len(cfgs))
	}
	for i, d := range dm.drawers[:min(len(cfgs), len(dm.drawers))] {
		if err := dm.apply(d, cfgs[i]); err != nil {
			return fmt.Errorf("drawerdemo: drawer %d: %w", i+1, err)
		}
	}
	dm.status = "reloaded " + filepath.Base(dm.cfg.Drawers)
	return nil
}

// watch returns a watcher of the directory of [Config.Drawers], or nil
// if there is no file. The directory is watched so that editors that
// replace the file are noticed.
func (dm *demo) watch() (*fsnotify.Watcher, error) {
	if dm.cfg.Drawers == "" || !dm.cfg.Watch {
		return nil, nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(dm.cfg.Drawers)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// changed returns whether a watcher event is a change of [Config.Drawers].
func (dm *demo) changed(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(dm.cfg.Drawers) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// run runs the event loop until the user quits. It returns
// once the event reader has stopped too.
func (dm *demo) run() error {
	defer dm.reader.Wait()
	defer dm.screen.Fini()
	done := make(chan struct{})
	defer close(done)
	evs := make(chan tcell.Event)
	dm.reader.Add(1)
	go func() {
		defer dm.reader.Done()
		for {
			ev := dm.screen.PollEvent()
			if ev == nil {
				close(evs)
				return
			}
			select {
			case evs <- ev:
			case <-done:
				return
			}
		}
	}()

	var fileEvents chan fsnotify.Event
	var fileErrors chan error
	w, err := dm.watch()
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
		fileEvents, fileErrors = w.Events, w.Errors
	}

	ticker := time.NewTicker(time.Second / time.Duration(dm.cfg.FPS))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-evs:
			if !ok || !dm.handle(ev) {
				return nil
			}
		case ev := <-fileEvents:
			if dm.changed(ev) {
				if err := dm.reload(); err != nil {
					slog.Error("drawerdemo: reload", "file", dm.cfg.Drawers, "err", err)
					dm.status = err.Error()
				}
			}
		case err := <-fileErrors:
			slog.Error("drawerdemo: watch", "file", dm.cfg.Drawers, "err", err)
		case now := <-ticker.C:
			dm.scene.Step(now.Sub(last))
			last = now
			dm.root.LayoutIfNeeded()
			dm.draw()
		}
	}
}

// handle handles one terminal event and returns false to quit.
func (dm *demo) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		dm.root.Resize(float32(w), float32(h))
		dm.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return dm.key(ev.Rune())
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !dm.pressed {
			x, y := ev.Position()
			_, h := dm.screen.Size()
			dm.root.Press(float32(x)+0.5, float32(h-y)-0.5)
		}
		dm.pressed = down
	}
	return true
}

func (dm *demo) key(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == 'a' && len(dm.drawers) > 0:
		d := dm.drawers[0]
		next := anchors.Anchors((int(d.Anchor) + 1) % int(anchors.AnchorsN))
		if err := d.SetAnchor(next); err != nil {
			slog.Error("drawerdemo: set anchor", "err", err)
		}
		dm.status = "drawer 1 at " + next.String()
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i >= len(dm.drawers) {
			break
		}
		d := dm.drawers[i]
		if s := d.State(); s == drawer.OpenIdle || s.Opening() {
			d.Close()
		} else {
			d.Open()
		}
	}
	return true
}

// draw draws the drawers bottom up. The root is y-up and the
// screen is y-down, so rows are flipped.
func (dm *demo) draw() {
	s := dm.screen
	s.Clear()
	_, h := s.Size()
	for _, w := range dm.root.Children() {
		d, ok := w.(*drawer.Drawer)
		if !ok {
			continue
		}
		st := tcell.StyleDefault.Background(tcellColor(d.Background)).Foreground(tcellColor(d.Foreground))
		dm.fill(d.Box, st, ' ')
		tb := d.Tab.Box
		tb.X += d.X
		tb.Y += d.Y
		dm.fill(tb, st, ' ')
		cx, cy := tb.X+tb.W/2, tb.Y+tb.H/2
		s.SetContent(int(math32.Floor(cx)), h-1-int(math32.Floor(cy)), arrow(d.Tab.Angle), nil, st)
		label := fmt.Sprintf(" %v %v", d.Anchor.Code(), d.State())
		dm.text(int(math32.Floor(d.X)), h-int(math32.Floor(d.Top())), label, st)
	}
	help := "1-9 toggle  click a tab  a: move drawer 1  q: quit"
	if dm.status != "" {
		help = dm.status + "  |  " + help
	}
	dm.text(0, h/2, help, tcell.StyleDefault)
	s.Show()
}

// fill fills the cells whose centers are in b.
func (dm *demo) fill(b layout.Box, st tcell.Style, r rune) {
	w, h := dm.screen.Size()
	x0 := max(0, int(math32.Floor(b.X)))
	x1 := min(w, int(math32.Ceil(b.Right())))
	y0 := max(0, int(math32.Floor(b.Y)))
	y1 := min(h, int(math32.Ceil(b.Top())))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if b.Contains(float32(x)+0.5, float32(y)+0.5) {
				dm.screen.SetContent(x, h-1-y, r, nil, st)
			}
		}
	}
}

// text draws str starting at the given screen cell, clipped to the screen.
func (dm *demo) text(x, y int, str string, st tcell.Style) {
	w, h := dm.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= w {
			return
		}
		if x >= 0 {
			dm.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

// arrow returns the arrow closest to the given angle in degrees,
// counterclockwise from pointing right.
func arrow(angle float32) rune {
	a := math32.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	switch int(math32.Round(a/90)) % 4 {
	case 1:
		return '▲'
	case 2:
		return '◀'
	case 3:
		return '▼'
	}
	return '▶'
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
