// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"testing"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/vmath"
)

// controls is a fake input module with a fixed set of controls.
type controls struct {
	backend.Base
	name    string
	buttons []string
	pressed map[int]bool
	axes    []string
	sticks  []string
}

func newControls(name string, nbuttons int) *controls {
	c := &controls{name: name, pressed: map[int]bool{}}
	for i := 0; i < nbuttons; i++ {
		c.buttons = append(c.buttons, fmt.Sprintf("%s-b%d", name, i))
	}
	return c
}

func (c *controls) Name() string                   { return c.name }
func (c *controls) Kind() backend.Kind             { return backend.KindInput }
func (c *controls) NumButtons() int                { return len(c.buttons) }
func (c *controls) ButtonName(i int) string        { return c.buttons[i] }
func (c *controls) ButtonState(i int) bool         { return c.pressed[i] }
func (c *controls) NumAxes() int                   { return len(c.axes) }
func (c *controls) AxisName(i int) string          { return c.axes[i] }
func (c *controls) AxisValue(i int) float32        { return float32(i+1) / 10 }
func (c *controls) NumSticks() int                 { return len(c.sticks) }
func (c *controls) StickName(i int) string         { return c.sticks[i] }
func (c *controls) StickPosition(i int) vmath.Vec2 { return vmath.Vec2{X: float32(i), Y: -1} }

func TestAggregatorIndices(t *testing.T) {
	a := NewAggregator()
	m1 := newControls("m1", 2)
	m2 := newControls("m2", 3)

	a.Add(m1)
	a.Add(m2)

	if a.NumButtons() != 5 {
		t.Fatalf("NumButtons = %d, want 5", a.NumButtons())
	}
	want := []string{"m1-b0", "m1-b1", "m2-b0", "m2-b1", "m2-b2"}
	for i, name := range want {
		if got := a.ButtonName(i); got != name {
			t.Errorf("ButtonName(%d) = %q, want %q", i, got, name)
		}
		if got := a.FindButton(name); got != i {
			t.Errorf("FindButton(%q) = %d, want %d", name, got, i)
		}
	}
}

func TestAggregatorRemoveReindexes(t *testing.T) {
	a := NewAggregator()
	m1 := newControls("m1", 2)
	m2 := newControls("m2", 3)
	a.Add(m1)
	a.Add(m2)

	a.Remove(m1)

	if a.NumButtons() != 3 {
		t.Fatalf("NumButtons = %d, want 3", a.NumButtons())
	}
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("m2-b%d", i)
		if got := a.ButtonName(i); got != name {
			t.Errorf("ButtonName(%d) = %q, want %q", i, got, name)
		}
		if got := a.FindButton(name); got != i {
			t.Errorf("FindButton(%q) = %d, want %d", name, got, i)
		}
		if a.ButtonModule(i) != m2 {
			t.Errorf("ButtonModule(%d) is not m2", i)
		}
	}
	if got := a.FindButton("m1-b0"); got != -1 {
		t.Errorf("FindButton(m1-b0) = %d, want -1", got)
	}
}

func TestAggregatorRemoveMiddle(t *testing.T) {
	a := NewAggregator()
	m1 := newControls("m1", 1)
	m2 := newControls("m2", 2)
	m3 := newControls("m3", 1)
	a.Add(m1)
	a.Add(m2)
	a.Add(m3)

	a.Remove(m2)

	if a.NumButtons() != 2 {
		t.Fatalf("NumButtons = %d, want 2", a.NumButtons())
	}
	if a.ButtonName(0) != "m1-b0" || a.ButtonName(1) != "m3-b0" {
		t.Errorf("buttons = [%q %q], want [m1-b0 m3-b0]", a.ButtonName(0), a.ButtonName(1))
	}
}

func TestAggregatorStateIsForwarded(t *testing.T) {
	a := NewAggregator()
	m := newControls("m", 2)
	m.axes = []string{"x", "y"}
	m.sticks = []string{"stick"}
	a.Add(m)

	if a.ButtonState(1) {
		t.Error("button 1 pressed before press")
	}
	m.pressed[1] = true
	if !a.ButtonState(1) {
		t.Error("button 1 state not forwarded to module")
	}

	if got := a.AxisValue(a.FindAxis("y")); got != 0.2 {
		t.Errorf("AxisValue(y) = %v, want 0.2", got)
	}
	if got := a.StickPosition(a.FindStick("stick")); got != (vmath.Vec2{X: 0, Y: -1}) {
		t.Errorf("StickPosition = %v, want (0,-1)", got)
	}
	if a.NumAxes() != 2 || a.NumSticks() != 1 {
		t.Errorf("NumAxes, NumSticks = %d, %d, want 2, 1", a.NumAxes(), a.NumSticks())
	}
}

func TestAggregatorOutOfRange(t *testing.T) {
	a := NewAggregator()
	a.Add(newControls("m", 1))

	if a.ButtonState(-1) || a.ButtonState(1) {
		t.Error("out-of-range ButtonState should be false")
	}
	if a.ButtonName(5) != "" || a.AxisName(0) != "" || a.StickName(0) != "" {
		t.Error("out-of-range names should be empty")
	}
	if a.AxisValue(0) != 0 {
		t.Error("out-of-range AxisValue should be 0")
	}
	if a.StickPosition(0) != (vmath.Vec2{}) {
		t.Error("out-of-range StickPosition should be zero")
	}
	if a.ButtonModule(3) != nil {
		t.Error("out-of-range ButtonModule should be nil")
	}
	if a.FindAxis("nope") != -1 || a.FindStick("nope") != -1 {
		t.Error("missing names should map to -1")
	}
}

func TestAggregatorDuplicateAdd(t *testing.T) {
	a := NewAggregator()
	m := newControls("m", 2)
	a.Add(m)
	a.Add(m)
	if a.NumButtons() != 2 {
		t.Errorf("NumButtons = %d, want 2", a.NumButtons())
	}
	a.Remove(m)
	a.Remove(m)
	if a.NumButtons() != 0 {
		t.Errorf("NumButtons = %d, want 0", a.NumButtons())
	}
}

func TestAggregatorDuplicateNames(t *testing.T) {
	a := NewAggregator()
	m1 := newControls("m", 1)
	m2 := newControls("m", 1)
	a.Add(m1)
	a.Add(m2)
	if got := a.FindButton("m-b0"); got != 0 {
		t.Errorf("FindButton = %d, want 0 (first wins)", got)
	}
	a.Remove(m1)
	if got := a.FindButton("m-b0"); got != 0 {
		t.Errorf("after remove FindButton = %d, want 0", got)
	}
	if a.ButtonModule(0) != m2 {
		t.Error("remaining button should belong to m2")
	}
}

func TestAggregatorRegistryListener(t *testing.T) {
	r := backend.NewRegistry()
	a := NewAggregator()
	r.SetListener(a)

	h := &nopHost{}
	m1 := newControls("m1", 2)
	m2 := newControls("m2", 3)
	_ = r.Add(h, m1)
	_ = r.Add(h, m2)

	_ = r.Activate(m1)
	_ = r.Activate(m2)
	if a.NumButtons() != 5 {
		t.Fatalf("NumButtons = %d, want 5", a.NumButtons())
	}

	_ = r.Deactivate(m1)
	if a.NumButtons() != 3 || a.ButtonName(0) != "m2-b0" {
		t.Errorf("after deactivate: %d buttons, first %q", a.NumButtons(), a.ButtonName(0))
	}

	a.Clear()
	if a.NumButtons() != 0 {
		t.Errorf("NumButtons after Clear = %d", a.NumButtons())
	}
}
