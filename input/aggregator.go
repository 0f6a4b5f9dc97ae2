// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"slices"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/vmath"
)

// entry maps a global index to a module-local one.
type entry struct {
	module backend.Module
	local  int
	name   string
}

// table is one flat list of entries plus its name index.
type table struct {
	entries []entry
	names   map[string]int
}

func (t *table) add(m backend.Module, n int, name func(int) string) {
	for i := 0; i < n; i++ {
		t.entries = append(t.entries, entry{module: m, local: i, name: name(i)})
	}
	t.reindex()
}

// remove drops the contiguous run of entries owned by m.
func (t *table) remove(m backend.Module) {
	start := slices.IndexFunc(t.entries, func(e entry) bool { return e.module == m })
	if start < 0 {
		return
	}
	end := start
	for end < len(t.entries) && t.entries[end].module == m {
		end++
	}
	t.entries = slices.Delete(t.entries, start, end)
	t.reindex()
}

// reindex rebuilds the name index. If two entries share a name the lower
// index wins.
func (t *table) reindex() {
	t.names = make(map[string]int, len(t.entries))
	for i, e := range t.entries {
		if e.name == "" {
			continue
		}
		if _, dup := t.names[e.name]; !dup {
			t.names[e.name] = i
		}
	}
}

func (t *table) get(idx int) (entry, bool) {
	if idx < 0 || idx >= len(t.entries) {
		return entry{}, false
	}
	return t.entries[idx], true
}

func (t *table) find(name string) int {
	if idx, ok := t.names[name]; ok {
		return idx
	}
	return -1
}

func (t *table) reset() {
	t.entries = nil
	t.names = nil
}

// Aggregator flattens the controls of active modules into global indices.
//
// It implements backend.ActivationListener so that a registry keeps it in
// sync with the active module set.
type Aggregator struct {
	buttons table
	axes    table
	sticks  table
	modules []backend.Module
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends the buttons, axes and sticks of m. Adding a module that is
// already present is a no-op.
func (a *Aggregator) Add(m backend.Module) {
	if m == nil || slices.Contains(a.modules, m) {
		return
	}
	a.modules = append(a.modules, m)
	a.buttons.add(m, m.NumButtons(), m.ButtonName)
	a.axes.add(m, m.NumAxes(), m.AxisName)
	a.sticks.add(m, m.NumSticks(), m.StickName)
}

// Remove drops every entry contributed by m. Entries after them are
// renumbered.
func (a *Aggregator) Remove(m backend.Module) {
	i := slices.Index(a.modules, m)
	if i < 0 {
		return
	}
	a.modules = slices.Delete(a.modules, i, i+1)
	a.buttons.remove(m)
	a.axes.remove(m)
	a.sticks.remove(m)
}

// Clear drops all entries.
func (a *Aggregator) Clear() {
	a.modules = nil
	a.buttons.reset()
	a.axes.reset()
	a.sticks.reset()
}

// ModuleActivated implements backend.ActivationListener.
func (a *Aggregator) ModuleActivated(m backend.Module) { a.Add(m) }

// ModuleDeactivated implements backend.ActivationListener.
func (a *Aggregator) ModuleDeactivated(m backend.Module) { a.Remove(m) }

// NumButtons returns the total number of buttons.
func (a *Aggregator) NumButtons() int { return len(a.buttons.entries) }

// ButtonName returns the name of button idx, or "" if idx is out of range.
func (a *Aggregator) ButtonName(idx int) string {
	e, _ := a.buttons.get(idx)
	return e.name
}

// ButtonState reports whether button idx is pressed.
func (a *Aggregator) ButtonState(idx int) bool {
	e, ok := a.buttons.get(idx)
	if !ok {
		return false
	}
	return e.module.ButtonState(e.local)
}

// FindButton returns the index of the named button, or -1.
func (a *Aggregator) FindButton(name string) int { return a.buttons.find(name) }

// ButtonModule returns the module owning button idx, or nil.
func (a *Aggregator) ButtonModule(idx int) backend.Module {
	e, _ := a.buttons.get(idx)
	return e.module
}

// NumAxes returns the total number of axes.
func (a *Aggregator) NumAxes() int { return len(a.axes.entries) }

// AxisName returns the name of axis idx, or "".
func (a *Aggregator) AxisName(idx int) string {
	e, _ := a.axes.get(idx)
	return e.name
}

// AxisValue returns the value of axis idx, or 0 if idx is out of range.
func (a *Aggregator) AxisValue(idx int) float32 {
	e, ok := a.axes.get(idx)
	if !ok {
		return 0
	}
	return e.module.AxisValue(e.local)
}

// FindAxis returns the index of the named axis, or -1.
func (a *Aggregator) FindAxis(name string) int { return a.axes.find(name) }

// NumSticks returns the total number of sticks.
func (a *Aggregator) NumSticks() int { return len(a.sticks.entries) }

// StickName returns the name of stick idx, or "".
func (a *Aggregator) StickName(idx int) string {
	e, _ := a.sticks.get(idx)
	return e.name
}

// StickPosition returns the position of stick idx, or the zero vector.
func (a *Aggregator) StickPosition(idx int) vmath.Vec2 {
	e, ok := a.sticks.get(idx)
	if !ok {
		return vmath.Vec2{}
	}
	return e.module.StickPosition(e.local)
}

// FindStick returns the index of the named stick, or -1.
func (a *Aggregator) FindStick(name string) int { return a.sticks.find(name) }
