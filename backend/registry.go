// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"log/slog"
	"slices"
)

// displayPriority assigns the built-in priorities of well-known display
// modules. Vendor HMD runtimes come first, then hardware stereo, then
// the window-based fallbacks.
var displayPriority = map[string]int{
	"oculus":   128,
	"openvr":   127,
	"stereo":   64,
	"anaglyph": 63,
	"sbs":      62,
}

// DefaultPriority returns the built-in priority for a display module name.
func DefaultPriority(name string) (int, bool) {
	p, ok := displayPriority[name]
	return p, ok
}

// ActivationListener is notified after a module is activated or deactivated.
type ActivationListener interface {
	ModuleActivated(m Module)
	ModuleDeactivated(m Module)
}

// Registry tracks registered modules, their activation state and the
// tracking sources they publish.
//
// At most one display module is active at any time: activating a display
// module deactivates the previous one. Input modules never displace
// anything.
//
// Registry is NOT safe for concurrent use.
type Registry struct {
	modules   []Module
	display   Module
	numUsable int
	sources   []*Source
	listener  ActivationListener
	log       *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{log: slog.New(discardHandler{})}
}

// SetLogger sets the registry logger. Modules get a child logger with a
// "module" attribute.
func (r *Registry) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	r.log = l
}

// SetListener sets the activation listener, replacing any previous one.
func (r *Registry) SetListener(l ActivationListener) {
	r.listener = l
}

// Add initializes m with h and registers it. Display modules whose name is
// in the built-in priority table get that priority.
//
// Adding the same instance twice is a no-op. If Init fails the module is
// not registered.
func (r *Registry) Add(h Host, m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if slices.Contains(r.modules, m) {
		return nil
	}
	if _, ok := r.Find(m.Name()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name())
	}

	if err := m.Init(&moduleHost{Host: h, log: r.log.With("module", m.Name())}); err != nil {
		return fmt.Errorf("backend: init %s: %w", m.Name(), err)
	}
	if m.Kind() == KindDisplay {
		if p, ok := DefaultPriority(m.Name()); ok {
			m.SetPriority(p)
		}
	}
	r.modules = append(r.modules, m)
	return nil
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}

// Module returns the module at idx in registration order, or nil.
func (r *Registry) Module(idx int) Module {
	if idx < 0 || idx >= len(r.modules) {
		return nil
	}
	return r.modules[idx]
}

// Modules returns all modules in registration order.
func (r *Registry) Modules() []Module {
	return slices.Clone(r.modules)
}

// Find returns the module with the given name.
func (r *Registry) Find(name string) (Module, bool) {
	for _, m := range r.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Detect runs detection on every module and returns how many are usable.
func (r *Registry) Detect() int {
	r.numUsable = 0
	for _, m := range r.modules {
		if m.Detect() {
			r.numUsable++
			r.log.Info("backend: module usable", "module", m.Name(), "kind", m.Kind(), "priority", m.Priority())
		} else {
			r.log.Info("backend: module not available", "module", m.Name())
		}
	}
	return r.numUsable
}

// NumUsable returns the count from the last Detect.
func (r *Registry) NumUsable() int {
	return r.numUsable
}

// Activate activates m. Activating a display module deactivates the
// currently active display module first. Activating an active module is
// a no-op.
func (r *Registry) Activate(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if !slices.Contains(r.modules, m) {
		return &ModuleNotFoundError{Name: m.Name()}
	}
	if m.Active() {
		return nil
	}

	if m.Kind() == KindDisplay && r.display != nil {
		if err := r.Deactivate(r.display); err != nil {
			return err
		}
	}

	m.Activate()
	if m.Kind() == KindDisplay {
		r.display = m
	}
	r.log.Debug("backend: module activated", "module", m.Name())

	if r.listener != nil {
		r.listener.ModuleActivated(m)
	}
	return nil
}

// Deactivate deactivates m. Deactivating an inactive module is a no-op.
func (r *Registry) Deactivate(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if !slices.Contains(r.modules, m) {
		return &ModuleNotFoundError{Name: m.Name()}
	}
	if !m.Active() {
		return nil
	}

	m.Deactivate()
	if r.display == m {
		r.display = nil
	}
	r.log.Debug("backend: module deactivated", "module", m.Name())

	if r.listener != nil {
		r.listener.ModuleDeactivated(m)
	}
	return nil
}

// Display returns the active display module, or nil.
func (r *Registry) Display() Module {
	return r.display
}

// Active returns the active modules in registration order.
func (r *Registry) Active() []Module {
	var active []Module
	for _, m := range r.modules {
		if m.Active() {
			active = append(active, m)
		}
	}
	return active
}

// AddSource publishes src. Adding the same source twice is a no-op.
func (r *Registry) AddSource(src *Source) {
	if src == nil || slices.Contains(r.sources, src) {
		return
	}
	r.sources = append(r.sources, src)
}

// RemoveSource withdraws src.
func (r *Registry) RemoveSource(src *Source) {
	if i := slices.Index(r.sources, src); i >= 0 {
		r.sources = slices.Delete(r.sources, i, i+1)
	}
}

// NumSources returns the number of published sources.
func (r *Registry) NumSources() int {
	return len(r.sources)
}

// Source returns the source at idx in publication order, or nil.
func (r *Registry) Source(idx int) *Source {
	if idx < 0 || idx >= len(r.sources) {
		return nil
	}
	return r.sources[idx]
}

// Sources returns all published sources in publication order.
func (r *Registry) Sources() []*Source {
	return slices.Clone(r.sources)
}

// FindSource returns the source with the given name.
func (r *Registry) FindSource(name string) (*Source, bool) {
	for _, s := range r.sources {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Clear deactivates and destroys every module and resets the registry to
// empty, so that it can be reused for a fresh session.
func (r *Registry) Clear() {
	for _, m := range r.modules {
		if m.Active() {
			_ = r.Deactivate(m)
		}
	}
	for _, m := range r.modules {
		m.Destroy()
	}
	r.modules = nil
	r.display = nil
	r.numUsable = 0
	r.sources = nil
}

// moduleHost scopes the session host to one module.
type moduleHost struct {
	Host
	log *slog.Logger
}

func (h *moduleHost) Logger() *slog.Logger {
	return h.log
}
