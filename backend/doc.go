// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend defines the pluggable module contract and the module
// registry.
//
// # Modules
//
// A [Module] is a backend: either a display module (stereo rendering and
// optionally head tracking; at most one active at a time) or an input
// module (tracked devices, buttons, axes and sticks; any number active).
//
// Implementations embed [Base], which provides a neutral answer for every
// capability, and override only what they support:
//
//	type Module struct {
//		backend.Base
//	}
//
//	func (m *Module) Name() string        { return "mydisplay" }
//	func (m *Module) Kind() backend.Kind  { return backend.KindDisplay }
//	func (m *Module) Detect() bool        { m.SetUsable(probe()); return m.Usable() }
//
// # Registration
//
// Modules are not registered as a side effect of construction. A
// [Registry] constructs nothing itself; the owner (usually vr.Session)
// builds each module from a [Factory] and registers it in one step with
// [Registry.Add], which also runs [Module.Init].
//
// # Sources
//
// A [Source] is a tracked pose owned by one module. Modules create their
// sources in Start, publish them with [Host.AddSource] and withdraw them
// with [Host.RemoveSource] in Stop.
package backend
