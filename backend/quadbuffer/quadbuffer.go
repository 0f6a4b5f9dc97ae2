// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package quadbuffer implements the hardware stereo display module.
//
// It needs a window surface with separate left and right back buffers
// (quad buffering), as offered by stereo-capable professional GPUs and
// shutter glasses setups. Each eye is rendered at full window size and
// presented to its own back buffer.
package quadbuffer

import (
	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/backend/sbs"
)

// Name is the module name.
const Name = "stereo"

// Buffer is the back buffer selected for drawing.
type Buffer int

const (
	// BackBoth targets both back buffers, e.g. to clear them together.
	BackBoth Buffer = iota
	BackLeft
	BackRight
)

// String returns the buffer name.
func (b Buffer) String() string {
	switch b {
	case BackLeft:
		return "back-left"
	case BackRight:
		return "back-right"
	default:
		return "back"
	}
}

// Module is the quad-buffer stereo display module.
type Module struct {
	*sbs.Module

	buffer Buffer
}

// New returns a quad-buffer stereo module. It has the backend.Factory
// signature.
func New() backend.Module {
	return NewModule()
}

// NewModule creates a quad-buffer stereo module.
func NewModule() *Module {
	m := &Module{
		Module: sbs.NewModule(sbs.WithLabel(Name), sbs.WithLayout(sbs.LayoutFull)),
	}
	if p, ok := backend.DefaultPriority(Name); ok {
		m.SetPriority(p)
	}
	return m
}

func (m *Module) Name() string { return Name }

// Detect reports whether the host surface is stereo-capable.
func (m *Module) Detect() bool {
	ok := m.Capabilities().StereoSurface
	m.SetUsable(ok)
	return ok
}

// DrawStart selects both back buffers.
func (m *Module) DrawStart() { m.buffer = BackBoth }

// DrawEye selects the back buffer of eye.
func (m *Module) DrawEye(eye backend.Eye) {
	if eye == backend.RightEye {
		m.buffer = BackRight
	} else {
		m.buffer = BackLeft
	}
}

// DrawDone selects both back buffers again.
func (m *Module) DrawDone() { m.buffer = BackBoth }

// DrawMirror does nothing: the window already shows the stereo pair.
func (m *Module) DrawMirror() {}

// DrawBuffer returns the back buffer the host should present the current
// eye to.
func (m *Module) DrawBuffer() Buffer {
	return m.buffer
}

var _ backend.Module = (*Module)(nil)
