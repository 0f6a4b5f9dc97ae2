// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sbs implements the side-by-side stereo display module.
//
// The left eye is drawn to the left half of the window and the right eye
// to the right half, for cross-eyed viewing, cardboard viewers or
// displays with a side-by-side 3D mode. No tracking is provided.
//
// The camera model (fixed interpupillary distance, 60 degree vertical
// field of view, asymmetric frusta) is shared with the other window based
// display modules, which embed Module.
package sbs

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
	"github.com/gogpu/vr/vmath"
)

// Name is the module name.
const Name = "sbs"

// Camera defaults.
const (
	DefaultIPD  = 0.064
	DefaultVFOV = 60 * math32.Pi / 180

	// DefaultWidth and DefaultHeight are used when the window size was
	// never set.
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Layout selects how the eyes share the window.
type Layout int

const (
	// LayoutSplit gives each eye half of the window width.
	LayoutSplit Layout = iota

	// LayoutFull gives each eye the whole window; the eyes are combined
	// when the frame is presented.
	LayoutFull
)

// Option configures a Module.
type Option func(*Module)

// WithLabel sets the render texture debug label.
func WithLabel(label string) Option {
	return func(m *Module) {
		m.label = label
	}
}

// WithLayout sets the eye layout.
func WithLayout(l Layout) Option {
	return func(m *Module) {
		m.layout = l
	}
}

// WithIPD sets the interpupillary distance in meters.
func WithIPD(ipd float32) Option {
	return func(m *Module) {
		if ipd > 0 {
			m.ipd = ipd
		}
	}
}

// WithVFOV sets the vertical field of view in radians.
func WithVFOV(vfov float32) Option {
	return func(m *Module) {
		if vfov > 0 && vfov < math32.Pi {
			m.vfov = vfov
		}
	}
}

// Module is the side-by-side display module.
type Module struct {
	backend.Base

	cache  *render.Cache
	label  string
	layout Layout
	origin backend.OriginMode
	ipd    float32
	vfov   float32

	width   int
	height  int
	scale   float32
	started bool
}

// New returns a side-by-side module. It has the backend.Factory signature.
func New() backend.Module {
	return NewModule()
}

// NewModule creates a side-by-side module.
func NewModule(opts ...Option) *Module {
	m := &Module{
		label:  Name,
		ipd:    DefaultIPD,
		vfov:   DefaultVFOV,
		scale:  1,
		origin: backend.OriginFloor,
	}
	for _, opt := range opts {
		opt(m)
	}
	if p, ok := backend.DefaultPriority(Name); ok {
		m.SetPriority(p)
	}
	return m
}

func (m *Module) Name() string       { return Name }
func (m *Module) Kind() backend.Kind { return backend.KindDisplay }

// Init creates the render texture cache.
func (m *Module) Init(h backend.Host) error {
	if err := m.Base.Init(h); err != nil {
		return err
	}
	m.cache = render.NewCache(h.Allocator(),
		render.WithLabel(m.label),
		render.WithLogger(h.Logger()),
		render.WithColorFormat(h.Capabilities().SurfaceFormat))
	return nil
}

// Destroy releases the render texture.
func (m *Module) Destroy() {
	m.Stop()
	if m.cache != nil {
		m.cache.Release()
	}
}

// Detect always succeeds: a window is all this module needs.
func (m *Module) Detect() bool {
	m.SetUsable(true)
	return true
}

// Start falls back to the default window size if none was set.
func (m *Module) Start() bool {
	if m.cache == nil {
		return false
	}
	if m.width <= 0 || m.height <= 0 {
		m.Logger().Info("sbs: window size not set, using default",
			"width", DefaultWidth, "height", DefaultHeight)
		m.SetFBSize(DefaultWidth, DefaultHeight, m.scale)
	}
	m.started = true
	return true
}

func (m *Module) Stop() { m.started = false }

// Started reports whether the module is in VR mode.
func (m *Module) Started() bool { return m.started }

func (m *Module) SetOriginMode(mode backend.OriginMode) { m.origin = mode }

// SetFBSize records the window size and lays out the eyes. It does not
// allocate. A non-positive size only changes the scale and keeps the
// previous window size.
func (m *Module) SetFBSize(width, height int, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	m.scale = scale
	if width <= 0 || height <= 0 {
		if m.cache != nil {
			m.cache.SetScale(scale)
		}
		return
	}
	m.width, m.height = width, height
	if m.cache == nil {
		return
	}
	switch m.layout {
	case LayoutFull:
		m.cache.SetEyeSize(render.LeftEye, width, height)
		m.cache.SetEyeSize(render.RightEye, width, height)
		m.cache.SetScale(scale)
	default:
		m.cache.SetSize(width, height, scale)
	}
}

// WindowSize returns the last size passed to SetFBSize.
func (m *Module) WindowSize() (width, height int) {
	return m.width, m.height
}

// RenderTexture returns the render target, rebuilding it if its size changed.
func (m *Module) RenderTexture() (*render.RenderTexture, error) {
	if m.cache == nil {
		return nil, errors.New("sbs: not initialized")
	}
	return m.cache.RenderTexture()
}

// Current returns the render target without rebuilding it, or nil.
func (m *Module) Current() *render.RenderTexture {
	if m.cache == nil {
		return nil
	}
	return m.cache.Current()
}

// DrawMirror scales the two eye views into the host mirror image.
func (m *Module) DrawMirror() {
	dst := m.Capabilities().Mirror
	if dst == nil || m.cache == nil {
		return
	}
	if err := render.Mirror(dst, m.cache.Current()); err != nil {
		m.Logger().Debug("sbs: mirror skipped", "err", err)
	}
}

// ViewMatrix offsets the eye by half the IPD and, in floor mode, lifts it
// to the default eye height.
func (m *Module) ViewMatrix(eye backend.Eye) vmath.Mat4 {
	offs := 0.5 * m.ipd
	if eye == backend.RightEye {
		offs = -offs
	}
	view := vmath.Translation(offs, 0, 0)
	if m.origin == backend.OriginFloor {
		view = view.Translate(0, -m.EyeHeight(), 0)
	}
	return view
}

// ProjMatrix returns an off-axis perspective projection. The frustum of
// each eye is shifted towards the other so both converge at infinity.
func (m *Module) ProjMatrix(eye backend.Eye, znear, zfar float32) vmath.Mat4 {
	top := znear * math32.Tan(m.vfov*0.5)
	right := top * m.aspect()

	shift := m.ipd * 0.5 * znear
	if eye == backend.RightEye {
		shift = -shift
	}
	return vmath.Frustum(-right+shift, right+shift, -top, top, znear, zfar)
}

// aspect returns the width/height ratio of one eye viewport.
func (m *Module) aspect() float32 {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	if m.layout == LayoutSplit {
		return float32(w) * 0.5 / float32(h)
	}
	return float32(w) / float32(h)
}

// IPD returns the interpupillary distance in meters.
func (m *Module) IPD() float32 { return m.ipd }

var _ backend.Module = (*Module)(nil)
