// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vr/render"
	"github.com/gogpu/vr/vmath"
	xdraw "golang.org/x/image/draw"
)

// DefaultEyeHeight is the eye height in meters reported when a module has
// no calibration data.
const DefaultEyeHeight = 1.65

// Module is the interface implemented by every display and input backend.
//
// Methods are called from the thread driving the render loop only; no
// method is reentrant. Embed Base to get neutral defaults for every
// capability the backend does not support.
type Module interface {
	// Name returns the unique module identifier (e.g. "sbs", "anaglyph").
	Name() string

	// Kind reports whether this is a display or an input module.
	Kind() Kind

	// Priority is used to pick among usable display modules; higher wins.
	Priority() int
	SetPriority(p int)

	// Init is called once when the module is registered. A module whose
	// Init fails is not registered.
	Init(h Host) error

	// Destroy releases everything the module holds. Called at registry teardown.
	Destroy()

	// Detect probes for the hardware or driver the module needs and
	// records the result. It must be safe to call repeatedly.
	Detect() bool

	// Usable returns the result of the last Detect.
	Usable() bool

	Activate()
	Deactivate()
	Active() bool

	// Start enters VR mode. A display module returning false prevents the
	// session from starting.
	Start() bool

	// Stop leaves VR mode. It must discard any half-submitted frame.
	Stop()

	// Update refreshes poses and control state. Called once per frame for
	// every active module, before any drawing.
	Update()

	SetOriginMode(mode OriginMode)
	Recenter()

	// HaveHeadTracking reports whether HeadPosition/HeadOrientation are valid.
	HaveHeadTracking() bool

	// HaveHandTracking reports whether the Hand* accessors are valid for h.
	HaveHandTracking(h Hand) bool

	NumButtons() int
	ButtonName(idx int) string
	ButtonState(idx int) bool

	NumAxes() int
	AxisName(idx int) string
	AxisValue(idx int) float32

	NumSticks() int
	StickName(idx int) string
	StickPosition(idx int) vmath.Vec2

	// Action reports whether the high-level action a is engaged on hand h.
	Action(h Hand, a Action) bool

	// SetFBSize tells a display module the output window size and the
	// requested resolution scale. It does not allocate.
	SetFBSize(width, height int, scale float32)

	// RenderTexture returns the display module's render target, building
	// it if needed. Input modules return nil.
	RenderTexture() (*render.RenderTexture, error)

	DrawStart()
	DrawEye(eye Eye)
	DrawDone()
	DrawMirror()

	// ShouldSwap reports whether the application should swap the window
	// buffers after DrawDone.
	ShouldSwap() bool

	ViewMatrix(eye Eye) vmath.Mat4
	ProjMatrix(eye Eye, znear, zfar float32) vmath.Mat4

	// EyeHeight returns the user's eye height above the floor in meters.
	EyeHeight() float32

	HeadPosition() vmath.Vec3
	HeadOrientation() vmath.Quat
	HeadMatrix() vmath.Mat4

	HandPosition(h Hand) vmath.Vec3
	HandOrientation(h Hand) vmath.Quat
	HandMatrix(h Hand) vmath.Mat4
}

// Factory constructs a module. The registry owner calls it and registers
// the result in one step.
type Factory func() Module

// Capabilities describes the host environment to modules.
type Capabilities struct {
	// StereoSurface is set when the window surface has separate left and
	// right back buffers.
	StereoSurface bool

	// SurfaceFormat is the host surface format, or TextureFormatUndefined.
	SurfaceFormat gputypes.TextureFormat

	// Mirror, if set, receives a scaled copy of CPU-backed render
	// textures in DrawMirror.
	Mirror xdraw.Image
}

// Host is the set of services the session provides to its modules.
type Host interface {
	// Logger returns a logger scoped to the calling module.
	Logger() *slog.Logger

	// Allocator returns the graphics collaborator for render textures.
	Allocator() render.Allocator

	// Capabilities describes the host environment.
	Capabilities() Capabilities

	// AddSource publishes a tracking source. Called from Start.
	AddSource(src *Source)

	// RemoveSource withdraws a tracking source. Called from Stop.
	RemoveSource(src *Source)
}
