// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"log/slog"

	"github.com/gogpu/vr/render"
	"github.com/gogpu/vr/vmath"
)

// Base implements every Module method except Name and Kind with a neutral
// result, so that unimplemented capabilities degrade gracefully.
type Base struct {
	priority int
	usable   bool
	active   bool
	host     Host
}

// Init stores the host. Modules overriding Init must call it.
func (b *Base) Init(h Host) error {
	b.host = h
	return nil
}

// Host returns the host passed to Init, or nil.
func (b *Base) Host() Host {
	return b.host
}

// Logger returns the module-scoped host logger, or a silent logger
// before Init.
func (b *Base) Logger() *slog.Logger {
	if b.host == nil {
		return slog.New(discardHandler{})
	}
	return b.host.Logger()
}

// Allocator returns the host allocator, or nil before Init.
func (b *Base) Allocator() render.Allocator {
	if b.host == nil {
		return nil
	}
	return b.host.Allocator()
}

// Capabilities returns the host capabilities, or the zero value before Init.
func (b *Base) Capabilities() Capabilities {
	if b.host == nil {
		return Capabilities{}
	}
	return b.host.Capabilities()
}

func (b *Base) Destroy() {}

func (b *Base) Priority() int     { return b.priority }
func (b *Base) SetPriority(p int) { b.priority = p }

// Detect returns the usability recorded with SetUsable.
func (b *Base) Detect() bool { return b.usable }

// SetUsable records the result of hardware detection.
func (b *Base) SetUsable(usable bool) { b.usable = usable }

func (b *Base) Usable() bool { return b.usable }

func (b *Base) Activate()    { b.active = true }
func (b *Base) Deactivate()  { b.active = false }
func (b *Base) Active() bool { return b.active }

func (b *Base) Start() bool { return true }
func (b *Base) Stop()       {}
func (b *Base) Update()     {}

func (b *Base) SetOriginMode(OriginMode) {}
func (b *Base) Recenter()                {}

func (b *Base) HaveHeadTracking() bool       { return false }
func (b *Base) HaveHandTracking(Hand) bool   { return false }
func (b *Base) NumButtons() int              { return 0 }
func (b *Base) ButtonName(int) string        { return "" }
func (b *Base) ButtonState(int) bool         { return false }
func (b *Base) NumAxes() int                 { return 0 }
func (b *Base) AxisName(int) string          { return "" }
func (b *Base) AxisValue(int) float32        { return 0 }
func (b *Base) NumSticks() int               { return 0 }
func (b *Base) StickName(int) string         { return "" }
func (b *Base) StickPosition(int) vmath.Vec2 { return vmath.Vec2{} }
func (b *Base) Action(Hand, Action) bool     { return false }

func (b *Base) SetFBSize(int, int, float32) {}

func (b *Base) RenderTexture() (*render.RenderTexture, error) { return nil, nil }

func (b *Base) DrawStart()       {}
func (b *Base) DrawEye(Eye)      {}
func (b *Base) DrawDone()        {}
func (b *Base) DrawMirror()      {}
func (b *Base) ShouldSwap() bool { return true }

func (b *Base) ViewMatrix(Eye) vmath.Mat4                   { return vmath.Identity4() }
func (b *Base) ProjMatrix(Eye, float32, float32) vmath.Mat4 { return vmath.Identity4() }

func (b *Base) EyeHeight() float32 { return DefaultEyeHeight }

func (b *Base) HeadPosition() vmath.Vec3    { return vmath.Vec3{} }
func (b *Base) HeadOrientation() vmath.Quat { return vmath.IdentityQuat() }
func (b *Base) HeadMatrix() vmath.Mat4      { return vmath.Identity4() }

func (b *Base) HandPosition(Hand) vmath.Vec3    { return vmath.Vec3{} }
func (b *Base) HandOrientation(Hand) vmath.Quat { return vmath.IdentityQuat() }
func (b *Base) HandMatrix(Hand) vmath.Mat4      { return vmath.Identity4() }

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
