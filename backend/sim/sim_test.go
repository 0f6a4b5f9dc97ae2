// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
	"github.com/gogpu/vr/vmath"
)

type testHost struct {
	sources []*backend.Source
}

func (h *testHost) Logger() *slog.Logger               { return slog.New(slog.DiscardHandler) }
func (h *testHost) Allocator() render.Allocator        { return render.ImageAllocator{} }
func (h *testHost) Capabilities() backend.Capabilities { return backend.Capabilities{} }

func (h *testHost) AddSource(s *backend.Source) {
	h.sources = append(h.sources, s)
}

func (h *testHost) RemoveSource(s *backend.Source) {
	if i := slices.Index(h.sources, s); i >= 0 {
		h.sources = slices.Delete(h.sources, i, i+1)
	}
}

func TestHMDDetect(t *testing.T) {
	h := NewHMDModule()
	if !h.Detect() {
		t.Error("connected HMD not detected")
	}
	h.SetConnected(false)
	if h.Detect() || h.Usable() {
		t.Error("unplugged HMD detected")
	}
	if NewHMDModule(WithDisconnected()).Detect() {
		t.Error("WithDisconnected HMD detected")
	}
}

func TestHMDStartRequiresConnection(t *testing.T) {
	h := NewHMDModule(WithDisconnected())
	_ = h.Init(&testHost{})
	if h.Start() {
		t.Error("Start() on unplugged HMD = true")
	}
}

func TestHMDRenderTexturePerEye(t *testing.T) {
	h := NewHMDModule(WithEyeResolution(backend.RightEye, 1000, 1100))
	if err := h.Init(&testHost{}); err != nil {
		t.Fatal(err)
	}
	h.SetFBSize(640, 480, 0.5)

	rt, err := h.RenderTexture()
	if err != nil {
		t.Fatal(err)
	}
	if rt.EyeWidth[render.LeftEye] != 540 || rt.EyeHeight[render.LeftEye] != 600 {
		t.Errorf("left eye = %dx%d, want 540x600", rt.EyeWidth[render.LeftEye], rt.EyeHeight[render.LeftEye])
	}
	if rt.EyeWidth[render.RightEye] != 500 || rt.EyeHeight[render.RightEye] != 550 {
		t.Errorf("right eye = %dx%d, want 500x550", rt.EyeWidth[render.RightEye], rt.EyeHeight[render.RightEye])
	}
	if rt.Width != 1040 || rt.Height != 600 {
		t.Errorf("logical size = %dx%d, want 1040x600", rt.Width, rt.Height)
	}
	if rt.TexWidth != 2048 || rt.TexHeight != 1024 {
		t.Errorf("texture size = %dx%d, want 2048x1024", rt.TexWidth, rt.TexHeight)
	}
}

func TestHMDFrames(t *testing.T) {
	h := NewHMDModule()
	_ = h.Init(&testHost{})
	if !h.Start() {
		t.Fatal("Start() = false")
	}

	h.DrawStart()
	h.DrawEye(backend.LeftEye)
	h.DrawEye(backend.RightEye)
	h.DrawDone()
	h.DrawStart()
	h.Stop()

	if h.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", h.Frames())
	}
	if h.Discarded() != 1 {
		t.Errorf("Discarded = %d, want 1", h.Discarded())
	}
	if h.ShouldSwap() {
		t.Error("HMD should not ask for a buffer swap")
	}
}

func TestHMDRecenter(t *testing.T) {
	h := NewHMDModule()
	h.SetHeadPose(vmath.V3(1, 1.7, 2), vmath.IdentityQuat())

	h.Recenter()
	if got := h.HeadPosition(); got != vmath.V3(0, 1.7, 0) {
		t.Errorf("floor recenter position = %v, want (0, 1.7, 0)", got)
	}

	h.SetOriginMode(backend.OriginHead)
	h.Recenter()
	if got := h.HeadPosition(); got != (vmath.Vec3{}) {
		t.Errorf("head recenter position = %v, want origin", got)
	}
}

func TestHMDViewMatrix(t *testing.T) {
	h := NewHMDModule()
	h.SetHeadPose(vmath.V3(0, 1.5, 0), vmath.IdentityQuat())

	left := h.ViewMatrix(backend.LeftEye)
	// The left eye sits at x = -IPD/2, so the view moves the world right.
	want := vmath.Translation(DefaultIPD/2, -1.5, 0)
	if !left.ApproxEqual(want, 1e-6) {
		t.Errorf("left view = %v, want %v", left, want)
	}

	// A point at the eye maps to the view origin.
	eyePos := vmath.V3(-DefaultIPD/2, 1.5, 0)
	if got := left.TransformPoint(eyePos); got.Len() > 1e-6 {
		t.Errorf("eye position in view space = %v, want origin", got)
	}

	h.SetHeadPose(vmath.V3(0, 1.5, 0), vmath.AxisAngle(vmath.V3(0, 1, 0), math32.Pi/2))
	rot := h.ViewMatrix(backend.RightEye)
	if got := rot.TransformPoint(h.HeadMatrix().TransformPoint(vmath.V3(DefaultIPD/2, 0, 0))); got.Len() > 1e-5 {
		t.Errorf("rotated right eye in view space = %v, want origin", got)
	}
}

func TestHMDHandTracking(t *testing.T) {
	h := NewHMDModule()
	if h.HaveHandTracking(backend.LeftHand) {
		t.Error("hand tracking without WithHandTracking")
	}
	h = NewHMDModule(WithHandTracking())
	h.SetHandPose(backend.RightHand, vmath.V3(0.3, 1, -0.2), vmath.IdentityQuat())
	if !h.HaveHandTracking(backend.RightHand) {
		t.Fatal("HaveHandTracking = false")
	}
	if got := h.HandMatrix(backend.RightHand).Position(); got != vmath.V3(0.3, 1, -0.2) {
		t.Errorf("hand position = %v", got)
	}
}

func TestControllerSources(t *testing.T) {
	host := &testHost{}
	c := NewControllerModule()
	if err := c.Init(host); err != nil {
		t.Fatal(err)
	}
	if !c.Start() {
		t.Fatal("Start() = false")
	}
	if len(host.sources) != 3 {
		t.Fatalf("published %d sources, want 3", len(host.sources))
	}
	names := []string{LeftSource, RightSource, PadSource}
	spatial := []bool{true, true, false}
	for i, src := range host.sources {
		if src.Name() != names[i] || src.Spatial() != spatial[i] {
			t.Errorf("source %d = %s spatial=%v", i, src.Name(), src.Spatial())
		}
		if src.Module() != c {
			t.Errorf("source %d owner is not the controller", i)
		}
	}

	// Starting twice does not publish again.
	c.Start()
	if len(host.sources) != 3 {
		t.Errorf("published %d sources after second Start, want 3", len(host.sources))
	}

	c.SetHandPose(backend.LeftHand, vmath.V3(1, 2, 3), vmath.IdentityQuat())
	c.Update()
	if got := host.sources[0].Matrix().Position(); got != vmath.V3(1, 2, 3) {
		t.Errorf("left source matrix position = %v, want (1,2,3)", got)
	}

	c.Stop()
	if len(host.sources) != 0 || c.Sources() != nil {
		t.Errorf("sources after Stop: %d", len(host.sources))
	}
}

func TestControllerStartBeforeInit(t *testing.T) {
	if NewControllerModule().Start() {
		t.Error("Start before Init should fail")
	}
}

func TestControllerControls(t *testing.T) {
	c := NewControllerModule()
	if c.NumButtons() != 7 || c.NumAxes() != 2 || c.NumSticks() != 2 {
		t.Fatalf("controls = %d/%d/%d", c.NumButtons(), c.NumAxes(), c.NumSticks())
	}

	c.Press("a", true)
	if !c.ButtonState(4) || c.ButtonName(4) != "a" {
		t.Error("button a not pressed")
	}
	c.Press("unknown", true)

	c.SetAxis("right-trigger", 2)
	if got := c.AxisValue(1); got != 1 {
		t.Errorf("clamped axis = %v, want 1", got)
	}
	c.SetStick("left-stick", vmath.Vec2{X: -3, Y: 0.5})
	if got := c.StickPosition(0); got != (vmath.Vec2{X: -1, Y: 0.5}) {
		t.Errorf("clamped stick = %v", got)
	}

	if c.ButtonState(99) || c.AxisValue(-1) != 0 || c.StickName(5) != "" {
		t.Error("out-of-range controls should be neutral")
	}
}

func TestControllerActions(t *testing.T) {
	c := NewControllerModule()
	c.Press("left-grip", true)

	if !c.Action(backend.LeftHand, backend.ActionGrab) || !c.Action(backend.LeftHand, backend.ActionPoint) {
		t.Error("grip should grab and point")
	}
	if c.Action(backend.RightHand, backend.ActionGrab) {
		t.Error("right hand should not grab")
	}

	c.SetAxis("left-trigger", 0.9)
	if !c.Action(backend.LeftHand, backend.ActionFist) || c.Action(backend.LeftHand, backend.ActionPoint) {
		t.Error("grip plus trigger should make a fist, not point")
	}

	c.SetStick("right-stick", vmath.Vec2{X: 0.3})
	if !c.Action(backend.RightHand, backend.ActionThumb) || c.Action(backend.RightHand, backend.ActionNavigate) {
		t.Error("small deflection should be thumb only")
	}
	c.SetStick("right-stick", vmath.Vec2{Y: 0.8})
	if !c.Action(backend.RightHand, backend.ActionNavigate) {
		t.Error("large deflection should navigate")
	}
}
