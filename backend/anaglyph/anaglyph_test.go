// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anaglyph

import (
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
)

type testHost struct {
	alloc  render.Allocator
	mirror xdraw.Image
}

func (h *testHost) Logger() *slog.Logger         { return slog.New(slog.DiscardHandler) }
func (h *testHost) Allocator() render.Allocator  { return h.alloc }
func (h *testHost) AddSource(*backend.Source)    {}
func (h *testHost) RemoveSource(*backend.Source) {}

func (h *testHost) Capabilities() backend.Capabilities {
	return backend.Capabilities{Mirror: h.mirror}
}

func createNoopDevice(t *testing.T) (hal.Device, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	return openDev.Device, func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
}

func TestShaderSource(t *testing.T) {
	for _, req := range []string{"@vertex", "@fragment", "vs_main", "fs_main", "textureSample", "EyeBounds"} {
		if !strings.Contains(compositeWGSL, req) {
			t.Errorf("composite shader missing %q", req)
		}
	}
}

func TestShaderCompiles(t *testing.T) {
	code, err := compileShader(compositeWGSL)
	if err != nil {
		t.Fatalf("compileShader: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("empty SPIR-V")
	}
	// SPIR-V magic number.
	if code[0] != 0x07230203 {
		t.Errorf("magic = %#x, want 0x07230203", code[0])
	}
}

func TestModuleIdentity(t *testing.T) {
	m := NewModule()
	if m.Name() != "anaglyph" || m.Kind() != backend.KindDisplay {
		t.Errorf("Name, Kind = %q, %v", m.Name(), m.Kind())
	}
	if m.Priority() != 63 {
		t.Errorf("Priority = %d, want 63", m.Priority())
	}
}

func TestStartStopOnGPU(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	m := NewModule()
	if err := m.Init(&testHost{alloc: render.NewHALAllocator(device)}); err != nil {
		t.Fatal(err)
	}
	m.SetFBSize(640, 480, 1)
	if !m.Start() {
		t.Fatal("Start() = false")
	}
	if m.Shader() == nil || m.ShaderModule() == nil {
		t.Error("expected compiled shader and shader module")
	}

	rt, err := m.RenderTexture()
	if err != nil {
		t.Fatal(err)
	}
	if rt.Width != 1280 || rt.Height != 480 {
		t.Errorf("logical size = %dx%d, want 1280x480", rt.Width, rt.Height)
	}

	m.Stop()
	if m.ShaderModule() != nil {
		t.Error("Stop should release the shader module")
	}
	m.Destroy()
}

func TestDrawMirrorComposite(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 32, 24))
	m := NewModule()
	if err := m.Init(&testHost{alloc: render.ImageAllocator{}, mirror: dst}); err != nil {
		t.Fatal(err)
	}
	m.SetFBSize(64, 48, 1)
	if !m.Start() {
		t.Fatal("Start() = false")
	}
	if m.ShaderModule() != nil {
		t.Error("CPU allocator should not create a shader module")
	}

	rt, err := m.RenderTexture()
	if err != nil {
		t.Fatal(err)
	}
	white := image.NewUniform(color.RGBA{255, 255, 255, 255})
	xdraw.Draw(rt.Texture.Pixels, rt.Viewport(render.LeftEye), white, image.Point{}, xdraw.Src)
	blue := image.NewUniform(color.RGBA{0, 0, 200, 255})
	xdraw.Draw(rt.Texture.Pixels, rt.Viewport(render.RightEye), blue, image.Point{}, xdraw.Src)

	m.DrawMirror()

	want := color.RGBA{R: 255, G: 0, B: 200, A: 255}
	for _, p := range []image.Point{{0, 0}, {16, 12}, {31, 23}} {
		if got := dst.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestDrawMirrorWithoutPixels(t *testing.T) {
	m := NewModule()
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := m.composite(dst, nil); err == nil {
		t.Error("composite(nil) should fail")
	}
}
