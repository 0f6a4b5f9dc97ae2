// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop HAL device for testing.
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
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, cleanup
}

func TestHALAllocatorCreateTexture(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	a := NewHALAllocator(device)
	desc := DefaultTextureDescriptor(1024, 512)
	tex, err := a.CreateTexture(&desc)
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	if tex.Color == nil || tex.Depth == nil {
		t.Error("expected color and depth textures")
	}
	if tex.Width != 1024 || tex.Height != 512 {
		t.Errorf("size = %dx%d, want 1024x512", tex.Width, tex.Height)
	}

	fb, err := a.CreateFramebuffer(tex)
	if err != nil {
		t.Fatalf("CreateFramebuffer failed: %v", err)
	}
	if !fb.Complete() {
		t.Error("framebuffer should be complete")
	}

	a.DestroyFramebuffer(fb)
	a.DestroyTexture(tex)
	if tex.Color != nil || tex.Depth != nil {
		t.Error("textures should be cleared after DestroyTexture")
	}
}

func TestHALAllocatorColorOnly(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	a := NewHALAllocator(device)
	tex, err := a.CreateTexture(&TextureDescriptor{
		Width:       64,
		Height:      64,
		Format:      gputypes.TextureFormatUndefined,
		DepthFormat: gputypes.TextureFormatUndefined,
	})
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	defer a.DestroyTexture(tex)

	if tex.Format != DefaultColorFormat {
		t.Errorf("Format = %v, want %v", tex.Format, DefaultColorFormat)
	}
	fb, err := a.CreateFramebuffer(tex)
	if !errors.Is(err, ErrFramebufferIncomplete) {
		t.Errorf("CreateFramebuffer error = %v, want ErrFramebufferIncomplete", err)
	}
	if fb == nil || fb.Color == nil {
		t.Fatal("expected a color-only framebuffer")
	}
	if fb.Complete() {
		t.Error("color-only framebuffer should not be complete")
	}
	a.DestroyFramebuffer(fb)
}

func TestHALAllocatorWithCache(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	c := NewCache(NewHALAllocator(device), WithLabel("test"))
	defer c.Release()

	c.SetSize(1920, 1080, 1)
	rt, err := c.RenderTexture()
	if err != nil {
		t.Fatalf("RenderTexture failed: %v", err)
	}
	if rt.Texture.Width != 2048 || rt.Texture.Height != 2048 {
		t.Errorf("texture = %dx%d, want 2048x2048", rt.Texture.Width, rt.Texture.Height)
	}
}

type halProvider struct {
	nullProvider
	device hal.Device
}

func (p halProvider) HalDevice() any { return p.device }

func TestDeviceFromProvider(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := DeviceFromProvider(nil); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("nil provider: error = %v, want ErrNoHALDevice", err)
	}
	if _, err := DeviceFromProvider(nullProvider{}); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("provider without HAL: error = %v, want ErrNoHALDevice", err)
	}

	a, err := NewHALAllocatorFromProvider(halProvider{device: device})
	if err != nil {
		t.Fatalf("NewHALAllocatorFromProvider failed: %v", err)
	}
	if a.Device() != device {
		t.Error("allocator does not use the provider device")
	}
	if f := SurfaceFormat(halProvider{device: device}); f != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat = %v, want BGRA8Unorm", f)
	}
}
