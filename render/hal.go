// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// HALAllocator allocates render textures on a gogpu/wgpu HAL device.
//
// Each texture is a single-sample color attachment usable as a render
// target, a sampled texture (for compositing and mirroring) and a copy
// source, plus a depth/stencil attachment of the same size.
type HALAllocator struct {
	device hal.Device
}

// NewHALAllocator creates an allocator for device.
func NewHALAllocator(device hal.Device) *HALAllocator {
	return &HALAllocator{device: device}
}

// NewHALAllocatorFromProvider creates an allocator on the device shared by
// the host application.
//
// The provider must also expose HalDevice() any returning a hal.Device,
// as gogpu's context providers do.
func NewHALAllocatorFromProvider(provider gpucontext.DeviceProvider) (*HALAllocator, error) {
	device, err := DeviceFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewHALAllocator(device), nil
}

// DeviceFromProvider extracts the HAL device from a host device provider.
func DeviceFromProvider(provider gpucontext.DeviceProvider) (hal.Device, error) {
	if provider == nil {
		return nil, ErrNoHALDevice
	}
	hp, ok := provider.(interface{ HalDevice() any })
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is %T", ErrNoHALDevice, hp.HalDevice())
	}
	return device, nil
}

// SurfaceFormat returns the host surface format, or TextureFormatUndefined
// if the provider does not report one.
func SurfaceFormat(provider gpucontext.DeviceProvider) gputypes.TextureFormat {
	if sf, ok := provider.(interface {
		SurfaceFormat() gputypes.TextureFormat
	}); ok {
		return sf.SurfaceFormat()
	}
	return gputypes.TextureFormatUndefined
}

// Device returns the underlying HAL device.
func (a *HALAllocator) Device() hal.Device {
	return a.device
}

// CreateTexture allocates the color and depth/stencil textures.
func (a *HALAllocator) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	format := desc.Format
	if format == gputypes.TextureFormatUndefined {
		format = DefaultColorFormat
	}
	size := hal.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: 1}

	color, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label + "_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage: gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageTextureBinding |
			gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create color texture: %w", err)
	}

	tex := &Texture{
		Label:  desc.Label,
		Width:  desc.Width,
		Height: desc.Height,
		Format: format,
		Color:  color,
	}

	if desc.DepthFormat == gputypes.TextureFormatUndefined {
		return tex, nil
	}

	depth, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label + "_depth_stencil",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.DepthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		a.DestroyTexture(tex)
		return nil, fmt.Errorf("create depth/stencil texture: %w", err)
	}
	tex.Depth = depth
	return tex, nil
}

// DestroyTexture releases both attachments of tex.
func (a *HALAllocator) DestroyTexture(tex *Texture) {
	if tex == nil {
		return
	}
	if tex.Depth != nil {
		a.device.DestroyTexture(tex.Depth)
		tex.Depth = nil
	}
	if tex.Color != nil {
		a.device.DestroyTexture(tex.Color)
		tex.Color = nil
	}
}

// CreateFramebuffer creates the attachment views of tex.
//
// If the depth view cannot be created the color-only framebuffer is
// returned together with ErrFramebufferIncomplete.
func (a *HALAllocator) CreateFramebuffer(tex *Texture) (*Framebuffer, error) {
	if tex == nil || tex.Color == nil {
		return nil, fmt.Errorf("%w: no color texture", ErrFramebufferIncomplete)
	}

	colorView, err := a.device.CreateTextureView(tex.Color, &hal.TextureViewDescriptor{
		Label: tex.Label + "_color_view",
	})
	if err != nil {
		return nil, fmt.Errorf("create color view: %w", err)
	}

	fb := &Framebuffer{
		TextureID: tex.ID,
		Width:     tex.Width,
		Height:    tex.Height,
		Color:     colorView,
	}

	if tex.Depth == nil {
		return fb, fmt.Errorf("%w: no depth attachment", ErrFramebufferIncomplete)
	}
	depthView, err := a.device.CreateTextureView(tex.Depth, &hal.TextureViewDescriptor{
		Label: tex.Label + "_depth_stencil_view",
	})
	if err != nil {
		return fb, fmt.Errorf("%w: create depth/stencil view: %v", ErrFramebufferIncomplete, err)
	}
	fb.Depth = depthView
	return fb, nil
}

// DestroyFramebuffer releases the attachment views of fb.
func (a *HALAllocator) DestroyFramebuffer(fb *Framebuffer) {
	if fb == nil {
		return
	}
	if fb.Depth != nil {
		a.device.DestroyTextureView(fb.Depth)
		fb.Depth = nil
	}
	if fb.Color != nil {
		a.device.DestroyTextureView(fb.Color)
		fb.Color = nil
	}
}

var _ Allocator = (*HALAllocator)(nil)
