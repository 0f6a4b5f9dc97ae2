// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// ImageAllocator backs render textures with CPU images.
// Depth attachments are not emulated.
type ImageAllocator struct{}

// CreateTexture allocates an RGBA image of the requested size.
func (ImageAllocator) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	return &Texture{
		Label:  desc.Label,
		Width:  desc.Width,
		Height: desc.Height,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Pixels: image.NewRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height))),
	}, nil
}

// DestroyTexture drops the image of tex.
func (ImageAllocator) DestroyTexture(tex *Texture) {
	if tex != nil {
		tex.Pixels = nil
	}
}

// CreateFramebuffer returns a framebuffer drawing straight into the image.
func (ImageAllocator) CreateFramebuffer(tex *Texture) (*Framebuffer, error) {
	if tex == nil || tex.Pixels == nil {
		return nil, fmt.Errorf("%w: no pixels", ErrFramebufferIncomplete)
	}
	return &Framebuffer{
		TextureID: tex.ID,
		Width:     tex.Width,
		Height:    tex.Height,
		Pixels:    tex.Pixels,
	}, nil
}

// DestroyFramebuffer is a no-op; the image belongs to the texture.
func (ImageAllocator) DestroyFramebuffer(*Framebuffer) {}

var _ Allocator = ImageAllocator{}
