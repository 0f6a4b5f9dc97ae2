// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Default attachment formats.
const (
	DefaultColorFormat = gputypes.TextureFormatRGBA8Unorm
	DefaultDepthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// TextureDescriptor describes a render texture to allocate.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the texture dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the color attachment format.
	Format gputypes.TextureFormat

	// DepthFormat is the depth/stencil attachment format.
	// TextureFormatUndefined requests no depth attachment.
	DepthFormat gputypes.TextureFormat
}

// DefaultTextureDescriptor returns a descriptor with the default color and
// depth formats.
func DefaultTextureDescriptor(width, height uint32) TextureDescriptor {
	return TextureDescriptor{
		Width:       width,
		Height:      height,
		Format:      DefaultColorFormat,
		DepthFormat: DefaultDepthFormat,
	}
}

// Texture is an allocated render texture: one color attachment and an
// optional depth/stencil attachment of the same size.
//
// Exactly one of the HAL textures (Color, Depth) or Pixels is set,
// depending on the allocator that created it.
type Texture struct {
	// ID identifies this allocation. It is assigned by the Cache and is
	// never reused within a process.
	ID uint64

	Label  string
	Width  uint32
	Height uint32
	Format gputypes.TextureFormat

	Color hal.Texture
	Depth hal.Texture

	Pixels *image.RGBA
}

// Framebuffer is the set of attachment views used as a render pass target.
type Framebuffer struct {
	// TextureID is the ID of the texture the views were created from.
	TextureID uint64

	Width  uint32
	Height uint32

	Color hal.TextureView
	Depth hal.TextureView

	Pixels *image.RGBA
}

// Complete reports whether the framebuffer has every attachment it needs.
func (fb *Framebuffer) Complete() bool {
	if fb == nil {
		return false
	}
	if fb.Pixels != nil {
		return true
	}
	return fb.Color != nil && fb.Depth != nil
}

// Allocator is the graphics collaborator that owns texture and framebuffer
// resources. Implementations are not safe for concurrent use.
type Allocator interface {
	// CreateTexture allocates a texture as described by desc.
	CreateTexture(desc *TextureDescriptor) (*Texture, error)

	// DestroyTexture releases a texture created by CreateTexture.
	DestroyTexture(tex *Texture)

	// CreateFramebuffer builds attachment views for tex. A partially built
	// framebuffer may be returned together with ErrFramebufferIncomplete.
	CreateFramebuffer(tex *Texture) (*Framebuffer, error)

	// DestroyFramebuffer releases a framebuffer created by CreateFramebuffer.
	DestroyFramebuffer(fb *Framebuffer)
}

var lastTextureID atomic.Uint64

// nextTextureID returns a process-unique texture identity.
func nextTextureID() uint64 {
	return lastTextureID.Add(1)
}
