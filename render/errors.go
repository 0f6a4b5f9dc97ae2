// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

// Common render errors.
var (
	// ErrInvalidSize is returned when the requested framebuffer has a zero
	// or negative dimension.
	ErrInvalidSize = errors.New("render: invalid framebuffer size")

	// ErrNoAllocator is returned when a texture is needed but the cache
	// has no allocator.
	ErrNoAllocator = errors.New("render: no allocator")

	// ErrFramebufferIncomplete is returned when a framebuffer could only be
	// partially built. The returned framebuffer is still usable for color
	// output.
	ErrFramebufferIncomplete = errors.New("render: framebuffer incomplete")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// HAL device.
	ErrNoHALDevice = errors.New("render: provider does not expose a HAL device")

	// ErrNoPixels is returned by Mirror when the render texture is not CPU backed.
	ErrNoPixels = errors.New("render: texture has no CPU pixels")
)
