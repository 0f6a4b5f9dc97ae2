// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render owns the shared off-screen stereo render target.
//
// # Render Texture
//
// A display module renders both eyes into a single texture. The logical
// framebuffer is the two eye viewports placed next to each other; the
// backing texture is rounded up to the next power of two in each dimension:
//
//	+-----------+-----------+------+
//	| left eye  | right eye |      |
//	|           |           |      |
//	+-----------+-----------+      |
//	|                              |
//	+------------------------------+  TexWidth x TexHeight
//
// [Cache] computes this layout from the requested size and resolution scale
// and reallocates the texture only when the rounded dimensions change.
//
// # Allocators
//
// The package does not draw. Graphics resources are obtained from an
// [Allocator]:
//   - [HALAllocator] creates color and depth/stencil textures on a
//     gogpu/wgpu HAL device (optionally shared by the host through a
//     gpucontext.DeviceProvider).
//   - [ImageAllocator] backs textures with CPU images, for headless use
//     and tests.
//
// Every allocation gets a new texture ID. Framebuffers built on top of a
// texture are keyed by that ID and must be rebuilt when it changes.
package render
