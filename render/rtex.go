// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "image"

// Eye indices used by the per-eye layout arrays.
const (
	LeftEye  = 0
	RightEye = 1
)

// RenderTexture describes the shared stereo render target: the logical
// framebuffer size, the power-of-two backing texture and the per-eye
// viewports inside it.
//
// Invariant: TexWidth >= Width and TexHeight >= Height whenever Texture is set.
type RenderTexture struct {
	// Width and Height are the logical framebuffer size (both eyes).
	Width  int
	Height int

	// TexWidth and TexHeight are the backing texture size, each rounded
	// up to the next power of two.
	TexWidth  int
	TexHeight int

	// Per-eye viewport offsets and sizes inside the texture.
	EyeX      [2]int
	EyeY      [2]int
	EyeWidth  [2]int
	EyeHeight [2]int

	// Scale is the resolution scale the layout was computed with.
	Scale float32

	// Texture is the backing texture, nil until the first successful build.
	Texture *Texture
}

// Viewport returns the viewport rectangle of eye inside the texture.
func (rt *RenderTexture) Viewport(eye int) image.Rectangle {
	if eye < 0 || eye > 1 {
		return image.Rectangle{}
	}
	return image.Rect(rt.EyeX[eye], rt.EyeY[eye],
		rt.EyeX[eye]+rt.EyeWidth[eye], rt.EyeY[eye]+rt.EyeHeight[eye])
}

// EyeBounds returns the normalized texture coordinates covered by eye,
// as needed by compositors that sample the shared texture.
func (rt *RenderTexture) EyeBounds(eye int) (umin, vmin, umax, vmax float32) {
	if rt.TexWidth <= 0 || rt.TexHeight <= 0 || eye < 0 || eye > 1 {
		return 0, 0, 0, 0
	}
	tw, th := float32(rt.TexWidth), float32(rt.TexHeight)
	umin = float32(rt.EyeX[eye]) / tw
	vmin = float32(rt.EyeY[eye]) / th
	umax = float32(rt.EyeX[eye]+rt.EyeWidth[eye]) / tw
	vmax = float32(rt.EyeY[eye]+rt.EyeHeight[eye]) / th
	return umin, vmin, umax, vmax
}

// NextPow2 returns the smallest power of two >= x. Values below 1 yield 1.
func NextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}
