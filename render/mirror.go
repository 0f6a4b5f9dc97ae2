// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Mirror scales the logical framebuffer area of rt (both eyes) into dst.
// Only CPU-backed textures can be mirrored this way.
func Mirror(dst xdraw.Image, rt *RenderTexture) error {
	if rt == nil || rt.Texture == nil || rt.Texture.Pixels == nil {
		return ErrNoPixels
	}
	src := image.Rect(0, 0, rt.Width, rt.Height)
	xdraw.BiLinear.Scale(dst, dst.Bounds(), rt.Texture.Pixels, src, xdraw.Src, nil)
	return nil
}
