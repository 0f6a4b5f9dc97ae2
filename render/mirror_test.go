// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestMirror(t *testing.T) {
	c := NewCache(ImageAllocator{})
	c.SetSize(64, 32, 1)
	rt, err := c.RenderTexture()
	if err != nil {
		t.Fatalf("RenderTexture() error = %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	px := rt.Texture.Pixels
	for y := 0; y < rt.Height; y++ {
		for x := 0; x < rt.Width; x++ {
			px.SetRGBA(x, y, red)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, 32, 16))
	if err := Mirror(dst, rt); err != nil {
		t.Fatalf("Mirror() error = %v", err)
	}
	if got := dst.RGBAAt(16, 8); got != red {
		t.Errorf("mirror pixel = %v, want %v", got, red)
	}
}

func TestMirrorRequiresPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := Mirror(dst, &RenderTexture{}); !errors.Is(err, ErrNoPixels) {
		t.Errorf("Mirror() error = %v, want ErrNoPixels", err)
	}
}
