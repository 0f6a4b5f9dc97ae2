// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
)

// CacheOption configures a Cache during creation.
type CacheOption func(*Cache)

// WithLabel sets the debug label prefix of allocated textures.
func WithLabel(label string) CacheOption {
	return func(c *Cache) {
		c.label = label
	}
}

// WithLogger sets the logger used for allocation diagnostics.
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithColorFormat overrides the color attachment format.
// TextureFormatUndefined keeps the default.
func WithColorFormat(f gputypes.TextureFormat) CacheOption {
	return func(c *Cache) {
		if f != gputypes.TextureFormatUndefined {
			c.format = f
		}
	}
}

// Cache lazily builds and rebuilds a RenderTexture.
//
// Size changes are pure configuration. The texture is (re)allocated by
// RenderTexture, and only when the power-of-two texture dimensions differ
// from the last build, so repeated identical size requests never
// reallocate while a resolution scale change takes effect on the next call.
//
// Cache is NOT safe for concurrent use.
type Cache struct {
	alloc       Allocator
	log         *slog.Logger
	label       string
	format      gputypes.TextureFormat
	depthFormat gputypes.TextureFormat

	eyeWidth  [2]int
	eyeHeight [2]int
	scale     float32

	rt RenderTexture
}

// NewCache creates a cache that allocates through alloc.
func NewCache(alloc Allocator, opts ...CacheOption) *Cache {
	c := &Cache{
		alloc:       alloc,
		log:         slog.New(discardHandler{}),
		label:       "vr_render_texture",
		format:      DefaultColorFormat,
		depthFormat: DefaultDepthFormat,
		scale:       1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSize splits a width x height framebuffer evenly between the two eyes
// and sets the resolution scale. It does not allocate.
func (c *Cache) SetSize(width, height int, scale float32) {
	half := width / 2
	c.SetEyeSize(LeftEye, half, height)
	c.SetEyeSize(RightEye, width-half, height)
	c.SetScale(scale)
}

// SetEyeSize sets the unscaled viewport size of one eye. The eyes may
// differ in size. It does not allocate.
func (c *Cache) SetEyeSize(eye, width, height int) {
	if eye < 0 || eye > 1 {
		return
	}
	c.eyeWidth[eye] = width
	c.eyeHeight[eye] = height
}

// SetScale sets the resolution scale. Non-positive values reset it to 1.
func (c *Cache) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
}

// Scale returns the current resolution scale.
func (c *Cache) Scale() float32 {
	return c.scale
}

// Current returns the render texture as of the last build, without
// rebuilding it.
func (c *Cache) Current() *RenderTexture {
	return &c.rt
}

// RenderTexture recomputes the layout and returns the render texture,
// allocating or reallocating the backing texture if needed.
//
// The returned pointer is owned by the cache and stays valid until
// Release. On allocation failure the layout is still updated, Texture is
// nil and the error is returned.
func (c *Cache) RenderTexture() (*RenderTexture, error) {
	rt := &c.rt
	c.layout()

	if rt.Width <= 0 || rt.Height <= 0 {
		return rt, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rt.Width, rt.Height)
	}

	texWidth := NextPow2(rt.Width)
	texHeight := NextPow2(rt.Height)
	if rt.Texture != nil && rt.TexWidth == texWidth && rt.TexHeight == texHeight {
		return rt, nil
	}
	if c.alloc == nil {
		return rt, ErrNoAllocator
	}

	c.destroyTexture()

	c.log.Debug("render: creating texture",
		"texture", fmt.Sprintf("%dx%d", texWidth, texHeight),
		"framebuffer", fmt.Sprintf("%dx%d", rt.Width, rt.Height))

	tex, err := c.alloc.CreateTexture(&TextureDescriptor{
		Label:       c.label,
		Width:       uint32(texWidth),
		Height:      uint32(texHeight),
		Format:      c.format,
		DepthFormat: c.depthFormat,
	})
	if err != nil {
		return rt, fmt.Errorf("render: create %dx%d texture: %w", texWidth, texHeight, err)
	}
	tex.ID = nextTextureID()

	rt.Texture = tex
	rt.TexWidth = texWidth
	rt.TexHeight = texHeight
	return rt, nil
}

// Release destroys the backing texture. The cache may be used again;
// the next RenderTexture call reallocates.
func (c *Cache) Release() {
	c.destroyTexture()
}

// layout recomputes the logical size and per-eye viewports. The left eye
// is at x = 0, the right eye immediately to its right, both at the top.
func (c *Cache) layout() {
	rt := &c.rt
	rt.Scale = c.scale

	for i := 0; i < 2; i++ {
		rt.EyeWidth[i] = int(float32(c.eyeWidth[i]) * c.scale)
		rt.EyeHeight[i] = int(float32(c.eyeHeight[i]) * c.scale)
		rt.EyeY[i] = 0
	}
	rt.EyeX[LeftEye] = 0
	rt.EyeX[RightEye] = rt.EyeWidth[LeftEye]

	rt.Width = rt.EyeWidth[LeftEye] + rt.EyeWidth[RightEye]
	rt.Height = max(rt.EyeHeight[LeftEye], rt.EyeHeight[RightEye])
}

func (c *Cache) destroyTexture() {
	if c.rt.Texture == nil {
		return
	}
	if c.alloc != nil {
		c.alloc.DestroyTexture(c.rt.Texture)
	}
	c.rt.Texture = nil
	c.rt.TexWidth = 0
	c.rt.TexHeight = 0
}

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
