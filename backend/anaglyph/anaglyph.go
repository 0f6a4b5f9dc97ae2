// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anaglyph implements the red/cyan anaglyph display module.
//
// Each eye is rendered at full window size. When the frame is presented
// the red channel of the left eye is combined with the green and blue
// channels of the right eye, for viewing with red/cyan glasses.
package anaglyph

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/backend/sbs"
	"github.com/gogpu/vr/render"
)

// Name is the module name.
const Name = "anaglyph"

//go:embed shaders/anaglyph.wgsl
var compositeWGSL string

// Module is the anaglyph display module. It reuses the side-by-side
// camera with a full-window layout per eye.
type Module struct {
	*sbs.Module

	spirv  []uint32
	device hal.Device
	shader hal.ShaderModule

	left  *image.RGBA
	right *image.RGBA
}

// New returns an anaglyph module. It has the backend.Factory signature.
func New() backend.Module {
	return NewModule()
}

// NewModule creates an anaglyph module.
func NewModule() *Module {
	m := &Module{
		Module: sbs.NewModule(sbs.WithLabel(Name), sbs.WithLayout(sbs.LayoutFull)),
	}
	if p, ok := backend.DefaultPriority(Name); ok {
		m.SetPriority(p)
	}
	return m
}

func (m *Module) Name() string { return Name }

// Start compiles the composite shader and, on a GPU allocator, creates its
// shader module.
func (m *Module) Start() bool {
	if !m.Module.Start() {
		return false
	}
	if err := m.createShader(); err != nil {
		m.Logger().Error("anaglyph: composite shader", "err", err)
		m.Module.Stop()
		return false
	}
	return true
}

// Stop releases the shader module.
func (m *Module) Stop() {
	m.destroyShader()
	m.Module.Stop()
}

// Destroy releases the shader module and the render texture.
func (m *Module) Destroy() {
	m.destroyShader()
	m.Module.Destroy()
}

// Shader returns the SPIR-V of the composite shader, or nil before Start.
func (m *Module) Shader() []uint32 {
	return m.spirv
}

// ShaderModule returns the GPU shader module, or nil on CPU allocators.
func (m *Module) ShaderModule() hal.ShaderModule {
	return m.shader
}

func (m *Module) createShader() error {
	if m.spirv == nil {
		spirv, err := compileShader(compositeWGSL)
		if err != nil {
			return err
		}
		m.spirv = spirv
	}

	ha, ok := m.Allocator().(*render.HALAllocator)
	if !ok || m.shader != nil {
		return nil
	}
	shader, err := ha.Device().CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "anaglyph_composite",
		Source: hal.ShaderSource{
			SPIRV: m.spirv,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	m.device = ha.Device()
	m.shader = shader
	m.Logger().Debug("anaglyph: shader module created", "words", len(m.spirv))
	return nil
}

func (m *Module) destroyShader() {
	if m.shader != nil && m.device != nil {
		m.device.DestroyShaderModule(m.shader)
	}
	m.shader = nil
	m.device = nil
}

// compileShader compiles WGSL to little-endian SPIR-V words.
func compileShader(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// DrawMirror composites CPU-backed eyes into the host mirror image.
func (m *Module) DrawMirror() {
	dst := m.Capabilities().Mirror
	if dst == nil {
		return
	}
	if err := m.composite(dst, m.Current()); err != nil {
		m.Logger().Debug("anaglyph: mirror skipped", "err", err)
	}
}

// composite writes the anaglyph of rt into dst.
func (m *Module) composite(dst xdraw.Image, rt *render.RenderTexture) error {
	if rt == nil || rt.Texture == nil || rt.Texture.Pixels == nil {
		return render.ErrNoPixels
	}
	b := dst.Bounds()
	size := image.Rect(0, 0, b.Dx(), b.Dy())
	if m.left == nil || m.left.Rect != size {
		m.left = image.NewRGBA(size)
		m.right = image.NewRGBA(size)
	}

	src := rt.Texture.Pixels
	xdraw.BiLinear.Scale(m.left, size, src, rt.Viewport(render.LeftEye), xdraw.Src, nil)
	xdraw.BiLinear.Scale(m.right, size, src, rt.Viewport(render.RightEye), xdraw.Src, nil)

	for y := 0; y < size.Dy(); y++ {
		for x := 0; x < size.Dx(); x++ {
			l := m.left.RGBAAt(x, y)
			r := m.right.RGBAAt(x, y)
			dst.Set(b.Min.X+x, b.Min.Y+y, color.RGBA{R: l.R, G: r.G, B: r.B, A: 0xff})
		}
	}
	return nil
}

var _ backend.Module = (*Module)(nil)
