package vr

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
)

// frameState tracks the draw calls of the current frame.
type frameState struct {
	open bool
	eyes [2]bool
}

// DrawStart begins a frame. It updates every active module, makes sure the
// render target and its framebuffer exist, then lets the display module
// prepare the frame.
//
// Render target allocation failures are logged and drawing continues in a
// degraded state; they can be inspected with RenderTexture.
func (s *Session) DrawStart() error {
	if s.state != InSession {
		return ErrNotInSession
	}
	if s.frame.open {
		return fmt.Errorf("%w: DrawStart before DrawDone", ErrFrameOrder)
	}

	for _, m := range s.reg.Active() {
		m.Update()
	}
	s.ensureFramebuffer()

	s.display.DrawStart()
	s.frame = frameState{open: true}
	return nil
}

// DrawEye hands the finished view of eye to the display module. Each eye
// must be drawn exactly once per frame.
func (s *Session) DrawEye(eye backend.Eye) error {
	if s.state != InSession {
		return ErrNotInSession
	}
	if !eye.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEye, int(eye))
	}
	if !s.frame.open {
		return fmt.Errorf("%w: DrawEye outside DrawStart/DrawDone", ErrFrameOrder)
	}
	if s.frame.eyes[eye] {
		return fmt.Errorf("%w: %s eye drawn twice", ErrFrameOrder, eye)
	}

	s.display.DrawEye(eye)
	s.frame.eyes[eye] = true
	return nil
}

// DrawDone submits the frame. If an eye was not drawn the frame is still
// submitted and closed, and ErrFrameOrder is returned.
func (s *Session) DrawDone() error {
	if s.state != InSession {
		return ErrNotInSession
	}
	if !s.frame.open {
		return fmt.Errorf("%w: DrawDone without DrawStart", ErrFrameOrder)
	}

	s.display.DrawDone()
	eyes := s.frame.eyes
	s.frame = frameState{}

	if !eyes[backend.LeftEye] || !eyes[backend.RightEye] {
		return fmt.Errorf("%w: frame submitted without both eyes", ErrFrameOrder)
	}
	return nil
}

// DrawMirror shows the last frame in the application window, if the
// display module supports it.
func (s *Session) DrawMirror() {
	if s.state == InSession {
		s.display.DrawMirror()
	}
}

// ShouldSwap reports whether the application should swap its window
// buffers after the frame.
func (s *Session) ShouldSwap() bool {
	if s.display == nil {
		return true
	}
	return s.display.ShouldSwap()
}

// ensureFramebuffer rebuilds the cached framebuffer when the render
// texture identity changed.
func (s *Session) ensureFramebuffer() {
	rt, err := s.display.RenderTexture()
	if err != nil {
		s.log.Warn("vr: render texture unavailable", "module", s.display.Name(), "err", err)
		return
	}
	if rt == nil || rt.Texture == nil {
		return
	}
	if s.fb != nil && s.fb.TextureID == rt.Texture.ID {
		return
	}

	s.releaseFramebuffer()
	fb, err := s.alloc.CreateFramebuffer(rt.Texture)
	switch {
	case errors.Is(err, render.ErrFramebufferIncomplete):
		s.log.Warn("vr: incomplete framebuffer", "err", err)
	case err != nil:
		s.log.Warn("vr: create framebuffer", "err", err)
	}
	s.fb = fb
}

// SetFBSize sets the window size in pixels. The display module resizes its
// render target on the next frame. Modules that render at their own
// recommended size, such as HMDs, ignore the window size.
func (s *Session) SetFBSize(width, height int) {
	s.winWidth = width
	s.winHeight = height
	if s.display != nil {
		s.display.SetFBSize(width, height, s.fbScale)
	}
}

// SetFBScale sets the render target resolution scale. Non-positive values
// reset it to 1. The display module applies it on the next frame, with or
// without a window size.
func (s *Session) SetFBScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	s.fbScale = scale
	if s.display != nil {
		s.display.SetFBSize(s.winWidth, s.winHeight, scale)
	}
}

// FBScale returns the render target resolution scale.
func (s *Session) FBScale() float32 {
	return s.fbScale
}

// RenderTexture returns the display module's render target, building it if
// needed. It returns nil without error when there is no display module.
func (s *Session) RenderTexture() (*render.RenderTexture, error) {
	if s.display == nil {
		return nil, nil
	}
	return s.display.RenderTexture()
}

// Framebuffer returns the framebuffer of the current render texture, or
// nil before the first frame.
func (s *Session) Framebuffer() *render.Framebuffer {
	return s.fb
}

// FBWidth returns the logical render target width covering both eyes.
func (s *Session) FBWidth() int {
	if rt := s.currentRT(); rt != nil {
		return rt.Width
	}
	return 0
}

// FBHeight returns the logical render target height.
func (s *Session) FBHeight() int {
	if rt := s.currentRT(); rt != nil {
		return rt.Height
	}
	return 0
}

// FBTexWidth returns the power-of-two width of the backing texture.
func (s *Session) FBTexWidth() int {
	if rt := s.currentRT(); rt != nil {
		return rt.TexWidth
	}
	return 0
}

// FBTexHeight returns the power-of-two height of the backing texture.
func (s *Session) FBTexHeight() int {
	if rt := s.currentRT(); rt != nil {
		return rt.TexHeight
	}
	return 0
}

// Viewport returns the area of eye inside the render target.
func (s *Session) Viewport(eye backend.Eye) image.Rectangle {
	rt := s.currentRT()
	if rt == nil || !eye.Valid() {
		return image.Rectangle{}
	}
	return rt.Viewport(int(eye))
}

// EyeBounds returns the texture coordinates covered by eye.
func (s *Session) EyeBounds(eye backend.Eye) (umin, vmin, umax, vmax float32) {
	rt := s.currentRT()
	if rt == nil || !eye.Valid() {
		return 0, 0, 0, 0
	}
	return rt.EyeBounds(int(eye))
}

func (s *Session) currentRT() *render.RenderTexture {
	if s.display == nil {
		return nil
	}
	rt, err := s.display.RenderTexture()
	if err != nil {
		return nil
	}
	return rt
}
