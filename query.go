package vr

import (
	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/internal/autocfg"
	"github.com/gogpu/vr/vmath"
)

// SetOriginMode sets the tracking origin reference on every active module.
func (s *Session) SetOriginMode(mode backend.OriginMode) {
	s.origin = mode
	for _, m := range s.reg.Active() {
		m.SetOriginMode(mode)
	}
}

// OriginMode returns the tracking origin reference.
func (s *Session) OriginMode() backend.OriginMode {
	return s.origin
}

// Recenter makes the current head pose the tracking origin on every
// active module. In floor mode the origin height is kept.
func (s *Session) Recenter() {
	for _, m := range s.reg.Active() {
		m.Recenter()
	}
}

// SetUnitsScale sets how many application units make one meter.
// Non-positive values reset it to 1.
func (s *Session) SetUnitsScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	s.unitsScale = scale
}

// UnitsScale returns how many application units make one meter.
func (s *Session) UnitsScale() float32 {
	return s.unitsScale
}

// EyeHeight returns the user's eye height in application units.
func (s *Session) EyeHeight() float32 {
	h := float32(backend.DefaultEyeHeight)
	if s.display != nil {
		h = s.display.EyeHeight()
	}
	return h * s.unitsScale
}

// ViewMatrix returns the view matrix of eye, in application units.
func (s *Session) ViewMatrix(eye backend.Eye) vmath.Mat4 {
	if s.display == nil || !eye.Valid() {
		return vmath.Identity4()
	}
	return s.scaled(s.display.ViewMatrix(eye))
}

// ProjMatrix returns the projection matrix of eye for the given clip planes.
func (s *Session) ProjMatrix(eye backend.Eye, znear, zfar float32) vmath.Mat4 {
	if s.display == nil || !eye.Valid() {
		return vmath.Identity4()
	}
	return s.display.ProjMatrix(eye, znear, zfar)
}

// HaveHeadTracking reports whether the head pose accessors are valid.
func (s *Session) HaveHeadTracking() bool {
	return s.bind[autocfg.Head].Bound()
}

// HeadPosition returns the head position in application units.
func (s *Session) HeadPosition() vmath.Vec3 {
	b := s.bind[autocfg.Head]
	switch {
	case b.Native:
		return s.display.HeadPosition().Scale(s.unitsScale)
	case b.Source != nil:
		return b.Source.Position().Scale(s.unitsScale)
	}
	return vmath.Vec3{}
}

// HeadOrientation returns the head orientation.
func (s *Session) HeadOrientation() vmath.Quat {
	b := s.bind[autocfg.Head]
	switch {
	case b.Native:
		return s.display.HeadOrientation()
	case b.Source != nil:
		return b.Source.Orientation()
	}
	return vmath.IdentityQuat()
}

// HeadMatrix returns the head pose matrix in application units.
func (s *Session) HeadMatrix() vmath.Mat4 {
	b := s.bind[autocfg.Head]
	switch {
	case b.Native:
		return s.scaled(s.display.HeadMatrix())
	case b.Source != nil:
		return s.scaled(b.Source.Matrix())
	}
	return vmath.Identity4()
}

// HaveHandTracking reports whether the pose accessors of hand h are valid.
func (s *Session) HaveHandTracking(h backend.Hand) bool {
	return h.Valid() && s.bind[autocfg.HandSlot(h)].Bound()
}

// HandPosition returns the position of hand h in application units.
func (s *Session) HandPosition(h backend.Hand) vmath.Vec3 {
	if !h.Valid() {
		return vmath.Vec3{}
	}
	b := s.bind[autocfg.HandSlot(h)]
	switch {
	case b.Native:
		return s.display.HandPosition(h).Scale(s.unitsScale)
	case b.Source != nil:
		return b.Source.Position().Scale(s.unitsScale)
	}
	return vmath.Vec3{}
}

// HandOrientation returns the orientation of hand h.
func (s *Session) HandOrientation(h backend.Hand) vmath.Quat {
	if !h.Valid() {
		return vmath.IdentityQuat()
	}
	b := s.bind[autocfg.HandSlot(h)]
	switch {
	case b.Native:
		return s.display.HandOrientation(h)
	case b.Source != nil:
		return b.Source.Orientation()
	}
	return vmath.IdentityQuat()
}

// HandMatrix returns the pose matrix of hand h in application units.
func (s *Session) HandMatrix(h backend.Hand) vmath.Mat4 {
	if !h.Valid() {
		return vmath.Identity4()
	}
	b := s.bind[autocfg.HandSlot(h)]
	switch {
	case b.Native:
		return s.scaled(s.display.HandMatrix(h))
	case b.Source != nil:
		return s.scaled(b.Source.Matrix())
	}
	return vmath.Identity4()
}

// Action reports whether action a is engaged on hand h. It asks the module
// providing the hand's pose. When the hand is bound to a source held in the
// other hand, the controls of that device are read.
func (s *Session) Action(h backend.Hand, a backend.Action) bool {
	if !h.Valid() {
		return false
	}
	b := s.bind[autocfg.HandSlot(h)]
	switch {
	case b.Native:
		return s.display.Action(h, a)
	case b.Source != nil:
		if held, ok := b.Source.Hand(); ok {
			h = held
		}
		return b.Source.Module().Action(h, a)
	}
	return false
}

// scaled converts the translation of m from meters to application units.
func (s *Session) scaled(m vmath.Mat4) vmath.Mat4 {
	m[12] *= s.unitsScale
	m[13] *= s.unitsScale
	m[14] *= s.unitsScale
	return m
}
