package vr

import "github.com/gogpu/vr/vmath"

// Buttons, axes and sticks of all active modules share one flat index
// space per kind. Indices change when modules are activated or
// deactivated; look them up again by name afterwards.

// NumButtons returns the number of buttons of all active modules.
func (s *Session) NumButtons() int { return s.inputs.NumButtons() }

// ButtonName returns the name of button idx.
func (s *Session) ButtonName(idx int) string { return s.inputs.ButtonName(idx) }

// ButtonState reports whether button idx is pressed.
func (s *Session) ButtonState(idx int) bool { return s.inputs.ButtonState(idx) }

// FindButton returns the index of the named button, or -1.
func (s *Session) FindButton(name string) int { return s.inputs.FindButton(name) }

// NumAxes returns the number of axes of all active modules.
func (s *Session) NumAxes() int { return s.inputs.NumAxes() }

// AxisName returns the name of axis idx.
func (s *Session) AxisName(idx int) string { return s.inputs.AxisName(idx) }

// AxisValue returns the value of axis idx.
func (s *Session) AxisValue(idx int) float32 { return s.inputs.AxisValue(idx) }

// FindAxis returns the index of the named axis, or -1.
func (s *Session) FindAxis(name string) int { return s.inputs.FindAxis(name) }

// NumSticks returns the number of sticks of all active modules.
func (s *Session) NumSticks() int { return s.inputs.NumSticks() }

// StickName returns the name of stick idx.
func (s *Session) StickName(idx int) string { return s.inputs.StickName(idx) }

// StickPosition returns the position of stick idx.
func (s *Session) StickPosition(idx int) vmath.Vec2 { return s.inputs.StickPosition(idx) }

// FindStick returns the index of the named stick, or -1.
func (s *Session) FindStick(name string) int { return s.inputs.FindStick(name) }
