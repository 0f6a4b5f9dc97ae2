// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"slices"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/vmath"
)

// ControllerName is the name of the simulated controller module.
const ControllerName = "simctl"

// Source names published by the controller module.
const (
	LeftSource  = "simctl-left"
	RightSource = "simctl-right"
	PadSource   = "simctl-pad"
)

// Control names.
var (
	buttonNames = []string{"left-trigger", "left-grip", "right-trigger", "right-grip", "a", "b", "menu"}
	axisNames   = []string{"left-trigger", "right-trigger"}
	stickNames  = []string{"left-stick", "right-stick"}
)

// Thresholds used to derive hand actions from the raw controls.
const (
	triggerThreshold  = 0.5
	thumbThreshold    = 0.1
	navigateThreshold = 0.5
)

// tracker is the module-private state of one simulated device.
type tracker struct {
	name    string
	spatial bool
	hand    backend.Hand
	handed  bool
	pos     vmath.Vec3
	rot     vmath.Quat
}

func (t *tracker) Name() string            { return t.name }
func (t *tracker) Spatial() bool           { return t.spatial }
func (t *tracker) Position() vmath.Vec3    { return t.pos }
func (t *tracker) Orientation() vmath.Quat { return t.rot }

func (t *tracker) Hand() (backend.Hand, bool) { return t.hand, t.handed }

// Controller is a simulated pair of 6-DOF hand controllers plus a
// gamepad-like button pad. On Start it publishes a spatial source per
// hand and a non-spatial source for the pad.
type Controller struct {
	backend.Base

	connected bool
	buttons   []bool
	axes      []float32
	sticks    []vmath.Vec2
	hands     [2]*tracker
	pad       *tracker
	sources   []*backend.Source
}

// NewController returns a simulated controller module. It has the
// backend.Factory signature.
func NewController() backend.Module {
	return NewControllerModule()
}

// NewControllerModule creates a simulated controller module.
func NewControllerModule() *Controller {
	return &Controller{
		connected: true,
		buttons:   make([]bool, len(buttonNames)),
		axes:      make([]float32, len(axisNames)),
		sticks:    make([]vmath.Vec2, len(stickNames)),
		hands: [2]*tracker{
			{name: LeftSource, spatial: true, hand: backend.LeftHand, handed: true,
				pos: vmath.V3(-0.2, 1.2, -0.3), rot: vmath.IdentityQuat()},
			{name: RightSource, spatial: true, hand: backend.RightHand, handed: true,
				pos: vmath.V3(0.2, 1.2, -0.3), rot: vmath.IdentityQuat()},
		},
		pad: &tracker{name: PadSource, rot: vmath.IdentityQuat()},
	}
}

func (c *Controller) Name() string       { return ControllerName }
func (c *Controller) Kind() backend.Kind { return backend.KindInput }

// SetConnected plugs or unplugs the simulated controllers. It takes effect
// on the next Detect.
func (c *Controller) SetConnected(connected bool) {
	c.connected = connected
}

// Detect reports whether the simulated controllers are connected.
func (c *Controller) Detect() bool {
	c.SetUsable(c.connected)
	return c.connected
}

// Start publishes the hand and pad sources.
func (c *Controller) Start() bool {
	if c.sources != nil {
		return true
	}
	h := c.Host()
	if h == nil {
		return false
	}
	for _, t := range []*tracker{c.hands[backend.LeftHand], c.hands[backend.RightHand], c.pad} {
		src := backend.NewSource(c, t)
		c.sources = append(c.sources, src)
		h.AddSource(src)
	}
	return true
}

// Stop withdraws the sources.
func (c *Controller) Stop() {
	if h := c.Host(); h != nil {
		for _, src := range c.sources {
			h.RemoveSource(src)
		}
	}
	c.sources = nil
}

// Sources returns the published sources, or nil when stopped.
func (c *Controller) Sources() []*backend.Source {
	return slices.Clone(c.sources)
}

// Update refreshes the cached source matrices.
func (c *Controller) Update() {
	for _, src := range c.sources {
		src.Update()
	}
}

func (c *Controller) HaveHandTracking(h backend.Hand) bool {
	return h.Valid() && c.sources != nil
}

func (c *Controller) NumButtons() int { return len(buttonNames) }
func (c *Controller) NumAxes() int    { return len(axisNames) }
func (c *Controller) NumSticks() int  { return len(stickNames) }

func (c *Controller) ButtonName(idx int) string { return nameAt(buttonNames, idx) }
func (c *Controller) AxisName(idx int) string   { return nameAt(axisNames, idx) }
func (c *Controller) StickName(idx int) string  { return nameAt(stickNames, idx) }

func (c *Controller) ButtonState(idx int) bool {
	if idx < 0 || idx >= len(c.buttons) {
		return false
	}
	return c.buttons[idx]
}

func (c *Controller) AxisValue(idx int) float32 {
	if idx < 0 || idx >= len(c.axes) {
		return 0
	}
	return c.axes[idx]
}

func (c *Controller) StickPosition(idx int) vmath.Vec2 {
	if idx < 0 || idx >= len(c.sticks) {
		return vmath.Vec2{}
	}
	return c.sticks[idx]
}

// Press sets the state of the named button. Unknown names are ignored.
func (c *Controller) Press(name string, pressed bool) {
	if i := slices.Index(buttonNames, name); i >= 0 {
		c.buttons[i] = pressed
	}
}

// SetAxis sets the named axis, clamped to [0, 1].
func (c *Controller) SetAxis(name string, v float32) {
	if i := slices.Index(axisNames, name); i >= 0 {
		c.axes[i] = min(max(v, 0), 1)
	}
}

// SetStick sets the named stick, each component clamped to [-1, 1].
func (c *Controller) SetStick(name string, v vmath.Vec2) {
	if i := slices.Index(stickNames, name); i >= 0 {
		c.sticks[i] = vmath.Vec2{X: min(max(v.X, -1), 1), Y: min(max(v.Y, -1), 1)}
	}
}

// SetHandPose sets the pose of hand h. The source matrix follows on the
// next Update.
func (c *Controller) SetHandPose(h backend.Hand, pos vmath.Vec3, rot vmath.Quat) {
	if h.Valid() {
		c.hands[h].pos = pos
		c.hands[h].rot = rot.Normalize()
	}
}

// Action derives hand gestures from the hand's grip, trigger and stick:
// grab is the grip, trigger is the trigger axis past half travel, fist is
// both, point is grip without trigger, thumb is any stick deflection and
// navigate a strong one.
func (c *Controller) Action(h backend.Hand, a backend.Action) bool {
	if !h.Valid() {
		return false
	}
	side := "left"
	if h == backend.RightHand {
		side = "right"
	}
	grip := c.ButtonState(slices.Index(buttonNames, side+"-grip"))
	trigger := c.AxisValue(slices.Index(axisNames, side+"-trigger")) > triggerThreshold
	stick := c.StickPosition(slices.Index(stickNames, side+"-stick"))
	deflection := vmath.V3(stick.X, stick.Y, 0).Len()

	switch a {
	case backend.ActionGrab:
		return grip
	case backend.ActionTrigger:
		return trigger
	case backend.ActionFist:
		return grip && trigger
	case backend.ActionPoint:
		return grip && !trigger
	case backend.ActionThumb:
		return deflection > thumbThreshold
	case backend.ActionNavigate:
		return deflection > navigateThreshold
	}
	return false
}

func (c *Controller) HandPosition(h backend.Hand) vmath.Vec3 {
	if !h.Valid() {
		return vmath.Vec3{}
	}
	return c.hands[h].pos
}

func (c *Controller) HandOrientation(h backend.Hand) vmath.Quat {
	if !h.Valid() {
		return vmath.IdentityQuat()
	}
	return c.hands[h].rot
}

func (c *Controller) HandMatrix(h backend.Hand) vmath.Mat4 {
	if !h.Valid() {
		return vmath.Identity4()
	}
	return vmath.Pose(c.hands[h].pos, c.hands[h].rot)
}

func nameAt(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}

var _ backend.Module = (*Controller)(nil)
