// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
	"github.com/gogpu/vr/vmath"
)

// HMDName is the name of the simulated display module.
const HMDName = "simhmd"

// HMD defaults.
const (
	HMDPriority          = 100
	DefaultEyeWidth      = 1080
	DefaultEyeHeight     = 1200
	DefaultIPD           = 0.063
	DefaultVFOV          = 100 * math32.Pi / 180
	DefaultUserEyeHeight = 1.70
)

// HMDOption configures an HMD.
type HMDOption func(*HMD)

// WithDisconnected makes the HMD report itself as absent on Detect.
func WithDisconnected() HMDOption {
	return func(h *HMD) {
		h.connected = false
	}
}

// WithEyeResolution sets the recommended render size of one eye.
func WithEyeResolution(eye backend.Eye, width, height int) HMDOption {
	return func(h *HMD) {
		if eye.Valid() && width > 0 && height > 0 {
			h.eyeSize[eye] = [2]int{width, height}
		}
	}
}

// WithHandTracking makes the HMD track the hands itself.
func WithHandTracking() HMDOption {
	return func(h *HMD) {
		h.handTracking = true
	}
}

// HMD is a simulated head-mounted display. It renders each eye at its own
// recommended resolution, independent of the window size, and tracks the
// head natively.
type HMD struct {
	backend.Base

	cache     *render.Cache
	connected bool
	eyeSize   [2][2]int
	ipd       float32
	vfov      float32

	handTracking bool
	origin       backend.OriginMode
	originOffset vmath.Vec3

	head  pose
	hands [2]pose

	started   bool
	inFrame   bool
	frames    int
	discarded int
}

// pose is a tracked position and orientation.
type pose struct {
	pos vmath.Vec3
	rot vmath.Quat
}

func newPose() pose {
	return pose{rot: vmath.IdentityQuat()}
}

// NewHMD returns a simulated HMD. It has the backend.Factory signature.
func NewHMD() backend.Module {
	return NewHMDModule()
}

// NewHMDModule creates a simulated HMD.
func NewHMDModule(opts ...HMDOption) *HMD {
	h := &HMD{
		connected: true,
		eyeSize:   [2][2]int{{DefaultEyeWidth, DefaultEyeHeight}, {DefaultEyeWidth, DefaultEyeHeight}},
		ipd:       DefaultIPD,
		vfov:      DefaultVFOV,
		head:      newPose(),
		hands:     [2]pose{newPose(), newPose()},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.SetPriority(HMDPriority)
	return h
}

func (h *HMD) Name() string       { return HMDName }
func (h *HMD) Kind() backend.Kind { return backend.KindDisplay }

// Init creates the render texture cache sized for the eye resolutions.
func (h *HMD) Init(host backend.Host) error {
	if err := h.Base.Init(host); err != nil {
		return err
	}
	h.cache = render.NewCache(host.Allocator(),
		render.WithLabel(HMDName),
		render.WithLogger(host.Logger()),
		render.WithColorFormat(host.Capabilities().SurfaceFormat))
	h.SetFBSize(0, 0, 1)
	return nil
}

// Destroy releases the render texture.
func (h *HMD) Destroy() {
	h.Stop()
	if h.cache != nil {
		h.cache.Release()
	}
}

// Detect reports whether the simulated device is connected.
func (h *HMD) Detect() bool {
	h.SetUsable(h.connected)
	return h.connected
}

// SetConnected plugs or unplugs the simulated device. It takes effect on
// the next Detect.
func (h *HMD) SetConnected(connected bool) {
	h.connected = connected
}

// Start enters VR mode. It fails when the device is unplugged.
func (h *HMD) Start() bool {
	if !h.connected || h.cache == nil {
		return false
	}
	h.started = true
	h.Logger().Info("simhmd: started",
		"left", h.eyeSize[backend.LeftEye], "right", h.eyeSize[backend.RightEye])
	return true
}

// Stop leaves VR mode, discarding any frame in progress.
func (h *HMD) Stop() {
	if h.inFrame {
		h.discarded++
		h.inFrame = false
	}
	h.started = false
}

func (h *HMD) SetOriginMode(mode backend.OriginMode) { h.origin = mode }

// Recenter moves the origin under the current head position. In floor
// mode the height is kept.
func (h *HMD) Recenter() {
	h.originOffset = h.head.pos
	if h.origin == backend.OriginFloor {
		h.originOffset.Y = 0
	}
}

func (h *HMD) HaveHeadTracking() bool { return true }

func (h *HMD) HaveHandTracking(backend.Hand) bool { return h.handTracking }

// SetFBSize ignores the window size: the HMD renders at its recommended
// eye resolution times scale.
func (h *HMD) SetFBSize(_, _ int, scale float32) {
	if h.cache == nil {
		return
	}
	for eye := range h.eyeSize {
		h.cache.SetEyeSize(eye, h.eyeSize[eye][0], h.eyeSize[eye][1])
	}
	h.cache.SetScale(scale)
}

// RenderTexture returns the render target, rebuilding it if its size changed.
func (h *HMD) RenderTexture() (*render.RenderTexture, error) {
	if h.cache == nil {
		return nil, errors.New("simhmd: not initialized")
	}
	return h.cache.RenderTexture()
}

func (h *HMD) DrawStart() { h.inFrame = true }

// DrawDone submits the frame to the simulated compositor.
func (h *HMD) DrawDone() {
	if h.inFrame {
		h.frames++
		h.inFrame = false
	}
}

// DrawMirror copies both eyes into the host mirror image.
func (h *HMD) DrawMirror() {
	dst := h.Capabilities().Mirror
	if dst == nil || h.cache == nil {
		return
	}
	if err := render.Mirror(dst, h.cache.Current()); err != nil {
		h.Logger().Debug("simhmd: mirror skipped", "err", err)
	}
}

// ShouldSwap returns false: the compositor presents the frames.
func (h *HMD) ShouldSwap() bool { return false }

// Frames returns the number of submitted frames.
func (h *HMD) Frames() int { return h.frames }

// Discarded returns the number of frames dropped by Stop.
func (h *HMD) Discarded() int { return h.discarded }

// ViewMatrix returns the inverse of the eye pose: the head pose moved
// sideways by half the IPD.
func (h *HMD) ViewMatrix(eye backend.Eye) vmath.Mat4 {
	offs := -0.5 * h.ipd
	if eye == backend.RightEye {
		offs = -offs
	}
	eyePose := h.HeadMatrix().Mul(vmath.Translation(offs, 0, 0))
	return eyePose.InverseRigid()
}

// ProjMatrix returns a symmetric perspective projection for the eye's
// resolution.
func (h *HMD) ProjMatrix(eye backend.Eye, znear, zfar float32) vmath.Mat4 {
	size := h.eyeSize[backend.LeftEye]
	if eye.Valid() {
		size = h.eyeSize[eye]
	}
	aspect := float32(size[0]) / float32(size[1])
	return vmath.Perspective(h.vfov, aspect, znear, zfar)
}

func (h *HMD) EyeHeight() float32 { return DefaultUserEyeHeight }

// SetHeadPose sets the simulated head pose in tracker space.
func (h *HMD) SetHeadPose(pos vmath.Vec3, rot vmath.Quat) {
	h.head = pose{pos: pos, rot: rot.Normalize()}
}

// SetHandPose sets the simulated pose of hand hd in tracker space. It is
// only reported with WithHandTracking.
func (h *HMD) SetHandPose(hd backend.Hand, pos vmath.Vec3, rot vmath.Quat) {
	if hd.Valid() {
		h.hands[hd] = pose{pos: pos, rot: rot.Normalize()}
	}
}

// HeadPosition returns the head position relative to the origin.
func (h *HMD) HeadPosition() vmath.Vec3 {
	return h.head.pos.Sub(h.originOffset)
}

func (h *HMD) HeadOrientation() vmath.Quat { return h.head.rot }

func (h *HMD) HeadMatrix() vmath.Mat4 {
	return vmath.Pose(h.HeadPosition(), h.head.rot)
}

func (h *HMD) HandPosition(hd backend.Hand) vmath.Vec3 {
	if !h.handTracking || !hd.Valid() {
		return vmath.Vec3{}
	}
	return h.hands[hd].pos.Sub(h.originOffset)
}

func (h *HMD) HandOrientation(hd backend.Hand) vmath.Quat {
	if !h.handTracking || !hd.Valid() {
		return vmath.IdentityQuat()
	}
	return h.hands[hd].rot
}

func (h *HMD) HandMatrix(hd backend.Hand) vmath.Mat4 {
	if !h.handTracking || !hd.Valid() {
		return vmath.Identity4()
	}
	return vmath.Pose(h.HandPosition(hd), h.hands[hd].rot)
}

var _ backend.Module = (*HMD)(nil)
