package vr

import "errors"

// Session errors.
var (
	// ErrNoDisplayModule is returned by Init when no display module is
	// usable. The session cannot be started.
	ErrNoDisplayModule = errors.New("vr: no usable display module")

	// ErrDisplayStart is returned by StartVR when the display module fails
	// to enter VR mode. There is no fallback to another display module.
	ErrDisplayStart = errors.New("vr: display module failed to start")

	// ErrNotInitialized is returned when an operation needs a configured session.
	ErrNotInitialized = errors.New("vr: session not initialized")

	// ErrNotInSession is returned by frame operations outside VR mode.
	ErrNotInSession = errors.New("vr: not in VR session")

	// ErrSessionActive is returned by module changes while in VR mode.
	ErrSessionActive = errors.New("vr: VR session active")

	// ErrFrameOrder is returned when DrawStart, DrawEye and DrawDone are
	// called out of order.
	ErrFrameOrder = errors.New("vr: draw calls out of order")

	// ErrInvalidEye is returned for an eye other than LeftEye or RightEye.
	ErrInvalidEye = errors.New("vr: invalid eye")

	// ErrInvalidHand is returned for a hand other than LeftHand or RightHand.
	ErrInvalidHand = errors.New("vr: invalid hand")

	// ErrInvalidConfig is returned for out-of-range configuration values.
	ErrInvalidConfig = errors.New("vr: invalid config")
)
