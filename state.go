package vr

import "fmt"

// State is the session lifecycle state.
type State int

const (
	// Uninitialized is the state before Init and after Shutdown.
	Uninitialized State = iota

	// Detected means modules are registered and probed.
	Detected

	// Failed means Init found no usable display module.
	Failed

	// Configured means the display and input modules are active.
	Configured

	// InSession means all active modules are in VR mode.
	InSession

	// Idle means VR mode was stopped; StartVR may be called again.
	Idle
)

var stateNames = [...]string{"uninitialized", "detected", "failed", "configured", "in-session", "idle"}

// String returns the state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// canStart reports whether StartVR may enter VR mode from s.
func (s State) canStart() bool {
	return s == Configured || s == Idle
}
