// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"strings"
)

// Kind distinguishes display modules from input modules.
type Kind int

const (
	// KindDisplay modules render and are mutually exclusive.
	KindDisplay Kind = iota
	// KindInput modules provide tracked devices and controls.
	KindInput
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDisplay:
		return "display"
	case KindInput:
		return "input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Eye selects one of the two stereo views.
type Eye int

const (
	LeftEye Eye = iota
	RightEye
)

// Valid reports whether e is LeftEye or RightEye.
func (e Eye) Valid() bool {
	return e == LeftEye || e == RightEye
}

// String returns the eye name.
func (e Eye) String() string {
	switch e {
	case LeftEye:
		return "left"
	case RightEye:
		return "right"
	default:
		return fmt.Sprintf("Eye(%d)", int(e))
	}
}

// Hand selects a tracked hand.
type Hand int

const (
	LeftHand Hand = iota
	RightHand
)

// Valid reports whether h is LeftHand or RightHand.
func (h Hand) Valid() bool {
	return h == LeftHand || h == RightHand
}

// String returns the hand name.
func (h Hand) String() string {
	switch h {
	case LeftHand:
		return "left"
	case RightHand:
		return "right"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// OriginMode selects the reference of the tracking origin.
type OriginMode int

const (
	// OriginFloor keeps the origin at floor level; Recenter only moves it
	// horizontally.
	OriginFloor OriginMode = iota
	// OriginHead puts the origin at the user's head; Recenter resets it
	// to the current head position.
	OriginHead
)

// String returns "floor" or "head".
func (m OriginMode) String() string {
	switch m {
	case OriginFloor:
		return "floor"
	case OriginHead:
		return "head"
	default:
		return fmt.Sprintf("OriginMode(%d)", int(m))
	}
}

// UnmarshalText parses "floor" or "head" (case-insensitive).
func (m *OriginMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "floor", "":
		*m = OriginFloor
	case "head":
		*m = OriginHead
	default:
		return fmt.Errorf("backend: unknown origin mode %q", text)
	}
	return nil
}

// Action is a high-level hand gesture or control.
type Action int

const (
	ActionGrab Action = iota
	ActionPoint
	ActionThumb
	ActionFist
	ActionTrigger
	ActionNavigate
)

var actionNames = [...]string{"grab", "point", "thumb", "fist", "trigger", "navigate"}

// String returns the action name.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
