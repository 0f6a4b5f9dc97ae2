// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "github.com/gogpu/vr/vmath"

// Tracker is the module-private state behind a Source. Each module
// defines its own tracker type; the owner can get it back with SourceData.
type Tracker interface {
	// Name identifies the tracked device, e.g. "simctl-left".
	Name() string

	// Spatial reports whether the device provides a pose. Only spatial
	// sources can be bound to the head or a hand.
	Spatial() bool

	Position() vmath.Vec3
	Orientation() vmath.Quat
}

// HandTracker is implemented by trackers of hand-held devices that know
// which hand holds them.
type HandTracker interface {
	Hand() (Hand, bool)
}

// Source is a tracked device published by a module. It is created when its
// module starts and dropped when that module stops.
type Source struct {
	module  Module
	tracker Tracker
	xform   vmath.Mat4
}

// NewSource creates a source owned by m.
func NewSource(m Module, t Tracker) *Source {
	s := &Source{module: m, tracker: t}
	s.Update()
	return s
}

// Module returns the owning module.
func (s *Source) Module() Module {
	return s.module
}

// Tracker returns the module-private tracker.
func (s *Source) Tracker() Tracker {
	return s.tracker
}

// Name returns the tracker name.
func (s *Source) Name() string {
	return s.tracker.Name()
}

// Spatial reports whether the source provides a pose.
func (s *Source) Spatial() bool {
	return s.tracker.Spatial()
}

// Position returns the tracked position.
func (s *Source) Position() vmath.Vec3 {
	return s.tracker.Position()
}

// Orientation returns the tracked orientation.
func (s *Source) Orientation() vmath.Quat {
	return s.tracker.Orientation()
}

// Hand returns the hand holding the device, if its tracker reports one.
func (s *Source) Hand() (Hand, bool) {
	if ht, ok := s.tracker.(HandTracker); ok {
		return ht.Hand()
	}
	return 0, false
}

// Matrix returns the pose matrix cached by the last Update.
func (s *Source) Matrix() vmath.Mat4 {
	return s.xform
}

// Update recomputes the cached pose matrix. The owning module calls it
// after refreshing the tracker.
func (s *Source) Update() {
	s.xform = vmath.Pose(s.tracker.Position(), s.tracker.Orientation())
}

// SourceData returns the tracker of s as the owning module's concrete type.
func SourceData[T Tracker](s *Source) (T, bool) {
	t, ok := s.tracker.(T)
	return t, ok
}
