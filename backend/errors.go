// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "errors"

// Common backend errors.
var (
	// ErrNilModule is returned when a nil module is registered.
	ErrNilModule = errors.New("backend: nil module")

	// ErrDuplicateModule is returned when a module name is registered twice.
	ErrDuplicateModule = errors.New("backend: duplicate module name")
)

// ModuleNotFoundError indicates a module is not registered.
type ModuleNotFoundError struct {
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return "backend: module not found: " + e.Name
}

// SourceNotFoundError indicates no source with the given name is available.
type SourceNotFoundError struct {
	Name string
}

func (e *SourceNotFoundError) Error() string {
	return "backend: source not found: " + e.Name
}

// NotSpatialError indicates a source cannot provide a pose.
type NotSpatialError struct {
	Name string
}

func (e *NotSpatialError) Error() string {
	return "backend: source is not spatial: " + e.Name
}
