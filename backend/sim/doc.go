// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sim provides simulated VR hardware: a head-mounted display
// module with native head tracking and a 6-DOF controller input module.
//
// The simulated devices are driven by the application through setters
// (SetHeadPose, SetHandPose, Press, SetAxis, SetStick), which makes them
// suitable for tests, demos and development without hardware.
package sim
