// Package vr lets an application render stereo 3D content and read head
// and hand tracking without depending on a single VR vendor SDK.
//
// # Overview
//
// Backends are modules. Display modules render the two eye views and
// optionally track the head; input modules provide tracked devices,
// buttons, axes and sticks. A [Session] owns the registered modules, picks
// exactly one display module and activates every usable input module,
// then sequences VR mode and per-frame drawing.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vr"
//		"github.com/gogpu/vr/backend/sbs"
//	)
//
//	s := vr.NewSession(vr.WithModules(sbs.New))
//	if err := s.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer s.Shutdown()
//
//	s.SetFBSize(1920, 1080)
//	if err := s.StartVR(); err != nil {
//		log.Fatal(err)
//	}
//
//	for running {
//		s.DrawStart()
//		for _, eye := range []backend.Eye{backend.LeftEye, backend.RightEye} {
//			view := s.ViewMatrix(eye)
//			proj := s.ProjMatrix(eye, 0.1, 100)
//			// draw the scene into s.Viewport(eye) of s.Framebuffer()
//			s.DrawEye(eye)
//		}
//		s.DrawDone()
//		s.DrawMirror()
//	}
//
// # Lifecycle
//
// A session moves through these states:
//
//	Uninitialized -> Detected -> Failed           (no usable display module)
//	Uninitialized -> Detected -> Configured -> InSession <-> Idle
//	any state -> Uninitialized                    (Shutdown)
//
// # Configuration
//
// Without [WithConfig], Init reads the environment (see [Config]):
// VR_MODULE selects a display module by name, VR_HEAD_SOURCE,
// VR_LEFT_HAND_SOURCE and VR_RIGHT_HAND_SOURCE pick tracking sources.
//
// # Input indices
//
// Buttons, axes and sticks of all active modules are numbered in one flat
// list per kind. The numbering is rebuilt whenever a module is activated
// or deactivated, so applications should look indices up by name
// (FindButton, FindAxis, FindStick) after any module change.
//
// # Threading
//
// A Session is single-threaded: every method must be called from the
// thread driving the render loop.
package vr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
