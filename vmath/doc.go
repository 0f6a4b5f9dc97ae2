// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vmath provides the small set of float32 vector, quaternion and
// 4x4 matrix types used by the vr module contract.
//
// Matrices are stored column-major, matching the memory layout expected by
// WebGPU uniform buffers:
//
//	| M[0] M[4] M[8]  M[12] |
//	| M[1] M[5] M[9]  M[13] |
//	| M[2] M[6] M[10] M[14] |
//	| M[3] M[7] M[11] M[15] |
//
// Only the operations needed by stereo projection and pose composition are
// provided. This is not a general purpose linear algebra package.
package vmath
