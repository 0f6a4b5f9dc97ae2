// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input flattens the buttons, axes and sticks of all active modules
// into global indices with name lookup.
//
// Indices are assigned in activation order: each activated module appends
// its buttons, axes and sticks to the end of the corresponding list. When a
// module is deactivated its entries are removed and everything after them
// shifts down. Indices are therefore only valid until the next activation
// change; resolve them again by name (FindButton, FindAxis, FindStick)
// after the module set changes.
//
// The aggregator stores no input state. Every state query is forwarded to
// the owning module.
package input
