// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"log/slog"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
)

type nopHost struct{}

func (nopHost) Logger() *slog.Logger               { return slog.Default() }
func (nopHost) Allocator() render.Allocator        { return nil }
func (nopHost) Capabilities() backend.Capabilities { return backend.Capabilities{} }
func (nopHost) AddSource(*backend.Source)          {}
func (nopHost) RemoveSource(*backend.Source)       {}
