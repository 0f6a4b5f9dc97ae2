// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package autocfg picks the display module to use, activates input modules
// and binds tracking sources to the head and hands.
package autocfg

import (
	"log/slog"

	"golang.org/x/text/cases"

	"github.com/gogpu/vr/backend"
)

// SameName reports whether two module or source names match, ignoring case.
func SameName(a, b string) bool {
	c := cases.Fold()
	return c.String(a) == c.String(b)
}

// SelectDisplay returns the usable display module to activate.
//
// If override is non-empty, only the display module with that name
// (ignoring case) is eligible. Otherwise the usable display module with the
// highest priority wins; on a tie the first registered wins. It returns nil
// when nothing is eligible.
func SelectDisplay(modules []backend.Module, override string) backend.Module {
	var best backend.Module
	for _, m := range modules {
		if m.Kind() != backend.KindDisplay || !m.Usable() {
			continue
		}
		if override != "" {
			if SameName(m.Name(), override) {
				return m
			}
			continue
		}
		if best == nil || m.Priority() > best.Priority() {
			best = m
		}
	}
	return best
}

// Configure activates every usable input module and the selected display
// module. If a display module is already active it is kept. It returns the
// active display module, or nil if there is none.
func Configure(r *backend.Registry, override string, log *slog.Logger) backend.Module {
	if override != "" {
		log.Info("autocfg: display module override set", "module", override)
	}

	for _, m := range r.Modules() {
		if m.Kind() == backend.KindInput && m.Usable() {
			if err := r.Activate(m); err != nil {
				log.Warn("autocfg: activate input module", "module", m.Name(), "err", err)
			}
		}
	}

	if d := r.Display(); d != nil {
		return d
	}

	d := SelectDisplay(r.Modules(), override)
	if d == nil {
		if override != "" {
			log.Error("autocfg: requested display module is not usable", "module", override)
		} else {
			log.Error("autocfg: no usable display module found")
		}
		return nil
	}
	if err := r.Activate(d); err != nil {
		log.Error("autocfg: activate display module", "module", d.Name(), "err", err)
		return nil
	}
	log.Info("autocfg: activated display module", "module", d.Name(), "priority", d.Priority())
	return d
}
