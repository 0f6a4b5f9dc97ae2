// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package autocfg

import (
	"log/slog"

	"github.com/gogpu/vr/backend"
)

// Slot is a tracked role.
type Slot int

const (
	Head Slot = iota
	LeftHand
	RightHand

	numSlots
)

// HandSlot returns the slot of hand h.
func HandSlot(h backend.Hand) Slot {
	if h == backend.RightHand {
		return RightHand
	}
	return LeftHand
}

// String returns "head", "left hand" or "right hand".
func (s Slot) String() string {
	switch s {
	case Head:
		return "head"
	case LeftHand:
		return "left hand"
	case RightHand:
		return "right hand"
	default:
		return "unknown"
	}
}

// Binding is the pose provider of one slot: the display module itself or
// an external source. The zero Binding is unbound.
type Binding struct {
	Native bool
	Source *backend.Source
}

// Bound reports whether b provides a pose.
func (b Binding) Bound() bool {
	return b.Native || b.Source != nil
}

// Bindings holds the binding of every slot.
type Bindings [numSlots]Binding

// Overrides names the sources the user wants for each slot. Empty names
// are ignored.
type Overrides [numSlots]string

// FindSpatial returns the source named name (ignoring case). It fails with
// *backend.SourceNotFoundError or *backend.NotSpatialError.
func FindSpatial(sources []*backend.Source, name string) (*backend.Source, error) {
	for _, s := range sources {
		if SameName(s.Name(), name) {
			if !s.Spatial() {
				return nil, &backend.NotSpatialError{Name: s.Name()}
			}
			return s, nil
		}
	}
	return nil, &backend.SourceNotFoundError{Name: name}
}

// Resolve binds every slot in three passes:
//
//  1. slots the display module tracks natively are bound to it;
//  2. remaining slots with a valid override get the named source, unless
//     an earlier slot already took it;
//  3. remaining slots get the first spatial source, in publication order,
//     that no other slot uses.
//
// Invalid overrides are logged and fall through to pass 3. Slots left
// without a spatial source stay unbound.
func Resolve(display backend.Module, sources []*backend.Source, overrides Overrides, log *slog.Logger) Bindings {
	var b Bindings

	if display != nil {
		b[Head].Native = display.HaveHeadTracking()
		b[LeftHand].Native = display.HaveHandTracking(backend.LeftHand)
		b[RightHand].Native = display.HaveHandTracking(backend.RightHand)
	}

	for slot := Head; slot < numSlots; slot++ {
		name := overrides[slot]
		if b[slot].Native || name == "" {
			continue
		}
		src, err := FindSpatial(sources, name)
		if err != nil {
			log.Warn("autocfg: rejected tracking source override", "slot", slot, "source", name, "err", err)
			continue
		}
		if b.uses(src) {
			log.Warn("autocfg: tracking source already bound", "slot", slot, "source", src.Name())
			continue
		}
		b[slot].Source = src
	}

	for slot := Head; slot < numSlots; slot++ {
		if b[slot].Bound() {
			continue
		}
		for _, src := range sources {
			if src.Spatial() && !b.uses(src) {
				b[slot].Source = src
				break
			}
		}
	}

	for slot := Head; slot < numSlots; slot++ {
		switch {
		case b[slot].Native:
			log.Info("autocfg: tracking", "slot", slot, "source", "native")
		case b[slot].Source != nil:
			log.Info("autocfg: tracking", "slot", slot, "source", b[slot].Source.Name())
		default:
			log.Info("autocfg: tracking", "slot", slot, "source", "none")
		}
	}
	return b
}

// Unbind clears every slot bound to src and reports whether any was.
func (b *Bindings) Unbind(src *backend.Source) bool {
	found := false
	for i := range b {
		if b[i].Source == src && src != nil {
			b[i] = Binding{}
			found = true
		}
	}
	return found
}

func (b *Bindings) uses(src *backend.Source) bool {
	for _, x := range b {
		if x.Source == src {
			return true
		}
	}
	return false
}
