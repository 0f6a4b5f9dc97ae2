package vr

import (
	"fmt"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/internal/autocfg"
)

// NumModules returns the number of registered modules.
func (s *Session) NumModules() int {
	return s.reg.Len()
}

// Module returns the module at idx in registration order, or nil.
func (s *Session) Module(idx int) backend.Module {
	return s.reg.Module(idx)
}

// FindModule returns the registered module with the given name.
func (s *Session) FindModule(name string) (backend.Module, bool) {
	return s.reg.Find(name)
}

// DisplayModule returns the active display module, or nil.
func (s *Session) DisplayModule() backend.Module {
	return s.display
}

// ActivateModule activates the named module. Activating a display module
// replaces the current one. Modules can only be changed outside VR mode.
func (s *Session) ActivateModule(name string) error {
	m, err := s.lookupForChange(name)
	if err != nil {
		return err
	}
	if err := s.reg.Activate(m); err != nil {
		return err
	}
	m.SetOriginMode(s.origin)
	if m.Kind() == backend.KindDisplay {
		s.display = m
		m.SetFBSize(s.winWidth, s.winHeight, s.fbScale)
		if s.state == Detected {
			s.state = Configured
		}
	}
	return nil
}

// DeactivateModule deactivates the named module. Deactivating the display
// module leaves the session in the Detected state until another display
// module is activated.
func (s *Session) DeactivateModule(name string) error {
	m, err := s.lookupForChange(name)
	if err != nil {
		return err
	}
	if err := s.reg.Deactivate(m); err != nil {
		return err
	}
	if m == s.display {
		s.display = nil
		s.releaseFramebuffer()
		s.state = Detected
	}
	return nil
}

func (s *Session) lookupForChange(name string) (backend.Module, error) {
	switch s.state {
	case Uninitialized:
		return nil, ErrNotInitialized
	case Failed:
		return nil, ErrNoDisplayModule
	case InSession:
		return nil, ErrSessionActive
	}
	m, ok := s.reg.Find(name)
	if !ok {
		return nil, &backend.ModuleNotFoundError{Name: name}
	}
	return m, nil
}

// NumSources returns the number of published tracking sources.
func (s *Session) NumSources() int {
	return s.reg.NumSources()
}

// Source returns the source at idx in publication order, or nil.
func (s *Session) Source(idx int) *backend.Source {
	return s.reg.Source(idx)
}

// FindSource returns the published source with the given name.
func (s *Session) FindSource(name string) (*backend.Source, bool) {
	return s.reg.FindSource(name)
}

// SetHeadSource selects the head tracking source by name. An empty name
// restores automatic selection. See SetHandSource.
func (s *Session) SetHeadSource(name string) error {
	return s.setSource(autocfg.Head, name)
}

// SetHandSource selects the tracking source of hand h by name. An empty
// name restores automatic selection.
//
// In VR mode the source must exist and be spatial, and all slots are
// bound again at once. Outside VR mode the name is remembered and checked
// at StartVR. The latest request for a source wins: other slots naming
// the same source lose their override.
func (s *Session) SetHandSource(h backend.Hand, name string) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidHand, int(h))
	}
	return s.setSource(autocfg.HandSlot(h), name)
}

func (s *Session) setSource(slot autocfg.Slot, name string) error {
	if s.state == InSession && name != "" {
		if _, err := autocfg.FindSpatial(s.reg.Sources(), name); err != nil {
			s.log.Warn("vr: rejected tracking source", "slot", slot, "source", name, "err", err)
			return err
		}
	}

	if name != "" {
		for other := range s.overrides {
			if autocfg.SameName(s.overrides[other], name) {
				s.overrides[other] = ""
			}
		}
	}
	s.overrides[slot] = name

	if s.state == InSession {
		s.bind = autocfg.Resolve(s.display, s.reg.Sources(), s.overrides, s.log)
	}
	return nil
}

// HeadSource returns the name of the head tracking source, "native" when
// the display module tracks the head itself, or "" when untracked.
func (s *Session) HeadSource() string {
	return bindingName(s.bind[autocfg.Head])
}

// HandSource returns the name of the tracking source of hand h, "native",
// or "".
func (s *Session) HandSource(h backend.Hand) string {
	if !h.Valid() {
		return ""
	}
	return bindingName(s.bind[autocfg.HandSlot(h)])
}

func bindingName(b autocfg.Binding) string {
	switch {
	case b.Native:
		return "native"
	case b.Source != nil:
		return b.Source.Name()
	}
	return ""
}
