package vr

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/input"
	"github.com/gogpu/vr/internal/autocfg"
	"github.com/gogpu/vr/render"
)

// Session owns the module registry, the render target binding, the
// tracking bindings and the input index of one VR session.
//
// Session is NOT safe for concurrent use.
type Session struct {
	opts sessionOptions
	cfg  Config
	log  *slog.Logger

	reg     *backend.Registry
	inputs  *input.Aggregator
	display backend.Module
	alloc   render.Allocator
	caps    backend.Capabilities

	state     State
	bind      autocfg.Bindings
	overrides autocfg.Overrides

	origin     backend.OriginMode
	unitsScale float32
	fbScale    float32
	winWidth   int
	winHeight  int

	fb    *render.Framebuffer
	frame frameState
}

// NewSession creates an uninitialized session.
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		opts:   o,
		cfg:    DefaultConfig(),
		log:    o.logger,
		reg:    backend.NewRegistry(),
		inputs: input.NewAggregator(),
	}
	s.reg.SetLogger(s.log)
	s.reg.SetListener(s.inputs)
	s.applyConfig()
	return s
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Config returns the configuration in effect.
func (s *Session) Config() Config {
	return s.cfg
}

// Init registers the configured modules, runs detection and activates the
// best usable display module plus every usable input module.
//
// It returns ErrNoDisplayModule when no display module is usable; the
// session then stays in the Failed state until Shutdown. Calling Init on a
// configured session is a no-op.
func (s *Session) Init() error {
	switch s.state {
	case Uninitialized:
	case Failed:
		return ErrNoDisplayModule
	default:
		return nil
	}

	if s.opts.config != nil {
		cfg := *s.opts.config
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.setDefaults()
		s.cfg = cfg
	} else {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		s.cfg = cfg
	}
	s.applyConfig()

	if err := s.setupGraphics(); err != nil {
		return err
	}

	h := &sessionHost{s: s}
	for _, f := range s.opts.factories {
		m := f()
		if m == nil {
			continue
		}
		if err := s.reg.Add(h, m); err != nil {
			s.log.Warn("vr: module not registered", "module", m.Name(), "err", err)
		}
	}

	n := s.reg.Detect()
	s.state = Detected
	s.log.Info("vr: detected usable modules", "count", n, "registered", s.reg.Len())

	s.display = autocfg.Configure(s.reg, s.cfg.Module, s.log)
	if s.display == nil {
		s.state = Failed
		return ErrNoDisplayModule
	}

	for _, m := range s.reg.Active() {
		m.SetOriginMode(s.origin)
	}
	s.state = Configured
	return nil
}

// setupGraphics picks the render allocator: an explicit one, else the
// shared device of a DeviceProvider, else CPU images.
func (s *Session) setupGraphics() error {
	s.caps = backend.Capabilities{
		StereoSurface: s.opts.stereo,
		Mirror:        s.opts.mirror,
	}

	switch {
	case s.opts.allocator != nil:
		s.alloc = s.opts.allocator
	case s.opts.provider != nil:
		a, err := render.NewHALAllocatorFromProvider(s.opts.provider)
		if err != nil {
			return fmt.Errorf("vr: graphics device: %w", err)
		}
		s.alloc = a
	default:
		s.alloc = render.ImageAllocator{}
	}

	if s.opts.provider != nil {
		s.caps.SurfaceFormat = render.SurfaceFormat(s.opts.provider)
	}
	return nil
}

func (s *Session) applyConfig() {
	s.origin = s.cfg.Origin
	s.unitsScale = s.cfg.UnitsScale
	if s.unitsScale <= 0 {
		s.unitsScale = 1
	}
	s.fbScale = s.cfg.FBScale
	if s.fbScale <= 0 {
		s.fbScale = 1
	}
	s.overrides = autocfg.Overrides{
		autocfg.Head:      s.cfg.HeadSource,
		autocfg.LeftHand:  s.cfg.LeftHandSource,
		autocfg.RightHand: s.cfg.RightHandSource,
	}
}

// Detect probes every registered module again and returns how many are
// usable. It does not change which modules are active.
func (s *Session) Detect() (int, error) {
	if s.state == Uninitialized {
		return 0, ErrNotInitialized
	}
	return s.reg.Detect(), nil
}

// StartVR enters VR mode. The display module is started first; if it
// fails, StartVR returns ErrDisplayStart and nothing else is started.
// Input modules that fail to start are reported and left out of tracking.
// Tracking sources are bound once all modules have started.
//
// StartVR is a no-op while in VR mode.
func (s *Session) StartVR() error {
	if s.state == InSession {
		return nil
	}
	if s.state == Detected && s.display == nil {
		return ErrNoDisplayModule
	}
	if !s.state.canStart() {
		return ErrNotInitialized
	}

	if !s.display.Start() {
		s.log.Error("vr: display module failed to start", "module", s.display.Name())
		return fmt.Errorf("%w: %s", ErrDisplayStart, s.display.Name())
	}

	for _, m := range s.reg.Active() {
		if m == s.display {
			continue
		}
		if !m.Start() {
			s.log.Warn("vr: module failed to start", "module", m.Name())
		}
	}

	s.bind = autocfg.Resolve(s.display, s.reg.Sources(), s.overrides, s.log)
	s.display.SetFBSize(s.winWidth, s.winHeight, s.fbScale)

	s.frame = frameState{}
	s.state = InSession
	s.log.Info("vr: session started", "display", s.display.Name())
	return nil
}

// StopVR leaves VR mode. It is safe to call in the middle of a frame;
// the display module discards the unfinished frame. Calling StopVR outside
// VR mode is a no-op.
func (s *Session) StopVR() {
	if s.state != InSession {
		return
	}

	for _, m := range s.reg.Active() {
		m.Stop()
	}
	s.bind = autocfg.Bindings{}
	s.frame = frameState{}
	s.releaseFramebuffer()
	s.state = Idle
	s.log.Info("vr: session stopped")
}

// Shutdown stops VR mode, destroys every module and returns the session to
// Uninitialized. The session may be initialized again afterwards.
func (s *Session) Shutdown() {
	s.StopVR()
	s.releaseFramebuffer()
	s.reg.Clear()
	s.inputs.Clear()
	s.display = nil
	s.bind = autocfg.Bindings{}
	s.state = Uninitialized
}

func (s *Session) releaseFramebuffer() {
	if s.fb != nil && s.alloc != nil {
		s.alloc.DestroyFramebuffer(s.fb)
	}
	s.fb = nil
}

// sessionHost is the backend.Host handed to modules.
type sessionHost struct {
	s *Session
}

func (h *sessionHost) Logger() *slog.Logger               { return h.s.log }
func (h *sessionHost) Allocator() render.Allocator        { return h.s.alloc }
func (h *sessionHost) Capabilities() backend.Capabilities { return h.s.caps }

func (h *sessionHost) AddSource(src *backend.Source) {
	h.s.reg.AddSource(src)
}

func (h *sessionHost) RemoveSource(src *backend.Source) {
	h.s.reg.RemoveSource(src)
	if h.s.bind.Unbind(src) {
		h.s.log.Info("vr: tracking source removed", "source", src.Name())
	}
}
