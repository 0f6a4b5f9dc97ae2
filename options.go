package vr

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vr/backend"
	"github.com/gogpu/vr/render"
)

// Option configures a Session during creation.
//
// Example:
//
//	s := vr.NewSession(
//		vr.WithModules(sbs.New, anaglyph.New),
//		vr.WithLogger(slog.Default()),
//	)
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	config    *Config
	logger    *slog.Logger
	factories []backend.Factory
	allocator render.Allocator
	provider  gpucontext.DeviceProvider
	stereo    bool
	mirror    xdraw.Image
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		logger: Logger(),
	}
}

// WithConfig sets the session configuration. Without it, Init loads the
// configuration from the environment with [LoadConfig]. Unset scales
// default to 1, so a partial Config such as Config{Module: "sbs"} works.
func WithConfig(cfg Config) Option {
	return func(o *sessionOptions) {
		o.config = &cfg
	}
}

// WithLogger sets the session logger, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}

// WithModules adds module factories. Init constructs and registers the
// modules in the order given; registration order breaks priority ties.
func WithModules(factories ...backend.Factory) Option {
	return func(o *sessionOptions) {
		o.factories = append(o.factories, factories...)
	}
}

// WithAllocator sets the graphics collaborator used for render textures.
func WithAllocator(a render.Allocator) Option {
	return func(o *sessionOptions) {
		o.allocator = a
	}
}

// WithDeviceProvider shares the GPU device of a host application. Render
// textures are then allocated on that device through wgpu/hal, and the
// provider's surface format is reported to modules.
//
// Example:
//
//	app := gogpu.NewApp(...)
//	s := vr.NewSession(vr.WithDeviceProvider(app.DeviceProvider()))
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *sessionOptions) {
		o.provider = p
	}
}

// WithStereoSurface tells modules whether the window surface has separate
// left and right back buffers.
func WithStereoSurface(stereo bool) Option {
	return func(o *sessionOptions) {
		o.stereo = stereo
	}
}

// WithMirror sets the image that DrawMirror copies the rendered eyes into.
func WithMirror(dst xdraw.Image) Option {
	return func(o *sessionOptions) {
		o.mirror = dst
	}
}
