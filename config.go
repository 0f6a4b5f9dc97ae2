package vr

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/vr/backend"
)

// Config holds the user-facing session settings. The zero value is
// usable: zero scales select the default of 1.
type Config struct {
	// Module forces a display module by name (case-insensitive). When set
	// and the module is not usable, Init fails.
	Module string `env:"VR_MODULE"`

	// Tracking source overrides, by source name. Invalid overrides are
	// reported and replaced by automatic selection.
	HeadSource      string `env:"VR_HEAD_SOURCE"`
	LeftHandSource  string `env:"VR_LEFT_HAND_SOURCE"`
	RightHandSource string `env:"VR_RIGHT_HAND_SOURCE"`

	// Origin is the tracking origin reference: "floor" or "head".
	Origin backend.OriginMode `env:"VR_ORIGIN" envDefault:"floor"`

	// UnitsScale converts meters to application units.
	UnitsScale float32 `env:"VR_UNITS_SCALE" envDefault:"1"`

	// FBScale is the render texture resolution scale.
	FBScale float32 `env:"VR_FB_SCALE" envDefault:"1"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Origin:     backend.OriginFloor,
		UnitsScale: 1,
		FBScale:    1,
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("vr: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// Validate checks that the scales are not negative.
func (c Config) Validate() error {
	if c.UnitsScale < 0 {
		return fmt.Errorf("%w: units scale %v", ErrInvalidConfig, c.UnitsScale)
	}
	if c.FBScale < 0 {
		return fmt.Errorf("%w: framebuffer scale %v", ErrInvalidConfig, c.FBScale)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.UnitsScale == 0 {
		c.UnitsScale = 1
	}
	if c.FBScale == 0 {
		c.FBScale = 1
	}
}
