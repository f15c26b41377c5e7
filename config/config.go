// Package config resolves visualizer settings from defaults, an optional TOML
// file and command-line overrides.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sorted/constants"
)

// Duration decodes TOML strings such as "8ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of the visualizer
type Config struct {
	ArraySize int      `toml:"array_size"`
	MinValue  int      `toml:"min_value"`
	MaxValue  int      `toml:"max_value"`
	StepDelay Duration `toml:"step_delay"`
	FPS       int      `toml:"fps"`
	Sound     bool     `toml:"sound"`
	Volume    float64  `toml:"volume"`

	// Seed makes array generation deterministic when non-zero
	Seed uint64 `toml:"seed"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ArraySize: constants.ArraySize,
		MinValue:  constants.MinValue,
		MaxValue:  constants.MaxValue,
		StepDelay: Duration{constants.StepDelay},
		FPS:       constants.FrameRate,
		Sound:     true,
		Volume:    constants.DefaultVolume,
	}
}

// Load overlays the TOML file at path on the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, errors.Wrap(err, "config file")
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return cfg, nil
}

// FrameInterval returns the idle redraw interval, the default rate when FPS is unset
func (c Config) FrameInterval() time.Duration {
	if c.FPS < 1 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	switch {
	case c.ArraySize < 1:
		return errors.Errorf("array_size must be at least 1, got %d", c.ArraySize)
	case c.ArraySize > constants.MaxArraySize:
		return errors.Errorf("array_size must be at most %d, got %d", constants.MaxArraySize, c.ArraySize)
	case c.MinValue < 1:
		return errors.Errorf("min_value must be positive, got %d", c.MinValue)
	case c.MaxValue < c.MinValue:
		return errors.Errorf("max_value %d is below min_value %d", c.MaxValue, c.MinValue)
	case c.StepDelay.Duration < 0:
		return errors.Errorf("step_delay must not be negative, got %v", c.StepDelay.Duration)
	case c.FPS < 1:
		return errors.Errorf("fps must be at least 1, got %d", c.FPS)
	case c.Volume < 0 || c.Volume > 1:
		return errors.Errorf("volume must be within [0,1], got %v", c.Volume)
	}
	return nil
}
