package wlframe

import (
	"os"

	"deedles.dev/wlframe/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the sizing rules of a decoration. Sizes are content
// sizes, not counting the chrome.
type Config struct {
	Border   int `yaml:"border"`
	TitleBar int `yaml:"title_bar"`

	MinSize geom.Point[int]  `yaml:"min_size"`
	MaxSize *geom.Point[int] `yaml:"max_size,omitempty"`

	Enabled bool `yaml:"enabled"`

	// LegacyDamage must be set for surfaces of wl_surface version 3
	// or lower, which can only be damaged as a whole.
	LegacyDamage bool `yaml:"legacy_damage"`
}

// DefaultConfig returns an enabled config with the default chrome
// sizes and no meaningful size limits.
func DefaultConfig() Config {
	return Config{
		Border:   DefaultBorder,
		TitleBar: DefaultTitleBar,
		MinSize:  geom.Pt(1, 1),
		Enabled:  true,
	}
}

// ParseConfig decodes a YAML config. Fields missing from data keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfig reads and parses the YAML config at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	config, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %q", path)
	}
	return config, nil
}

// Validate checks the invariants of c. Invalid sizes are rejected,
// never adjusted.
func (c Config) Validate() error {
	if c.Border < 0 || c.TitleBar < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative chrome size (border %v, title bar %v)", c.Border, c.TitleBar)
	}
	if c.MinSize.X < 1 || c.MinSize.Y < 1 {
		return errors.Wrapf(ErrInvalidConfig, "min size %v must be at least 1x1", c.MinSize)
	}
	if c.MaxSize != nil && (c.MaxSize.X < c.MinSize.X || c.MaxSize.Y < c.MinSize.Y) {
		return errors.Wrapf(ErrInvalidConfig, "max size %v is smaller than min size %v", *c.MaxSize, c.MinSize)
	}
	return nil
}

// Clamp limits a content size to the configured bounds.
func (c Config) Clamp(size geom.Point[int]) geom.Point[int] {
	size = geom.Max(size, c.MinSize)
	if c.MaxSize != nil {
		size = geom.Min(size, *c.MaxSize)
	}
	return size
}

// AddBorders converts a content size into the size of the whole
// decorated window.
func (c Config) AddBorders(size geom.Point[int]) geom.Point[int] {
	return size.Add(geom.Pt(2*c.Border, 2*c.Border+c.TitleBar))
}

// SubtractBorders converts the size of a whole decorated window into
// its content size. The result may be negative.
func (c Config) SubtractBorders(size geom.Point[int]) geom.Point[int] {
	return size.Sub(geom.Pt(2*c.Border, 2*c.Border+c.TitleBar))
}
