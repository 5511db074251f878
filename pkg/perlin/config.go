package perlin

import "fmt"

// Config describes a noise map: its dimensions, the number of octaves to
// blend, and the seed. Seed may be nil (fresh entropy), a string, a byte
// slice, an integer or a float; equal seeds reproduce identical maps.
type Config struct {
	Seed   any
	Width  int
	Height int
	Octave int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Octave: 1}
}

// ConfigError reports a configuration field that failed validation.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("perlin: %s must be at least 1, got %d", e.Field, e.Value)
}

// validate rejects non-positive dimensions and octave counts. Values are
// never clamped; a bad config fails here and nowhere else.
func (c Config) validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "width", Value: c.Width}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "height", Value: c.Height}
	}
	if c.Octave < 1 {
		return &ConfigError{Field: "octave", Value: c.Octave}
	}
	return nil
}
