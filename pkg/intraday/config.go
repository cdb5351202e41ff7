package intraday

import (
	"errors"
	"fmt"
	"math"
)

// Profile shapes how interpolated points are spread over time.
type Profile string

const (
	// ProfileUniform spreads points evenly.
	ProfileUniform Profile = "uniform"
	// ProfileUShaped crowds points at both edges of every segment, the way
	// volume crowds the open and close auctions.
	ProfileUShaped Profile = "u-shaped"
	// ProfileJShaped puts more points towards the end of the path.
	ProfileJShaped Profile = "j-shaped"
	// ProfileReverseJ puts more points towards the beginning of the path.
	ProfileReverseJ Profile = "reverse-j"
)

const (
	// DefaultTotalPoints is one point per minute of a 6.5 hour session.
	DefaultTotalPoints      = 390
	DefaultDegreesOfFreedom = 4.0
)

var ErrInvalidConfig = errors.New("invalid intraday path config")

type Config struct {
	Profile     Profile `yaml:"profile"`
	TotalPoints int     `yaml:"total_points"`
	// Seed makes generation reproducible. Nil seeds from the clock.
	Seed *int64 `yaml:"seed"`
	// DegreesOfFreedom of the Student's t shocks. Lower values give fatter
	// tails and more violent intermediate excursions.
	DegreesOfFreedom float64 `yaml:"degrees_of_freedom"`
}

func DefaultConfig() Config {
	return Config{
		Profile:          ProfileUniform,
		TotalPoints:      DefaultTotalPoints,
		DegreesOfFreedom: DefaultDegreesOfFreedom,
	}
}

// WithSeed returns a copy of c seeded with seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}

func (c Config) Validate() error {
	switch c.Profile {
	case ProfileUniform, ProfileUShaped, ProfileJShaped, ProfileReverseJ:
	default:
		return fmt.Errorf("%w: unknown profile %q", ErrInvalidConfig, c.Profile)
	}
	if c.TotalPoints < 0 {
		return fmt.Errorf("%w: total points must not be negative, got %d", ErrInvalidConfig, c.TotalPoints)
	}
	if math.IsNaN(c.DegreesOfFreedom) || math.IsInf(c.DegreesOfFreedom, 0) || c.DegreesOfFreedom <= 0 {
		return fmt.Errorf("%w: degrees of freedom must be positive, got %v", ErrInvalidConfig, c.DegreesOfFreedom)
	}
	return nil
}
