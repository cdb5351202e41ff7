package sandbox

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/peter-kozarec/fillsim/internal/dbg"
	"github.com/peter-kozarec/fillsim/pkg/intraday"
)

var ErrInvalidConfig = errors.New("invalid engine config")

type CommissionConfig struct {
	PerShare float64 `yaml:"per_share"`
	Minimum  float64 `yaml:"minimum"`
}

type Config struct {
	Commission CommissionConfig `yaml:"commission"`
	Path       intraday.Config  `yaml:"path"`
	Log        dbg.LogConfig    `yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Commission: CommissionConfig{
			PerShare: 0.005,
			Minimum:  1.0,
		},
		Path: intraday.DefaultConfig(),
	}
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var err error

	if !nonNegative(c.Commission.PerShare) {
		err = multierr.Append(err, fmt.Errorf("%w: commission per share must be a non negative number, got %v",
			ErrInvalidConfig, c.Commission.PerShare))
	}
	if !nonNegative(c.Commission.Minimum) {
		err = multierr.Append(err, fmt.Errorf("%w: minimum commission must be a non negative number, got %v",
			ErrInvalidConfig, c.Commission.Minimum))
	}
	if pathErr := c.Path.Validate(); pathErr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %w", ErrInvalidConfig, pathErr))
	}

	return err
}

// LoadConfig reads a YAML engine config. ${VAR} references are expanded from
// the environment and missing keys keep their DefaultConfig values.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config file %q: %w", filename, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse config file %q: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", filename, err)
	}
	return cfg, nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
