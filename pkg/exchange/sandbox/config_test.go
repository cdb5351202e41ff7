package sandbox

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/peter-kozarec/fillsim/pkg/intraday"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErrors int
	}{
		{"default", func(*Config) {}, 0},
		{"free trading", func(c *Config) { c.Commission = CommissionConfig{} }, 0},
		{"negative per share", func(c *Config) { c.Commission.PerShare = -0.01 }, 1},
		{"nan minimum", func(c *Config) { c.Commission.Minimum = math.NaN() }, 1},
		{"both negative", func(c *Config) { c.Commission = CommissionConfig{PerShare: -1, Minimum: -1} }, 2},
		{"bad path profile", func(c *Config) { c.Path.Profile = "flat" }, 1},
		{"everything wrong", func(c *Config) {
			c.Commission = CommissionConfig{PerShare: math.Inf(1), Minimum: -1}
			c.Path.TotalPoints = -3
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErrors == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Len(t, multierr.Errors(err), tt.wantErrors)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FILLSIM_SEED", "17")

	file := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
commission:
  per_share: 0.0035
path:
  profile: u-shaped
  seed: ${FILLSIM_SEED}
log:
  level: warn
`), 0o600))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 0.0035, cfg.Commission.PerShare)
	assert.Equal(t, DefaultConfig().Commission.Minimum, cfg.Commission.Minimum)
	assert.Equal(t, intraday.ProfileUShaped, cfg.Path.Profile)
	assert.Equal(t, intraday.DefaultTotalPoints, cfg.Path.TotalPoints)
	require.NotNil(t, cfg.Path.Seed)
	assert.Equal(t, int64(17), *cfg.Path.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("commission:\n  minimum: -2\n"), 0o600))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("commission: [1, 2"), 0o600))
	_, err = LoadConfig(malformed)
	assert.Error(t, err)
}
