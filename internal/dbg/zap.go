package dbg

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// NewLogger builds the zap logger described by cfg. An empty level yields a
// no-op logger.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	if cfg.Level == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("unable to parse log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableCaller = true

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to build logger: %w", err)
	}
	return logger, nil
}
