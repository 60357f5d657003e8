package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	timeKey    = "time"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level is the minimum level to emit.
	// Valid values are: "debug", "info", "warn", "error". Default is "info".
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error" default:"info"`

	// Encoding is the log format: "json" for production or "console" for
	// development. Default is "console".
	Encoding string `yaml:"encoding" validate:"omitempty,oneof=json console" default:"console"`

	// Disable creates a no-op logger. Useful in testing environments.
	Disable bool `yaml:"disable" default:"false"`
}

// build converts the Config to a zap logger.
func (c Config) build() (*zap.Logger, error) {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Encoding == "" {
		c.Encoding = "console"
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errx.Wrap(err)
	}

	zapCfg := zap.Config{
		Level:            level,
		Encoding:         c.Encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     messageKey,
			LevelKey:       levelKey,
			NameKey:        nameKey,
			TimeKey:        timeKey,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
	}

	l, err := zapCfg.Build()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return l, nil
}
