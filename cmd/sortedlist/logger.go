package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	ConfigurationKeyLoggerLevel             = "logger.level"
	ConfigurationKeyLoggerEncoding          = "logger.encoding"
	ConfigurationKeyLoggerOutputPaths       = "logger.outputPaths"
	ConfigurationKeyLoggerDisableCaller     = "logger.disableCaller"
	ConfigurationKeyLoggerDisableStacktrace = "logger.disableStacktrace"
)

// LoggerConfig holds the settings to configure the root logger.
type LoggerConfig struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `koanf:"level"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `koanf:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stderr"] so that logs do not mix with the printed list.
	OutputPaths []string `koanf:"outputPaths"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	DisableCaller bool `koanf:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `koanf:"disableStacktrace"`
}

var defaultLoggerConfig = LoggerConfig{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// newLogger builds the root logger from the given config.
func newLogger(cfg LoggerConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = defaultLoggerConfig.OutputPaths
	}

	logger, err := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build logger")
	}

	return logger, nil
}
