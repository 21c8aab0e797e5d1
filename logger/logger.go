// logger/logger.go
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLogLevelFromString converts a level name to a zapcore.Level,
// defaulting to Info for anything unrecognised.
func ParseLogLevelFromString(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// BuildLogger creates a sugared zap logger with the given level and output
// format. Use "console" for a human-readable encoder, anything else gets JSON.
func BuildLogger(level zapcore.Level, format string) *zap.SugaredLogger {
	var config zap.Config
	if strings.EqualFold(format, "console") {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	log, err := config.Build()
	if err != nil {
		// zap configs only fail on unknown sink schemes; fall back rather
		// than forcing every caller to handle construction errors.
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}
