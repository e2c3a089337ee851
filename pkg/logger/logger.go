// Package logger provides the process-wide structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared zap logger tagged with the service name.
// Falls back to a no-op logger if construction fails.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}
