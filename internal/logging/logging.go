// Package logging builds the diagnostic logger. Diagnostics never go to
// stdout and never into hook log files.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the sinks.
type Config struct {
	Debug    bool      // console sink at debug level
	Console  io.Writer // console sink destination, normally stderr
	FilePath string    // JSON sink with rotation; empty disables it
}

// New returns a logger tagged with a fresh run_id, the run id itself, and a
// closer for the file sink. With no sink enabled the logger is a no-op.
func New(cfg Config) (*zap.Logger, string, func() error) {
	runID := uuid.NewString()

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var cores []zapcore.Core
	if cfg.Debug && cfg.Console != nil {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(cfg.Console), zapcore.DebugLevel))
	}

	closeFn := func() error { return nil }
	if cfg.FilePath != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		closeFn = writer.Close
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), zapcore.DebugLevel))
	}

	if len(cores) == 0 {
		return zap.NewNop(), runID, closeFn
	}
	return zap.New(zapcore.NewTee(cores...)).With(zap.String("run_id", runID)), runID, closeFn
}
