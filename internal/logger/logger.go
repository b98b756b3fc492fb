package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format is the log line encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Logger wraps the zap logger used across the sizing packages.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a JSON logger at info level.
func NewLogger() (*Logger, error) {
	return NewLoggerWithLevel(zapcore.InfoLevel)
}

// NewLoggerWithLevel creates a JSON logger at the given level.
func NewLoggerWithLevel(level zapcore.Level) (*Logger, error) {
	return NewLoggerWithFormat(level, FormatJSON)
}

// NewLoggerWithFormat creates a logger writing to stderr, leaving stdout to
// command output. Sampling is off so no sizing diagnostic is dropped.
func NewLoggerWithFormat(level zapcore.Level, format Format) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil

	switch format {
	case FormatJSON, "":
	case FormatConsole:
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{
		Logger: zap.NewNop(),
	}
}

// NewLoggerWithCore builds a logger on top of an existing core, e.g. zaptest/observer in tests.
func NewLoggerWithCore(core zapcore.Core) *Logger {
	return &Logger{
		Logger: zap.New(core),
	}
}

// Sync flushes buffered entries. It is safe on an empty Logger.
func (l *Logger) Sync() error {
	if l == nil || l.Logger == nil {
		return nil
	}

	return l.Logger.Sync()
}
