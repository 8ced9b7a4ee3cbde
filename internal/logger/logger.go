// Package logger builds the blade CLI's structured logger on zap.
package logger

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-blade/internal/config"
)

// Logger wraps zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
	base   *zap.Logger
	closer io.Closer // log file, nil for stderr/stdout
}

// New creates a Logger from configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	writer, closer, err := buildWriter(cfg.Output)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(buildEncoder(cfg.Format), writer, parseLevel(cfg.Level))
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{SugaredLogger: base.Sugar(), base: base, closer: closer}, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// buildWriter resolves stderr, stdout or a file path. Results go to stdout,
// so stderr is the default.
func buildWriter(output string) (zapcore.WriteSyncer, io.Closer, error) {
	switch output {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil, nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil, nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return zapcore.AddSync(f), f, nil
}

// WithCommand returns a Logger tagged with the running subcommand.
// The returned Logger shares l's output; close only l.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With("command", name), base: l.base}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// Close flushes buffered entries and closes the log file, if any. It is safe
// to call more than once.
func (l *Logger) Close() error {
	err := l.base.Sync()
	if l.closer == nil {
		return nil // syncing a terminal can fail harmlessly
	}
	c := l.closer
	l.closer = nil
	return errors.Join(err, c.Close())
}
