// Package logging builds the zap logger used by the focus command and adapts
// it to focus.Logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log files.
const (
	MaxSize    = 20 // megabytes
	MaxBackups = 3
)

// Output returns where logs are written: a rotating file when file is set,
// w otherwise.
func Output(file string, w io.Writer) io.Writer {
	if file == "" {
		return w
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    MaxSize,
		MaxBackups: MaxBackups,
	}
}

// New returns a console logger writing to w. Debug messages are only
// written when verbose is set.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// Adapter implements focus.Logger on top of a zap logger.
type Adapter struct {
	sugar *zap.SugaredLogger
}

// NewAdapter wraps logger.
//
// Example:
//
//	log := logging.New(os.Stderr, verbose)
//	s := focus.New(port, focus.WithLogger(logging.NewAdapter(log)))
func NewAdapter(logger *zap.Logger) *Adapter {
	return &Adapter{sugar: logger.Sugar()}
}

// Debug logs a debug message with key-value pairs.
func (a *Adapter) Debug(msg string, keysAndValues ...interface{}) {
	a.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info message with key-value pairs.
func (a *Adapter) Info(msg string, keysAndValues ...interface{}) {
	a.sugar.Infow(msg, keysAndValues...)
}

// Error logs an error message with key-value pairs.
func (a *Adapter) Error(msg string, keysAndValues ...interface{}) {
	a.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered log entries.
func (a *Adapter) Sync() error {
	return a.sugar.Sync()
}
