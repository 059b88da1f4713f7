// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path logging helpers for the atom generator
//
// Purpose:
//   - Logs generator progress and failures (config load, vocabulary sources,
//     file emission) through a single zap logger.
//   - Keeps the tiny DropError / DropMessage call surface so call sites stay
//     one-liners.
//
// Notes:
//   - Generated code and run-time matchers never log; this package is only
//     reachable from the generator command and its loaders.
//
// ⚠️ Never invoke in hot loops — use only in setup and failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(NewLogger("info"))
}

// NewLogger builds a console logger on stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	return zap.New(core)
}

// SetLogger replaces the process logger. A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	return logger.Load()
}

// DropError logs a failure under prefix.
//
// Behavior:
//   - If `err != nil`, logs at error level with the error attached.
//   - If `err == nil`, logs the bare prefix at warn level (used as a cheap tag).
func DropError(prefix string, err error) {
	if err != nil {
		logger.Load().Error(prefix, zap.Error(err))
		return
	}
	logger.Load().Warn(prefix)
}

// DropMessage logs an informational message under prefix.
func DropMessage(prefix, message string) {
	logger.Load().Info(message, zap.String("stage", prefix))
}

// DropTrace logs a debug-level message with structured fields.
func DropTrace(prefix, message string, fields ...zap.Field) {
	logger.Load().Debug(message, append(fields, zap.String("stage", prefix))...)
}
