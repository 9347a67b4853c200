package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel defines the fallback log level when an unknown level string is provided.
const defaultZapLevel = zapcore.DebugLevel

// toZapLevel converts a textual level to zapcore.Level using known level constants.
func toZapLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newEncoder builds a console or JSON encoder. Console output omits the time
// key because the process supervisor stamps lines already.
func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	if format == FormatJSON {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// newCore builds a zapcore.Core writing to ws.
func newCore(opts Options, ws zapcore.WriteSyncer) zapcore.Core {
	return zapcore.NewCore(newEncoder(opts.Format), ws, zap.NewAtomicLevelAt(toZapLevel(opts.Level)))
}

// newZapLogger constructs a sugared zap logger targeting stdout.
func newZapLogger(opts Options) *Logger {
	core := newCore(opts, zapcore.Lock(os.Stdout)) // thread-safe writer
	return FromZap(zap.New(core))
}

// FromZap wraps an existing zap logger, e.g. one built on an observer core in tests.
func FromZap(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return FromZap(zap.NewNop())
}
