package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger so services depend on one concrete type.
type Logger struct {
	*zap.Logger
}

// New builds a production logger with the given level ("debug", "info", ...) and encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if encoding == "" {
		encoding = "json"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = encoding
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: zl}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Field creates a field of any type.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}

// StringField creates a string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates an int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// StringsField creates a string slice field.
func StringsField(key string, value []string) zap.Field {
	return zap.Strings(key, value)
}
