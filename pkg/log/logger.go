package log

import "time"

// Logger is the structured logging interface domainkit components depend
// on. Adapters bridge it to concrete backends; see ZerologAdapter and
// NoopLogger.
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(msg string, fields ...Field)

	// Info logs normal operational events.
	Info(msg string, fields ...Field)

	// Warn logs recoverable anomalies.
	Warn(msg string, fields ...Field)

	// Error logs failures.
	Error(msg string, fields ...Field)
}

// Field is one key-value pair attached to a log message.
type Field struct {
	Key   string
	Value any
}

// String returns a Field holding a string.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Strings returns a Field holding a string slice.
func Strings(key string, value []string) Field {
	return Field{Key: key, Value: value}
}

// Int returns a Field holding an int.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 returns a Field holding an int64.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Uint64 returns a Field holding a uint64.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 returns a Field holding a float64.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool returns a Field holding a bool.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration returns a Field holding a time.Duration.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err returns a Field holding an error under the key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any returns a Field holding an arbitrary value. Adapters fall back to
// reflection-based encoding for values without a dedicated constructor.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
