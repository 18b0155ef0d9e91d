package log

// NoopLogger discards every message. Components fall back to it when no
// logger is configured, so call sites never nil-check.
type NoopLogger struct{}

var _ Logger = (*NoopLogger)(nil)

// NewNoopLogger creates a logger that produces no output.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(string, ...Field) {}

func (NoopLogger) Info(string, ...Field) {}

func (NoopLogger) Warn(string, ...Field) {}

func (NoopLogger) Error(string, ...Field) {}
