// Package log provides the logging abstraction used across domainkit.
//
// The library never logs through a concrete backend. Components accept a
// Logger, and adapters bridge to real logging libraries. A zerolog
// adapter ships in the box, as does a no-op logger, which is the default
// wherever a logger is optional.
//
// # Usage
//
// Route enumeration diagnostics to zerolog:
//
//	enumeration.SetLogger(log.NewZerologAdapter())
//
// Or wrap an existing zerolog.Logger:
//
//	adapter := log.NewZerologAdapterWithLogger(zl)
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with your existing
// logging infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
