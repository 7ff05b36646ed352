package gt06

import (
	"log"
	"os"
)

// Logger receives structured lifecycle events from a Session: connect
// attempts, login, heart-beats, acks, timeouts, and inbound command
// dispatch. Implement this to plug in a richer logging library (the
// reference CLI client wires logrus); the library itself only depends
// on this interface.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger adapts the standard library's log.Logger to the Logger
// interface, matching the plain log.Printf style the reference TCP
// server used.
type stdLogger struct {
	*log.Logger
}

// NewStdLogger returns a Logger backed by the standard library log
// package, writing to stderr with date/time/microsecond prefixes.
func NewStdLogger() Logger {
	return &stdLogger{log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)}
}

func (l *stdLogger) Debugf(format string, args ...any) { l.Printf("DEBUG "+format, args...) }
func (l *stdLogger) Infof(format string, args ...any)  { l.Printf("INFO  "+format, args...) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.Printf("WARN  "+format, args...) }
func (l *stdLogger) Errorf(format string, args ...any) { l.Printf("ERROR "+format, args...) }

// NoopLogger discards every log call. Useful in tests that don't want
// stderr noise.
type NoopLogger struct{}

func (NoopLogger) Debugf(string, ...any) {}
func (NoopLogger) Infof(string, ...any)  {}
func (NoopLogger) Warnf(string, ...any)  {}
func (NoopLogger) Errorf(string, ...any) {}
