package observability

import "github.com/sirupsen/logrus"

// LogrusLogger adapts a *logrus.Logger to the gt06.Logger interface,
// the CLI demo client's structured-logging backend.
type LogrusLogger struct {
	*logrus.Logger
}

// NewLogrusLogger returns a LogrusLogger writing JSON-formatted
// records, suitable for shipping to a log aggregator.
func NewLogrusLogger() *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	return &LogrusLogger{l}
}

// Debugf implements gt06.Logger.
func (l *LogrusLogger) Debugf(format string, args ...any) { l.Logger.Debugf(format, args...) }

// Infof implements gt06.Logger.
func (l *LogrusLogger) Infof(format string, args ...any) { l.Logger.Infof(format, args...) }

// Warnf implements gt06.Logger.
func (l *LogrusLogger) Warnf(format string, args ...any) { l.Logger.Warnf(format, args...) }

// Errorf implements gt06.Logger.
func (l *LogrusLogger) Errorf(format string, args ...any) { l.Logger.Errorf(format, args...) }
