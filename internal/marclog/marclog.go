// Package marclog wraps logr.Logger the way rstms-iso-kit/pkg/logging
// wraps it for ISO 9660 parsing: a thin Logger with Debug/Trace/Error
// methods and a verbosity convention, used here to record the tolerance
// decisions the Reader makes while framing a record (spec.md §4.1).
package marclog

import "github.com/go-logr/logr"

const (
	levelDebug = 0
	levelTrace = 1
)

// Logger wraps a logr.Logger, keeping the rest of the package free of a
// direct logr dependency in its public surface.
type Logger struct {
	log logr.Logger
}

// New wraps log. A zero logr.Logger (GetSink() == nil) is treated as
// Discard.
func New(log logr.Logger) Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return Logger{log: log}
}

// Discard returns a Logger that drops everything, the default when no
// logger is configured via WithLogger.
func Discard() Logger {
	return Logger{log: logr.Discard()}
}

// Debug logs a tolerated deviation or other notable-but-not-fatal event.
func (l Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(levelDebug).Info(msg, keysAndValues...)
}

// Trace logs a fine-grained per-field decoding step.
func (l Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(levelTrace).Info(msg, keysAndValues...)
}

// Error logs the cause of a framing failure before it is returned to the
// caller as a *MarcError.
func (l Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}
