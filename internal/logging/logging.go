// Package logging provides the small logger interface threaded through
// the core, mirroring the way the teacher codebase keeps every
// component independent of a concrete logging backend.
package logging

import "github.com/sirupsen/logrus"

// Logger is the minimal surface every subsystem logs through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type stdLogger struct {
	l *logrus.Logger
}

// NewStdLogger returns a Logger backed by logrus, configured the same
// way the teacher wires it up for its MMU: debug level, plain text,
// no timestamps or field sorting, so output stays a single readable
// line per call.
func NewStdLogger() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return stdLogger{l: l}
}

func (s stdLogger) Infof(format string, args ...interface{}) {
	s.l.Infof(format, args...)
}

func (s stdLogger) Errorf(format string, args ...interface{}) {
	s.l.Errorf(format, args...)
}

func (s stdLogger) Debugf(format string, args ...interface{}) {
	s.l.Debugf(format, args...)
}

type nullLogger struct{}

// NewNullLogger returns a Logger that discards everything. This is the
// default for gbcore.New so embedding the core in a host application
// never prints without being asked to.
func NewNullLogger() Logger {
	return nullLogger{}
}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}
