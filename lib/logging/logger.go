package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger prefixes every message with the name of the component that emitted it.
type Logger struct {
	prefix string
	base   *logrus.Logger
}

// New returns a logger writing to base under prefix. A nil base uses the logrus standard logger.
func New(prefix string, base *logrus.Logger) *Logger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &Logger{prefix: "[" + prefix + "] ", base: base}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{base: base}
}

// With returns a logger for a sub-component sharing the same output.
func (l *Logger) With(prefix string) *Logger {
	return &Logger{prefix: l.prefix + "[" + prefix + "] ", base: l.base}
}

// Base returns the underlying logrus logger.
func (l *Logger) Base() *logrus.Logger {
	return l.base
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Debugf(l.prefix+format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.base.Infof(l.prefix+format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.base.Errorf(l.prefix+format, args...)
}

func (l *Logger) Err(err error) {
	l.base.Error(l.prefix + err.Error())
}
