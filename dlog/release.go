//go:build !debug
// +build !debug

package dlog

// Debugf is a no-op unless built with the debug tag
func (l *Logger) Debugf(format string, v ...interface{}) {}

// Debug is a no-op unless built with the debug tag
func (l *Logger) Debug(v ...interface{}) {}
