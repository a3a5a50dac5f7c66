//go:build debug
// +build debug

package dlog

import (
	"fmt"
)

const debugMarker = "[debug] "

// Debugf prints to the logger in the manner of fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Output(2, debugMarker+fmt.Sprintf(format, v...))
}

// Debug prints to the logger in the manner of fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.Output(2, debugMarker+fmt.Sprint(v...))
}
