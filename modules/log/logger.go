// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strconv"

// Logger is the logging identity of one firmware module: an immutable name
// plus a mutable minimum severity. Register and Declare hand out the same
// instance to every caller, so a threshold change made through any reference
// is observed by all of them. A Logger is never copied and lives for the
// whole process.
//
// All methods are safe on a nil *Logger: logging and SetLevel become no-ops,
// so a module reference that was never wired up cannot fault.
type Logger struct {
	name     string
	level    Level
	registry *Registry
}

// Name returns the module name used as the line prefix context.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// GetLevel returns the module's current threshold.
func (l *Logger) GetLevel() Level {
	if l == nil {
		return OFF
	}
	return l.level
}

// SetLevel overwrites the module's threshold. The reference may be nil, in
// which case nothing happens. Any value outside DEBUG..ERROR and OFF panics.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	if !validThreshold(level) {
		panic("log: invalid module threshold " + strconv.Itoa(int(level)))
	}
	l.level = level
}

// LevelEnabled reports whether a message at the given severity would be
// emitted through this module.
func (l *Logger) LevelEnabled(level Level) bool {
	return l != nil && ShouldEmit(level, l.level)
}

// Log gates, renders and transmits one message through this module.
// skip is the number of stack frames between Log's caller and the call
// site to report; the per-level helpers pass 1.
func (l *Logger) Log(skip int, level Level, format string, v ...any) {
	if l == nil || !ShouldEmit(level, l.level) {
		return
	}
	l.registry.emit(skip+2, level, l.name, format, v)
}

// Debug logs a message at DEBUG severity.
func (l *Logger) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

// Info logs a message at INFO severity.
func (l *Logger) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

// Warn logs a message at WARN severity.
func (l *Logger) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

// Error logs a message at ERROR severity.
func (l *Logger) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}
