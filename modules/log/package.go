// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides severity-filtered logging for firmware-style targets.
// Concepts:
//
//   - Level: the ordered severity scale DEBUG < INFO < WARN < ERROR, plus the
//     threshold-only sentinel OFF. A message is emitted iff its severity is
//     >= the effective threshold.
//
//   - Logger: the logging identity of one module, a name plus its own
//     threshold. Registered once, then shared by reference everywhere.
//
//   - Registry: owns the sink, the global threshold and the module table.
//     A call site with no module context filters against the global
//     threshold; a module call site filters against its module's threshold
//     only, never both.
//
//   - Sink: the blocking transport that rendered lines are handed to,
//     eg. a console or a serial port.
//
// Call graph:
// -> log.Info() / logger.Info()
// -> gate against the effective threshold (cheap reject, no allocation)
// -> render into the fixed BufferSize buffer, truncating at BufferSize-1
// -> Sink.Transmit
package log

// The process-wide default registry, writing to standard output. Module
// registration from package-level vars lands here; an application that
// wants isolation builds its own Registry instead.
var defaultRegistry = NewRegistry(ConsoleSink())

func init() {
	defaultRegistry.SetColorize(CanColorStdout)
}

// DefaultRegistry returns the process-wide registry used by the
// package-level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register creates a module instance in the default registry.
func Register(name string, initial Level) *Logger {
	return defaultRegistry.Register(name, initial)
}

// Declare returns a module instance registered elsewhere in the default
// registry.
func Declare(name string) *Logger {
	return defaultRegistry.Declare(name)
}

// Lookup returns a module instance from the default registry, or nil.
func Lookup(name string) *Logger {
	return defaultRegistry.Lookup(name)
}

// SetGlobalLevel overwrites the default registry's global threshold.
func SetGlobalLevel(level Level) {
	defaultRegistry.SetGlobalLevel(level)
}

// GlobalLevel returns the default registry's global threshold.
func GlobalLevel() Level {
	return defaultRegistry.GlobalLevel()
}

// Debug logs a message at DEBUG severity through the default registry.
func Debug(format string, v ...any) {
	defaultRegistry.Log(1, DEBUG, format, v...)
}

// Info logs a message at INFO severity through the default registry.
func Info(format string, v ...any) {
	defaultRegistry.Log(1, INFO, format, v...)
}

// Warn logs a message at WARN severity through the default registry.
func Warn(format string, v ...any) {
	defaultRegistry.Log(1, WARN, format, v...)
}

// Error logs a message at ERROR severity through the default registry.
func Error(format string, v ...any) {
	defaultRegistry.Log(1, ERROR, format, v...)
}

// Raw transmits unconditionally through the default registry, without
// tags, colors or gating.
func Raw(format string, v ...any) {
	defaultRegistry.Raw(format, v...)
}
