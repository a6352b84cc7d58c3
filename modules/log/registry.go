// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"strconv"
)

// Registry owns the shared logging state: the sink, the global threshold
// used by call sites with no module context, and the table of registered
// module instances. The application's composition root builds one Registry
// and hands module references out via Register/Declare; tests can build
// isolated registries of their own.
//
// The execution model is single-threaded or cooperative: registration is
// expected during program init and the Registry takes no locks. Threshold
// reads and writes are plain scalar accesses; a stale read costs at most a
// missed or extra line.
type Registry struct {
	sink        Sink
	colorize    bool
	globalLevel Level
	modules     map[string]*Logger
}

// Option configures a Registry during creation.
type Option func(*Registry)

// WithColorize enables or disables ANSI color markers in rendered lines.
func WithColorize(on bool) Option {
	return func(r *Registry) {
		r.colorize = on
	}
}

// WithGlobalLevel sets the initial global threshold.
func WithGlobalLevel(level Level) Option {
	return func(r *Registry) {
		r.SetGlobalLevel(level)
	}
}

// NewRegistry creates a registry transmitting through the given sink.
// The sink must not be nil. The global threshold starts at DEBUG and
// color markers are off unless enabled by an option.
func NewRegistry(sink Sink, opts ...Option) *Registry {
	if sink == nil {
		panic("log: nil sink")
	}
	r := &Registry{
		sink:        sink,
		globalLevel: DEBUG,
		modules:     make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register creates the logging instance for a module. It must be called
// exactly once per module name, normally from a package-level var at the
// top of the module's file:
//
//	var logger = log.Register("device01", log.DEBUG)
//
// Registering the same name twice panics.
func (r *Registry) Register(name string, initial Level) *Logger {
	if name == "" {
		panic("log: empty module name")
	}
	if !validThreshold(initial) {
		panic("log: invalid module threshold " + strconv.Itoa(int(initial)))
	}
	if _, has := r.modules[name]; has {
		panic(fmt.Sprintf("log: module %q registered twice", name))
	}
	l := &Logger{name: name, level: initial, registry: r}
	r.modules[name] = l
	return l
}

// Declare returns the instance registered elsewhere under name, for a file
// that wants to log as that module or adjust its threshold without owning
// it. An unknown name panics; use Lookup for a nil-returning variant.
func (r *Registry) Declare(name string) *Logger {
	l, has := r.modules[name]
	if !has {
		panic(fmt.Sprintf("log: module %q is not registered", name))
	}
	return l
}

// Lookup returns the instance registered under name, or nil. The nil
// result is safe to use directly: all Logger methods no-op on nil.
func (r *Registry) Lookup(name string) *Logger {
	return r.modules[name]
}

// SetGlobalLevel overwrites the process-wide threshold used by call sites
// with no module context. Only DEBUG..ERROR are accepted; anything else,
// including OFF, panics. To silence the global path entirely, mute the
// sink instead.
func (r *Registry) SetGlobalLevel(level Level) {
	if !validSeverity(level) {
		panic("log: invalid global threshold " + strconv.Itoa(int(level)))
	}
	r.globalLevel = level
}

// GlobalLevel returns the current process-wide threshold.
func (r *Registry) GlobalLevel() Level {
	return r.globalLevel
}

// SetColorize enables or disables ANSI color markers at runtime.
func (r *Registry) SetColorize(on bool) {
	r.colorize = on
}

// LevelEnabled reports whether a message at the given severity would be
// emitted through the global path.
func (r *Registry) LevelEnabled(level Level) bool {
	return ShouldEmit(level, r.globalLevel)
}

// Log gates, renders and transmits one message through the global path.
// skip is the number of stack frames between Log's caller and the call
// site to report; the per-level helpers pass 1.
func (r *Registry) Log(skip int, level Level, format string, v ...any) {
	if !ShouldEmit(level, r.globalLevel) {
		return
	}
	r.emit(skip+2, level, "", format, v)
}

// Debug logs a message at DEBUG severity against the global threshold.
func (r *Registry) Debug(format string, v ...any) {
	r.Log(1, DEBUG, format, v...)
}

// Info logs a message at INFO severity against the global threshold.
func (r *Registry) Info(format string, v ...any) {
	r.Log(1, INFO, format, v...)
}

// Warn logs a message at WARN severity against the global threshold.
func (r *Registry) Warn(format string, v ...any) {
	r.Log(1, WARN, format, v...)
}

// Error logs a message at ERROR severity against the global threshold.
func (r *Registry) Error(format string, v ...any) {
	r.Log(1, ERROR, format, v...)
}

// Raw renders format without severity tag, context or color markers and
// always transmits, regardless of any threshold. It shares the bounded
// buffer and truncation discipline of the gated path. Meant for banners
// and other unconditional output.
func (r *Registry) Raw(format string, v ...any) {
	buf := make([]byte, 0, BufferSize)
	buf = fmt.Appendf(buf, format, v...)
	r.sink.Transmit(clampBuffer(buf))
}

// emit renders one gated message and hands it to the sink. The gate has
// already passed by the time emit runs. Formatting cannot fail: fmt folds
// bad verbs into the output and the result is transmitted as-is, so a
// malformed argument never makes logging itself abort.
func (r *Registry) emit(skip int, level Level, module, format string, v []any) {
	e := Event{level: level, module: module}
	e.caller, e.line = callerContext(skip)

	buf := make([]byte, 0, BufferSize)
	appendPrefix(&buf, &e, r.colorize)
	buf = fmt.Appendf(buf, format, v...)
	if r.colorize && level == DEBUG {
		buf = append(buf, resetBytes...)
	}
	r.sink.Transmit(clampBuffer(buf))
}
