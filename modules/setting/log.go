// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setting loads the logging configuration from an ini file and
// applies it to a registry. The format is:
//
//	[log]
//	LEVEL = info
//	COLORIZE = true
//
//	[log.modules]
//	device01 = debug
//	motor = off
//
//	[sink]
//	MODE = serial
//	PORT = /dev/ttyUSB0
//	BAUD = 115200
package setting

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/fwkit/fwlog/modules/log"
)

// Sink modes accepted in the [sink] section.
const (
	SinkConsole = "console"
	SinkSerial  = "serial"
)

// Log holds the logging configuration loaded from an ini file.
type Log struct {
	Level        log.Level
	Colorize     bool
	ModuleLevels map[string]log.Level
	Sink         Sink
}

// Sink holds the transport configuration from the [sink] section.
type Sink struct {
	Mode string
	Port string
	Baud int
}

// LoadLog reads the logging configuration from source, which may be a
// file path or a []byte, the way ini.Load accepts either. Unknown level
// strings fall back to info; an OFF global level is rejected because the
// registry would refuse it at apply time anyway.
func LoadLog(source any) (*Log, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load log settings: %w", err)
	}

	sec := cfg.Section("log")
	l := &Log{
		Level:        log.LevelFromString(sec.Key("LEVEL").MustString("debug")),
		Colorize:     sec.Key("COLORIZE").MustBool(true),
		ModuleLevels: make(map[string]log.Level),
	}
	if l.Level == log.OFF {
		return nil, fmt.Errorf("load log settings: %q is not a valid global level", sec.Key("LEVEL").String())
	}

	for _, key := range cfg.Section("log.modules").Keys() {
		l.ModuleLevels[key.Name()] = log.LevelFromString(key.Value())
	}

	sink := cfg.Section("sink")
	l.Sink = Sink{
		Mode: sink.Key("MODE").MustString(SinkConsole),
		Port: sink.Key("PORT").String(),
		Baud: sink.Key("BAUD").MustInt(115200),
	}
	if l.Sink.Mode != SinkConsole && l.Sink.Mode != SinkSerial {
		return nil, fmt.Errorf("load log settings: unknown sink mode %q", l.Sink.Mode)
	}
	if l.Sink.Mode == SinkSerial && l.Sink.Port == "" {
		return nil, fmt.Errorf("load log settings: sink mode %q needs PORT", SinkSerial)
	}
	return l, nil
}

// Apply pushes the loaded thresholds onto a registry. Modules named in
// the config but not (yet) registered are skipped: Lookup returns nil
// and SetLevel on a nil reference is a no-op, so a stale config entry
// never faults.
func (l *Log) Apply(r *log.Registry) {
	r.SetGlobalLevel(l.Level)
	r.SetColorize(l.Colorize)
	for name, level := range l.ModuleLevels {
		r.Lookup(name).SetLevel(level)
	}
}
