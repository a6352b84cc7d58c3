// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"strings"

	"github.com/fwkit/fwlog/modules/json"
)

// Level is the severity of a log message, or a filtering threshold.
type Level int

// The severity scale, ordered from most to least verbose.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR

	levelCount
)

// OFF suppresses all output when used as a threshold. It is numerically
// greater than every real level, so nothing passes the gate. OFF is only
// valid as a module threshold, never as a message severity and never as
// the global threshold.
const OFF Level = 99

var toString = map[Level]string{
	DEBUG: "debug",
	INFO:  "info",
	WARN:  "warn",
	ERROR: "error",
	OFF:   "off",
}

var toLevel = map[string]Level{
	"debug":   DEBUG,
	"info":    INFO,
	"warn":    WARN,
	"warning": WARN,
	"error":   ERROR,
	"off":     OFF,
	"none":    OFF,
}

// The three-letter tags used in the emitted line prefix.
var toTag = map[Level]string{
	DEBUG: "DBG",
	INFO:  "INF",
	WARN:  "WRN",
	ERROR: "ERR",
}

// ShouldEmit reports whether a message at the given severity passes a
// threshold. A message is emitted iff severity >= threshold, so an OFF
// threshold rejects everything. Defined for every Level pair.
func ShouldEmit(severity, threshold Level) bool {
	return severity >= threshold
}

// validSeverity reports whether l may be attached to a message.
func validSeverity(l Level) bool {
	return l >= DEBUG && l < levelCount
}

// validThreshold reports whether l may be set as a module threshold.
func validThreshold(l Level) bool {
	return validSeverity(l) || l == OFF
}

func (l Level) String() string {
	s, ok := toString[l]
	if ok {
		return s
	}
	return "info"
}

// Tag returns the three-letter severity tag, eg. "DBG" for DEBUG.
func (l Level) Tag() string {
	t, ok := toTag[l]
	if ok {
		return t
	}
	return "???"
}

// MarshalJSON takes a Level and turns it into text
func (l Level) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(l.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON takes text and turns it into a Level
func (l *Level) UnmarshalJSON(b []byte) error {
	var tmp any
	err := json.Unmarshal(b, &tmp)
	if err != nil {
		return err
	}

	switch v := tmp.(type) {
	case string:
		*l = LevelFromString(v)
	case float64:
		*l = LevelFromString(Level(v).String())
	default:
		*l = INFO
	}
	return nil
}

// LevelFromString takes a level string and returns a Level
func LevelFromString(level string) Level {
	if l, ok := toLevel[strings.ToLower(level)]; ok {
		return l
	}
	return INFO
}
