// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwkit/fwlog/modules/log"
)

type discardSink struct{}

func (discardSink) Transmit(p []byte) {}

func TestLoadLog(t *testing.T) {
	cfg, err := LoadLog([]byte(`
[log]
LEVEL = warn
COLORIZE = false

[log.modules]
device01 = debug
motor = off

[sink]
MODE = serial
PORT = /dev/ttyUSB0
BAUD = 9600
`))
	require.NoError(t, err)

	assert.Equal(t, log.WARN, cfg.Level)
	assert.False(t, cfg.Colorize)
	assert.Equal(t, map[string]log.Level{
		"device01": log.DEBUG,
		"motor":    log.OFF,
	}, cfg.ModuleLevels)
	assert.Equal(t, SinkSerial, cfg.Sink.Mode)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Sink.Port)
	assert.Equal(t, 9600, cfg.Sink.Baud)
}

func TestLoadLogDefaults(t *testing.T) {
	cfg, err := LoadLog([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, log.DEBUG, cfg.Level)
	assert.True(t, cfg.Colorize)
	assert.Empty(t, cfg.ModuleLevels)
	assert.Equal(t, SinkConsole, cfg.Sink.Mode)
	assert.Equal(t, 115200, cfg.Sink.Baud)
}

func TestLoadLogRejectsOffGlobal(t *testing.T) {
	_, err := LoadLog([]byte("[log]\nLEVEL = off\n"))
	assert.ErrorContains(t, err, "not a valid global level")
}

func TestLoadLogRejectsBadSink(t *testing.T) {
	_, err := LoadLog([]byte("[sink]\nMODE = carrier-pigeon\n"))
	assert.ErrorContains(t, err, "unknown sink mode")

	_, err = LoadLog([]byte("[sink]\nMODE = serial\n"))
	assert.ErrorContains(t, err, "needs PORT")
}

func TestApply(t *testing.T) {
	cfg, err := LoadLog([]byte(`
[log]
LEVEL = error
COLORIZE = false

[log.modules]
device01 = warn
ghost = debug
`))
	require.NoError(t, err)

	reg := log.NewRegistry(discardSink{})
	device := reg.Register("device01", log.DEBUG)

	// "ghost" is in the config but never registered; Apply must not fault.
	cfg.Apply(reg)

	assert.Equal(t, log.ERROR, reg.GlobalLevel())
	assert.Equal(t, log.WARN, device.GetLevel())
	assert.Nil(t, reg.Lookup("ghost"))
}
