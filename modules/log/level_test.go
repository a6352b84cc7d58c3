// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwkit/fwlog/modules/json"
)

func TestShouldEmit(t *testing.T) {
	severities := []Level{DEBUG, INFO, WARN, ERROR}
	thresholds := []Level{DEBUG, INFO, WARN, ERROR, OFF}

	for _, s := range severities {
		for _, th := range thresholds {
			assert.Equal(t, s >= th, ShouldEmit(s, th), "severity %s threshold %s", s, th)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, DEBUG < INFO)
	assert.True(t, INFO < WARN)
	assert.True(t, WARN < ERROR)
	assert.True(t, ERROR < OFF)
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, DEBUG, LevelFromString("debug"))
	assert.Equal(t, WARN, LevelFromString("WARNING"))
	assert.Equal(t, ERROR, LevelFromString("error"))
	assert.Equal(t, OFF, LevelFromString("off"))
	assert.Equal(t, OFF, LevelFromString("none"))
	assert.Equal(t, INFO, LevelFromString("gibberish"))
}

func TestLevelStringAndTag(t *testing.T) {
	assert.Equal(t, "debug", DEBUG.String())
	assert.Equal(t, "off", OFF.String())
	assert.Equal(t, "info", Level(57).String())

	assert.Equal(t, "DBG", DEBUG.Tag())
	assert.Equal(t, "WRN", WARN.Tag())
	assert.Equal(t, "???", OFF.Tag())
}

func TestLevelMarshalUnmarshalJSON(t *testing.T) {
	levelBytes, err := json.Marshal(ERROR)
	assert.NoError(t, err)
	assert.Equal(t, `"error"`, string(levelBytes))

	var level Level
	err = json.Unmarshal([]byte(`"warn"`), &level)
	assert.NoError(t, err)
	assert.Equal(t, WARN, level)

	err = json.Unmarshal([]byte(`2`), &level)
	assert.NoError(t, err)
	assert.Equal(t, WARN, level)

	err = json.Unmarshal([]byte(`true`), &level)
	assert.NoError(t, err)
	assert.Equal(t, INFO, level)
}
