// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalUnmarshal(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}

	b, err := Marshal(payload{Name: "device01", Level: 2})
	assert.NoError(t, err)
	assert.Equal(t, `{"name":"device01","level":2}`, string(b))

	var p payload
	assert.NoError(t, Unmarshal(b, &p))
	assert.Equal(t, "device01", p.Name)
	assert.Equal(t, 2, p.Level)
}

func TestEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewEncoder(&buf).Encode(map[string]string{"k": "v"}))

	var m map[string]string
	assert.NoError(t, NewDecoder(&buf).Decode(&m))
	assert.Equal(t, "v", m["k"])
}
