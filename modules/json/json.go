// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Encoder represents an encoder for json
type Encoder interface {
	Encode(v any) error
}

// Decoder represents a decoder for json
type Decoder interface {
	Decode(v any) error
}

// Interface represents an interface to handle json data
type Interface interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	NewEncoder(writer io.Writer) Encoder
	NewDecoder(reader io.Reader) Decoder
}

// JSONiter implements Interface via jsoniter
type JSONiter struct{}

var jsonit = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal implements Interface
func (JSONiter) Marshal(v any) ([]byte, error) {
	return jsonit.Marshal(v)
}

// Unmarshal implements Interface
func (JSONiter) Unmarshal(data []byte, v any) error {
	return jsonit.Unmarshal(data, v)
}

// NewEncoder implements Interface
func (JSONiter) NewEncoder(writer io.Writer) Encoder {
	return jsonit.NewEncoder(writer)
}

// NewDecoder implements Interface
func (JSONiter) NewDecoder(reader io.Reader) Decoder {
	return jsonit.NewDecoder(reader)
}

// DefaultJSONHandler default json handler
var DefaultJSONHandler Interface = JSONiter{}

// Marshal converts object as bytes
func Marshal(v any) ([]byte, error) {
	return DefaultJSONHandler.Marshal(v)
}

// Unmarshal decodes object from bytes
func Unmarshal(data []byte, v any) error {
	return DefaultJSONHandler.Unmarshal(data, v)
}

// NewEncoder creates an encoder to write objects to writer
func NewEncoder(writer io.Writer) Encoder {
	return DefaultJSONHandler.NewEncoder(writer)
}

// NewDecoder creates a decoder to read objects from reader
func NewDecoder(reader io.Reader) Decoder {
	return DefaultJSONHandler.NewDecoder(reader)
}
