// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
)

// Sink is the blocking transport that carries rendered log lines off the
// target. Transmit does not return until the transport has accepted the
// bytes (or its own internal timeout elapsed); the result of transmission
// is not observed and never retried here.
type Sink interface {
	Transmit(p []byte)
}

// WriterSink adapts an io.Writer into a Sink. Write errors are dropped,
// transmission is fire-and-forget.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Transmit(p []byte) {
	_, _ = s.W.Write(p)
}

// CanColorStdout reports if we can color the Stdout
// Although we could do terminal sniffing elsewhere, we want to generally be able to change this flag in tests
var CanColorStdout = true

// CanColorStderr reports if we can color the Stderr
var CanColorStderr = true

// ConsoleSink returns a sink writing to standard output.
func ConsoleSink() Sink {
	return &WriterSink{W: os.Stdout}
}
