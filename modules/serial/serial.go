// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package serial provides a log sink transmitting over a serial port,
// the host-side counterpart of a UART debug console.
package serial

import (
	"fmt"

	"go.bug.st/serial"
)

// DefaultBaudRate is used when the configuration does not set one.
const DefaultBaudRate = 115200

// Sink transmits rendered log lines over a serial port. Writes block
// until the driver accepts the bytes.
type Sink struct {
	port serial.Port
}

// Open opens the named port (eg. /dev/ttyUSB0, COM3) as a log sink
// in 8N1 framing.
func Open(name string, baud int) (*Sink, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}
	return &Sink{port: port}, nil
}

// Transmit writes one rendered line to the port. The result of the
// transmission is not observed and never retried, logging is
// fire-and-forget on this path.
func (s *Sink) Transmit(p []byte) {
	_, _ = s.port.Write(p)
}

// Close releases the port.
func (s *Sink) Close() error {
	return s.port.Close()
}
