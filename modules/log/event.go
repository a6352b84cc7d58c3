// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"runtime"
	"strings"
)

// Event carries everything the emitter needs to render one log line.
type Event struct {
	level  Level
	module string // module name, empty for the global path
	caller string // short function name of the call site
	line   int
}

// BufferSize is the fixed capacity of the per-call formatting buffer.
// A rendered line longer than BufferSize-1 bytes is truncated; the buffer
// is never grown and the sink is never handed more than BufferSize-1 bytes.
const BufferSize = 128

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// callerContext captures the short function name and line of the frame
// skip levels above its caller.
func callerContext(skip int) (funcname string, line int) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	funcname = runtime.FuncForPC(pc).Name()
	if lastIndex := strings.LastIndexByte(funcname, '.'); lastIndex > 0 && len(funcname) > lastIndex+1 {
		funcname = funcname[lastIndex+1:]
	}
	return funcname, line
}

// appendPrefix renders the severity tag and context portion of a line:
// "[DBG][ctx:line]: ". For DEBUG the color spans the whole line and is
// reset after the message; for the other levels it is reset after the
// prefix.
func appendPrefix(buf *[]byte, e *Event, colorize bool) {
	if colorize {
		*buf = append(*buf, levelToColor[e.level]...)
	}
	*buf = append(*buf, '[')
	*buf = append(*buf, e.level.Tag()...)
	*buf = append(*buf, ']', '[')
	if e.module != "" {
		*buf = append(*buf, e.module...)
	} else {
		*buf = append(*buf, e.caller...)
	}
	*buf = append(*buf, ':')
	itoa(buf, e.line, -1)
	*buf = append(*buf, ']', ':', ' ')
	if colorize && e.level != DEBUG {
		*buf = append(*buf, resetBytes...)
	}
}

// clampBuffer enforces the truncation contract: at most BufferSize-1
// bytes reach the sink, with no attempt to re-render at a larger size.
func clampBuffer(buf []byte) []byte {
	if len(buf) > BufferSize-1 {
		return buf[:BufferSize-1]
	}
	return buf
}
