// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package arclog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// formatBufferSize is the pre-sized render buffer; the overwhelming
	// majority of messages fit without a second allocation.
	formatBufferSize = 2048

	// maxMessageSize caps how large a single rendered message may grow.
	// Past this the call degrades to a short diagnostic instead of
	// attempting unbounded allocation.
	maxMessageSize = 100 * 1024
)

// formatInput carries the per-message prefix data into formatMessage.
// It is kept separate from the engine so formatting is a pure function
// of its inputs: identical inputs produce byte-identical output.
type formatInput struct {
	time    time.Time
	local   bool
	prefix  string
	pid     int
	gid     uint64
	showGID bool
	level   Level
	file    string
	line    int
	topic   string
}

// formatMessage renders a complete log line into dst's backing array and
// returns the result together with the byte offset where the caller's
// message (including an optional topic tag) begins.
//
// Prefix composition order: timestamp, optional output prefix, [pid] or
// [pid-gid], level name, optional [file:line], then the body. The body
// is rendered with fmt.Appendf, which grows the buffer as needed; dst is
// drawn from a pool pre-sized to formatBufferSize so typical messages
// never reallocate. Size policing against maxMessageSize is the
// caller's job, since only the caller can emit the replacement
// diagnostic.
func formatMessage(dst []byte, in *formatInput, format string, args []any) (text []byte, bodyOffset int) {
	b := appendTimestamp(dst[:0], in.time, in.local)
	b = append(b, ' ')

	if in.prefix != "" {
		b = append(b, in.prefix...)
		b = append(b, ' ')
	}

	b = append(b, '[')
	b = strconv.AppendInt(b, int64(in.pid), 10)
	if in.showGID {
		b = append(b, '-')
		b = strconv.AppendUint(b, in.gid, 10)
	}
	b = append(b, ']', ' ')

	b = append(b, in.level.String()...)
	b = append(b, ' ')

	if in.file != "" {
		b = append(b, '[')
		b = append(b, shortFile(in.file)...)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(in.line), 10)
		b = append(b, ']', ' ')
	}

	bodyOffset = len(b)

	if in.topic != "" {
		b = append(b, '[')
		b = append(b, in.topic...)
		b = append(b, ']', ' ')
	}

	if len(args) == 0 {
		// no verbs to expand, take the string as-is
		b = append(b, format...)
	} else {
		b = fmt.Appendf(b, format, args...)
	}

	return b, bodyOffset
}

// badFormat reports whether a rendered body contains fmt's error
// markers ("%!d(MISSING)", "%!(EXTRA ...)" and friends), which indicate
// the format string did not match its arguments.
//
// A body whose arguments legitimately contain "%!" is misclassified;
// that is accepted as the price of catching corrupt call sites without
// re-parsing every format string.
func badFormat(body []byte) bool {
	return bytes.Contains(body, []byte("%!"))
}

func shortFile(file string) string {
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		return file[idx+1:]
	}
	return file
}
