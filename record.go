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
	"sync"
	"time"
)

// record carries one fully formatted log message through the engine.
//
// Ownership transfers exactly once per message: the emitting goroutine
// builds the record, then either hands it to the delivery queue (the
// worker releases it after dispatch) or dispatches it synchronously and
// releases it itself. Records are pooled; text retains its backing array
// across uses so the common case renders into a pre-sized buffer without
// allocating.
type record struct {
	level      Level
	severity   Severity
	when       time.Time
	text       []byte
	bodyOffset int
}

var recordPool = sync.Pool{
	New: func() any {
		return &record{text: make([]byte, 0, formatBufferSize)}
	},
}

func getRecord() *record {
	return recordPool.Get().(*record)
}

func putRecord(r *record) {
	if cap(r.text) > 2*maxMessageSize {
		// do not pin a pathological allocation in the pool
		r.text = make([]byte, 0, formatBufferSize)
	}
	r.text = r.text[:0]
	r.bodyOffset = 0
	recordPool.Put(r)
}

// body returns the caller-supplied part of the message, without the
// timestamp/pid/level prefix.
func (r *record) body() []byte {
	if r.bodyOffset > len(r.text) {
		return nil
	}
	return r.text[r.bodyOffset:]
}
