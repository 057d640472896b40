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
	"sort"
	"sync"
	"time"
)

const (
	// ringCapacity is the number of slots kept per level.
	ringCapacity = 1024
	// ringTextLimit caps the stored message body; longer bodies are
	// truncated with an ellipsis marker.
	ringTextLimit = 256
)

// RingEntry is one buffered message from the recent-history rings.
type RingEntry struct {
	// LID is the entry's monotonically increasing id; it imposes a single
	// global order on buffered messages across all levels.
	LID uint64
	// Level the message was emitted at.
	Level Level
	// Time is the wall-clock insertion timestamp.
	Time time.Time
	// Text is the message body, without the timestamp/pid prefix,
	// truncated to ringTextLimit bytes.
	Text string
}

// ringBuffer keeps one fixed-capacity circular store of recent messages
// per level, for live "tail" inspection. It is a lossy, best-effort
// view: overwritten entries are simply gone.
type ringBuffer struct {
	mu      sync.Mutex
	nextLID uint64
	cur     [numLevels]int
	slots   [numLevels][]RingEntry
}

func newRingBuffer() *ringBuffer {
	rb := &ringBuffer{nextLID: 1}
	for i := range rb.slots {
		rb.slots[i] = make([]RingEntry, ringCapacity)
	}
	return rb
}

// record copies text into the next circular slot for level, assigning
// the next global lid. Entries longer than ringTextLimit are truncated
// and marked with a trailing " ...".
func (rb *ringBuffer) record(level Level, t time.Time, text []byte) {
	pos := int(level) - 1
	if pos < 0 || pos >= numLevels {
		return
	}

	var stored string
	if len(text) > ringTextLimit {
		stored = string(text[:ringTextLimit-4]) + " ..."
	} else {
		stored = string(text)
	}
	if stored == "" {
		return
	}

	rb.mu.Lock()
	rb.cur[pos] = (rb.cur[pos] + 1) % ringCapacity
	slot := &rb.slots[pos][rb.cur[pos]]
	slot.LID = rb.nextLID
	slot.Level = level
	slot.Time = t
	slot.Text = stored
	rb.nextLID++
	rb.mu.Unlock()
}

// query returns buffered entries with lid >= start, sorted ascending by
// lid. With cumulative set it merges every ring from FatalLevel up to
// minLevel; otherwise only minLevel's own ring is examined.
func (rb *ringBuffer) query(minLevel Level, start uint64, cumulative bool) []RingEntry {
	pos := int(minLevel) - 1
	if pos < 0 {
		pos = 0
	}
	if pos >= numLevels {
		pos = numLevels - 1
	}

	begin := 0
	if !cumulative {
		begin = pos
	}

	var result []RingEntry

	rb.mu.Lock()
	for i := begin; i <= pos; i++ {
		for j := 0; j < ringCapacity; j++ {
			cur := (rb.cur[i] + j) % ringCapacity
			e := rb.slots[i][cur]
			if e.LID >= start && e.Text != "" {
				result = append(result, e)
			}
		}
	}
	rb.mu.Unlock()

	sort.Slice(result, func(a, b int) bool { return result[a].LID < result[b].LID })
	return result
}

// clear drops all buffered entries. The lid counter keeps running so
// "since last seen" queries stay monotonic across a clear.
func (rb *ringBuffer) clear() {
	rb.mu.Lock()
	for i := range rb.slots {
		for j := range rb.slots[i] {
			rb.slots[i][j] = RingEntry{}
		}
		rb.cur[i] = 0
	}
	rb.mu.Unlock()
}
