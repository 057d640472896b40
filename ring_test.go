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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingAssignsIncreasingIDs(t *testing.T) {
	rb := newRingBuffer()
	now := time.Now()

	rb.record(InfoLevel, now, []byte("one"))
	rb.record(WarningLevel, now, []byte("two"))
	rb.record(InfoLevel, now, []byte("three"))

	entries := rb.query(InfoLevel, 0, true)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i].LID, entries[i-1].LID)
	}
	assert.Equal(t, "one", entries[0].Text)
	assert.Equal(t, "two", entries[1].Text)
	assert.Equal(t, "three", entries[2].Text)
}

func TestRingOverwritesOldest(t *testing.T) {
	rb := newRingBuffer()
	now := time.Now()

	for i := 0; i < ringCapacity+10; i++ {
		rb.record(ErrorLevel, now, []byte(fmt.Sprintf("m%d", i)))
	}

	entries := rb.query(ErrorLevel, 0, false)
	require.Len(t, entries, ringCapacity)
	// the ten oldest entries are gone
	assert.Equal(t, "m10", entries[0].Text)
	assert.Equal(t, fmt.Sprintf("m%d", ringCapacity+9), entries[len(entries)-1].Text)
}

func TestRingQueryStartID(t *testing.T) {
	rb := newRingBuffer()
	now := time.Now()

	for i := 0; i < 10; i++ {
		rb.record(InfoLevel, now, []byte(fmt.Sprintf("m%d", i)))
	}

	all := rb.query(InfoLevel, 0, false)
	require.Len(t, all, 10)

	half := rb.query(InfoLevel, all[5].LID, false)
	require.Len(t, half, 5)
	assert.Equal(t, all[5].LID, half[0].LID)
}

func TestRingQueryCumulative(t *testing.T) {
	rb := newRingBuffer()
	now := time.Now()

	rb.record(FatalLevel, now, []byte("f"))
	rb.record(ErrorLevel, now, []byte("e"))
	rb.record(WarningLevel, now, []byte("w"))
	rb.record(InfoLevel, now, []byte("i"))
	rb.record(TraceLevel, now, []byte("t"))

	entries := rb.query(WarningLevel, 0, true)
	require.Len(t, entries, 3)
	assert.Equal(t, "f", entries[0].Text)
	assert.Equal(t, "e", entries[1].Text)
	assert.Equal(t, "w", entries[2].Text)

	only := rb.query(WarningLevel, 0, false)
	require.Len(t, only, 1)
	assert.Equal(t, "w", only[0].Text)
}

func TestRingTruncatesLongEntries(t *testing.T) {
	rb := newRingBuffer()

	long := strings.Repeat("x", 2*ringTextLimit)
	rb.record(InfoLevel, time.Now(), []byte(long))

	entries := rb.query(InfoLevel, 0, false)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Text, ringTextLimit)
	assert.True(t, strings.HasSuffix(entries[0].Text, " ..."))
}

func TestRingIgnoresOutOfRangeLevels(t *testing.T) {
	rb := newRingBuffer()

	rb.record(DefaultLevel, time.Now(), []byte("nope"))

	assert.Empty(t, rb.query(TraceLevel, 0, true))
}

func TestRingClearKeepsIDsRunning(t *testing.T) {
	rb := newRingBuffer()
	now := time.Now()

	rb.record(InfoLevel, now, []byte("before"))
	before := rb.query(InfoLevel, 0, false)
	require.Len(t, before, 1)

	rb.clear()
	assert.Empty(t, rb.query(InfoLevel, 0, false))

	rb.record(InfoLevel, now, []byte("after"))
	after := rb.query(InfoLevel, 0, false)
	require.Len(t, after, 1)
	assert.Greater(t, after[0].LID, before[0].LID)
}
