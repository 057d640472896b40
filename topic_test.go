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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTopicIdempotent(t *testing.T) {
	a, err := RegisterTopic("topic-idem", DebugLevel)
	require.NoError(t, err)

	b, err := RegisterTopic("topic-idem", TraceLevel)
	require.NoError(t, err)

	assert.Same(t, a, b)
	// re-registration never touches the existing override
	assert.Equal(t, DebugLevel, b.Level())
}

func TestTopicLookup(t *testing.T) {
	reg, err := RegisterTopic("topic-lookup", DefaultLevel)
	require.NoError(t, err)

	assert.Same(t, reg, LookupTopic("topic-lookup"))
	assert.Nil(t, LookupTopic("topic-unregistered"))
}

func TestTopicSetLevel(t *testing.T) {
	topic, err := RegisterTopic("topic-setlevel", DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, DefaultLevel, topic.Level())

	topic.SetLevel(TraceLevel)
	assert.Equal(t, TraceLevel, topic.Level())
	assert.Equal(t, "topic-setlevel", topic.Name())
}

func TestTopicOverridesEngineGate(t *testing.T) {
	e := New()
	defer e.Shutdown(false)

	topic, err := RegisterTopic("topic-gate", DefaultLevel)
	require.NoError(t, err)

	// DefaultLevel defers to the global threshold
	assert.True(t, e.IsEnabled(InfoLevel, topic))
	assert.False(t, e.IsEnabled(TraceLevel, topic))

	topic.SetLevel(TraceLevel)
	assert.True(t, e.IsEnabled(TraceLevel, topic))

	topic.SetLevel(ErrorLevel)
	assert.False(t, e.IsEnabled(InfoLevel, topic))
	assert.True(t, e.IsEnabled(ErrorLevel, topic))

	// fatal is never gated out
	assert.True(t, e.IsEnabled(FatalLevel, topic))
}
