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
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHandlerBridgesMessages(t *testing.T) {
	e, path := newFileEngine(t)

	logger := slog.New(NewSlogHandler(e, nil))
	logger.Info("request served", "status", 200, "path", "/healthz")

	out := readLog(t, path)
	assert.Contains(t, out, "INFO request served status=200 path=/healthz")
}

func TestSlogHandlerLevels(t *testing.T) {
	e, path := newFileEngine(t)

	logger := slog.New(NewSlogHandler(e, nil))
	logger.Debug("hidden")
	logger.Warn("shown")
	logger.Error("also shown")

	out := readLog(t, path)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARNING shown")
	assert.Contains(t, out, "ERROR also shown")
}

func TestSlogHandlerEnabled(t *testing.T) {
	e := New()
	defer e.Shutdown(false)

	h := NewSlogHandler(e, nil)
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))

	e.SetLevel(TraceLevel)
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
}

func TestSlogHandlerWithAttrsAndGroup(t *testing.T) {
	e, path := newFileEngine(t)

	logger := slog.New(NewSlogHandler(e, nil)).With("component", "gc")
	logger.WithGroup("heap").Info("cycle done", "freed", 42)

	out := readLog(t, path)
	assert.Contains(t, out, "component=gc")
	assert.Contains(t, out, "heap.freed=42")
}

func TestSlogHandlerTopic(t *testing.T) {
	e, path := newFileEngine(t)

	topic, err := RegisterTopic("slog-topic", DefaultLevel)
	require.NoError(t, err)

	logger := slog.New(NewSlogHandler(e, topic))
	logger.Info("tagged")

	assert.Contains(t, readLog(t, path), "[slog-topic] tagged")
}
