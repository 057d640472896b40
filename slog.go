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
	"context"
	"log/slog"
	"strings"
)

// SlogHandler adapts an Engine to satisfy the standard library's
// slog.Handler interface.
//
// This allows the engine to serve as the backend for any code that
// relies on log/slog. Attributes are rendered into the message body as
// space separated key=value pairs, since the delivery path carries
// plain text.
type SlogHandler struct {
	engine *Engine
	topic  *Topic
	attrs  []slog.Attr
	group  string
}

// NewSlogHandler initializes a SlogHandler backed by the given engine.
// The topic may be nil.
func NewSlogHandler(engine *Engine, topic *Topic) *SlogHandler {
	return &SlogHandler{engine: engine, topic: topic}
}

// Enabled determines if the handler should process records at the
// specified slog.Level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.engine.IsEnabled(slogLevel(level), h.topic)
}

// Handle processes a slog.Record, converting it into one plain text
// message.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)

	// stored attrs were already qualified when added
	for _, a := range h.attrs {
		appendAttr(&sb, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, a, h.group)
		return true
	})

	h.engine.log(4, slogLevel(r.Level), SeverityHuman, h.topic, sb.String(), nil)
	return nil
}

// WithAttrs creates a handler that includes the given attributes in
// every message.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		merged = append(merged, a)
	}
	return &SlogHandler{engine: h.engine, topic: h.topic, attrs: merged, group: h.group}
}

// WithGroup creates a handler that prefixes subsequent attribute keys
// with the group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	group := h.group
	if group != "" {
		group += "." + name
	} else {
		group = name
	}
	return &SlogHandler{engine: h.engine, topic: h.topic, attrs: h.attrs, group: group}
}

func appendAttr(sb *strings.Builder, a slog.Attr, group string) {
	if a.Equal(slog.Attr{}) {
		return
	}
	sb.WriteByte(' ')
	if group != "" {
		sb.WriteString(group)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

func slogLevel(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return ErrorLevel
	case l >= slog.LevelWarn:
		return WarningLevel
	case l >= slog.LevelInfo:
		return InfoLevel
	default:
		return DebugLevel
	}
}
