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
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// MaxTopics caps the number of topics that can be registered over the
// lifetime of the process.
const MaxTopics = 64

// Topic is a named logical subsystem with its own optional level
// override.
//
// Topics are registered once at startup and live for the process
// lifetime. A topic whose level is DefaultLevel defers to the engine's
// global level. Reading and writing the override is lock-free, so a
// topic can be shared freely between logging call sites.
type Topic struct {
	id   int
	name string

	// the override sits on its own cache line; it is read on every
	// gated log call while neighbors churn
	_     cpu.CacheLinePad
	level atomic.Int32
	_     cpu.CacheLinePad
}

var (
	topicsMu sync.Mutex
	topics   = make(map[string]*Topic)
)

// RegisterTopic registers a new topic under the given name with the
// given initial level override (DefaultLevel to inherit the global
// level).
//
// Registering the same name twice returns the existing topic; its level
// is left untouched. Registration fails once MaxTopics distinct names
// exist.
func RegisterTopic(name string, level Level) (*Topic, error) {
	topicsMu.Lock()
	defer topicsMu.Unlock()

	if t, ok := topics[name]; ok {
		return t, nil
	}
	if len(topics) >= MaxTopics {
		return nil, fmt.Errorf("too many log topics (max %d)", MaxTopics)
	}

	t := &Topic{id: len(topics), name: name}
	t.level.Store(int32(level))
	topics[name] = t
	return t, nil
}

// LookupTopic returns the topic registered under name, or nil.
func LookupTopic(name string) *Topic {
	topicsMu.Lock()
	defer topicsMu.Unlock()
	return topics[name]
}

// ID returns the numeric id assigned at registration.
func (t *Topic) ID() int { return t.id }

// Name returns the topic's unique name.
func (t *Topic) Name() string { return t.name }

// Level returns the topic's current level override.
func (t *Topic) Level() Level {
	return Level(t.level.Load())
}

// SetLevel changes the topic's level override. DefaultLevel makes the
// topic defer to the global level again.
func (t *Topic) SetLevel(level Level) {
	t.level.Store(int32(level))
}
