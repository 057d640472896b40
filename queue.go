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

import "sync"

// messageQueue is the unbounded hand-off between producers and the
// output worker. Producers append under a short critical section; the
// worker takes the whole pending batch in one swap, so a slow sink
// never holds the producer lock.
type messageQueue struct {
	mu      sync.Mutex
	pending []*record
	wake    chan struct{}
}

func newMessageQueue() *messageQueue {
	return &messageQueue{
		wake: make(chan struct{}, 1),
	}
}

// push enqueues rec and nudges the worker if it is idle.
func (q *messageQueue) push(rec *record) {
	q.mu.Lock()
	q.pending = append(q.pending, rec)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// swap takes every pending record in one batch, leaving the queue
// empty. Returns nil when there is nothing to take.
func (q *messageQueue) swap() []*record {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()
	return batch
}

// empty reports whether no records are pending.
func (q *messageQueue) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) == 0
}
