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
	"sync/atomic"
	"time"
)

const (
	// workerIdleMin is the first sleep of an idle worker; each idle
	// round doubles it up to workerIdleMax.
	workerIdleMin = 100 * time.Microsecond
	workerIdleMax = time.Second

	flushTries    = 500
	flushInterval = 10 * time.Millisecond
)

// worker manages the background goroutine that consumes queued records
// and hands them to the output path.
//
// This forms the core of the asynchronous mode, ensuring the calling
// goroutine is not blocked by sink I/O. An idle worker backs off with a
// doubling sleep instead of spinning, and any push wakes it
// immediately through the queue's wake channel.
type worker struct {
	queue   *messageQueue
	out     func(*record)
	pending atomic.Int64
	stop    chan struct{}
	done    chan struct{}
}

func newWorker(out func(*record)) *worker {
	w := &worker{
		queue: newMessageQueue(),
		out:   out,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue hands rec to the worker. Ownership of the record transfers;
// the worker recycles it after output.
func (w *worker) enqueue(rec *record) {
	w.pending.Add(1)
	w.queue.push(rec)
}

func (w *worker) run() {
	defer close(w.done)

	backoff := workerIdleMin
	for {
		if batch := w.queue.swap(); len(batch) > 0 {
			w.process(batch)
			backoff = workerIdleMin
			continue
		}

		select {
		case <-w.stop:
			// drain whatever raced in after the last swap
			w.process(w.queue.swap())
			return
		case <-w.queue.wake:
		case <-time.After(backoff):
			backoff *= 2
			if backoff > workerIdleMax {
				backoff = workerIdleMax
			}
		}
	}
}

func (w *worker) process(batch []*record) {
	for _, rec := range batch {
		w.out(rec)
		putRecord(rec)
		w.pending.Add(-1)
	}
}

// waitDrained polls until every enqueued record has been output, or
// gives up after a bounded number of tries. Reports whether the queue
// fully drained.
func (w *worker) waitDrained() bool {
	for i := 0; i < flushTries; i++ {
		if w.pending.Load() == 0 {
			return true
		}
		time.Sleep(flushInterval)
	}
	return w.pending.Load() == 0
}

// shutdown stops the goroutine after it drains the queue.
func (w *worker) shutdown() {
	close(w.stop)
	<-w.done
}
