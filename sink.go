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
	"sync"
)

// SinkType identifies a sink variant.
type SinkType int8

const (
	// SinkFile writes to a file or an aliased standard stream.
	SinkFile SinkType = iota
	// SinkSyslog forwards to the system log daemon.
	SinkSyslog
)

// SinkFilters holds the per-sink matching rules applied by the registry
// before a message is delivered.
type SinkFilters struct {
	// Content, when non-empty, requires the rendered message to contain
	// this substring.
	Content string
	// Severity, when not SeverityUnknown, requires an exact severity
	// match.
	Severity Severity
	// Consume stops the dispatch chain after this sink matched, so later
	// sinks never see the message.
	Consume bool
}

// Sink is a delivery target for rendered log messages.
//
// LogMessage, Reopen, Close and Details are always invoked while the
// registry's mutex is held, so implementations only need their own
// synchronization for state shared with concurrent administrative
// operations (e.g. a file descriptor swapped during rotation).
type Sink interface {
	// LogMessage delivers one rendered message. It must never re-enter
	// the logging path; unrecoverable delivery errors go to the error
	// stream directly.
	LogMessage(level Level, severity Severity, msg []byte)
	// Reopen re-creates the sink's destination, e.g. for log rotation.
	// A failed reopen leaves the previous destination active.
	Reopen() error
	// Close releases the sink's destination. Messages delivered after
	// Close are silently dropped.
	Close()
	// Details returns a human readable hint about where more output can
	// be found, or "".
	Details() string
	// Type returns the sink variant tag.
	Type() SinkType
	// Filters returns the sink's matching rules.
	Filters() *SinkFilters
}

// sinkRegistry is the ordered, mutex-guarded list of configured sinks.
type sinkRegistry struct {
	mu    sync.Mutex
	sinks []Sink
}

func (sr *sinkRegistry) add(s Sink) {
	sr.mu.Lock()
	sr.sinks = append(sr.sinks, s)
	sr.mu.Unlock()
}

func (sr *sinkRegistry) empty() bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return len(sr.sinks) == 0
}

// dispatch delivers a record to every matching sink in registration
// order, stopping after the first match whose consume flag is set.
func (sr *sinkRegistry) dispatch(r *record) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	for _, s := range sr.sinks {
		f := s.Filters()

		if f.Severity != SeverityUnknown && f.Severity != r.severity {
			continue
		}
		if f.Content != "" && !bytes.Contains(r.text, []byte(f.Content)) {
			continue
		}

		s.LogMessage(r.level, r.severity, r.text)

		if f.Consume {
			break
		}
	}
}

// reopenAll asks every sink to rotate. Errors are swallowed here: a
// reopen failure leaves the old destination active, and reporting it
// through the logging path would recurse.
func (sr *sinkRegistry) reopenAll() {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	for _, s := range sr.sinks {
		_ = s.Reopen()
	}
}

func (sr *sinkRegistry) closeAll() {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	for _, s := range sr.sinks {
		s.Close()
	}
	sr.sinks = nil
}

// detailsLocked collects the non-empty details hints of all sinks. The
// caller must already hold the registry mutex; this is only invoked
// from within a sink's LogMessage during dispatch.
func (sr *sinkRegistry) detailsLocked() []string {
	var out []string
	for _, s := range sr.sinks {
		if d := s.Details(); d != "" {
			out = append(out, d)
		}
	}
	return out
}
