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
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// severityMask is a bit set over Severity values. A mask containing
// SeverityUnknown admits every severity.
type severityMask uint16

func maskOf(sevs ...Severity) severityMask {
	var m severityMask
	for _, s := range sevs {
		m |= 1 << uint(s)
	}
	return m
}

func (m severityMask) admits(s Severity) bool {
	if m&(1<<uint(SeverityUnknown)) != 0 {
		return true
	}
	return m&(1<<uint(s)) != 0
}

// engineConfig is the immutable snapshot of an engine's tunable state.
// Mutators build a copy and swap the pointer, so the hot path reads the
// whole configuration with a single atomic load.
type engineConfig struct {
	level      Level
	severities severityMask
	prefix     string
	showLine   bool
	showIDs    bool
	localTime  bool
}

func (c *engineConfig) enabled(level Level, topic *Topic) bool {
	if level == FatalLevel {
		return true
	}
	threshold := c.level
	if topic != nil {
		if tl := topic.Level(); tl != DefaultLevel {
			threshold = tl
		}
	}
	return level <= threshold
}

// Engine is the logging core: it gates messages by level and severity,
// renders them, retains human-audience messages in the in-memory ring
// and delivers everything to the configured sinks, either inline or
// through a background worker.
//
// An Engine is safe for concurrent use. All methods on a shut-down
// engine are no-ops apart from a diagnostic on the error stream.
type Engine struct {
	cfg    atomic.Pointer[engineConfig]
	ring   *ringBuffer
	sinks  *sinkRegistry
	worker *worker
	active atomic.Bool
	stderr io.Writer
}

// New creates an engine with the given options. Without options the
// engine runs in direct mode at InfoLevel, admits human-audience
// messages only and falls back to stderr until a sink is added.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		ring:   newRingBuffer(),
		sinks:  &sinkRegistry{},
		stderr: o.stderr,
	}
	e.cfg.Store(&engineConfig{
		level:      o.level,
		severities: o.severities,
		prefix:     o.prefix,
		showLine:   o.showLine,
		showIDs:    o.showIDs,
		localTime:  o.localTime,
	})
	e.active.Store(true)

	if o.threaded {
		e.worker = newWorker(e.output)
	}
	return e
}

var _default atomic.Pointer[Engine]

func init() {
	_default.Store(New())
}

// Default returns the shared package-level engine.
func Default() *Engine { return _default.Load() }

// SetDefault replaces the shared package-level engine. A nil argument
// is ignored. The previous engine is not shut down.
func SetDefault(e *Engine) {
	if e != nil {
		_default.Store(e)
	}
}

// mutate swaps in a modified copy of the configuration.
func (e *Engine) mutate(f func(*engineConfig)) {
	for {
		old := e.cfg.Load()
		next := *old
		f(&next)
		if e.cfg.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetLevel sets the global level threshold.
func (e *Engine) SetLevel(level Level) {
	e.mutate(func(c *engineConfig) { c.level = level })
}

// Level returns the global level threshold.
func (e *Engine) Level() Level { return e.cfg.Load().level }

// SetSeverities replaces the set of admitted severities. Passing
// SeverityUnknown admits everything. Fatal messages are always
// admitted regardless of this set.
func (e *Engine) SetSeverities(sevs ...Severity) {
	m := maskOf(sevs...)
	e.mutate(func(c *engineConfig) { c.severities = m })
}

// SetPrefix sets the text inserted after the timestamp of every
// message, typically a process or instance name.
func (e *Engine) SetPrefix(prefix string) {
	e.mutate(func(c *engineConfig) { c.prefix = prefix })
}

// Prefix returns the configured output prefix.
func (e *Engine) Prefix() string { return e.cfg.Load().prefix }

// SetShowLineNumbers toggles the [file:line] segment of the prefix.
func (e *Engine) SetShowLineNumbers(on bool) {
	e.mutate(func(c *engineConfig) { c.showLine = on })
}

// SetShowIDs toggles the goroutine id in the [pid-gid] segment.
func (e *Engine) SetShowIDs(on bool) {
	e.mutate(func(c *engineConfig) { c.showIDs = on })
}

// SetUseLocalTime switches timestamps between UTC and local time.
func (e *Engine) SetUseLocalTime(on bool) {
	e.mutate(func(c *engineConfig) { c.localTime = on })
}

// IsEnabled reports whether a message at the given level (and optional
// topic) would pass the level gate. Callers with expensive arguments
// can check this before formatting.
func (e *Engine) IsEnabled(level Level, topic *Topic) bool {
	return e.active.Load() && e.cfg.Load().enabled(level, topic)
}

// AddFileSink attaches a file sink. The target is a path, or
// StdoutTarget/StderrTarget to alias a standard stream. fatalToStderr
// echoes fatal messages to the error stream with details hints from
// every sink.
func (e *Engine) AddFileSink(target string, filters SinkFilters, fatalToStderr bool) error {
	s, err := newFileSink(target, filters, fatalToStderr, e.sinks, e.stderr)
	if err != nil {
		return err
	}
	e.sinks.add(s)
	return nil
}

// AddSyslogSink attaches a syslog sink for the given facility (by name
// or number) and tag.
func (e *Engine) AddSyslogSink(facility, tag string, filters SinkFilters) error {
	s, err := newSyslogSink(facility, tag, filters)
	if err != nil {
		return err
	}
	e.sinks.add(s)
	return nil
}

// Reopen rotates every sink, e.g. on SIGHUP.
func (e *Engine) Reopen() { e.sinks.reopenAll() }

// Log emits one message. The topic may be nil; args are expanded with
// fmt verbs when present. The call returns before delivery when the
// engine runs threaded.
func (e *Engine) Log(level Level, severity Severity, topic *Topic, format string, args ...any) {
	e.log(2, level, severity, topic, format, args)
}

// LogTopic emits a human-audience message tagged with a topic.
func (e *Engine) LogTopic(level Level, topic *Topic, format string, args ...any) {
	e.log(2, level, SeverityHuman, topic, format, args)
}

// Errorf emits a human-audience message at ErrorLevel.
func (e *Engine) Errorf(format string, args ...any) {
	e.log(2, ErrorLevel, SeverityHuman, nil, format, args)
}

// Warningf emits a human-audience message at WarningLevel.
func (e *Engine) Warningf(format string, args ...any) {
	e.log(2, WarningLevel, SeverityHuman, nil, format, args)
}

// Infof emits a human-audience message at InfoLevel.
func (e *Engine) Infof(format string, args ...any) {
	e.log(2, InfoLevel, SeverityHuman, nil, format, args)
}

// Debugf emits a human-audience message at DebugLevel.
func (e *Engine) Debugf(format string, args ...any) {
	e.log(2, DebugLevel, SeverityHuman, nil, format, args)
}

// Tracef emits a human-audience message at TraceLevel.
func (e *Engine) Tracef(format string, args ...any) {
	e.log(2, TraceLevel, SeverityHuman, nil, format, args)
}

var _exit = os.Exit

// Fatalf emits a human-audience message at FatalLevel, drains pending
// output and terminates the process.
func (e *Engine) Fatalf(format string, args ...any) {
	e.log(2, FatalLevel, SeverityHuman, nil, format, args)
	e.Flush()
	_exit(1)
}

func (e *Engine) log(calldepth int, level Level, severity Severity, topic *Topic, format string, args []any) {
	if !e.active.Load() {
		// a message arriving here raced engine shutdown; make the bug
		// visible without losing the message entirely
		fmt.Fprintln(e.stderr, "race condition detected in logger")
		fmt.Fprintln(e.stderr, neutralizeFormat(format))
		return
	}

	cfg := e.cfg.Load()
	if !cfg.enabled(level, topic) {
		return
	}
	if level != FatalLevel && !cfg.severities.admits(severity) {
		return
	}

	in := formatInput{
		time:   time.Now(),
		local:  cfg.localTime,
		prefix: cfg.prefix,
		pid:    _pid,
		level:  level,
	}
	if cfg.showIDs {
		in.gid = goroutineID()
		in.showGID = true
	}
	if cfg.showLine {
		if _, file, line, ok := runtime.Caller(calldepth); ok {
			in.file = file
			in.line = line
		}
	}
	if topic != nil {
		in.topic = topic.Name()
	}

	rec := getRecord()
	rec.level = level
	rec.severity = severity
	rec.when = in.time

	rec.text, rec.bodyOffset = formatMessage(rec.text, &in, format, args)

	if size := len(rec.body()); size > maxMessageSize {
		rec.text, rec.bodyOffset = formatMessage(rec.text, &in,
			"log message is too large (%d bytes)", []any{size})
	} else if len(args) > 0 && badFormat(rec.body()) {
		in.level = WarningLevel
		rec.level = WarningLevel
		warning := "format string is corrupt: [" + neutralizeFormat(format) + "]" + captureStack(calldepth)
		rec.text, rec.bodyOffset = formatMessage(rec.text, &in, warning, nil)
	}

	// ring insertion happens on the caller, before any queue hand-off,
	// so lids reflect emission order and buffered-history queries never
	// lag behind a returned call. Only the body is retained.
	if rec.severity == SeverityHuman {
		e.ring.record(rec.level, rec.when, rec.body())
	}

	if e.worker != nil {
		e.worker.enqueue(rec)
		return
	}
	e.output(rec)
	putRecord(rec)
}

// output delivers one record to the sinks. Runs on the worker goroutine
// in threaded mode, inline on the caller otherwise.
func (e *Engine) output(rec *record) {
	if e.sinks.empty() {
		writeFallback(e.stderr, rec.level, rec.text)
		return
	}
	e.sinks.dispatch(rec)
}

// Flush blocks until every queued message has been delivered, polling
// for a bounded time. Reports whether the queue fully drained.
func (e *Engine) Flush() bool {
	if e.worker == nil {
		return true
	}
	return e.worker.waitDrained()
}

// BufferedEntries returns retained human-audience messages at the given
// level (every level from FatalLevel through it when cumulative) whose
// id is at least start, ordered by id.
func (e *Engine) BufferedEntries(level Level, start uint64, cumulative bool) []RingEntry {
	return e.ring.query(level, start, cumulative)
}

// Shutdown drains the worker, closes every sink and deactivates the
// engine. When clearBuffers is set the retained ring entries are
// discarded as well. Shutdown is idempotent; only the first call does
// any work.
func (e *Engine) Shutdown(clearBuffers bool) {
	if !e.active.CompareAndSwap(true, false) {
		return
	}
	if e.worker != nil {
		e.worker.shutdown()
	}
	e.sinks.closeAll()
	if clearBuffers {
		e.ring.clear()
	}
}
