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
	"io"
	"os"
)

type options struct {
	level      Level
	severities severityMask
	prefix     string
	showLine   bool
	showIDs    bool
	localTime  bool
	threaded   bool
	stderr     io.Writer
}

func defaultOptions() options {
	return options{
		level:      InfoLevel,
		severities: maskOf(SeverityHuman),
		stderr:     os.Stderr,
	}
}

// Option configures an Engine at construction time.
type Option func(*options)

// WithLevel sets the global level threshold. Defaults to InfoLevel.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithSeverities sets the admitted severity set. Defaults to
// SeverityHuman only; SeverityUnknown admits everything.
func WithSeverities(sevs ...Severity) Option {
	return func(o *options) { o.severities = maskOf(sevs...) }
}

// WithPrefix sets the text inserted after the timestamp of every
// message.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithLineNumbers includes the calling [file:line] in every message.
//
// Performance note: enabling this incurs a runtime.Caller lookup per
// message.
func WithLineNumbers() Option {
	return func(o *options) { o.showLine = true }
}

// WithProcessIDs renders the bracketed process tag as [pid-gid],
// including the emitting goroutine's id.
func WithProcessIDs() Option {
	return func(o *options) { o.showIDs = true }
}

// WithLocalTime stamps messages in local time instead of UTC.
func WithLocalTime() Option {
	return func(o *options) { o.localTime = true }
}

// WithThreaded runs delivery on a background goroutine; emitting a
// message then never blocks on sink I/O. Pair with Flush/Shutdown to
// drain.
func WithThreaded() Option {
	return func(o *options) { o.threaded = true }
}

// WithErrorStream redirects the engine's fallback and diagnostic
// output away from os.Stderr, mainly for tests.
func WithErrorStream(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stderr = w
		}
	}
}
