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
	"sync/atomic"
)

const (
	// StdoutTarget aliases a file sink to the process's standard output.
	StdoutTarget = "+"
	// StderrTarget aliases a file sink to the process's standard error.
	StderrTarget = "-"
)

// FileSink appends rendered messages to a log file or to one of the
// process's standard streams.
//
// The active *os.File is held behind an atomic pointer so Reopen can
// rotate the log concurrently with writes: a write in flight either
// completes on the pre-rotation file or starts on the post-rotation
// one, never on a closed descriptor.
type FileSink struct {
	filters       SinkFilters
	path          string // empty when aliased to a standard stream
	file          atomic.Pointer[os.File]
	fatalToStderr bool

	// registry backs the details hints printed alongside a fatal echo;
	// LogMessage runs with the registry mutex already held.
	registry *sinkRegistry
	stderr   io.Writer
	lastErr  string
}

func newFileSink(target string, filters SinkFilters, fatalToStderr bool, reg *sinkRegistry, stderr io.Writer) (*FileSink, error) {
	if target == "" {
		return nil, fmt.Errorf("file sink: empty target")
	}

	s := &FileSink{
		filters:       filters,
		fatalToStderr: fatalToStderr,
		registry:      reg,
		stderr:        stderr,
	}

	switch target {
	case StdoutTarget:
		s.file.Store(os.Stdout)
	case StderrTarget:
		s.file.Store(os.Stderr)
	default:
		f, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, fmt.Errorf("file sink: cannot open %q: %w", target, err)
		}
		s.file.Store(f)
		s.path = target
	}

	return s, nil
}

// LogMessage writes one message line. Fatal messages are echoed to the
// error stream first (together with every sink's details hint) when the
// sink is configured for it; the file write is then skipped if the
// destination is a standard stream the echo already covered.
func (s *FileSink) LogMessage(level Level, severity Severity, msg []byte) {
	f := s.file.Load()
	if f == nil {
		return
	}

	if level == FatalLevel && s.fatalToStderr {
		writeFallback(s.stderr, level, msg)

		for _, d := range s.registry.detailsLocked() {
			writeFallback(s.stderr, InfoLevel, []byte(d))
		}

		if s.path == "" && (f == os.Stdout || f == os.Stderr) {
			// destination is a console stream, the echo already covered it
			return
		}
	}

	b := getBuffer()
	escapeControls(b, msg)
	b.WriteByte('\n')
	s.writeFull(f, b.B)
	putBuffer(b)
}

// writeFull writes buf completely, retrying partial writes. A single
// zero-length write that makes no progress is treated as transient; a
// second consecutive one gives up with a report to the error stream
// rather than spinning on a wedged descriptor.
func (s *FileSink) writeFull(f *os.File, buf []byte) {
	stalled := false

	for len(buf) > 0 {
		n, err := f.Write(buf)
		if err != nil {
			s.reportError(err)
			return
		}
		if n == 0 {
			if stalled {
				s.reportError(fmt.Errorf("write to %q makes no progress", f.Name()))
				return
			}
			stalled = true
			continue
		}
		stalled = false
		buf = buf[n:]
	}
}

// reportError surfaces a delivery error on the error stream, once per
// distinct error, never through the logging path itself.
func (s *FileSink) reportError(err error) {
	if msg := err.Error(); msg != s.lastErr {
		s.lastErr = msg
		fmt.Fprintf(s.stderr, "cannot log data: %v\n", err)
	}
}

// Reopen rotates the log file: the current file is renamed to a ".old"
// backup (replacing any prior backup), a fresh file is opened at the
// original path, and the active descriptor is swapped atomically. The
// previous descriptor is closed only after the swap. If opening the new
// file fails, the rename is undone and the old descriptor stays active,
// so a failed rotation never interrupts logging.
//
// Reopen is a no-op for sinks aliased to a standard stream.
func (s *FileSink) Reopen() error {
	if s.path == "" {
		return nil
	}

	backup := s.path + ".old"
	_ = os.Remove(backup)
	renamed := os.Rename(s.path, backup) == nil

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		if renamed {
			_ = os.Rename(backup, s.path)
		}
		return fmt.Errorf("file sink: cannot reopen %q: %w", s.path, err)
	}

	old := s.file.Swap(f)
	if old != nil && old != os.Stdout && old != os.Stderr {
		_ = old.Close()
	}
	return nil
}

// Close detaches and closes the descriptor. Aliased standard streams
// are detached but never closed.
func (s *FileSink) Close() {
	old := s.file.Swap(nil)
	if old != nil && old != os.Stdout && old != os.Stderr {
		_ = old.Close()
	}
}

// Details names the logfile that may hold more error context, or ""
// for sinks aliased to a standard stream.
func (s *FileSink) Details() string {
	if s.path == "" {
		return ""
	}
	return "More error details may be provided in the logfile '" + s.path + "'"
}

// Type returns SinkFile.
func (s *FileSink) Type() SinkType { return SinkFile }

// Filters returns the sink's matching rules.
func (s *FileSink) Filters() *SinkFilters { return &s.filters }

// escapeControls appends msg to b with control characters escaped so
// the log file stays one record per line.
func escapeControls(b *buffer, msg []byte) {
	for _, c := range msg {
		switch {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			b.WriteString(`\x`)
			b.WriteByte(_hexDigits[c>>4])
			b.WriteByte(_hexDigits[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
}

const _hexDigits = "0123456789abcdef"
