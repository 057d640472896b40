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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileSink(t *testing.T, path string) (*FileSink, *bytes.Buffer) {
	t.Helper()
	var errStream bytes.Buffer
	reg := &sinkRegistry{}
	s, err := newFileSink(path, SinkFilters{}, false, reg, &errStream)
	require.NoError(t, err)
	reg.add(s)
	t.Cleanup(s.Close)
	return s, &errStream
}

func TestFileSinkWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	s, _ := newTestFileSink(t, path)

	s.LogMessage(InfoLevel, SeverityHuman, []byte("first"))
	s.LogMessage(InfoLevel, SeverityHuman, []byte("second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFileSinkEscapesControlCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	s, _ := newTestFileSink(t, path)

	s.LogMessage(InfoLevel, SeverityHuman, []byte("a\nb\tc\rd\x01e"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `a\nb\tc\rd\x01e`+"\n", string(data))
}

func TestFileSinkReopenRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.log")
	s, _ := newTestFileSink(t, path)

	s.LogMessage(InfoLevel, SeverityHuman, []byte("old line"))
	require.NoError(t, s.Reopen())
	s.LogMessage(InfoLevel, SeverityHuman, []byte("new line"))

	backup, err := os.ReadFile(path + ".old")
	require.NoError(t, err)
	assert.Equal(t, "old line\n", string(backup))

	fresh, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new line\n", string(fresh))
}

func TestFileSinkReopenReplacesPreviousBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.log")
	s, _ := newTestFileSink(t, path)

	s.LogMessage(InfoLevel, SeverityHuman, []byte("gen1"))
	require.NoError(t, s.Reopen())
	s.LogMessage(InfoLevel, SeverityHuman, []byte("gen2"))
	require.NoError(t, s.Reopen())

	backup, err := os.ReadFile(path + ".old")
	require.NoError(t, err)
	assert.Equal(t, "gen2\n", string(backup))
}

func TestFileSinkReopenWhileWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.log")
	s, errStream := newTestFileSink(t, path)

	const lines = 1000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < lines; i++ {
			s.LogMessage(InfoLevel, SeverityHuman, []byte(fmt.Sprintf("line-%d", i)))
		}
	}()

	time.Sleep(time.Millisecond)
	require.NoError(t, s.Reopen())
	<-done

	// every line lands exactly once: the rotated file holds a contiguous
	// prefix of the sequence, the fresh file holds the remainder
	old, err := os.ReadFile(path + ".old")
	require.NoError(t, err)
	fresh, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []string
	for _, chunk := range []string{string(old), string(fresh)} {
		for _, line := range strings.Split(strings.TrimRight(chunk, "\n"), "\n") {
			if line != "" {
				got = append(got, line)
			}
		}
	}
	require.Len(t, got, lines)
	for i, line := range got {
		require.Equal(t, fmt.Sprintf("line-%d", i), line)
	}

	// the writer never observed a closed descriptor
	assert.Empty(t, errStream.String())
}

func TestFileSinkStdStreamAlias(t *testing.T) {
	var errStream bytes.Buffer
	reg := &sinkRegistry{}

	s, err := newFileSink(StderrTarget, SinkFilters{}, false, reg, &errStream)
	require.NoError(t, err)

	// rotation makes no sense for a console stream
	assert.NoError(t, s.Reopen())
	assert.Empty(t, s.Details())

	// Close must not close the real stderr
	s.Close()
	assert.Nil(t, s.file.Load())
}

func TestFileSinkDropsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	s, errStream := newTestFileSink(t, path)

	s.Close()
	s.LogMessage(InfoLevel, SeverityHuman, []byte("late"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, errStream.String())
}

func TestFileSinkDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	s, _ := newTestFileSink(t, path)

	assert.Equal(t, "More error details may be provided in the logfile '"+path+"'", s.Details())
	assert.Equal(t, SinkFile, s.Type())
}

func TestFileSinkFatalEchoIncludesDetails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.log")

	var errStream bytes.Buffer
	reg := &sinkRegistry{}
	s, err := newFileSink(path, SinkFilters{}, true, reg, &errStream)
	require.NoError(t, err)
	reg.add(s)
	defer s.Close()

	reg.dispatch(testRecord(FatalLevel, SeverityHuman, "going down"))

	out := errStream.String()
	assert.Contains(t, out, "going down")
	assert.Contains(t, out, "More error details may be provided in the logfile")

	// the message still lands in the file as well
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "going down")
}

func TestFileSinkEmptyTarget(t *testing.T) {
	_, err := newFileSink("", SinkFilters{}, false, &sinkRegistry{}, os.Stderr)
	assert.Error(t, err)
}
