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

//go:build !windows

package arclog

import (
	"log/syslog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacility(t *testing.T) {
	p, err := parseFacility("local0")
	require.NoError(t, err)
	assert.Equal(t, syslog.LOG_LOCAL0, p)

	p, err = parseFacility("USER")
	require.NoError(t, err)
	assert.Equal(t, syslog.LOG_USER, p)

	p, err = parseFacility("16")
	require.NoError(t, err)
	assert.Equal(t, syslog.LOG_LOCAL0, p)

	_, err = parseFacility("moon")
	assert.Error(t, err)

	_, err = parseFacility("99")
	assert.Error(t, err)
}

func TestSyslogPriorityHumanFollowsLevel(t *testing.T) {
	assert.Equal(t, syslog.LOG_CRIT, syslogPriority(FatalLevel, SeverityHuman))
	assert.Equal(t, syslog.LOG_ERR, syslogPriority(ErrorLevel, SeverityHuman))
	assert.Equal(t, syslog.LOG_WARNING, syslogPriority(WarningLevel, SeverityHuman))
	assert.Equal(t, syslog.LOG_NOTICE, syslogPriority(InfoLevel, SeverityHuman))
	assert.Equal(t, syslog.LOG_INFO, syslogPriority(DebugLevel, SeverityHuman))
	assert.Equal(t, syslog.LOG_DEBUG, syslogPriority(TraceLevel, SeverityHuman))
}

func TestSyslogPriorityBySeverity(t *testing.T) {
	assert.Equal(t, syslog.LOG_CRIT, syslogPriority(InfoLevel, SeverityException))
	assert.Equal(t, syslog.LOG_NOTICE, syslogPriority(InfoLevel, SeverityFunctional))
	assert.Equal(t, syslog.LOG_INFO, syslogPriority(InfoLevel, SeverityUsage))
	assert.Equal(t, syslog.LOG_INFO, syslogPriority(InfoLevel, SeverityTechnical))
	assert.Equal(t, syslog.LOG_DEBUG, syslogPriority(InfoLevel, SeverityDevelopment))
	assert.Equal(t, syslog.LOG_DEBUG, syslogPriority(InfoLevel, SeverityUnknown))
}

func TestStripDecoration(t *testing.T) {
	msg := []byte("2023-04-05T06:07:08Z [4321] INFO ready to serve")
	assert.Equal(t, "INFO ready to serve", string(stripDecoration(msg)))

	bare := []byte("no decoration here")
	assert.Equal(t, "no decoration here", string(stripDecoration(bare)))
}
