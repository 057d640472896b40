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
	"bytes"
	"fmt"
	"log/syslog"
	"strconv"
	"strings"
)

// SyslogSink forwards messages to the local syslog daemon.
//
// Syslog stamps its own timestamp, hostname and pid onto every entry,
// so the sink strips the leading decoration from rendered messages and
// forwards only what follows the bracketed process tag.
type SyslogSink struct {
	filters SinkFilters
	writer  *syslog.Writer
}

var _facilities = map[string]syslog.Priority{
	"kern":     syslog.LOG_KERN,
	"user":     syslog.LOG_USER,
	"mail":     syslog.LOG_MAIL,
	"daemon":   syslog.LOG_DAEMON,
	"auth":     syslog.LOG_AUTH,
	"syslog":   syslog.LOG_SYSLOG,
	"lpr":      syslog.LOG_LPR,
	"news":     syslog.LOG_NEWS,
	"uucp":     syslog.LOG_UUCP,
	"cron":     syslog.LOG_CRON,
	"authpriv": syslog.LOG_AUTHPRIV,
	"ftp":      syslog.LOG_FTP,
	"local0":   syslog.LOG_LOCAL0,
	"local1":   syslog.LOG_LOCAL1,
	"local2":   syslog.LOG_LOCAL2,
	"local3":   syslog.LOG_LOCAL3,
	"local4":   syslog.LOG_LOCAL4,
	"local5":   syslog.LOG_LOCAL5,
	"local6":   syslog.LOG_LOCAL6,
	"local7":   syslog.LOG_LOCAL7,
}

// parseFacility resolves a facility given by name ("user", "local0")
// or by number.
func parseFacility(name string) (syslog.Priority, error) {
	if p, ok := _facilities[strings.ToLower(name)]; ok {
		return p, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 23 {
		return syslog.Priority(n << 3), nil
	}
	return 0, fmt.Errorf("syslog sink: unknown facility %q", name)
}

func newSyslogSink(facility, tag string, filters SinkFilters) (*SyslogSink, error) {
	prio, err := parseFacility(facility)
	if err != nil {
		return nil, err
	}
	w, err := syslog.New(prio|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, fmt.Errorf("syslog sink: cannot connect: %w", err)
	}
	return &SyslogSink{filters: filters, writer: w}, nil
}

// syslogPriority maps a message's severity onto a syslog priority.
// Human-audience messages carry the level through instead, so that an
// operator-facing FATAL arrives as critical and a TRACE as debug.
func syslogPriority(level Level, severity Severity) syslog.Priority {
	if severity == SeverityHuman {
		switch level {
		case FatalLevel:
			return syslog.LOG_CRIT
		case ErrorLevel:
			return syslog.LOG_ERR
		case WarningLevel:
			return syslog.LOG_WARNING
		case InfoLevel:
			return syslog.LOG_NOTICE
		case DebugLevel:
			return syslog.LOG_INFO
		default:
			return syslog.LOG_DEBUG
		}
	}

	switch severity {
	case SeverityException:
		return syslog.LOG_CRIT
	case SeverityFunctional:
		return syslog.LOG_NOTICE
	case SeverityUsage, SeverityTechnical:
		return syslog.LOG_INFO
	default:
		return syslog.LOG_DEBUG
	}
}

// stripDecoration drops everything through the first "] ", removing
// the timestamp and bracketed process tag the renderer prepends.
func stripDecoration(msg []byte) []byte {
	if i := bytes.Index(msg, []byte("] ")); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// LogMessage forwards one message at the mapped priority.
func (s *SyslogSink) LogMessage(level Level, severity Severity, msg []byte) {
	if s.writer == nil {
		return
	}

	text := string(stripDecoration(msg))

	var err error
	switch syslogPriority(level, severity) {
	case syslog.LOG_CRIT:
		err = s.writer.Crit(text)
	case syslog.LOG_ERR:
		err = s.writer.Err(text)
	case syslog.LOG_WARNING:
		err = s.writer.Warning(text)
	case syslog.LOG_NOTICE:
		err = s.writer.Notice(text)
	case syslog.LOG_INFO:
		err = s.writer.Info(text)
	default:
		err = s.writer.Debug(text)
	}
	_ = err
}

// Reopen is a no-op; the syslog connection reconnects on its own.
func (s *SyslogSink) Reopen() error { return nil }

// Close shuts down the syslog connection.
func (s *SyslogSink) Close() {
	if s.writer != nil {
		_ = s.writer.Close()
		s.writer = nil
	}
}

// Details returns no hint; syslog placement is a host concern.
func (s *SyslogSink) Details() string { return "" }

// Type returns SinkSyslog.
func (s *SyslogSink) Type() SinkType { return SinkSyslog }

// Filters returns the sink's matching rules.
func (s *SyslogSink) Filters() *SinkFilters { return &s.filters }
