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
	"errors"
	"fmt"
)

// Level represents a logging priority.
//
// Lower values indicate more severe conditions: FatalLevel is the most
// severe, TraceLevel the least. DefaultLevel is a sentinel meaning
// "inherit" and is only meaningful as a topic override.
type Level int8

const (
	// DefaultLevel defers to the global level when set on a topic.
	DefaultLevel Level = iota
	// FatalLevel designates unrecoverable errors. The message is always
	// echoed to the error stream by sinks configured to do so.
	FatalLevel
	// ErrorLevel designates error events that might still allow the
	// application to continue running.
	ErrorLevel
	// WarningLevel designates potentially harmful situations.
	WarningLevel
	// InfoLevel designates coarse grained progress messages. This is the
	// default global level.
	InfoLevel
	// DebugLevel designates fine grained informational events. Messages at
	// this level always carry their source location.
	DebugLevel
	// TraceLevel designates the most verbose diagnostic events.
	TraceLevel

	numLevels = int(TraceLevel)
)

// String returns the uppercase name of the level as it appears in
// rendered log lines.
func (l Level) String() string {
	switch l {
	case DefaultLevel:
		return "DEFAULT"
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// MarshalText serializes the Level to its uppercase name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText deserializes text into a Level.
//
// It accepts lowercase or uppercase names (e.g. "info" or "INFO") so
// levels can be configured via YAML or environment variables.
func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToUpper(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *Level) unmarshalText(text []byte) bool {
	switch string(text) {
	case "FATAL", "fatal":
		*l = FatalLevel
	case "ERROR", "error", "err":
		*l = ErrorLevel
	case "WARNING", "warning", "warn":
		*l = WarningLevel
	case "INFO", "info", "": // make the zero config value useful
		*l = InfoLevel
	case "DEBUG", "debug":
		*l = DebugLevel
	case "TRACE", "trace":
		*l = TraceLevel
	case "DEFAULT", "default":
		*l = DefaultLevel
	default:
		return false
	}
	return true
}

// ParseLevel converts a string into a Level.
//
// It accepts lowercase or uppercase names and returns an error if the
// string does not match a known level.
func ParseLevel(text string) (Level, error) {
	var l Level
	err := l.UnmarshalText([]byte(text))
	return l, err
}

// Severity classifies a message orthogonally to its level.
//
// The severity decides whether a message is retained in the ring buffers
// (only SeverityHuman is) and how it maps to a syslog priority. The zero
// value SeverityUnknown matches everything when used as a sink filter.
type Severity int8

const (
	// SeverityUnknown matches all severities when used as a sink filter.
	SeverityUnknown Severity = iota
	// SeverityHuman marks human readable messages; only these are kept in
	// the ring buffers.
	SeverityHuman
	// SeverityException marks messages describing caught panics and
	// exceptional conditions.
	SeverityException
	// SeverityFunctional marks functional audit messages.
	SeverityFunctional
	// SeverityUsage marks usage/request accounting messages.
	SeverityUsage
	// SeverityTechnical marks technical diagnostics.
	SeverityTechnical
	// SeverityDevelopment marks development-only output.
	SeverityDevelopment
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityHuman:
		return "human"
	case SeverityException:
		return "exception"
	case SeverityFunctional:
		return "functional"
	case SeverityUsage:
		return "usage"
	case SeverityTechnical:
		return "technical"
	case SeverityDevelopment:
		return "development"
	case SeverityUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// ParseSeverity converts a string into a Severity. Unknown names yield
// SeverityUnknown with an error.
func ParseSeverity(text string) (Severity, error) {
	switch text {
	case "human":
		return SeverityHuman, nil
	case "exception":
		return SeverityException, nil
	case "functional":
		return SeverityFunctional, nil
	case "usage":
		return SeverityUsage, nil
	case "technical":
		return SeverityTechnical, nil
	case "development":
		return SeverityDevelopment, nil
	case "unknown", "":
		return SeverityUnknown, nil
	default:
		return SeverityUnknown, fmt.Errorf("unrecognized severity: %q", text)
	}
}
