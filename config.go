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
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides where the YAML config file is looked up.
const ConfigPathEnvVar = "ARCLOG_CONFIG"

// envPrefix namespaces the environment variables that override config
// keys, e.g. ARCLOG_LEVEL=debug or ARCLOG_SEVERITIES=human,technical.
const envPrefix = "ARCLOG_"

// SinkConfig describes one delivery target.
type SinkConfig struct {
	// Type selects the sink variant: "file" or "syslog".
	Type string `koanf:"type"`
	// Target is the file path, or "+"/"-" for stdout/stderr. File sinks
	// only.
	Target string `koanf:"target"`
	// Facility and Tag configure syslog sinks.
	Facility string `koanf:"facility"`
	Tag      string `koanf:"tag"`
	// Content restricts the sink to messages containing this substring.
	Content string `koanf:"content"`
	// Severity restricts the sink to one severity, by name.
	Severity string `koanf:"severity"`
	// Consume stops dispatch to later sinks once this one matched.
	Consume bool `koanf:"consume"`
	// FatalToStderr echoes fatal messages to stderr with the details
	// hints of every sink. File sinks only.
	FatalToStderr bool `koanf:"fatal_to_stderr"`
}

// Config is the declarative engine configuration, loadable from a YAML
// file layered with ARCLOG_* environment variables.
type Config struct {
	Level       string            `koanf:"level"`
	Severities  []string          `koanf:"severities"`
	Prefix      string            `koanf:"prefix"`
	LineNumbers bool              `koanf:"line_numbers"`
	ThreadIDs   bool              `koanf:"thread_ids"`
	LocalTime   bool              `koanf:"local_time"`
	Threaded    bool              `koanf:"threaded"`
	Topics      map[string]string `koanf:"topics"`
	Sinks       []SinkConfig      `koanf:"sinks"`
}

func defaultConfig() *Config {
	return &Config{
		Level:      InfoLevel.String(),
		Severities: []string{SeverityHuman.String()},
		Threaded:   true,
	}
}

// sliceConfigPaths lists keys that arrive comma-separated when set
// through the environment.
var sliceConfigPaths = []string{"severities"}

// LoadConfig builds a Config from layered sources, in increasing
// precedence: built-in defaults, the YAML file at path (or at
// ARCLOG_CONFIG when path is empty; a missing file is not an error),
// then ARCLOG_* environment variables.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// processSliceFields converts comma-separated string values to slices
// for known slice keys; env vars come in as strings but the config
// expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// Validate checks that every name in the configuration resolves.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	for _, s := range c.Severities {
		if _, err := ParseSeverity(s); err != nil {
			return err
		}
	}
	for name, lvl := range c.Topics {
		if name == "" {
			return fmt.Errorf("empty topic name")
		}
		if _, err := ParseLevel(lvl); err != nil {
			return fmt.Errorf("topic %q: %w", name, err)
		}
	}
	for i, sc := range c.Sinks {
		switch sc.Type {
		case "file":
			if sc.Target == "" {
				return fmt.Errorf("sink %d: file sink needs a target", i)
			}
		case "syslog":
			if sc.Facility == "" {
				return fmt.Errorf("sink %d: syslog sink needs a facility", i)
			}
		default:
			return fmt.Errorf("sink %d: unknown type %q", i, sc.Type)
		}
		if sc.Severity != "" {
			if _, err := ParseSeverity(sc.Severity); err != nil {
				return fmt.Errorf("sink %d: %w", i, err)
			}
		}
	}
	return nil
}

// Engine constructs a running engine from the configuration: global
// settings, topic level overrides and sinks, in that order.
func (c *Config) Engine() (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, _ := ParseLevel(c.Level)
	sevs := make([]Severity, 0, len(c.Severities))
	for _, s := range c.Severities {
		sev, _ := ParseSeverity(s)
		sevs = append(sevs, sev)
	}

	opts := []Option{WithLevel(level), WithSeverities(sevs...)}
	if c.Prefix != "" {
		opts = append(opts, WithPrefix(c.Prefix))
	}
	if c.LineNumbers {
		opts = append(opts, WithLineNumbers())
	}
	if c.ThreadIDs {
		opts = append(opts, WithProcessIDs())
	}
	if c.LocalTime {
		opts = append(opts, WithLocalTime())
	}
	if c.Threaded {
		opts = append(opts, WithThreaded())
	}

	e := New(opts...)

	for name, lvl := range c.Topics {
		parsed, _ := ParseLevel(lvl)
		t, err := RegisterTopic(name, parsed)
		if err != nil {
			e.Shutdown(false)
			return nil, err
		}
		t.SetLevel(parsed)
	}

	for i, sc := range c.Sinks {
		filters := SinkFilters{Content: sc.Content, Consume: sc.Consume}
		if sc.Severity != "" {
			filters.Severity, _ = ParseSeverity(sc.Severity)
		}

		var err error
		switch sc.Type {
		case "file":
			err = e.AddFileSink(sc.Target, filters, sc.FatalToStderr)
		case "syslog":
			tag := sc.Tag
			if tag == "" {
				tag = "arclog"
			}
			err = e.AddSyslogSink(sc.Facility, tag, filters)
		}
		if err != nil {
			e.Shutdown(false)
			return nil, fmt.Errorf("sink %d: %w", i, err)
		}
	}

	return e, nil
}
