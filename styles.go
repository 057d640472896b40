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
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual appearance of messages echoed to the
// console fallback (fatal echoes and messages logged before any sink
// exists).
//
// It leverages the lipgloss library to provide color coded terminal
// output keyed by level.
type Styles struct {
	Levels map[Level]lipgloss.Style
}

// DefaultStyles initializes and returns the standard styling
// configuration.
func DefaultStyles() *Styles {
	return &Styles{
		Levels: map[Level]lipgloss.Style{
			FatalLevel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("134")),
			ErrorLevel:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			WarningLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("192")),
			InfoLevel:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			DebugLevel:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
			TraceLevel:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

var _defaultStyles atomic.Pointer[Styles]

func init() {
	_defaultStyles.Store(DefaultStyles())
}

// SetDefaultStyles overrides the global styles used for console
// fallback output. A nil argument is ignored.
func SetDefaultStyles(s *Styles) {
	if s == nil {
		return
	}
	_defaultStyles.Store(s)
}

// writeFallback renders one message line to w, colorized by level when
// a style is configured for it.
func writeFallback(w io.Writer, level Level, msg []byte) {
	if style, ok := _defaultStyles.Load().Levels[level]; ok {
		fmt.Fprintln(w, style.Render(string(msg)))
		return
	}
	fmt.Fprintln(w, string(msg))
}
