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

import "time"

var _smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendTimestamp appends the log line timestamp to b.
//
// The layout is ISO-8601 without sub-second precision: UTC times carry a
// trailing "Z" ("2006-01-02T15:04:05Z"), local times do not. The custom
// encoder avoids time.AppendFormat's layout parsing on every message.
func appendTimestamp(b []byte, t time.Time, local bool) []byte {
	if local {
		t = t.Local()
	} else {
		t = t.UTC()
	}

	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	y := uint(year)
	if y < 10000 {
		i := (y / 100) * 2
		b = append(b, _smallsString[i], _smallsString[i+1])
		i = (y % 100) * 2
		b = append(b, _smallsString[i], _smallsString[i+1])
	} else {
		// far future, take the slow path
		b = t.AppendFormat(b, "2006-01-02T15:04:05")
		if !local {
			b = append(b, 'Z')
		}
		return b
	}

	b = append(b, '-')
	i := uint(month) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	b = append(b, '-')
	i = uint(day) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	b = append(b, 'T')
	i = uint(hour) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	b = append(b, ':')
	i = uint(min) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	b = append(b, ':')
	i = uint(sec) * 2
	b = append(b, _smallsString[i], _smallsString[i+1])

	if !local {
		b = append(b, 'Z')
	}
	return b
}
