// Copyright 2024 The goredo Authors
// This file is part of the goredo library.
//
// The goredo library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The goredo library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the goredo library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"strings"
)

// Format renders a Record to bytes for a Handler like StreamHandler.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(r *Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

var levelColor = map[Level]int{
	LevelCrit:  35, // magenta
	LevelError: 31, // red
	LevelWarn:  33, // yellow
	LevelInfo:  32, // green
	LevelDebug: 36, // cyan
	LevelTrace: 90, // bright black
}

// TerminalFormat renders records the way a human reads a terminal:
// level, message, then key=value pairs. If useColor is true the level is
// wrapped in the level's ANSI color.
func TerminalFormat(useColor bool) Format {
	return formatFunc(func(r *Record) []byte {
		var b strings.Builder
		lvl := strings.ToUpper(r.Lvl.String())
		if useColor {
			fmt.Fprintf(&b, "\x1b[%dm%-5s\x1b[0m", levelColor[r.Lvl], lvl)
		} else {
			fmt.Fprintf(&b, "%-5s", lvl)
		}
		fmt.Fprintf(&b, "[%s] %s", r.Time.Format("15:04:05.000"), r.Msg)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			fmt.Fprintf(&b, " %v=%v", r.Ctx[i], r.Ctx[i+1])
		}
		if r.Lvl >= LevelDebug && r.Call.Frame().Function != "" {
			fmt.Fprintf(&b, " caller=%s", r.Call)
		}
		b.WriteByte('\n')
		return []byte(b.String())
	})
}

// LogfmtFormat renders records as plain key=value pairs with no color and
// no caller information, suitable for piping to another process.
func LogfmtFormat() Format {
	return formatFunc(func(r *Record) []byte {
		var b strings.Builder
		fmt.Fprintf(&b, "t=%s lvl=%s msg=%q", r.Time.Format("2006-01-02T15:04:05.000"), r.Lvl, r.Msg)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			fmt.Fprintf(&b, " %v=%v", r.Ctx[i], r.Ctx[i+1])
		}
		b.WriteByte('\n')
		return []byte(b.String())
	})
}
