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
	"time"

	"github.com/go-stack/stack"
)

// Logger emits leveled, structured records, optionally carrying a fixed set
// of key/value pairs attached by New.
type Logger interface {
	New(ctx ...interface{}) Logger
	SetHandler(h Handler)

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

// NewLogger creates a standalone Logger writing through h. Most callers want
// Root() or the package-level New, which share the default handler.
func NewLogger(h Handler) Logger {
	l := &logger{h: new(swapHandler)}
	l.h.Swap(h)
	return l
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{h: l.h, ctx: append(append([]interface{}{}, l.ctx...), ctx...)}
	return child
}

func (l *logger) SetHandler(h Handler) { l.h.Swap(h) }

func (l *logger) write(lvl Level, msg string, ctx []interface{}) {
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  append(append([]interface{}{}, l.ctx...), ctx...),
	}
	if lvl >= LevelDebug {
		r.Call = stack.Caller(2)
	}
	l.h.Log(r)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LevelError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(LevelCrit, msg, ctx) }
