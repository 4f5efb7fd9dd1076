// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"errors"

	"github.com/google/uuid"
)

// ErrEnded is returned when ending a [Session] that has already ended.
var ErrEnded = errors.New("diag: session already ended")

// Session is one bounded period of validation between a reset of its
// [Sink] and the comparison of the expected and emitted messages.
type Session struct {
	// ID uniquely identifies the session in logs.
	ID uuid.UUID

	sink  *Sink
	ended bool
}

// Begin resets the sink and starts a new [Session] on it.
func (s *Sink) Begin() *Session {
	s.Reset()
	ss := &Session{ID: uuid.New(), sink: s}
	Console.Debug("diag: session begin", "session", ss.ID)
	return ss
}

// Sink returns the sink of the session.
func (ss *Session) Sink() *Sink {
	return ss.sink
}

// Expect declares the given messages as expected in this session.
func (ss *Session) Expect(msgs ...string) {
	ss.sink.Expect(msgs...)
}

// End checks the sink (see [Sink.Check]) and then resets it,
// whatever the outcome.
func (ss *Session) End() error {
	if ss.ended {
		return ErrEnded
	}
	ss.ended = true
	err := ss.sink.Check()
	ss.sink.Reset()
	ss.sink.currentMetrics().session(err == nil)
	if err != nil {
		Console.Debug("diag: session failed", "session", ss.ID, "err", err)
	}
	return err
}

// abort ends the session without checking it.
func (ss *Session) abort() {
	ss.ended = true
	ss.sink.Reset()
	ss.sink.currentMetrics().aborted()
	Console.Debug("diag: session aborted", "session", ss.ID)
}

// Run runs the given function in a new [Session] on the given sink,
// and returns the result of ending it. The sink is reset however fn
// exits: when it panics, the panic continues after the reset, and when
// it calls [runtime.Goexit] (as t.FailNow does), the session is aborted.
func Run(s *Sink, fn func(ss *Session)) error {
	ss := s.Begin()
	done := false
	defer func() {
		if done {
			return
		}
		r := recover()
		ss.abort()
		if r != nil {
			panic(r)
		}
	}()
	fn(ss)
	done = true
	return ss.End()
}
