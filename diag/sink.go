// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag provides the [Sink] that collects prop type diagnostics
// during a validation session, so that a test or developer console can
// compare exactly what was emitted against what was expected.
package diag

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/proptypes/logx"
	"cogentcore.org/proptypes/proptypes"
	"github.com/pmezard/go-difflib/difflib"
)

// Sink is a de-duplicating collector of diagnostic messages.
// A repeated equal message is recorded once, in the order of its
// first emission. Expectations and emitted messages are cleared by
// [Sink.Reset]; tolerated patterns are kept. It is safe to use
// from multiple goroutines.
type Sink struct {
	mu sync.Mutex

	// emitted is the emitted messages in order of first emission.
	emitted []string

	// expected is the expected messages in order of declaration.
	expected []string

	// tolerated lines are never reported as extra.
	tolerated []*regexp.Regexp

	metrics *Metrics
}

// Console is the developer console logger that reported diagnostics
// and session events are written to.
var Console = slog.New(logx.NewHandler(os.Stderr))

// Default is the process-wide sink that node commits report to
// unless another sink is injected.
var Default = NewSink()

// NewSink returns a new empty [Sink].
func NewSink() *Sink {
	return &Sink{}
}

// SetMetrics sets the metrics updated by the sink, and returns the sink.
func (s *Sink) SetMetrics(m *Metrics) *Sink {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = m
	return s
}

func (s *Sink) currentMetrics() *Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// Report records the given diagnostic. The first time a message is
// recorded in a session it is also logged as a warning.
// It implements [proptypes.Reporter].
func (s *Sink) Report(d proptypes.Diagnostic) {
	if !s.record(d.String()) {
		return
	}
	s.currentMetrics().diagnostic(d)
	Console.Warn(d.Warning(), "owner", d.Owner, "prop", d.Prop, "outcome", d.Outcome)
}

// Print records an opaque line emitted by another collaborator,
// such as the engine's own warnings.
func (s *Sink) Print(line string) {
	s.record(line)
}

// record adds the message if it is new, and returns whether it was.
func (s *Sink) record(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.emitted, msg) {
		return false
	}
	s.emitted = append(s.emitted, msg)
	return true
}

// Expect declares the given messages as expected in this session.
func (s *Sink) Expect(msgs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range msgs {
		if !slices.Contains(s.expected, msg) {
			s.expected = append(s.expected, msg)
		}
	}
}

// Tolerate adds a regular expression matching emitted lines that are
// allowed without being expected, such as engine version banners.
func (s *Sink) Tolerate(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("diag.Sink.Tolerate: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tolerated = append(s.tolerated, re)
	return nil
}

// Emitted returns a copy of the emitted messages in order of first emission.
func (s *Sink) Emitted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.emitted)
}

// Expected returns a copy of the expected messages.
func (s *Sink) Expected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.expected)
}

// Reset clears the emitted and expected messages.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitted = nil
	s.expected = nil
}

// Drain returns the emitted messages and resets the sink.
func (s *Sink) Drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	em := s.emitted
	s.emitted = nil
	s.expected = nil
	return em
}

// Check compares the expected messages with the emitted ones,
// returning a [*MismatchError] if any expected message was not
// emitted or any emitted message was neither expected nor tolerated.
func (s *Sink) Check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var missing, extra []string
	for _, msg := range s.expected {
		if !slices.Contains(s.emitted, msg) {
			missing = append(missing, msg)
		}
	}
	var got []string
	for _, msg := range s.emitted {
		if slices.Contains(s.expected, msg) {
			got = append(got, msg)
			continue
		}
		if s.isTolerated(msg) {
			continue
		}
		extra = append(extra, msg)
		got = append(got, msg)
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return &MismatchError{
		Missing: missing,
		Extra:   extra,
		Diff:    unifiedDiff(s.expected, got),
	}
}

func (s *Sink) isTolerated(msg string) bool {
	for _, re := range s.tolerated {
		if re.MatchString(msg) {
			return true
		}
	}
	return false
}

// MismatchError is returned by [Sink.Check] when the emitted messages
// do not match the expected ones.
type MismatchError struct {
	// Missing is the expected messages that were not emitted.
	Missing []string

	// Extra is the emitted messages that were not expected.
	Extra []string

	// Diff is a unified diff from the sorted expected messages
	// to the sorted emitted ones.
	Diff string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "diag: emitted messages do not match expected: %d missing, %d extra", len(e.Missing), len(e.Extra))
	for _, msg := range e.Missing {
		b.WriteString("\n  missing: " + msg)
	}
	for _, msg := range e.Extra {
		b.WriteString("\n  extra:   " + msg)
	}
	if e.Diff != "" {
		b.WriteString("\n" + e.Diff)
	}
	return b.String()
}

// unifiedDiff returns a unified diff of the sorted lines of a and b.
func unifiedDiff(a, b []string) string {
	as := slices.Sorted(slices.Values(a))
	bs := slices.Sorted(slices.Values(b))
	ud := difflib.UnifiedDiff{
		A:        lines(as),
		B:        lines(bs),
		FromFile: "expected",
		ToFile:   "emitted",
		Context:  3,
	}
	diff, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	return diff
}

func lines(msgs []string) []string {
	ls := make([]string, len(msgs))
	for i, msg := range msgs {
		ls[i] = msg + "\n"
	}
	return ls
}
