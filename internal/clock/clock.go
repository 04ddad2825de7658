/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package clock

import "time"

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System reads the local system clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.At
}

// Sequence returns its instants in order, repeating the last one once exhausted.
// Useful for modelling drift between successive reads.
type Sequence struct {
	At   []time.Time
	next int
}

// Now returns the next instant in the sequence.
func (s *Sequence) Now() time.Time {
	if len(s.At) == 0 {
		return time.Time{}
	}
	i := s.next
	if i >= len(s.At) {
		i = len(s.At) - 1
	} else {
		s.next++
	}
	return s.At[i]
}
