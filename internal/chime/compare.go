/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package chime

import (
	"github.com/google/uuid"

	"github.com/friendsincode/chimeschedule/internal/clock"
)

// Reference names one chime slot of the repeating cycle.
type Reference struct {
	Name        string
	ChimeNumber int
}

// Reference hour names, in chime-number order.
var referenceNames = []string{"Twelve", "Six", "Nine", "Three"}

// DefaultReferences returns the Twelve, Six, Nine and Three o'clock references
// with chime numbers counting up from start.
func DefaultReferences(start int) []Reference {
	refs := make([]Reference, len(referenceNames))
	for i, name := range referenceNames {
		refs[i] = Reference{Name: name, ChimeNumber: start + i}
	}
	return refs
}

// Entry pairs a reference with the schedule computed for it.
type Entry struct {
	Reference Reference
	Schedule  Schedule
}

// Comparison is the result of one multi-reference run.
type Comparison struct {
	RunID   string
	Entries []Entry
}

// Compare schedules each reference in turn, reading clk before every call.
// Drift between reads is not corrected.
func (s *Scheduler) Compare(clk clock.Clock, refs []Reference) Comparison {
	cmp := Comparison{
		RunID:   uuid.NewString(),
		Entries: make([]Entry, 0, len(refs)),
	}
	logger := s.logger.With().Str("run_id", cmp.RunID).Logger()

	for _, ref := range refs {
		schedule := s.ScheduleSequence(clk.Now(), ref.ChimeNumber)
		cmp.Entries = append(cmp.Entries, Entry{Reference: ref, Schedule: schedule})
		logger.Debug().
			Str("reference", ref.Name).
			Int("chime_number", ref.ChimeNumber).
			Int("entries", len(schedule)).
			Msg("reference scheduled")
	}

	logger.Info().Int("references", len(refs)).Msg("chime comparison complete")
	return cmp
}
