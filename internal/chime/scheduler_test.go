/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package chime

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/chimeschedule/internal/clock"
)

func newTestScheduler(t *testing.T, cfg Config) *Scheduler {
	t.Helper()

	s, err := NewScheduler(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	return s
}

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 2, 25, hour, minute, second, 0, time.UTC)
}

func TestScheduleSequenceWorkedExample(t *testing.T) {
	s := newTestScheduler(t, DefaultConfig())

	got := s.ScheduleSequence(at(14, 7, 30), 1)

	want := []time.Time{
		at(14, 10, 0),
		at(14, 10, 24),
		at(14, 10, 48),
		at(14, 11, 12),
		at(14, 11, 18),
	}
	if len(got) != len(want) {
		t.Fatalf("schedule len = %d, want %d", len(got), len(want))
	}
	for i, ts := range got.Times(time.UTC) {
		if !ts.Equal(want[i]) {
			t.Fatalf("schedule[%d] = %s, want %s", i, ts.Format("15:04:05"), want[i].Format("15:04:05"))
		}
	}
}

func TestScheduleSequenceLengthFollowsTwelveHourClock(t *testing.T) {
	s := newTestScheduler(t, DefaultConfig())

	for hour := 0; hour < 24; hour++ {
		want := 3 + TwelveHour(hour)
		got := s.ScheduleSequence(at(hour, 20, 0), 1)
		if len(got) != want {
			t.Errorf("hour %d: schedule len = %d, want %d", hour, len(got), want)
		}
	}

	if got := len(s.ScheduleSequence(at(0, 1, 0), 1)); got != 15 {
		t.Fatalf("midnight schedule len = %d, want 15", got)
	}
	if got := len(s.ScheduleSequence(at(12, 1, 0), 1)); got != 15 {
		t.Fatalf("noon schedule len = %d, want 15", got)
	}
}

func TestScheduleSequenceOrdering(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestScheduler(t, cfg)

	for _, chimeNumber := range []int{1, 2, 3, 4, 7} {
		now := at(23, 44, 59)
		got := s.ScheduleSequence(now, chimeNumber)
		first := s.FirstChimeTime(now)

		for i, ts := range got {
			if ts < first {
				t.Fatalf("chime %d: schedule[%d] = %d before first chime %d", chimeNumber, i, ts, first)
			}
		}
		if !(got[CategoryInitial] <= got[CategorySecond] && got[CategorySecond] <= got[CategoryThird]) {
			t.Fatalf("chime %d: non-hour entries not ordered: %v", chimeNumber, got[:3])
		}
		hours := got.Hours()
		for i := 1; i < len(hours); i++ {
			if step := hours[i] - hours[i-1]; step != int64(cfg.InterHourDelaySeconds) {
				t.Fatalf("chime %d: hour step %d = %d, want %d", chimeNumber, i, step, cfg.InterHourDelaySeconds)
			}
		}
	}
}

func TestScheduleSequenceChimeNumberShiftsNonHourEntries(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestScheduler(t, cfg)
	now := at(9, 2, 13)

	prev := s.ScheduleSequence(now, 1)
	for chimeNumber := 2; chimeNumber <= 4; chimeNumber++ {
		next := s.ScheduleSequence(now, chimeNumber)
		for i := 0; i < int(CategoryHour); i++ {
			if shift := next[i] - prev[i]; shift != int64(cfg.CycleSeconds) {
				t.Fatalf("chime %d: %s shift = %d, want %d", chimeNumber, CategoryAt(i), shift, cfg.CycleSeconds)
			}
		}
		for i := int(CategoryHour); i < len(next); i++ {
			if next[i] != prev[i] {
				t.Fatalf("chime %d: hour entry %d moved from %d to %d", chimeNumber, i, prev[i], next[i])
			}
		}
		prev = next
	}
}

func TestScheduleSequenceUsesConfiguredInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EveryNSeconds = 900
	s := newTestScheduler(t, cfg)

	got := s.ScheduleSequence(at(3, 15, 0), 1)
	if want := at(3, 30, 0).Unix(); got[CategoryInitial] != want {
		t.Fatalf("initial = %d, want %d", got[CategoryInitial], want)
	}
}

func TestNewSchedulerRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.EveryNSeconds = 0 }},
		{"sub-minute interval", func(c *Config) { c.EveryNSeconds = 30 }},
		{"not a multiple of 60", func(c *Config) { c.EveryNSeconds = 330 }},
		{"minutes do not divide the hour", func(c *Config) { c.EveryNSeconds = 420 }},
		{"negative cycle", func(c *Config) { c.CycleSeconds = -1 }},
		{"zero chime number", func(c *Config) { c.Number = 0 }},
		{"negative count", func(c *Config) { c.Count = -2 }},
		{"zero hour delay", func(c *Config) { c.InterHourDelaySeconds = 0 }},
		{"negative offset", func(c *Config) { c.OffsetSeconds = -5 }},
		{"negative inter chime delay", func(c *Config) { c.InterChimeDelaySeconds = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewScheduler(cfg, zerolog.Nop())
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewScheduler() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestCompareDefaultReferences(t *testing.T) {
	s := newTestScheduler(t, DefaultConfig())
	now := at(14, 7, 30)

	cmp := s.Compare(clock.Fixed{At: now}, DefaultReferences(1))

	if cmp.RunID == "" {
		t.Fatal("expected run id")
	}
	wantNames := []string{"Twelve", "Six", "Nine", "Three"}
	if len(cmp.Entries) != len(wantNames) {
		t.Fatalf("entries = %d, want %d", len(cmp.Entries), len(wantNames))
	}
	for i, entry := range cmp.Entries {
		if entry.Reference.Name != wantNames[i] {
			t.Errorf("entry[%d] name = %q, want %q", i, entry.Reference.Name, wantNames[i])
		}
		if entry.Reference.ChimeNumber != i+1 {
			t.Errorf("entry[%d] chime number = %d, want %d", i, entry.Reference.ChimeNumber, i+1)
		}
		want := s.ScheduleSequence(now, i+1)
		if len(entry.Schedule) != len(want) {
			t.Fatalf("entry[%d] len = %d, want %d", i, len(entry.Schedule), len(want))
		}
		for j := range want {
			if entry.Schedule[j] != want[j] {
				t.Fatalf("entry[%d][%d] = %d, want %d", i, j, entry.Schedule[j], want[j])
			}
		}
	}

	// Six o'clock second chime: (1*4 + 1) * 6 = 30s after 14:10:00.
	if got, want := cmp.Entries[1].Schedule[CategorySecond], at(14, 10, 30).Unix(); got != want {
		t.Fatalf("six second chime = %d, want %d", got, want)
	}
}

func TestCompareReadsClockPerReference(t *testing.T) {
	s := newTestScheduler(t, DefaultConfig())
	clk := &clock.Sequence{At: []time.Time{at(14, 59, 58), at(14, 59, 59), at(15, 0, 0), at(15, 0, 1)}}

	cmp := s.Compare(clk, DefaultReferences(1))

	wantLens := []int{5, 5, 6, 6}
	for i, entry := range cmp.Entries {
		if len(entry.Schedule) != wantLens[i] {
			t.Errorf("entry[%d] len = %d, want %d", i, len(entry.Schedule), wantLens[i])
		}
	}
}

func TestCategoryAt(t *testing.T) {
	want := []Category{CategoryInitial, CategorySecond, CategoryThird, CategoryHour, CategoryHour, CategoryHour}
	for i, w := range want {
		if got := CategoryAt(i); got != w {
			t.Errorf("CategoryAt(%d) = %s, want %s", i, got, w)
		}
	}
}
