/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package chime

import (
	"time"

	"github.com/rs/zerolog"
)

// Scheduler turns a chime config into absolute chime times.
type Scheduler struct {
	cfg    Config
	logger zerolog.Logger
}

// NewScheduler validates cfg and constructs a scheduler.
func NewScheduler(cfg Config, logger zerolog.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{
		cfg:    cfg,
		logger: logger.With().Str("component", "chime_scheduler").Logger(),
	}, nil
}

// Config returns the scheduler's configuration.
func (s *Scheduler) Config() Config {
	return s.cfg
}

// FirstChimeTime returns the anchor shared by every category for now: the
// next EveryNSeconds boundary, as a Unix timestamp.
func (s *Scheduler) FirstChimeTime(now time.Time) int64 {
	return now.Unix() + NextBoundaryOffset(now, s.cfg.EveryNMinutes())
}

// ScheduleSequence computes the chime times following now for the given
// 1-based chime number. The result holds Initial, Second and Third followed by
// one Hour entry per hour on the twelve-hour clock.
func (s *Scheduler) ScheduleSequence(now time.Time, chimeNumber int) Schedule {
	twelveHour := TwelveHour(now.Hour())
	first := s.FirstChimeTime(now)

	schedule := make(Schedule, 0, len(Categories)-1+twelveHour)
	for _, category := range Categories {
		offset := s.cycleOffset(category, chimeNumber)
		if category != CategoryHour {
			schedule = append(schedule, first+offset)
			continue
		}
		for hour := 1; hour <= twelveHour; hour++ {
			schedule = append(schedule, first+offset+int64(s.cfg.InterHourDelaySeconds*(hour-1)))
		}
	}

	s.logger.Debug().
		Time("now", now).
		Time("first_chime", time.Unix(first, 0)).
		Int("chime_number", chimeNumber).
		Int("twelve_hour", twelveHour).
		Msg("chime sequence scheduled")

	return schedule
}

func (s *Scheduler) cycleOffset(category Category, chimeNumber int) int64 {
	extra := 0
	if category != CategoryHour {
		extra = chimeNumber - 1
	}
	return int64((int(category)*s.cfg.Count + extra) * s.cfg.CycleSeconds)
}
