/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package chime computes when the chime categories of a clock mechanism fire
// within the next cycle.
package chime

import (
	"errors"
	"fmt"
	"time"
)

// Category enumerates chime kinds in firing order.
type Category int

const (
	CategoryInitial Category = iota
	CategorySecond
	CategoryThird
	CategoryHour
)

// Categories lists every category in firing order.
var Categories = []Category{CategoryInitial, CategorySecond, CategoryThird, CategoryHour}

func (c Category) String() string {
	switch c {
	case CategoryInitial:
		return "Initial"
	case CategorySecond:
		return "Second"
	case CategoryThird:
		return "Third"
	case CategoryHour:
		return "Hour"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Default chime parameters.
const (
	DefaultEveryNSeconds          = 300
	DefaultOffsetSeconds          = 0
	DefaultCycleSeconds           = 6
	DefaultNumber                 = 1
	DefaultCount                  = 4
	DefaultInterChimeDelaySeconds = 24
	DefaultInterHourDelaySeconds  = 6
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid chime config")

// Config holds the timing parameters of the chime mechanism.
type Config struct {
	EveryNSeconds int // interval between global chime cycles, a multiple of 60
	OffsetSeconds int // reserved, not applied
	CycleSeconds  int // width of one cycle slot
	Number        int // first chime number handed to the reference driver
	Count         int // cycle slots consumed per category
	// InterChimeDelaySeconds is reserved and not applied.
	InterChimeDelaySeconds int
	InterHourDelaySeconds  int // gap between successive hour chimes
}

// DefaultConfig returns the stock chime parameters.
func DefaultConfig() Config {
	return Config{
		EveryNSeconds:          DefaultEveryNSeconds,
		OffsetSeconds:          DefaultOffsetSeconds,
		CycleSeconds:           DefaultCycleSeconds,
		Number:                 DefaultNumber,
		Count:                  DefaultCount,
		InterChimeDelaySeconds: DefaultInterChimeDelaySeconds,
		InterHourDelaySeconds:  DefaultInterHourDelaySeconds,
	}
}

// EveryNMinutes returns the cycle interval in whole minutes.
func (c Config) EveryNMinutes() int {
	return c.EveryNSeconds / 60
}

// Validate reports configurations the boundary arithmetic cannot handle.
func (c Config) Validate() error {
	if c.EveryNSeconds <= 0 {
		return fmt.Errorf("%w: every_n_seconds must be positive, got %d", ErrInvalidConfig, c.EveryNSeconds)
	}
	if c.EveryNSeconds%60 != 0 {
		return fmt.Errorf("%w: every_n_seconds must be a multiple of 60, got %d", ErrInvalidConfig, c.EveryNSeconds)
	}
	if n := c.EveryNMinutes(); 60%n != 0 {
		return fmt.Errorf("%w: every_n_seconds/60 must divide 60, got %d minutes", ErrInvalidConfig, n)
	}
	if c.OffsetSeconds < 0 {
		return fmt.Errorf("%w: offset_seconds must not be negative, got %d", ErrInvalidConfig, c.OffsetSeconds)
	}
	if c.CycleSeconds < 0 {
		return fmt.Errorf("%w: cycle_seconds must not be negative, got %d", ErrInvalidConfig, c.CycleSeconds)
	}
	if c.Number < 1 {
		return fmt.Errorf("%w: number must be at least 1, got %d", ErrInvalidConfig, c.Number)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if c.InterChimeDelaySeconds < 0 {
		return fmt.Errorf("%w: inter_chime_delay_seconds must not be negative, got %d", ErrInvalidConfig, c.InterChimeDelaySeconds)
	}
	if c.InterHourDelaySeconds <= 0 {
		return fmt.Errorf("%w: inter_hour_delay_seconds must be positive, got %d", ErrInvalidConfig, c.InterHourDelaySeconds)
	}
	return nil
}

// Schedule is the ordered list of Unix timestamps produced by one scheduling
// call: Initial, Second and Third followed by one entry per elapsed hour.
type Schedule []int64

// CategoryAt returns the category of the entry at index i.
func CategoryAt(i int) Category {
	if i >= int(CategoryHour) {
		return CategoryHour
	}
	return Category(i)
}

// Hours returns the hour-category entries.
func (s Schedule) Hours() []int64 {
	if len(s) <= int(CategoryHour) {
		return nil
	}
	return s[CategoryHour:]
}

// Times converts the schedule to instants in loc.
func (s Schedule) Times(loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	out := make([]time.Time, len(s))
	for i, ts := range s {
		out[i] = time.Unix(ts, 0).In(loc)
	}
	return out
}

// TwelveHour maps a 24-hour clock hour onto 1..12.
func TwelveHour(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}
