/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package chime

import "time"

// NextBoundaryOffset returns the whole seconds from start until second 0 of the
// next minute whose minute-of-hour is a multiple of n.
//
// The result is always in the future: a start sitting exactly on a boundary
// yields n*60, never 0.
func NextBoundaryOffset(start time.Time, n int) int64 {
	minute := start.Minute()
	second := start.Second()
	return int64((n-(minute%n))-1)*60 + int64(60-second)
}
