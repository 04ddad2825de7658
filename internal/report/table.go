/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package report lays chime comparisons out as tables of typed cells and
// renders them as text.
package report

import (
	"time"

	"github.com/friendsincode/chimeschedule/internal/chime"
)

// CellKind classifies a table cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellLabel
	CellTime
)

// Cell is one table cell.
type Cell struct {
	Kind CellKind
	Text string
	Time time.Time
}

// Label builds a text cell.
func Label(text string) Cell {
	return Cell{Kind: CellLabel, Text: text}
}

// Timestamp builds a time cell for a Unix timestamp shown in loc.
func Timestamp(ts int64, loc *time.Location) Cell {
	return Cell{Kind: CellTime, Time: time.Unix(ts, 0).In(loc)}
}

// Table is a header plus data rows.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// Build lays out one row per schedule index of the first entry, one column per
// reference. Entries shorter than the first leave their cells empty.
func Build(cmp chime.Comparison, loc *time.Location) Table {
	if loc == nil {
		loc = time.Local
	}

	header := make([]Cell, 0, len(cmp.Entries)+1)
	header = append(header, Label("Chime"))
	for _, entry := range cmp.Entries {
		header = append(header, Label(entry.Reference.Name))
	}

	t := Table{Header: header}
	if len(cmp.Entries) == 0 {
		return t
	}

	rows := len(cmp.Entries[0].Schedule)
	t.Rows = make([][]Cell, 0, rows)
	for i := 0; i < rows; i++ {
		row := make([]Cell, 0, len(header))
		row = append(row, Label(chime.CategoryAt(i).String()))
		for _, entry := range cmp.Entries {
			if i >= len(entry.Schedule) {
				row = append(row, Cell{Kind: CellEmpty})
				continue
			}
			row = append(row, Timestamp(entry.Schedule[i], loc))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
