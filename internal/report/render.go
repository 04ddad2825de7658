/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	cellWidth  = 16
	timeLayout = "15:04:05"
)

// Render writes the header, a dash separator and every data row. Cells are
// right-aligned to a fixed width and separated by tabs.
func Render(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	writeRow(bw, t.Header)

	separator := make([]Cell, len(t.Header))
	for i := range separator {
		separator[i] = Label(strings.Repeat("-", cellWidth))
	}
	writeRow(bw, separator)

	for _, row := range t.Rows {
		writeRow(bw, row)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func writeRow(w *bufio.Writer, cells []Cell) {
	for i, cell := range cells {
		if i > 0 {
			w.WriteByte('\t')
		}
		fmt.Fprintf(w, "%*s", cellWidth, cellText(cell))
	}
	w.WriteByte('\n')
}

func cellText(c Cell) string {
	switch c.Kind {
	case CellTime:
		return c.Time.Format(timeLayout)
	case CellLabel:
		return c.Text
	default:
		return ""
	}
}
