// seehuhn.de/go/pdfwrite - a library for writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfwrite

import (
	"fmt"
)

// XRefEntry is one entry of a cross-reference table.
type XRefEntry struct {
	// Pos is the byte offset of the object, counted from the start of the
	// file.  For free entries this is the number of the next free object.
	Pos int64

	Generation uint16
	Free       bool
}

// xRefEntrySize is the length of every entry in a cross-reference table,
// including the two-byte end of line marker.
const xRefEntrySize = 20

// maxXRefPos is the largest offset which fits into the ten digit offset
// field of an xref entry.
const maxXRefPos = 9_999_999_999

// freeListHead is entry 0 of every cross-reference table.
var freeListHead = XRefEntry{Pos: 0, Generation: 65535, Free: true}

// AppendText appends the 20-byte table representation of the entry to buf.
// This implements the [encoding.TextAppender] interface.
func (entry XRefEntry) AppendText(buf []byte) ([]byte, error) {
	if entry.Pos < 0 || entry.Pos > maxXRefPos {
		return buf, ErrFileTooLarge
	}
	tp := byte('n')
	if entry.Free {
		tp = 'f'
	}
	return fmt.Appendf(buf, "%010d %05d %c\r\n", entry.Pos, entry.Generation, tp), nil
}

// writeXRefTable writes a cross-reference table with a single subsection
// starting at object number 0.  entries[0] must be the head of the free
// list.
func writeXRefTable(w *PosWriter, entries []XRefEntry) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(entries))
	if err != nil {
		return err
	}
	line := make([]byte, 0, xRefEntrySize)
	for _, entry := range entries {
		line, err = entry.AppendText(line[:0])
		if err != nil {
			return err
		}
		_, err = w.Write(line)
		if err != nil {
			return err
		}
	}
	return nil
}
