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

import "io"

// PosWriter wraps an [io.Writer] and keeps track of the number of bytes
// written so far.  The byte offsets of all objects in the xref table are
// taken from this counter.
//
// The offset only advances when a write succeeds completely.  If the
// underlying writer reports an error, or accepts fewer bytes than requested,
// the offset is left unchanged and the error is returned.  In this case the
// output is most likely corrupt and should be discarded.
type PosWriter struct {
	w   io.Writer
	pos int64
}

// NewPosWriter returns a PosWriter which appends to w, starting at offset 0.
// While the PosWriter is in use, nothing else may write to w.
func NewPosWriter(w io.Writer) *PosWriter {
	return &PosWriter{w: w}
}

// Write appends p to the underlying writer.
// This implements the [io.Writer] interface.
func (w *PosWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, err
	}
	w.pos += int64(n)
	return n, nil
}

// WriteString appends s to the underlying writer.
func (w *PosWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Pos returns the number of bytes written successfully so far.
func (w *PosWriter) Pos() int64 {
	return w.pos
}
