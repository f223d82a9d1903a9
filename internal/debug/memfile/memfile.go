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

package memfile

import (
	"errors"
)

// ErrDiskFull is returned by [MemFile.Write] when the size limit is reached.
var ErrDiskFull = errors.New("memfile: no space left")

// MemFile is a temporary in-memory file.
//
// This type implements the [io.Writer] interface.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Limit, if positive, is the maximum size of the file.  A write which
	// would grow the file beyond Limit stores only the bytes which fit, and
	// returns ErrDiskFull.
	Limit int

	// Writes counts the calls to Write.
	Writes int

	// FailWrite, if positive, makes the FailWrite-th call to Write fail
	// without storing any data.
	FailWrite int
}

// New creates a new, unlimited MemFile.
func New() *MemFile {
	return &MemFile{}
}

// WithLimit creates a new MemFile which can hold at most limit bytes.
func WithLimit(limit int) *MemFile {
	return &MemFile{Limit: limit}
}

// Write appends data to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (n int, err error) {
	f.Writes++
	if f.FailWrite > 0 && f.Writes == f.FailWrite {
		return 0, errWriteFailed
	}

	if f.Limit > 0 && len(f.Data)+len(p) > f.Limit {
		n = f.Limit - len(f.Data)
		f.Data = append(f.Data, p[:n]...)
		return n, ErrDiskFull
	}

	f.Data = append(f.Data, p...)
	return len(p), nil
}

// Size returns the current file size.
func (f *MemFile) Size() int64 {
	return int64(len(f.Data))
}

var errWriteFailed = errors.New("memfile: write failed")
