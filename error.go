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
	"errors"
	"strconv"
)

// Errors reported when a document fails validation.  No output is written
// for a document which fails validation.
var (
	ErrEmptyDocument   = errors.New("document contains no objects")
	ErrMissingObject   = errors.New("object number not in use")
	ErrDuplicateObject = errors.New("object already stored")
	ErrReservedObject  = errors.New("object number 0 is reserved")
	ErrGeneration      = errors.New("generation number must be 0")
	ErrMissingRoot     = errors.New("missing /Root object")
	ErrMissingInfo     = errors.New("missing /Info object")
)

// ErrFileTooLarge is returned when an object offset cannot be represented
// in a cross-reference table entry.
var ErrFileTooLarge = errors.New("offset too large for xref table")

// DocumentError indicates that a document is structurally invalid.
// Number, if non-zero, gives the object number concerned.
type DocumentError struct {
	Number uint32
	Err    error
}

func (err *DocumentError) Error() string {
	tail := ""
	if err.Number > 0 {
		tail = " (object " + strconv.FormatUint(uint64(err.Number), 10) + ")"
	}
	return "invalid PDF document: " + err.Err.Error() + tail
}

func (err *DocumentError) Unwrap() error {
	return err.Err
}
