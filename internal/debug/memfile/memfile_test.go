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
	"testing"
)

func TestLimit(t *testing.T) {
	f := WithLimit(5)

	n, err := f.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("first write: n=%d, err=%v", n, err)
	}
	n, err = f.Write([]byte("defg"))
	if n != 2 || !errors.Is(err, ErrDiskFull) {
		t.Fatalf("second write: n=%d, err=%v", n, err)
	}
	if string(f.Data) != "abcde" {
		t.Errorf("wrong contents %q", f.Data)
	}
}

func TestFailWrite(t *testing.T) {
	f := &MemFile{FailWrite: 2}

	_, err := f.Write([]byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := f.Write([]byte("b"))
	if n != 0 || err == nil {
		t.Fatalf("expected failure, got n=%d, err=%v", n, err)
	}
	_, err = f.Write([]byte("c"))
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Data) != "ac" {
		t.Errorf("wrong contents %q", f.Data)
	}
	if f.Size() != 2 {
		t.Errorf("wrong size %d", f.Size())
	}
}
