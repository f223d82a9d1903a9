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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Write writes the document to w.
//
// The document is validated before anything is written.  If validation
// fails, a [*DocumentError] is returned and w is left untouched.  If an
// error occurs while writing, writing stops immediately; the partial output
// is not a valid PDF file and must be discarded.
func (doc *Document) Write(w *PosWriter) error {
	err := doc.Validate()
	if err != nil {
		return err
	}

	header, err := doc.Version.header()
	if err != nil {
		return err
	}
	_, err = w.Write(header)
	if err != nil {
		return err
	}

	xref := make([]XRefEntry, doc.last+1)
	xref[0] = freeListHead
	for num := uint32(1); num <= doc.last; num++ {
		xref[num] = XRefEntry{Pos: w.Pos()}
		err = writeIndirect(w, NewReference(num, 0), doc.objects[num])
		if err != nil {
			return err
		}
	}

	xRefPos := w.Pos()
	err = writeXRefTable(w, xref)
	if err != nil {
		return err
	}

	err = doc.writeTrailer(w, len(xref))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "startxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}

// WriteTo writes the document to w.  The return value n is the number of
// bytes written successfully.
// This implements the [io.WriterTo] interface.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	pw := NewPosWriter(w)
	err := doc.Write(pw)
	return pw.Pos(), err
}

// WriteFile writes the document to the named file.  If the file already
// exists, it is overwritten.  If writing fails, the partially written file
// is removed.
func (doc *Document) WriteFile(name string) (err error) {
	err = doc.Validate()
	if err != nil {
		return err
	}

	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	buf := bufio.NewWriter(fd)
	_, err = doc.WriteTo(buf)
	if err != nil {
		return err
	}
	return buf.Flush()
}

func writeIndirect(w *PosWriter, ref Reference, obj Object) error {
	_, err := fmt.Fprintf(w, "%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	err = writeObject(w, obj)
	if err != nil {
		return err
	}
	_, err = w.WriteString("\nendobj\n")
	return err
}

// writeTrailer writes the trailer dictionary.  The entries are written in
// a fixed order, one per line.
func (doc *Document) writeTrailer(w *PosWriter, size int) error {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "trailer\n<<\n/Size %d\n/Root ", size)
	err := doc.Root().PDF(buf)
	if err != nil {
		return err
	}
	if doc.info != 0 {
		buf.WriteString("\n/Info ")
		err = doc.info.PDF(buf)
		if err != nil {
			return err
		}
	}
	buf.WriteString("\n>>\n")

	_, err = w.Write(buf.Bytes())
	return err
}
