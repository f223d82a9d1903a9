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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/unicode"
)

// Object represents an object in a PDF file.  There are nine basic types of
// PDF objects, which implement this interface: [Array], [Bool], [Dict],
// [Integer], [Name], [Real], [Reference], [*Stream], and [String].
// Custom types can be constructed out of these basic types, by implementing
// the Object interface.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	_, err := w.Write(strconv.AppendBool(nil, bool(x)))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := w.Write(strconv.AppendInt(nil, int64(x), 10))
	return err
}

// Real represents an real number in a PDF file.
//
// Only finite values with magnitude up to [MaxReal] can be written.
type Real float64

// MaxReal is the largest magnitude of a real number which PDF readers are
// required to support.
const MaxReal = 3.403e38

var errReal = errors.New("real number out of range")

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	v := float64(x)
	if math.IsNaN(v) || math.Abs(v) > MaxReal {
		return fmt.Errorf("%w: %g", errReal, v)
	}
	buf := strconv.AppendFloat(nil, v, 'f', -1, 64)
	if bytes.IndexByte(buf, '.') < 0 {
		buf = append(buf, '.')
	}
	_, err := w.Write(buf)
	return err
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
//
// Strings which consist mostly of printable characters are written as
// literal strings, all others as hexadecimal strings.
func (x String) PDF(w io.Writer) error {
	unprintable := 0
	for _, c := range x {
		if c < 0x20 || c >= 0x7f {
			unprintable++
		}
	}

	var buf []byte
	if 4*unprintable > len(x) {
		buf = make([]byte, 0, 2*len(x)+2)
		buf = append(buf, '<')
		buf = fmt.Appendf(buf, "%x", []byte(x))
		buf = append(buf, '>')
	} else {
		buf = make([]byte, 0, len(x)+2)
		buf = append(buf, '(')
		for _, c := range x {
			if esc, ok := stringEscapes[c]; ok {
				buf = append(buf, '\\', esc)
			} else if c < 0x20 || c >= 0x7f {
				buf = fmt.Appendf(buf, `\%03o`, c)
			} else {
				buf = append(buf, c)
			}
		}
		buf = append(buf, ')')
	}

	_, err := w.Write(buf)
	return err
}

var stringEscapes = map[byte]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\b': 'b',
	'\f': 'f',
	'(':  '(',
	')':  ')',
	'\\': '\\',
}

// TextString creates a String object using the "text string" encoding.
// Printable ASCII text is stored as is, everything else is stored as
// UTF-16BE with a byte order mark.
func TextString(s string) String {
	plain := true
	for i := 0; i < len(s) && plain; i++ {
		plain = s[i] >= 0x20 && s[i] < 0x7f
	}
	if plain {
		return String(s)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 cannot be represented as a text string
		return String(s)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns
// the corresponding utf-8 encoded string.
func (x String) AsTextString() string {
	if !bytes.HasPrefix(x, []byte{0xFE, 0xFF}) {
		return string(x)
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	buf, err := dec.Bytes(x)
	if err != nil {
		return string(x)
	}
	return string(buf)
}

// Date creates a PDF String object encoding the given date and time,
// for example "D:19981223195200-08'00".
func Date(t time.Time) String {
	buf := t.AppendFormat(nil, "D:20060102150405")
	_, offset := t.Zone()
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	buf = fmt.Appendf(buf, "%c%02d'%02d", sign, offset/3600, offset/60%60)
	return String(buf)
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
//
// Delimiters, white space, '#' and non-ASCII bytes are written using the
// #xx notation.
func (x Name) PDF(w io.Writer) error {
	buf := make([]byte, 0, len(x)+1)
	buf = append(buf, '/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if c <= ' ' || c >= 0x7f || strings.IndexByte("()<>[]{}/%#", c) >= 0 {
			buf = fmt.Appendf(buf, "#%02x", c)
		} else {
			buf = append(buf, c)
		}
	}
	_, err := w.Write(buf)
	return err
}

// Array represent an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Dict represent a Dictionary object in a PDF file.
type Dict map[Name]Object

// PDF implements the [Object] interface.
//
// Entries are written one per line, with keys in sorted order.  Entries with
// a nil value are omitted.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	keys := maps.Keys(x)
	slices.Sort(keys)

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for _, key := range keys {
		val := x[key]
		if val == nil {
			continue
		}
		_, err = w.Write([]byte("\n"))
		if err == nil {
			err = key.PDF(w)
		}
		if err == nil {
			_, err = w.Write([]byte(" "))
		}
		if err == nil {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// Stream represent a stream object in a PDF file.
//
// The /Length entry of the stream dictionary is always computed from Data
// when the stream is written.  Any /Length value in Dict is ignored.
type Stream struct {
	Dict
	Data []byte
}

// NewStream creates a stream object, reading the stream data from r.
func NewStream(dict Dict, r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Stream{Dict: dict, Data: data}, nil
}

// PDF implements the [Object] interface.
//
// The stream data is followed directly by the "endstream" keyword, so that
// the bytes between "stream\n" and "endstream" are exactly the /Length bytes
// of data.  A nil stream is written as null.
func (x *Stream) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	dict := maps.Clone(x.Dict)
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(x.Data))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	if len(x.Data) > 0 {
		_, err = w.Write(x.Data)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("endstream"))
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// The lower 32 bits represent the object number, the next 16 bits the
// generation number.
type Reference uint64

// NewReference creates a new reference to the object with the given number
// and generation.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	return fmt.Sprintf("%d %d R", x.Number(), x.Generation())
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x>>48 != 0 || x.Number() == 0 {
		return fmt.Errorf("invalid reference: 0x%016x", uint64(x))
	}
	_, err := io.WriteString(w, x.String())
	return err
}

// isNull reports whether obj is written as the null object.
func isNull(obj Object) bool {
	switch obj := obj.(type) {
	case nil:
		return true
	case Dict:
		return obj == nil
	case *Stream:
		return obj == nil
	}
	return false
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := w.Write([]byte("null"))
		return err
	}
	return obj.PDF(w)
}

// Format formats a PDF object as a string, in the same way as the
// it would be written to a PDF file.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
