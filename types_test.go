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
	"io"
	"math"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.25), "0.25"},
		{Real(-3), "-3."},
		{String("a"), "(a)"},
		{String("a (test version)"), `(a \(test version\))`},
		{String("a\\b\n"), `(a\\b\n)`},
		{String("caf\xe9"), `(caf\351)`},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String("\x01\x02ab"), "<01026162>"},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Dict{"Z": Integer(1), "A": Name("x"), "N": nil}, "<<\n/A /x\n/Z 1\n>>"},
		{Dict{}, "<<\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(3, 1), "3 1 R"},
		{&Stream{Data: []byte("abc")}, "<<\n/Length 3\n>>\nstream\nabcendstream"},
		{&Stream{Dict: Dict{"Length": Integer(7)}}, "<<\n/Length 0\n>>\nstream\nendstream"},
		{(*Stream)(nil), "null"},
		{Dict(nil), "null"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestRealRange(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e39, -1e300} {
		err := Real(x).PDF(io.Discard)
		if !errors.Is(err, errReal) {
			t.Errorf("%g: expected errReal, got %v", x, err)
		}
	}
	if err := Real(MaxReal).PDF(io.Discard); err != nil {
		t.Errorf("MaxReal rejected: %v", err)
	}
}

func TestNewStream(t *testing.T) {
	payload := "BT\n/F1 12 Tf\n(x) Tj\nET\n"
	stream, err := NewStream(Dict{"Type": Name("XObject")}, strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n/Length 23\n/Type /XObject\n>>\nstream\n" + payload + "endstream"
	if out := Format(stream); out != want {
		t.Errorf("wrong stream %q", out)
	}

	_, err = NewStream(nil, iotest.ErrReader(errTest))
	if err != errTest {
		t.Errorf("read error not reported: %v", err)
	}
}

var errTest = errors.New("test error")

func TestStreamDictUnchanged(t *testing.T) {
	dict := Dict{"Length": Integer(7), "Type": Name("XObject")}
	stream := &Stream{Dict: dict, Data: []byte("x")}
	Format(stream)
	if dict["Length"] != Integer(7) {
		t.Error("stream dictionary was modified")
	}
}

func TestInvalidReference(t *testing.T) {
	for _, ref := range []Reference{0, NewReference(0, 0), Reference(1 << 50)} {
		if err := ref.PDF(io.Discard); err == nil {
			t.Errorf("%s: invalid reference accepted", ref)
		}
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"ein Bär",
		"o țesătură",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		out := enc.AsTextString()
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}

	if s := TextString("plain"); string(s) != "plain" {
		t.Errorf("ASCII text was re-encoded: %q", s)
	}
	if s := TextString("Bär"); len(s) < 2 || s[0] != 0xFE || s[1] != 0xFF {
		t.Errorf("missing byte order mark: %q", s)
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []struct {
		in  time.Time
		out string
	}{
		{time.Date(1998, 12, 23, 19, 52, 0, 0, PST), "D:19981223195200-08'00"},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "D:20000101000000+00'00"},
		{time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)), "D:20201224163012+01'30"},
	}
	for _, test := range cases {
		out := string(Date(test.in))
		if out != test.out {
			t.Errorf("wrong date: %q != %q", out, test.out)
		}
	}
}
