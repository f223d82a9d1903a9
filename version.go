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

// Version represents a version of PDF standard.
// The zero value stands for the default version, PDF 1.7.
type Version int

// PDF versions which can be given in the file header.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// DefaultVersion is used for documents which do not specify a version.
const DefaultVersion = V1_7

var versionNames = []string{
	V1_0: "1.0",
	V1_1: "1.1",
	V1_2: "1.2",
	V1_3: "1.3",
	V1_4: "1.4",
	V1_5: "1.5",
	V1_6: "1.6",
	V1_7: "1.7",
	V2_0: "2.0",
}

var errVersion = errors.New("unsupported PDF version")

// ParseVersion converts a version string like "1.7" into a Version.
func ParseVersion(verString string) (Version, error) {
	for ver, name := range versionNames {
		if name != "" && name == verString {
			return Version(ver), nil
		}
	}
	return 0, errVersion
}

// ToString returns the version number used in the file header, e.g. "1.7".
func (ver Version) ToString() (string, error) {
	if ver == 0 {
		ver = DefaultVersion
	}
	if ver < V1_0 || int(ver) >= len(versionNames) {
		return "", errVersion
	}
	return versionNames[ver], nil
}

func (ver Version) String() string {
	s, err := ver.ToString()
	if err != nil {
		return "pdfwrite.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return s
}

// binaryMarker is the comment line following the header.  The four bytes
// with the high bit set indicate that the file contains binary data.
const binaryMarker = "%\x80\x81\x82\x83\n"

// header returns the first two lines of a PDF file of this version.
func (ver Version) header() ([]byte, error) {
	s, err := ver.ToString()
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return []byte("%PDF-" + s + "\n" + binaryMarker), nil
}
