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

package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromBuildInfo(t *testing.T) {
	const path = "seehuhn.de/go/pdfwrite"
	cases := []struct {
		version  string
		settings []debug.BuildSetting
		want     Module
		describe string
	}{
		{"v0.1.0", nil, Module{path, "v0.1.0"}, "tool (seehuhn.de/go/pdfwrite v0.1.0)"},
		{"(devel)", nil, Module{path, ""}, "tool"},
		{"(devel)", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		}, Module{path, "01234567"}, "tool (seehuhn.de/go/pdfwrite 01234567)"},
		{"", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
		}, Module{path, "abc+dirty"}, "tool (seehuhn.de/go/pdfwrite abc+dirty)"},
	}
	for _, test := range cases {
		info := &debug.BuildInfo{
			Main:     debug.Module{Path: path, Version: test.version},
			Settings: test.settings,
		}
		m := fromBuildInfo(info)
		if d := cmp.Diff(test.want, m); d != "" {
			t.Errorf("wrong module (-want +got):\n%s", d)
		}
		if s := m.Describe("tool"); s != test.describe {
			t.Errorf("wrong description %q != %q", s, test.describe)
		}
	}
}
