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

// Package buildinfo reports version information for the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Module describes the main module of a binary.
type Module struct {
	Path string

	// Version is the module version, or an abbreviated VCS revision for
	// development builds.  It is empty if nothing is known.
	Version string
}

// Main returns information about the main module of the running binary.
func Main() Module {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Module{}
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Module {
	m := Module{Path: info.Main.Path}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		m.Version = v
		return m
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	rev := settings["vcs.revision"]
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && settings["vcs.modified"] == "true" {
		rev += "+dirty"
	}
	m.Version = rev
	return m
}

// Describe returns a version string for a tool, e.g.
// "pdf-minimal (seehuhn.de/go/pdfwrite v0.1.0)".
func (m Module) Describe(toolName string) string {
	if m.Version == "" {
		return toolName
	}
	return toolName + " (" + m.Path + " " + m.Version + ")"
}
