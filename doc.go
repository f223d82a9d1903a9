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

// Package pdfwrite writes PDF files.
//
// This package treats a PDF file as a sequence of numbered indirect objects
// (typically dictionaries and streams), followed by a cross-reference table
// which lists the byte offset of every object, and a trailer which names
// the document catalog.  Objects are collected in a [Document] and are then
// written sequentially through a [PosWriter], which records the byte offset
// of every object.  The recorded offsets are used to generate the
// cross-reference table.
//
// A minimal document consists of a catalog and an empty page tree:
//
//	doc := pdfwrite.NewDocument(pdfwrite.V1_7)
//	catalog := doc.Alloc()
//	pages := doc.Alloc()
//	doc.Put(catalog, pdfwrite.Dict{
//	    "Type":  pdfwrite.Name("Catalog"),
//	    "Pages": pages,
//	})
//	doc.Put(pages, pdfwrite.Dict{
//	    "Type":  pdfwrite.Name("Pages"),
//	    "Kids":  pdfwrite.Array{},
//	    "Count": pdfwrite.Integer(0),
//	})
//	err := doc.WriteFile("out.pdf")
//
// The /Length of a [Stream] is always computed from the stream data.
// Reading PDF files, compression filters, font embedding and incremental
// updates are not supported.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
package pdfwrite
