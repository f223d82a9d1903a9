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

// Pdf-minimal writes a single-page PDF file showing one line of text.
//
// Usage:
//
//	pdf-minimal [-o out.pdf] [-f] [-title T] [-text T] [-xmp] [-pdf 1.7]
//
// With -o - (the default) the file is written to standard output.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfwrite"
	"seehuhn.de/go/pdfwrite/internal/buildinfo"
)

var errTerminal = errors.New("refusing to write PDF data to a terminal")

type options struct {
	out     string
	force   bool
	title   string
	text    string
	xmp     bool
	version pdfwrite.Version
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdf-minimal: ")

	out := flag.String("o", "-", "output file name, or - for standard output")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	title := flag.String("title", "", "document title")
	text := flag.String("text", "Hello!", "text to show on the page")
	withXMP := flag.Bool("xmp", false, "include an XMP metadata stream")
	pdfVersion := flag.String("pdf", "1.7", "PDF version for the file header")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Main().Describe("pdf-minimal"))
		return
	}

	ver, err := pdfwrite.ParseVersion(*pdfVersion)
	if err != nil {
		log.Fatalf("invalid PDF version %q", *pdfVersion)
	}

	opt := &options{
		out:     *out,
		force:   *force,
		title:   *title,
		text:    *text,
		xmp:     *withXMP,
		version: ver,
	}
	err = run(opt)
	if err != nil {
		log.Fatal(err)
	}
}

func run(opt *options) error {
	doc, err := buildDocument(opt, time.Now())
	if err != nil {
		return err
	}

	if opt.out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		buf := bufio.NewWriter(os.Stdout)
		_, err = doc.WriteTo(buf)
		if err != nil {
			return err
		}
		return buf.Flush()
	}

	if !opt.force {
		_, err := os.Stat(opt.out)
		if err == nil {
			return fmt.Errorf("output file %q already exists", opt.out)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return doc.WriteFile(opt.out)
}

// letter is the US Letter paper size, in PDF units.
var letter = rect.Rect{LLx: 0, LLy: 0, URx: 612, URy: 792}

func buildDocument(opt *options, now time.Time) (*pdfwrite.Document, error) {
	doc := pdfwrite.NewDocument(opt.version)

	catalogRef := doc.Alloc()
	pagesRef := doc.Alloc()

	font := doc.Add(pdfwrite.Dict{
		"Type":     pdfwrite.Name("Font"),
		"Subtype":  pdfwrite.Name("Type1"),
		"BaseFont": pdfwrite.Name("Helvetica"),
		"Encoding": pdfwrite.Name("WinAnsiEncoding"),
	})

	content := &bytes.Buffer{}
	fmt.Fprintf(content, "BT\n/F1 24 Tf\n72 %g Td\n", letter.URy-96)
	err := pdfwrite.String(opt.text).PDF(content)
	if err != nil {
		return nil, err
	}
	content.WriteString(" Tj\nET\n")
	stream, err := pdfwrite.NewStream(nil, content)
	if err != nil {
		return nil, err
	}
	contentRef := doc.Add(stream)

	page := doc.Add(pdfwrite.Dict{
		"Type":     pdfwrite.Name("Page"),
		"Parent":   pagesRef,
		"MediaBox": mediaBox(letter),
		"Resources": pdfwrite.Dict{
			"Font": pdfwrite.Dict{"F1": font},
		},
		"Contents": contentRef,
	})

	catalog := pdfwrite.Dict{
		"Type":  pdfwrite.Name("Catalog"),
		"Pages": pagesRef,
	}
	if opt.xmp {
		ref, err := addMetadata(doc, opt.title, now)
		if err != nil {
			return nil, err
		}
		catalog["Metadata"] = ref
	}

	err = doc.Put(catalogRef, catalog)
	if err != nil {
		return nil, err
	}
	err = doc.Put(pagesRef, pdfwrite.Dict{
		"Type":  pdfwrite.Name("Pages"),
		"Kids":  pdfwrite.Array{page},
		"Count": pdfwrite.Integer(1),
	})
	if err != nil {
		return nil, err
	}

	doc.AddInfo(&pdfwrite.Info{
		Title:        opt.title,
		Producer:     buildinfo.Main().Describe("pdf-minimal"),
		CreationDate: now,
	})

	return doc, nil
}

func mediaBox(r rect.Rect) pdfwrite.Array {
	return pdfwrite.Array{
		pdfwrite.Real(r.LLx), pdfwrite.Real(r.LLy),
		pdfwrite.Real(r.URx), pdfwrite.Real(r.URy),
	}
}

// addMetadata stores an XMP metadata stream for the document.
func addMetadata(doc *pdfwrite.Document, title string, now time.Time) (pdfwrite.Reference, error) {
	dc := &xmp.DublinCore{}
	if title != "" {
		dc.Title.Set(language.MustParse("x-default"), title)
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)

	packet := xmp.NewPacket()
	packet.Set(dc, basic)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return 0, err
	}

	ref := doc.Add(&pdfwrite.Stream{
		Dict: pdfwrite.Dict{
			"Type":    pdfwrite.Name("Metadata"),
			"Subtype": pdfwrite.Name("XML"),
		},
		Data: buf.Bytes(),
	})
	return ref, nil
}
