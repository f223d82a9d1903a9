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

// Document is an in-memory collection of indirect objects, which can be
// written to a PDF file.
//
// Objects are numbered densely, starting from 1.  Object numbers are
// either allocated using [Document.Alloc] or [Document.Add], or chosen by
// the caller when using [Document.Put].  When the document is written, the
// objects appear in the file in order of increasing object number.
//
// A Document must not be modified while it is being written.
type Document struct {
	// Version is the PDF version given in the file header.
	// The zero value means PDF 1.7.
	Version Version

	objects map[uint32]Object
	last    uint32 // highest object number in use

	root Reference
	info Reference
}

// IndirectObject is an object stored in a [Document], together with the
// reference used to refer to it.
type IndirectObject struct {
	Ref Reference
	Obj Object
}

// NewDocument returns a new, empty document for the given PDF version.
// The zero value of Document is also ready to use.
func NewDocument(ver Version) *Document {
	return &Document{Version: ver}
}

// Alloc allocates an object number for an indirect object.  The object
// itself must be stored using [Document.Put] before the document is
// written.
func (doc *Document) Alloc() Reference {
	doc.last++
	return NewReference(doc.last, 0)
}

// Add stores obj under a newly allocated object number and returns the
// reference to the new object.
func (doc *Document) Add(obj Object) Reference {
	ref := doc.Alloc()
	doc.store(ref.Number(), obj)
	return ref
}

// Put stores obj under the given reference.  The reference can either be
// obtained from [Document.Alloc], or can be constructed by the caller
// using [NewReference].  A nil obj is written as the null object.
func (doc *Document) Put(ref Reference, obj Object) error {
	num := ref.Number()
	if num == 0 {
		return &DocumentError{Err: ErrReservedObject}
	}
	if ref.Generation() != 0 || ref>>48 != 0 {
		return &DocumentError{Number: num, Err: ErrGeneration}
	}
	if _, seen := doc.objects[num]; seen {
		return &DocumentError{Number: num, Err: ErrDuplicateObject}
	}

	doc.store(num, obj)
	if num > doc.last {
		doc.last = num
	}
	return nil
}

func (doc *Document) store(num uint32, obj Object) {
	if doc.objects == nil {
		doc.objects = make(map[uint32]Object)
	}
	doc.objects[num] = obj
}

// SetRoot sets the document catalog, which is listed as /Root in the
// trailer.  If SetRoot is not called, object 1 is used.
func (doc *Document) SetRoot(ref Reference) {
	doc.root = ref
}

// SetInfo sets the document information dictionary, which is listed as
// /Info in the trailer.  By default, the trailer has no /Info entry.
func (doc *Document) SetInfo(ref Reference) {
	doc.info = ref
}

// Root returns the reference which is used as /Root in the trailer.
func (doc *Document) Root() Reference {
	if doc.root == 0 {
		return NewReference(1, 0)
	}
	return doc.root
}

// Len returns the number of object numbers in use, including object numbers
// which have been allocated but not yet stored.
func (doc *Document) Len() int {
	return int(doc.last)
}

// Get returns the object stored under the given reference, and whether an
// object was stored there.
func (doc *Document) Get(ref Reference) (Object, bool) {
	if ref.Generation() != 0 {
		return nil, false
	}
	obj, ok := doc.objects[ref.Number()]
	return obj, ok
}

// Objects returns the objects of the document in the order in which they
// will be written.
func (doc *Document) Objects() []IndirectObject {
	res := make([]IndirectObject, 0, len(doc.objects))
	for num := uint32(1); num <= doc.last; num++ {
		obj, ok := doc.objects[num]
		if !ok {
			continue
		}
		res = append(res, IndirectObject{Ref: NewReference(num, 0), Obj: obj})
	}
	return res
}

// Validate checks that the document can be written.  The object numbers must
// be 1, ..., N without gaps, and the root and information dictionary
// references must refer to non-null objects in the document.
func (doc *Document) Validate() error {
	if _, err := doc.Version.header(); err != nil {
		return err
	}
	if len(doc.objects) == 0 {
		return &DocumentError{Err: ErrEmptyDocument}
	}
	for num := uint32(1); num <= doc.last; num++ {
		if _, ok := doc.objects[num]; !ok {
			return &DocumentError{Number: num, Err: ErrMissingObject}
		}
	}

	root := doc.Root()
	if obj, ok := doc.Get(root); !ok || isNull(obj) {
		return &DocumentError{Number: root.Number(), Err: ErrMissingRoot}
	}
	if doc.info != 0 {
		if obj, ok := doc.Get(doc.info); !ok || isNull(obj) {
			return &DocumentError{Number: doc.info.Number(), Err: ErrMissingInfo}
		}
	}
	return nil
}
