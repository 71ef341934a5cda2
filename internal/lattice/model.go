// Copyright 2025 go-unaligned Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lattice models the width-capability families and emits the Go
// source that declares them. It is the single source of the eligible type
// lists: width/families_gen.go and the neon register and wrapper files are
// all produced from the tables here by cmd/widthgen.
package lattice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSizeMismatch reports a shape whose size differs from its family width.
	ErrSizeMismatch = errors.New("lattice: size mismatch")

	// ErrNestedCell reports an attempt to wrap an already cell-wrapped family.
	ErrNestedCell = errors.New("lattice: family already wraps cells")
)

// Elem is a primitive element type eligible for certification.
type Elem struct {
	Name  string // Go type name: "uint8"
	Size  int    // bytes
	Float bool
	Short string // NEON suffix: "U8", "S8", "F32"
	Stem  string // register stem: "Uint8", "Float32"
}

// Elems lists the eligible element types in emission order. Platform sized
// integers are excluded as their size is not fixed across targets.
var Elems = []Elem{
	{Name: "uint8", Size: 1, Short: "U8", Stem: "Uint8"},
	{Name: "int8", Size: 1, Short: "S8", Stem: "Int8"},
	{Name: "uint16", Size: 2, Short: "U16", Stem: "Uint16"},
	{Name: "int16", Size: 2, Short: "S16", Stem: "Int16"},
	{Name: "uint32", Size: 4, Short: "U32", Stem: "Uint32"},
	{Name: "int32", Size: 4, Short: "S32", Stem: "Int32"},
	{Name: "uint64", Size: 8, Short: "U64", Stem: "Uint64"},
	{Name: "int64", Size: 8, Short: "S64", Stem: "Int64"},
	{Name: "float32", Size: 4, Float: true, Short: "F32", Stem: "Float32"},
	{Name: "float64", Size: 8, Float: true, Short: "F64", Stem: "Float64"},
}

// Bits lists the family widths in bits, narrowest first.
var Bits = []int{8, 16, 32, 64, 128, 256, 512}

// Kind separates integer families from floating-point families.
type Kind int

const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	if k == Float {
		return "Float"
	}
	return "Int"
}

// Form mirrors width.Form.
type Form int

const (
	Plain Form = iota
	ArrayOfCells
	CellOfArray
	CellOfScalar
)

// Const returns the name of the matching width.Form constant.
func (f Form) Const() string {
	switch f {
	case ArrayOfCells:
		return "FormArrayOfCells"
	case CellOfArray:
		return "FormCellOfArray"
	case CellOfScalar:
		return "FormCellOfScalar"
	default:
		return "FormPlain"
	}
}

// Shape is one member type of a family. Len == 0 means a bare scalar.
type Shape struct {
	Elem Elem
	Len  int
	Form Form
}

// Scalar reports whether the shape is a bare element or a cell around one.
func (s Shape) Scalar() bool {
	return s.Len == 0
}

// Size returns the byte size of the shape. Cells add nothing.
func (s Shape) Size() int {
	if s.Len == 0 {
		return s.Elem.Size
	}
	return s.Len * s.Elem.Size
}

// Term renders the shape as a union term. qual prefixes the Cell type name
// when emitting outside package width.
func (s Shape) Term(qual string) string {
	switch s.Form {
	case ArrayOfCells:
		return fmt.Sprintf("~[%d]%sCell[%s]", s.Len, qual, s.Elem.Name)
	case CellOfArray:
		return fmt.Sprintf("%sCell[[%d]%s]", qual, s.Len, s.Elem.Name)
	case CellOfScalar:
		return fmt.Sprintf("%sCell[%s]", qual, s.Elem.Name)
	}
	if s.Len == 0 {
		return "~" + s.Elem.Name
	}
	return fmt.Sprintf("~[%d]%s", s.Len, s.Elem.Name)
}

// Type renders the shape as a Go type expression.
func (s Shape) Type(qual string) string {
	return strings.TrimPrefix(s.Term(qual), "~")
}

// Zero renders a constant-sized zero value expression of the shape.
func (s Shape) Zero(qual string) string {
	if s.Form == Plain && s.Len == 0 {
		return s.Elem.Name + "(0)"
	}
	return s.Type(qual) + "{}"
}

// Family is one sealed constraint: a closed list of shapes of one width.
type Family struct {
	Name   string
	Bits   int
	Kind   Kind
	Cells  bool
	Shapes []Shape
}

// Bytes returns the width of the family in bytes.
func (f Family) Bytes() int {
	return f.Bits / 8
}

// Validate reports every shape whose size differs from the family width.
// It is the generation-time mirror of the size assertions emitted into the
// generated file.
func (f Family) Validate() error {
	var bad []string
	for _, s := range f.Shapes {
		if s.Size() != f.Bytes() {
			bad = append(bad, fmt.Sprintf("%s is %d bytes", s.Type(""), s.Size()))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%s (%d bytes): %w: %s", f.Name, f.Bytes(), ErrSizeMismatch, strings.Join(bad, ", "))
	}
	return nil
}

// PlainFamily builds the plain-data family of the given width and kind: for
// every element no wider than the family, the array filling the width, plus
// the bare element when it fills the width on its own.
func PlainFamily(bits int, kind Kind) Family {
	f := Family{Bits: bits, Kind: kind}
	if kind == Float {
		f.Name = fmt.Sprintf("Floats%d", bits)
	} else {
		f.Name = fmt.Sprintf("Ints%d", bits)
	}
	n := bits / 8
	for _, e := range Elems {
		if e.Float != (kind == Float) || e.Size > n {
			continue
		}
		f.Shapes = append(f.Shapes, Shape{Elem: e, Len: n / e.Size})
		if e.Size == n {
			f.Shapes = append(f.Shapes, Shape{Elem: e})
		}
	}
	return f
}

// CellFamily wraps every shape of a plain family in exactly one cell layer:
// [N]E yields [N]Cell[E] and Cell[[N]E], E yields Cell[E]. Wrapping an
// already wrapped family is rejected so the closure stops after one hop.
func CellFamily(plain Family) (Family, error) {
	if plain.Cells {
		return Family{}, fmt.Errorf("%s: %w", plain.Name, ErrNestedCell)
	}
	f := Family{Bits: plain.Bits, Kind: plain.Kind, Cells: true}
	if plain.Kind == Float {
		f.Name = fmt.Sprintf("FloatCells%d", plain.Bits)
	} else {
		f.Name = fmt.Sprintf("IntCells%d", plain.Bits)
	}
	for _, s := range plain.Shapes {
		if s.Form != Plain {
			return Family{}, fmt.Errorf("%s: %s: %w", plain.Name, s.Type(""), ErrNestedCell)
		}
		if s.Len == 0 {
			f.Shapes = append(f.Shapes, Shape{Elem: s.Elem, Form: CellOfScalar})
			continue
		}
		f.Shapes = append(f.Shapes,
			Shape{Elem: s.Elem, Len: s.Len, Form: ArrayOfCells},
			Shape{Elem: s.Elem, Len: s.Len, Form: CellOfArray},
		)
	}
	return f, nil
}

// Composite is a constraint that unions whole families of one width.
type Composite struct {
	Name  string
	Bits  int
	Cells bool
	Parts []string
}

// Level groups everything declared for one width.
type Level struct {
	Bits     int
	Plain    []Family
	Cells    []Family
	PlainAll Composite
	CellsAll Composite
}

// Lattice is the full set of families, narrowest width first.
type Lattice struct {
	Levels []Level
}

// Standard builds the lattice declared by package width.
func Standard() (*Lattice, error) {
	l := &Lattice{}
	for _, bits := range Bits {
		lv := Level{
			Bits:     bits,
			PlainAll: Composite{Name: fmt.Sprintf("Bits%d", bits), Bits: bits},
			CellsAll: Composite{Name: fmt.Sprintf("Cells%d", bits), Bits: bits, Cells: true},
		}
		for _, kind := range []Kind{Int, Float} {
			p := PlainFamily(bits, kind)
			if len(p.Shapes) == 0 {
				continue
			}
			c, err := CellFamily(p)
			if err != nil {
				return nil, err
			}
			lv.Plain = append(lv.Plain, p)
			lv.Cells = append(lv.Cells, c)
			lv.PlainAll.Parts = append(lv.PlainAll.Parts, p.Name)
			lv.CellsAll.Parts = append(lv.CellsAll.Parts, c.Name)
		}
		l.Levels = append(l.Levels, lv)
	}
	return l, l.Validate()
}

// Families returns every family in emission order.
func (l *Lattice) Families() []Family {
	var out []Family
	for _, lv := range l.Levels {
		out = append(out, lv.Plain...)
		out = append(out, lv.Cells...)
	}
	return out
}

// Validate checks every family and joins the failures.
func (l *Lattice) Validate() error {
	var errs []error
	for _, f := range l.Families() {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Family looks a family up by name.
func (l *Lattice) Family(name string) (Family, bool) {
	for _, f := range l.Families() {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}
