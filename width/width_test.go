package width

import (
	"errors"
	"reflect"
	"testing"
)

func TestEntrySizes(t *testing.T) {
	all := Entries()
	if len(all) == 0 {
		t.Fatal("no certified types")
	}
	for _, e := range all {
		if got := int(e.Type.Size()); got != e.Width.Bytes() {
			t.Errorf("%v: size %d, certified for %v (%d bytes)", e.Type, got, e.Width, e.Width.Bytes())
		}
	}
}

func TestEntriesPerWidth(t *testing.T) {
	// plain members per width, cells are derived from these
	tests := []struct {
		w     Width
		plain int
		cells int
	}{
		{W8, 4, 6},
		{W16, 6, 10},
		{W32, 10, 17},
		{W64, 13, 23},
		{W128, 10, 20},
		{W256, 10, 20},
		{W512, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.w.String(), func(t *testing.T) {
			var plain, cells int
			for _, e := range EntriesFor(tt.w) {
				if e.Form.IsCell() {
					cells++
				} else {
					plain++
				}
			}
			if plain != tt.plain {
				t.Errorf("plain members: got %d, want %d", plain, tt.plain)
			}
			if cells != tt.cells {
				t.Errorf("cell members: got %d, want %d", cells, tt.cells)
			}
		})
	}
}

func TestEntryKinds(t *testing.T) {
	for _, e := range Entries() {
		elem := e.Type
		for elem.Kind() == reflect.Array {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			// Cell[E] or Cell[[N]E]
			elem = elem.Field(0).Type
			for elem.Kind() == reflect.Array {
				elem = elem.Elem()
			}
		}
		isFloat := elem.Kind() == reflect.Float32 || elem.Kind() == reflect.Float64
		if isFloat != (e.Kind == KindFloat) {
			t.Errorf("%v: kind %v does not match element %v", e.Type, e.Kind, elem)
		}
	}
}

func TestNoNestedCells(t *testing.T) {
	for _, e := range Entries() {
		if !e.Form.IsCell() {
			continue
		}
		var inner reflect.Type
		switch e.Form {
		case FormArrayOfCells:
			inner = e.Type.Elem().Field(0).Type
		case FormCellOfArray, FormCellOfScalar:
			inner = e.Type.Field(0).Type
		}
		for inner.Kind() == reflect.Array {
			inner = inner.Elem()
		}
		if inner.Kind() == reflect.Struct {
			t.Errorf("%v wraps more than one cell layer", e.Type)
		}
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		w    Width
		bits int
		name string
	}{
		{W8, 8, "8bit"},
		{W16, 16, "16bit"},
		{W32, 32, "32bit"},
		{W64, 64, "64bit"},
		{W128, 128, "128bit"},
		{W256, 256, "256bit"},
		{W512, 512, "512bit"},
	}
	for _, tt := range tests {
		if got := tt.w.Bits(); got != tt.bits {
			t.Errorf("%v.Bits() = %d, want %d", tt.w, got, tt.bits)
		}
		if got := tt.w.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		w, ok := ForBytes(tt.w.Bytes())
		if !ok || w != tt.w {
			t.Errorf("ForBytes(%d) = %v, %v", tt.w.Bytes(), w, ok)
		}
	}

	if _, ok := ForBytes(3); ok {
		t.Error("ForBytes(3) should fail")
	}
	if got := Width(3).String(); got != "Width(3)" {
		t.Errorf("Width(3).String() = %q", got)
	}
	if len(Widths()) != 7 {
		t.Errorf("Widths() = %v", Widths())
	}
}

type block [16]byte

type lane uint16

type notCertified struct {
	lo, hi uint64
}

func TestCheck(t *testing.T) {
	if err := Check[[16]uint8](W128); err != nil {
		t.Errorf("[16]uint8: %v", err)
	}
	if err := Check[[8]Cell[uint16]](W128); err != nil {
		t.Errorf("[8]Cell[uint16]: %v", err)
	}
	if err := Check[Cell[[4]float32]](W128); err != nil {
		t.Errorf("Cell[[4]float32]: %v", err)
	}
	if err := Check[block](W128); err != nil {
		t.Errorf("named [16]byte: %v", err)
	}
	if err := Check[lane](W16); err != nil {
		t.Errorf("named uint16: %v", err)
	}

	err := Check[[8]uint8](W128)
	if !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("[8]uint8 as 128bit: got %v, want ErrWidthMismatch", err)
	}
	err = Check[notCertified](W128)
	if !errors.Is(err, ErrNotCertified) {
		t.Errorf("struct: got %v, want ErrNotCertified", err)
	}
	err = Check[int](W64)
	if !errors.Is(err, ErrNotCertified) {
		t.Errorf("int: got %v, want ErrNotCertified", err)
	}
	err = Check[Cell[Cell[[16]uint8]]](W128)
	if !errors.Is(err, ErrNotCertified) {
		t.Errorf("nested cell: got %v, want ErrNotCertified", err)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(reflect.TypeFor[[2]Cell[uint64]]())
	if !ok {
		t.Fatal("[2]Cell[uint64] not found")
	}
	if e.Width != W128 || e.Form != FormArrayOfCells || e.Kind != KindInt {
		t.Errorf("got %+v", e)
	}
	if _, ok := Lookup(nil); ok {
		t.Error("Lookup(nil) should fail")
	}
}
