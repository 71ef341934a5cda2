package cell

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-unaligned/width"
	"github.com/ajroetker/go-unaligned/x86"
)

func TestShiftRightByOne(t *testing.T) {
	buf := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}
	cells := width.CellsOf(buf)

	src := (*[8]width.Cell[uint16])(cells[0:8])
	dst := (*[8]width.Cell[uint16])(cells[1:9])
	StoreuSi128(dst, LoaduSi128(src))

	want := []uint16{0, 0, 1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("shift mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftLeftByOne(t *testing.T) {
	buf := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}
	cells := width.CellsOf(buf)

	StoreuSi128((*[8]width.Cell[uint16])(cells[0:8]), LoaduSi128((*[8]width.Cell[uint16])(cells[1:9])))

	want := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 8}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("shift mismatch (-want +got):\n%s", diff)
	}
}

func TestCellOfArray(t *testing.T) {
	var c width.Cell[[16]uint8]
	c.Set([16]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})

	v := LoaduSi128(&c)
	if got := x86.As128[[16]uint8](v); got != c.Get() {
		t.Errorf("LoaduSi128 = %v, want %v", got, c.Get())
	}

	var out width.Cell[[2]uint64]
	StoreuSi128(&out, v)
	if got := out.Get(); got != x86.As128[[2]uint64](v) {
		t.Errorf("StoreuSi128 into Cell[[2]uint64] = %x", got)
	}
}

func TestNarrowWidths(t *testing.T) {
	buf := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	cells := width.CellsOf(buf)

	StoreuSi16((*[2]width.Cell[uint8])(cells[1:3]), LoaduSi16((*[2]width.Cell[uint8])(cells[0:2])))
	if diff := cmp.Diff([]uint8{1, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11}, buf); diff != "" {
		t.Errorf("si16 (-want +got):\n%s", diff)
	}

	StoreuSi32((*[4]width.Cell[uint8])(cells[2:6]), LoaduSi32((*[4]width.Cell[uint8])(cells[0:4])))
	if diff := cmp.Diff([]uint8{1, 1, 1, 1, 2, 4, 7, 8, 9, 10, 11}, buf); diff != "" {
		t.Errorf("si32 (-want +got):\n%s", diff)
	}

	StoreuSi64((*[8]width.Cell[uint8])(cells[3:11]), LoaduSi64((*[8]width.Cell[uint8])(cells[0:8])))
	if diff := cmp.Diff([]uint8{1, 1, 1, 1, 1, 1, 1, 2, 4, 7, 8}, buf); diff != "" {
		t.Errorf("si64 (-want +got):\n%s", diff)
	}

	var u width.Cell[uint32]
	u.Set(0xdeadbeef)
	if got := x86.As128[[4]uint32](LoaduSi32(&u)); got != [4]uint32{0xdeadbeef} {
		t.Errorf("LoaduSi32(Cell[uint32]) = %x", got)
	}
}

func TestLoadlStorel(t *testing.T) {
	buf := []uint64{1, 2, 3}
	cells := width.CellsOf(buf)

	v := LoadlEpi64((*[2]width.Cell[uint64])(cells[1:3]))
	if got := x86.As128[[2]uint64](v); got != [2]uint64{2, 0} {
		t.Errorf("LoadlEpi64 = %v", got)
	}
	StorelEpi64((*[2]width.Cell[uint64])(cells[0:2]), v)
	if diff := cmp.Diff([]uint64{2, 2, 3}, buf); diff != "" {
		t.Errorf("StorelEpi64 (-want +got):\n%s", diff)
	}
}

func TestShift256(t *testing.T) {
	buf := make([]uint32, 10)
	for i := range buf {
		buf[i] = uint32(i)
	}
	cells := width.CellsOf(buf)

	StoreuSi256((*[8]width.Cell[uint32])(cells[2:10]), LoaduSi256((*[8]width.Cell[uint32])(cells[0:8])))

	want := []uint32{0, 1, 0, 1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadu2Overlapping(t *testing.T) {
	buf := make([]uint8, 24)
	for i := range buf {
		buf[i] = uint8(i)
	}
	cells := width.CellsOf(buf)
	lo := (*[16]width.Cell[uint8])(cells[0:16])
	hi := (*[16]width.Cell[uint8])(cells[8:24])

	v := Loadu2M128i(hi, lo)
	got := x86.As256[[32]uint8](v)
	for i := range 16 {
		if got[i] != uint8(i) || got[16+i] != uint8(8+i) {
			t.Fatalf("Loadu2M128i = %v", got)
		}
	}

	Storeu2M128i(lo, hi, v)
	// cells[8:24] takes the low half, then cells[0:16] takes the high half.
	for i := range 16 {
		if buf[i] != uint8(8+i) {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], 8+i)
		}
	}
	for i := 16; i < 24; i++ {
		if buf[i] != uint8(i-8) {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], i-8)
		}
	}
}

func TestShift512(t *testing.T) {
	buf := make([]uint64, 9)
	for i := range buf {
		buf[i] = uint64(i) * 10
	}
	cells := width.CellsOf(buf)
	StoreuSi512((*[8]width.Cell[uint64])(cells[1:9]), LoaduSi512((*[8]width.Cell[uint64])(cells[0:8])))

	want := []uint64{0, 0, 10, 20, 30, 40, 50, 60, 70}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
