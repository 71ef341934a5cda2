package wasm128

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-unaligned/width"
)

func TestV128RoundTrip(t *testing.T) {
	buf := make([]uint8, 40)
	for i := range buf {
		buf[i] = uint8(i)
	}
	for _, off := range []int{0, 1, 7} {
		v := V128Load((*[16]uint8)(buf[off:]))
		for i, b := range v {
			if b != uint8(off+i) {
				t.Fatalf("offset %d: lane %d = %d", off, i, b)
			}
		}
		dst := make([]uint8, 20)
		V128Store((*[16]uint8)(dst[2:18]), v)
		if diff := cmp.Diff(buf[off:off+16], dst[2:18]); diff != "" {
			t.Errorf("offset %d (-want +got):\n%s", off, diff)
		}
		if dst[1] != 0 || dst[18] != 0 {
			t.Errorf("offset %d: store touched neighbours", off)
		}
	}
}

func TestCellsShareTheFamily(t *testing.T) {
	buf := []uint32{0, 1, 2, 3, 4}
	cells := width.CellsOf(buf)
	V128Store((*[4]width.Cell[uint32])(cells[1:5]), V128Load((*[4]width.Cell[uint32])(cells[0:4])))
	if diff := cmp.Diff([]uint32{0, 0, 1, 2, 3}, buf); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var c width.Cell[[2]float64]
	c.Set([2]float64{1.5, -2})
	if got := As[[2]float64](V128Load(&c)); got != c.Get() {
		t.Errorf("V128Load(Cell[[2]float64]) = %v", got)
	}
}

func TestSplatAndZero(t *testing.T) {
	b := uint8(0x5a)
	if got := As[[16]uint8](V128Load8Splat(&b)); got != [16]uint8{0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a, 0x5a} {
		t.Errorf("V128Load8Splat = %x", got)
	}

	h := [1]int16{-3}
	if got := As[[8]int16](V128Load16Splat(&h)); got != [8]int16{-3, -3, -3, -3, -3, -3, -3, -3} {
		t.Errorf("V128Load16Splat = %v", got)
	}

	var f width.Cell[float32]
	f.Set(2.5)
	if got := As[[4]float32](V128Load32Splat(&f)); got != [4]float32{2.5, 2.5, 2.5, 2.5} {
		t.Errorf("V128Load32Splat = %v", got)
	}
	if got := As[[4]float32](V128Load32Zero(&f)); got != [4]float32{2.5, 0, 0, 0} {
		t.Errorf("V128Load32Zero = %v", got)
	}

	q := [2]uint32{7, 9}
	if got := As[[4]uint32](V128Load64Splat(&q)); got != [4]uint32{7, 9, 7, 9} {
		t.Errorf("V128Load64Splat = %v", got)
	}
	if got := As[[4]uint32](V128Load64Zero(&q)); got != [4]uint32{7, 9, 0, 0} {
		t.Errorf("V128Load64Zero = %v", got)
	}
}

func TestLoadExtend(t *testing.T) {
	bytes := [8]uint8{0, 1, 0x7f, 0x80, 0xff, 2, 3, 4}
	if got := As[[8]int16](I16x8LoadExtendI8x8(&bytes)); got != [8]int16{0, 1, 127, -128, -1, 2, 3, 4} {
		t.Errorf("I16x8LoadExtendI8x8 = %v", got)
	}
	want := [8]uint16{0, 1, 0x7f, 0x80, 0xff, 2, 3, 4}
	if got := As[[8]uint16](I16x8LoadExtendU8x8(&bytes)); got != want {
		t.Errorf("I16x8LoadExtendU8x8 = %v", got)
	}
	if got := As[[8]uint16](U16x8LoadExtendU8x8(&bytes)); got != want {
		t.Errorf("U16x8LoadExtendU8x8 = %v", got)
	}

	halves := [4]int16{-1, 2, -32768, 32767}
	if got := As[[4]int32](I32x4LoadExtendI16x4(&halves)); got != [4]int32{-1, 2, -32768, 32767} {
		t.Errorf("I32x4LoadExtendI16x4 = %v", got)
	}
	if got := As[[4]uint32](I32x4LoadExtendU16x4(&halves)); got != [4]uint32{0xffff, 2, 0x8000, 0x7fff} {
		t.Errorf("I32x4LoadExtendU16x4 = %x", got)
	}
	if got := As[[4]uint32](U32x4LoadExtendU16x4(&halves)); got != [4]uint32{0xffff, 2, 0x8000, 0x7fff} {
		t.Errorf("U32x4LoadExtendU16x4 = %x", got)
	}

	var words width.Cell[[2]int32]
	words.Set([2]int32{-5, 6})
	if got := As[[2]int64](I64x2LoadExtendI32x2(&words)); got != [2]int64{-5, 6} {
		t.Errorf("I64x2LoadExtendI32x2 = %v", got)
	}
	if got := As[[2]uint64](I64x2LoadExtendU32x2(&words)); got != [2]uint64{0xfffffffb, 6} {
		t.Errorf("I64x2LoadExtendU32x2 = %x", got)
	}
	if got := As[[2]uint64](U64x2LoadExtendU32x2(&words)); got != [2]uint64{0xfffffffb, 6} {
		t.Errorf("U64x2LoadExtendU32x2 = %x", got)
	}
}

func TestFromAs(t *testing.T) {
	in := [4]int32{1, -2, 3, -4}
	v := From(in)
	if got := As[[4]int32](v); got != in {
		t.Errorf("As(From(%v)) = %v", in, got)
	}
}
