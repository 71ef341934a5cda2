package width

import (
	"testing"
	"unsafe"
)

// sizeOfCell128 only compiles for members of Cells128.
func sizeOfCell128[T Cells128](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func sizeOfCell256[T Cells256](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func sizeOfCell64[T Cells64](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func sizeOfCell32[T Cells32](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func sizeOfCell16[T Cells16](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func sizeOfBits128[T Bits128](p *T) uintptr {
	return unsafe.Sizeof(*p)
}

func TestCellShapesInstantiate(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"[8]Cell[uint16]", sizeOfCell128(&[8]Cell[uint16]{}), 16},
		{"Cell[[8]uint16]", sizeOfCell128(&Cell[[8]uint16]{}), 16},
		{"[4]Cell[float32]", sizeOfCell128(&[4]Cell[float32]{}), 16},
		{"Cell[[2]float64]", sizeOfCell128(&Cell[[2]float64]{}), 16},
		{"[32]Cell[int8]", sizeOfCell256(&[32]Cell[int8]{}), 32},
		{"Cell[[4]uint64]", sizeOfCell256(&Cell[[4]uint64]{}), 32},
		{"[1]Cell[uint64]", sizeOfCell64(&[1]Cell[uint64]{}), 8},
		{"Cell[int64]", sizeOfCell64(&Cell[int64]{}), 8},
		{"Cell[float64]", sizeOfCell64(&Cell[float64]{}), 8},
		{"[2]Cell[float32]", sizeOfCell64(&[2]Cell[float32]{}), 8},
		{"Cell[float32]", sizeOfCell32(&Cell[float32]{}), 4},
		{"[2]Cell[uint16]", sizeOfCell32(&[2]Cell[uint16]{}), 4},
		{"Cell[uint16]", sizeOfCell16(&Cell[uint16]{}), 2},
		{"[16]uint8", sizeOfBits128(&[16]uint8{}), 16},
		{"[4]float32", sizeOfBits128(&[4]float32{}), 16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: size %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestCellAccess(t *testing.T) {
	var c Cell[[4]uint32]
	c.Set([4]uint32{1, 2, 3, 4})
	if got := c.Get(); got != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Get() = %v", got)
	}
	old := c.Swap([4]uint32{5, 6, 7, 8})
	if old != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Swap() returned %v", old)
	}
	if got := c.Get(); got != [4]uint32{5, 6, 7, 8} {
		t.Errorf("Get() after Swap = %v", got)
	}
}

func TestCellOfAliases(t *testing.T) {
	v := uint64(7)
	c := CellOf(&v)
	c.Set(42)
	if v != 42 {
		t.Errorf("write through cell not visible: v = %d", v)
	}
}

func TestCellsOfOverlappingWindows(t *testing.T) {
	buf := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}
	cells := CellsOf(buf)
	if len(cells) != len(buf) {
		t.Fatalf("len = %d, want %d", len(cells), len(buf))
	}

	lo := (*[8]Cell[uint16])(cells[0:8])
	hi := (*[8]Cell[uint16])(cells[1:9])
	if unsafe.Pointer(&lo[1]) != unsafe.Pointer(&hi[0]) {
		t.Fatal("windows do not overlap")
	}

	hi[0].Set(100)
	if got := lo[1].Get(); got != 100 {
		t.Errorf("lo[1] = %d, want 100", got)
	}
	if buf[1] != 100 {
		t.Errorf("buf[1] = %d, want 100", buf[1])
	}

	got := Values(cells)
	want := []uint16{0, 100, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if CellsOf[uint16](nil) != nil {
		t.Error("CellsOf(nil) should be nil")
	}
}
