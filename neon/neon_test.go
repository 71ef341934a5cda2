package neon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVld1qOffset(t *testing.T) {
	var buf [20]uint16
	for i := range buf {
		buf[i] = uint16(100 + i)
	}

	v := Vld1qU16((*[8]uint16)(buf[3:]))
	want := [8]uint16{103, 104, 105, 106, 107, 108, 109, 110}
	if got := v.Lanes(); got != want {
		t.Errorf("Vld1qU16 = %v, want %v", got, want)
	}

	Vst1qU16((*[8]uint16)(buf[11:]), v)
	if diff := cmp.Diff(want[:], buf[11:19]); diff != "" {
		t.Errorf("Vst1qU16 (-want +got):\n%s", diff)
	}
	if buf[10] != 110 || buf[19] != 119 {
		t.Errorf("store touched neighbours: buf[10]=%d buf[19]=%d", buf[10], buf[19])
	}
}

func TestVld1DRegisters(t *testing.T) {
	src := [2]float32{1.5, -2}
	if got := Vld1F32(&src).Lanes(); got != src {
		t.Errorf("Vld1F32 = %v", got)
	}

	x := int64(-9)
	if got := Vld1S64(&x).Lanes(); got != [1]int64{-9} {
		t.Errorf("Vld1S64 = %v", got)
	}

	var out float64
	Vst1F64(&out, Vld1F64(&[]float64{3.25}[0]))
	if out != 3.25 {
		t.Errorf("Vst1F64 stored %v", out)
	}
}

func TestVld1X(t *testing.T) {
	src := [3][16]uint8{}
	for r := range src {
		for i := range src[r] {
			src[r][i] = uint8(r*16 + i)
		}
	}
	v := Vld1qU8X3(&src)
	for r := range 3 {
		if got := v[r].Lanes(); got != src[r] {
			t.Errorf("register %d = %v, want %v", r, got, src[r])
		}
	}

	var dst [3][16]uint8
	Vst1qU8X3(&dst, v)
	if dst != src {
		t.Errorf("Vst1qU8X3 = %v", dst)
	}

	pair := [2]uint64{7, 8}
	p := Vld1U64X2(&pair)
	if p[0].Lanes() != [1]uint64{7} || p[1].Lanes() != [1]uint64{8} {
		t.Errorf("Vld1U64X2 = %v %v", p[0].Lanes(), p[1].Lanes())
	}
}

func TestVld2qDeinterleave(t *testing.T) {
	// x0 y0 x1 y1 ...
	var src [16]int16
	for i := range 8 {
		src[2*i] = int16(i)
		src[2*i+1] = int16(-i)
	}
	v := Vld2qS16(&src)
	wantX := [8]int16{0, 1, 2, 3, 4, 5, 6, 7}
	wantY := [8]int16{0, -1, -2, -3, -4, -5, -6, -7}
	if got := v[0].Lanes(); got != wantX {
		t.Errorf("register 0 = %v, want %v", got, wantX)
	}
	if got := v[1].Lanes(); got != wantY {
		t.Errorf("register 1 = %v, want %v", got, wantY)
	}

	var dst [16]int16
	Vst2qS16(&dst, v)
	if dst != src {
		t.Errorf("Vst2qS16 = %v, want %v", dst, src)
	}
}

func TestVld3qVld4q(t *testing.T) {
	var rgb [48]uint8
	for i := range 16 {
		rgb[3*i] = uint8(i)
		rgb[3*i+1] = uint8(100 + i)
		rgb[3*i+2] = uint8(200 + i)
	}
	v := Vld3qU8(&rgb)
	for c, base := range []uint8{0, 100, 200} {
		lanes := v[c].Lanes()
		for i := range lanes {
			if lanes[i] != base+uint8(i) {
				t.Fatalf("channel %d lane %d = %d, want %d", c, i, lanes[i], base+uint8(i))
			}
		}
	}
	var back [48]uint8
	Vst3qU8(&back, v)
	if back != rgb {
		t.Errorf("Vst3qU8 did not restore the input")
	}

	quads := [8]float64{1, 2, 3, 4, 5, 6, 7, 8}
	q := Vld4qF64(&quads)
	want := [4][2]float64{{1, 5}, {2, 6}, {3, 7}, {4, 8}}
	for r := range 4 {
		if got := q[r].Lanes(); got != want[r] {
			t.Errorf("Vld4qF64 register %d = %v, want %v", r, got, want[r])
		}
	}
	var out [8]float64
	Vst4qF64(&out, q)
	if out != quads {
		t.Errorf("Vst4qF64 = %v", out)
	}
}

func TestDup(t *testing.T) {
	x := uint32(0xabcd)
	if got := Vld1qDupU32(&x).Lanes(); got != [4]uint32{0xabcd, 0xabcd, 0xabcd, 0xabcd} {
		t.Errorf("Vld1qDupU32 = %x", got)
	}

	pair := [2]float32{1, 2}
	v := Vld2DupF32(&pair)
	if v[0].Lanes() != [2]float32{1, 1} || v[1].Lanes() != [2]float32{2, 2} {
		t.Errorf("Vld2DupF32 = %v %v", v[0].Lanes(), v[1].Lanes())
	}

	four := [4]int8{1, -1, 2, -2}
	w := Vld4qDupS8(&four)
	for r := range 4 {
		lanes := w[r].Lanes()
		for i := range lanes {
			if lanes[i] != four[r] {
				t.Fatalf("Vld4qDupS8 register %d lane %d = %d, want %d", r, i, lanes[i], four[r])
			}
		}
	}
}

func TestQAndDPairAgree(t *testing.T) {
	// Four uint32 values load the same bytes as a Q register and as a pair
	// of D registers.
	buf := [16]uint32{}
	for i := range buf {
		buf[i] = uint32(i)
	}
	q := Vld1qU32((*[4]uint32)(buf[4:8]))
	d := Vld1U32X2(&[2][2]uint32{{4, 5}, {6, 7}})
	if q != Uint32x4(*(*[16]byte)(bytesOf(&d))) {
		t.Errorf("Q load %v differs from D pair %v %v", q.Lanes(), d[0].Lanes(), d[1].Lanes())
	}
}
