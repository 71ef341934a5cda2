package x86

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pattern(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i)*3
	}
	return out
}

// checkUntouched verifies that buf outside [off, off+n) is still zero.
func checkUntouched(t *testing.T, buf []byte, off, n int) {
	t.Helper()
	for i, b := range buf {
		if (i < off || i >= off+n) && b != 0 {
			t.Errorf("byte %d outside the %d byte window at %d was written: %#x", i, n, off, b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, off := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("si16/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := From128[M128i]([16]uint8(append(pattern(2, 0x11), make([]byte, 14)...)))
			p := (*[2]uint8)(buf[off : off+2])
			StoreuSi16(p, want)
			if got := LoaduSi16(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 2)
		})
		t.Run(fmt.Sprintf("si32/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := From128[M128i]([16]uint8(append(pattern(4, 0x21), make([]byte, 12)...)))
			p := (*[4]uint8)(buf[off : off+4])
			StoreuSi32(p, want)
			if got := LoaduSi32(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 4)
		})
		t.Run(fmt.Sprintf("si64/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := From128[M128i]([16]uint8(append(pattern(8, 0x31), make([]byte, 8)...)))
			p := (*[8]uint8)(buf[off : off+8])
			StoreuSi64(p, want)
			if got := LoaduSi64(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 8)
		})
		t.Run(fmt.Sprintf("si128/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := M128i(pattern(16, 0x41))
			p := (*[16]uint8)(buf[off : off+16])
			StoreuSi128(p, want)
			if got := LoaduSi128(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 16)
		})
		t.Run(fmt.Sprintf("si256/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := M256i(pattern(32, 0x51))
			p := (*[32]uint8)(buf[off : off+32])
			StoreuSi256(p, want)
			if got := LoaduSi256(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 32)
		})
		t.Run(fmt.Sprintf("si512/offset%d", off), func(t *testing.T) {
			buf := make([]byte, 80)
			want := M512i(pattern(64, 0x61))
			p := (*[64]uint8)(buf[off : off+64])
			StoreuSi512(p, want)
			if got := LoaduSi512(p); got != want {
				t.Errorf("offset %d: got %x, want %x", off, got, want)
			}
			checkUntouched(t, buf, off, 64)
		})
	}
}

func TestLoadFromOffsetBuffer(t *testing.T) {
	var src [9]uint8
	for i := range 8 {
		src[i+1] = uint8(i)
	}
	v := LoaduSi64((*[8]uint8)(src[1:]))

	got := As128[[16]uint8](v)
	want := [16]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	if got != want {
		t.Fatalf("LoaduSi64 = %v, want %v", got, want)
	}

	var dst [16]uint8
	StoreuSi64((*[8]uint8)(dst[5:13]), v)
	if diff := cmp.Diff(src[1:], dst[5:13]); diff != "" {
		t.Errorf("stored bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestShapesShareWidth(t *testing.T) {
	words := [8]uint16{0x0100, 0x0302, 0x0504, 0x0706, 0x0908, 0x0b0a, 0x0d0c, 0x0f0e}
	quads := [2]int64{}
	StoreuSi128(&quads, LoaduSi128(&words))
	if got := As128[[8]uint16](From128[M128i](quads)); got != words {
		t.Errorf("got %x, want %x", got, words)
	}
}

func TestLoadlStorel(t *testing.T) {
	src := [2]uint64{0x1122334455667788, 0x99aabbccddeeff00}
	v := LoadlEpi64(&src)
	if got := As128[[2]uint64](v); got != [2]uint64{src[0], 0} {
		t.Errorf("LoadlEpi64 = %x", got)
	}

	dst := [2]uint64{1, 2}
	StorelEpi64(&dst, From128[M128i]([2]uint64{7, 8}))
	if dst != [2]uint64{7, 2} {
		t.Errorf("StorelEpi64 wrote %v, want upper half untouched", dst)
	}
}

func TestFloatSSE(t *testing.T) {
	x := float32(1.5)
	if got := As128[[4]float32](Load1PS(&x)); got != [4]float32{1.5, 1.5, 1.5, 1.5} {
		t.Errorf("Load1PS = %v", got)
	}
	if LoadPS1(&x) != Load1PS(&x) {
		t.Error("LoadPS1 differs from Load1PS")
	}
	if got := As128[[4]float32](LoadSS(&x)); got != [4]float32{1.5, 0, 0, 0} {
		t.Errorf("LoadSS = %v", got)
	}

	arr := [4]float32{1, 2, 3, 4}
	v := LoaduPS(&arr)
	var out [4]float32
	StoreuPS(&out, v)
	if out != arr {
		t.Errorf("StoreuPS(LoaduPS) = %v", out)
	}

	var s float32
	StoreSS(&s, v)
	if s != 1 {
		t.Errorf("StoreSS = %v", s)
	}
}

func TestFloatSSE2(t *testing.T) {
	d := 2.25
	if got := As128[[2]float64](Load1PD(&d)); got != [2]float64{2.25, 2.25} {
		t.Errorf("Load1PD = %v", got)
	}
	if LoadPD1(&d) != Load1PD(&d) {
		t.Error("LoadPD1 differs from Load1PD")
	}
	if got := As128[[2]float64](LoadSD(&d)); got != [2]float64{2.25, 0} {
		t.Errorf("LoadSD = %v", got)
	}

	base := LoaduPD(&[2]float64{1, 2})
	hi, lo := 9.0, 8.0
	if got := As128[[2]float64](LoadhPD(base, &hi)); got != [2]float64{1, 9} {
		t.Errorf("LoadhPD = %v", got)
	}
	if got := As128[[2]float64](LoadlPD(base, &lo)); got != [2]float64{8, 2} {
		t.Errorf("LoadlPD = %v", got)
	}

	var h, l, s float64
	StorehPD(&h, base)
	StorelPD(&l, base)
	StoreSD(&s, base)
	if h != 2 || l != 1 || s != 1 {
		t.Errorf("StorehPD/StorelPD/StoreSD = %v %v %v", h, l, s)
	}

	var out [2]float64
	StoreuPD(&out, base)
	if out != [2]float64{1, 2} {
		t.Errorf("StoreuPD = %v", out)
	}
}

func TestAVX(t *testing.T) {
	pd := LoaduPD(&[2]float64{1, 2})
	if got := As256[[4]float64](Broadcast256PD(&pd)); got != [4]float64{1, 2, 1, 2} {
		t.Errorf("Broadcast256PD = %v", got)
	}
	ps := LoaduPS(&[4]float32{1, 2, 3, 4})
	if got := As256[[8]float32](Broadcast256PS(&ps)); got != [8]float32{1, 2, 3, 4, 1, 2, 3, 4} {
		t.Errorf("Broadcast256PS = %v", got)
	}
	d := 3.0
	if got := As256[[4]float64](Broadcast256SD(&d)); got != [4]float64{3, 3, 3, 3} {
		t.Errorf("Broadcast256SD = %v", got)
	}
	f := float32(4)
	if got := As128[[4]float32](BroadcastSS(&f)); got != [4]float32{4, 4, 4, 4} {
		t.Errorf("BroadcastSS = %v", got)
	}
	if got := As256[[8]float32](Broadcast256SS(&f)); got != [8]float32{4, 4, 4, 4, 4, 4, 4, 4} {
		t.Errorf("Broadcast256SS = %v", got)
	}

	f8 := [8]float32{1, 2, 3, 4, 5, 6, 7, 8}
	var o8 [8]float32
	Storeu256PS(&o8, Loadu256PS(&f8))
	if o8 != f8 {
		t.Errorf("Storeu256PS(Loadu256PS) = %v", o8)
	}
	d4 := [4]float64{1, 2, 3, 4}
	var o4 [4]float64
	Storeu256PD(&o4, Loadu256PD(&d4))
	if o4 != d4 {
		t.Errorf("Storeu256PD(Loadu256PD) = %v", o4)
	}
}

func TestLoadu2Storeu2(t *testing.T) {
	hi := [4]uint32{5, 6, 7, 8}
	lo := [4]uint32{1, 2, 3, 4}
	v := Loadu2M128i(&hi, &lo)
	if got := As256[[8]uint32](v); got != [8]uint32{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Fatalf("Loadu2M128i = %v", got)
	}
	var h2, l2 [4]uint32
	Storeu2M128i(&h2, &l2, v)
	if h2 != hi || l2 != lo {
		t.Errorf("Storeu2M128i = %v %v", h2, l2)
	}

	fh, fl := [4]float32{5, 6, 7, 8}, [4]float32{1, 2, 3, 4}
	fv := Loadu2M128(&fh, &fl)
	if got := As256[[8]float32](fv); got != [8]float32{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Errorf("Loadu2M128 = %v", got)
	}
	var fh2, fl2 [4]float32
	Storeu2M128(&fh2, &fl2, fv)
	if fh2 != fh || fl2 != fl {
		t.Errorf("Storeu2M128 = %v %v", fh2, fl2)
	}

	dh, dl := [2]float64{3, 4}, [2]float64{1, 2}
	dv := Loadu2M128d(&dh, &dl)
	if got := As256[[4]float64](dv); got != [4]float64{1, 2, 3, 4} {
		t.Errorf("Loadu2M128d = %v", got)
	}
	var dh2, dl2 [2]float64
	Storeu2M128d(&dh2, &dl2, dv)
	if dh2 != dh || dl2 != dl {
		t.Errorf("Storeu2M128d = %v %v", dh2, dl2)
	}
}

func TestAVX512(t *testing.T) {
	var b [64]int8
	for i := range b {
		b[i] = int8(i - 32)
	}
	var out [8]int64
	Storeu512Epi64(&out, Loadu512Epi8(&b))
	if got := As512[[64]int8](From512[M512i](out)); got != b {
		t.Errorf("512-bit epi round trip mismatch")
	}

	w := [16]uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	var w2 [16]uint16
	Storeu256Epi16(&w2, Loadu256Epi16(&w))
	if w2 != w {
		t.Errorf("Storeu256Epi16(Loadu256Epi16) = %v", w2)
	}

	q := [4]int32{-1, -2, -3, -4}
	var q2 [4]int32
	StoreuEpi32(&q2, LoaduEpi32(&q))
	if q2 != q {
		t.Errorf("StoreuEpi32(LoaduEpi32) = %v", q2)
	}

	f := [16]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	var f2 [16]float32
	Storeu512PS(&f2, Loadu512PS(&f))
	if f2 != f {
		t.Errorf("Storeu512PS(Loadu512PS) = %v", f2)
	}

	d := [8]float64{1, 2, 3, 4, 5, 6, 7, 8}
	var d2 [8]float64
	Storeu512PD(&d2, Loadu512PD(&d))
	if d2 != d {
		t.Errorf("Storeu512PD(Loadu512PD) = %v", d2)
	}
}
