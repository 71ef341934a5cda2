//go:build amd64 && goexperiment.simd

package x86

import (
	"simd/archsimd"
	"testing"
)

func TestArchsimdConversions(t *testing.T) {
	src := [16]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := LoaduSi128(&src)
	if got := FromUint8x16(v.Uint8x16()); got != v {
		t.Errorf("Uint8x16 round trip = %v, want %v", got, v)
	}

	f := LoaduPS(&[4]float32{1, 2, 3, 4})
	if got := FromFloat32x4(f.Float32x4()); got != f {
		t.Errorf("Float32x4 round trip mismatch")
	}
	d := LoaduPD(&[2]float64{1, 2})
	if got := FromFloat64x2(d.Float64x2()); got != d {
		t.Errorf("Float64x2 round trip mismatch")
	}

	if archsimd.X86.AVX2() {
		w := M256i(pattern(32, 7))
		if got := FromUint8x32(w.Uint8x32()); got != w {
			t.Errorf("Uint8x32 round trip mismatch")
		}
		f8 := Loadu256PS(&[8]float32{1, 2, 3, 4, 5, 6, 7, 8})
		if got := FromFloat32x8(f8.Float32x8()); got != f8 {
			t.Errorf("Float32x8 round trip mismatch")
		}
		d4 := Loadu256PD(&[4]float64{1, 2, 3, 4})
		if got := FromFloat64x4(d4.Float64x4()); got != d4 {
			t.Errorf("Float64x4 round trip mismatch")
		}
	}

	if archsimd.X86.AVX512() {
		z := M512i(pattern(64, 9))
		if got := FromUint8x64(z.Uint8x64()); got != z {
			t.Errorf("Uint8x64 round trip mismatch")
		}
	}
}
