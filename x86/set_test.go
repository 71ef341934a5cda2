package x86

import "testing"

func TestSetHelpers(t *testing.T) {
	if got := SetEpi64x(-2, 7).Epi64(); got != [2]int64{7, -2} {
		t.Errorf("SetEpi64x(-2, 7).Epi64() = %v", got)
	}
	if got := SetEpi32(4, 3, 2, 1).Epi32(); got != [4]int32{1, 2, 3, 4} {
		t.Errorf("SetEpi32(4, 3, 2, 1).Epi32() = %v", got)
	}
	if got := Set1Epi8(-1).Epi8(); got != [16]int8{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1} {
		t.Errorf("Set1Epi8(-1).Epi8() = %v", got)
	}
	if got := Set1Epi32(9).Epi16(); got != [8]int16{9, 0, 9, 0, 9, 0, 9, 0} {
		t.Errorf("Set1Epi32(9).Epi16() = %v", got)
	}
	if SetzeroSi128() != (M128i{}) || SetzeroSi256() != (M256i{}) || SetzeroSi512() != (M512i{}) {
		t.Error("Setzero helpers returned non-zero registers")
	}
	if SetzeroPS().PS() != [4]float32{} || SetzeroPD().PD() != [2]float64{} {
		t.Error("SetzeroPS/SetzeroPD returned non-zero lanes")
	}
}
