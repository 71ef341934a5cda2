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

package x86

// SetzeroSi128 returns an all-zero 128-bit register (_mm_setzero_si128).
func SetzeroSi128() M128i { return M128i{} }

// SetzeroSi256 returns an all-zero 256-bit register (_mm256_setzero_si256).
func SetzeroSi256() M256i { return M256i{} }

// SetzeroSi512 returns an all-zero 512-bit register (_mm512_setzero_si512).
func SetzeroSi512() M512i { return M512i{} }

// SetzeroPS returns an all-zero float32 register (_mm_setzero_ps).
func SetzeroPS() M128 { return M128{} }

// SetzeroPD returns an all-zero float64 register (_mm_setzero_pd).
func SetzeroPD() M128d { return M128d{} }

// SetEpi64x builds a register from two int64 lanes, highest first
// (_mm_set_epi64x).
func SetEpi64x(e1, e0 int64) (r M128i) {
	setLane(r[:], 0, e0)
	setLane(r[:], 1, e1)
	return r
}

// SetEpi32 builds a register from four int32 lanes, highest first
// (_mm_set_epi32).
func SetEpi32(e3, e2, e1, e0 int32) (r M128i) {
	for i, v := range [4]int32{e0, e1, e2, e3} {
		setLane(r[:], i, v)
	}
	return r
}

// Set1Epi8 broadcasts b to all 16 lanes (_mm_set1_epi8).
func Set1Epi8(b int8) (r M128i) {
	splat(r[:], b)
	return r
}

// Set1Epi32 broadcasts v to all 4 lanes (_mm_set1_epi32).
func Set1Epi32(v int32) (r M128i) {
	splat(r[:], v)
	return r
}

// Epi8 returns the 16 int8 lanes of m.
func (m M128i) Epi8() [16]int8 { return As128[[16]int8](m) }

// Epi16 returns the 8 int16 lanes of m.
func (m M128i) Epi16() [8]int16 { return As128[[8]int16](m) }

// Epi32 returns the 4 int32 lanes of m.
func (m M128i) Epi32() [4]int32 { return As128[[4]int32](m) }

// Epi64 returns the 2 int64 lanes of m.
func (m M128i) Epi64() [2]int64 { return As128[[2]int64](m) }

// PS returns the 4 float32 lanes of m.
func (m M128) PS() [4]float32 { return As128[[4]float32](m) }

// PD returns the 2 float64 lanes of m.
func (m M128d) PD() [2]float64 { return As128[[2]float64](m) }

// PS returns the 8 float32 lanes of m.
func (m M256) PS() [8]float32 { return As256[[8]float32](m) }

// PD returns the 4 float64 lanes of m.
func (m M256d) PD() [4]float64 { return As256[[4]float64](m) }
