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

import "unsafe"

// Load1PD loads one float64 into both lanes (_mm_load1_pd).
func Load1PD(p *float64) (r M128d) {
	splat(r[:], *p)
	return r
}

// LoadPD1 is Load1PD (_mm_load_pd1).
func LoadPD1(p *float64) M128d {
	return Load1PD(p)
}

// LoadSD loads one float64 into lane 0 and zeroes lane 1 (_mm_load_sd).
func LoadSD(p *float64) (r M128d) {
	setLane(r[:], 0, *p)
	return r
}

// LoadhPD replaces the upper lane of a with *p (_mm_loadh_pd).
func LoadhPD(a M128d, p *float64) M128d {
	setLane(a[:], 1, *p)
	return a
}

// LoadlPD replaces the lower lane of a with *p (_mm_loadl_pd).
func LoadlPD(a M128d, p *float64) M128d {
	setLane(a[:], 0, *p)
	return a
}

// LoaduPD loads 2 float64 values (_mm_loadu_pd).
func LoaduPD(p *[2]float64) M128d {
	return *(*M128d)(unsafe.Pointer(p))
}

// LoadlEpi64 loads the low 8 bytes of *p and zeroes the upper half
// (_mm_loadl_epi64). The argument is a full 128-bit type, as in the
// intrinsic signature.
func LoadlEpi64[T Is128BitsUnaligned](p *T) (r M128i) {
	copy(r[:8], (*[16]byte)(unsafe.Pointer(p))[:8])
	return r
}

// LoaduSi128 loads 16 bytes (_mm_loadu_si128).
func LoaduSi128[T Is128BitsUnaligned](p *T) M128i {
	return *(*M128i)(unsafe.Pointer(p))
}

// LoaduSi16 loads 2 bytes into the low lane and zeroes the rest
// (_mm_loadu_si16).
func LoaduSi16[T Is16BitsUnaligned](p *T) (r M128i) {
	copy(r[:2], (*[2]byte)(unsafe.Pointer(p))[:])
	return r
}

// LoaduSi32 loads 4 bytes into the low lane and zeroes the rest
// (_mm_loadu_si32).
func LoaduSi32[T Is32BitsUnaligned](p *T) (r M128i) {
	copy(r[:4], (*[4]byte)(unsafe.Pointer(p))[:])
	return r
}

// LoaduSi64 loads 8 bytes into the low lane and zeroes the rest
// (_mm_loadu_si64).
func LoaduSi64[T Is64BitsUnaligned](p *T) (r M128i) {
	copy(r[:8], (*[8]byte)(unsafe.Pointer(p))[:])
	return r
}

// StoreSD stores lane 0 (_mm_store_sd).
func StoreSD(p *float64, a M128d) {
	*p = lane[float64](a[:], 0)
}

// StorehPD stores lane 1 (_mm_storeh_pd).
func StorehPD(p *float64, a M128d) {
	*p = lane[float64](a[:], 1)
}

// StorelEpi64 stores the low 8 bytes of a into the first half of *p
// (_mm_storel_epi64). The upper half of *p is left untouched.
func StorelEpi64[T Is128BitsUnaligned](p *T, a M128i) {
	copy((*[16]byte)(unsafe.Pointer(p))[:8], a[:8])
}

// StorelPD stores lane 0 (_mm_storel_pd).
func StorelPD(p *float64, a M128d) {
	*p = lane[float64](a[:], 0)
}

// StoreuPD stores 2 float64 values (_mm_storeu_pd).
func StoreuPD(p *[2]float64, a M128d) {
	*(*M128d)(unsafe.Pointer(p)) = a
}

// StoreuSi128 stores 16 bytes (_mm_storeu_si128).
func StoreuSi128[T Is128BitsUnaligned](p *T, a M128i) {
	*(*M128i)(unsafe.Pointer(p)) = a
}

// StoreuSi16 stores the low 2 bytes of a (_mm_storeu_si16).
func StoreuSi16[T Is16BitsUnaligned](p *T, a M128i) {
	*(*[2]byte)(unsafe.Pointer(p)) = [2]byte(a[:2])
}

// StoreuSi32 stores the low 4 bytes of a (_mm_storeu_si32).
func StoreuSi32[T Is32BitsUnaligned](p *T, a M128i) {
	*(*[4]byte)(unsafe.Pointer(p)) = [4]byte(a[:4])
}

// StoreuSi64 stores the low 8 bytes of a (_mm_storeu_si64).
func StoreuSi64[T Is64BitsUnaligned](p *T, a M128i) {
	*(*[8]byte)(unsafe.Pointer(p)) = [8]byte(a[:8])
}
