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

// Unmasked AVX-512 loads and stores. The masked, expanding and compressing
// variants are not provided.

// LoaduEpi8 loads 16 bytes (_mm_loadu_epi8, AVX-512BW+VL).
func LoaduEpi8[T Is128BitsUnaligned](p *T) M128i {
	return *(*M128i)(unsafe.Pointer(p))
}

// Loadu256Epi8 loads 32 bytes (_mm256_loadu_epi8, AVX-512BW+VL).
func Loadu256Epi8[T Is256BitsUnaligned](p *T) M256i {
	return *(*M256i)(unsafe.Pointer(p))
}

// Loadu512Epi8 loads 64 bytes (_mm512_loadu_epi8, AVX-512BW).
func Loadu512Epi8[T Is512BitsUnaligned](p *T) M512i {
	return *(*M512i)(unsafe.Pointer(p))
}

// LoaduEpi16 loads 16 bytes (_mm_loadu_epi16, AVX-512BW+VL).
func LoaduEpi16[T Is128BitsUnaligned](p *T) M128i {
	return *(*M128i)(unsafe.Pointer(p))
}

// Loadu256Epi16 loads 32 bytes (_mm256_loadu_epi16, AVX-512BW+VL).
func Loadu256Epi16[T Is256BitsUnaligned](p *T) M256i {
	return *(*M256i)(unsafe.Pointer(p))
}

// Loadu512Epi16 loads 64 bytes (_mm512_loadu_epi16, AVX-512BW).
func Loadu512Epi16[T Is512BitsUnaligned](p *T) M512i {
	return *(*M512i)(unsafe.Pointer(p))
}

// LoaduEpi32 loads 16 bytes (_mm_loadu_epi32, AVX-512F+VL).
func LoaduEpi32[T Is128BitsUnaligned](p *T) M128i {
	return *(*M128i)(unsafe.Pointer(p))
}

// Loadu256Epi32 loads 32 bytes (_mm256_loadu_epi32, AVX-512F+VL).
func Loadu256Epi32[T Is256BitsUnaligned](p *T) M256i {
	return *(*M256i)(unsafe.Pointer(p))
}

// Loadu512Epi32 loads 64 bytes (_mm512_loadu_epi32, AVX-512F).
func Loadu512Epi32[T Is512BitsUnaligned](p *T) M512i {
	return *(*M512i)(unsafe.Pointer(p))
}

// LoaduEpi64 loads 16 bytes (_mm_loadu_epi64, AVX-512F+VL).
func LoaduEpi64[T Is128BitsUnaligned](p *T) M128i {
	return *(*M128i)(unsafe.Pointer(p))
}

// Loadu256Epi64 loads 32 bytes (_mm256_loadu_epi64, AVX-512F+VL).
func Loadu256Epi64[T Is256BitsUnaligned](p *T) M256i {
	return *(*M256i)(unsafe.Pointer(p))
}

// Loadu512Epi64 loads 64 bytes (_mm512_loadu_epi64, AVX-512F).
func Loadu512Epi64[T Is512BitsUnaligned](p *T) M512i {
	return *(*M512i)(unsafe.Pointer(p))
}

// LoaduSi512 loads 64 bytes (_mm512_loadu_si512).
func LoaduSi512[T Is512BitsUnaligned](p *T) M512i {
	return *(*M512i)(unsafe.Pointer(p))
}

// Loadu512PS loads 16 float32 values (_mm512_loadu_ps).
func Loadu512PS(p *[16]float32) M512 {
	return *(*M512)(unsafe.Pointer(p))
}

// Loadu512PD loads 8 float64 values (_mm512_loadu_pd).
func Loadu512PD(p *[8]float64) M512d {
	return *(*M512d)(unsafe.Pointer(p))
}

// StoreuEpi8 stores 16 bytes (_mm_storeu_epi8, AVX-512BW+VL).
func StoreuEpi8[T Is128BitsUnaligned](p *T, a M128i) {
	*(*M128i)(unsafe.Pointer(p)) = a
}

// Storeu256Epi8 stores 32 bytes (_mm256_storeu_epi8, AVX-512BW+VL).
func Storeu256Epi8[T Is256BitsUnaligned](p *T, a M256i) {
	*(*M256i)(unsafe.Pointer(p)) = a
}

// Storeu512Epi8 stores 64 bytes (_mm512_storeu_epi8, AVX-512BW).
func Storeu512Epi8[T Is512BitsUnaligned](p *T, a M512i) {
	*(*M512i)(unsafe.Pointer(p)) = a
}

// StoreuEpi16 stores 16 bytes (_mm_storeu_epi16, AVX-512BW+VL).
func StoreuEpi16[T Is128BitsUnaligned](p *T, a M128i) {
	*(*M128i)(unsafe.Pointer(p)) = a
}

// Storeu256Epi16 stores 32 bytes (_mm256_storeu_epi16, AVX-512BW+VL).
func Storeu256Epi16[T Is256BitsUnaligned](p *T, a M256i) {
	*(*M256i)(unsafe.Pointer(p)) = a
}

// Storeu512Epi16 stores 64 bytes (_mm512_storeu_epi16, AVX-512BW).
func Storeu512Epi16[T Is512BitsUnaligned](p *T, a M512i) {
	*(*M512i)(unsafe.Pointer(p)) = a
}

// StoreuEpi32 stores 16 bytes (_mm_storeu_epi32, AVX-512F+VL).
func StoreuEpi32[T Is128BitsUnaligned](p *T, a M128i) {
	*(*M128i)(unsafe.Pointer(p)) = a
}

// Storeu256Epi32 stores 32 bytes (_mm256_storeu_epi32, AVX-512F+VL).
func Storeu256Epi32[T Is256BitsUnaligned](p *T, a M256i) {
	*(*M256i)(unsafe.Pointer(p)) = a
}

// Storeu512Epi32 stores 64 bytes (_mm512_storeu_epi32, AVX-512F).
func Storeu512Epi32[T Is512BitsUnaligned](p *T, a M512i) {
	*(*M512i)(unsafe.Pointer(p)) = a
}

// StoreuEpi64 stores 16 bytes (_mm_storeu_epi64, AVX-512F+VL).
func StoreuEpi64[T Is128BitsUnaligned](p *T, a M128i) {
	*(*M128i)(unsafe.Pointer(p)) = a
}

// Storeu256Epi64 stores 32 bytes (_mm256_storeu_epi64, AVX-512F+VL).
func Storeu256Epi64[T Is256BitsUnaligned](p *T, a M256i) {
	*(*M256i)(unsafe.Pointer(p)) = a
}

// Storeu512Epi64 stores 64 bytes (_mm512_storeu_epi64, AVX-512F).
func Storeu512Epi64[T Is512BitsUnaligned](p *T, a M512i) {
	*(*M512i)(unsafe.Pointer(p)) = a
}

// StoreuSi512 stores 64 bytes (_mm512_storeu_si512).
func StoreuSi512[T Is512BitsUnaligned](p *T, a M512i) {
	*(*M512i)(unsafe.Pointer(p)) = a
}

// Storeu512PS stores 16 float32 values (_mm512_storeu_ps).
func Storeu512PS(p *[16]float32, a M512) {
	*(*M512)(unsafe.Pointer(p)) = a
}

// Storeu512PD stores 8 float64 values (_mm512_storeu_pd).
func Storeu512PD(p *[8]float64, a M512d) {
	*(*M512d)(unsafe.Pointer(p)) = a
}
