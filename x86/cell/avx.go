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

package cell

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/x86"
)

// LoaduSi256 loads 32 bytes (_mm256_loadu_si256).
func LoaduSi256[T x86.Is256CellUnaligned](p *T) x86.M256i {
	return *(*x86.M256i)(unsafe.Pointer(p))
}

// Loadu2M128i loads two independent 128-bit halves (_mm256_loadu2_m128i).
// hi and lo may overlap.
func Loadu2M128i[T x86.Is128CellUnaligned](hi, lo *T) (r x86.M256i) {
	copy(r[:16], (*[16]byte)(unsafe.Pointer(lo))[:])
	copy(r[16:], (*[16]byte)(unsafe.Pointer(hi))[:])
	return r
}

// StoreuSi256 stores 32 bytes (_mm256_storeu_si256).
func StoreuSi256[T x86.Is256CellUnaligned](p *T, a x86.M256i) {
	*(*x86.M256i)(unsafe.Pointer(p)) = a
}

// Storeu2M128i stores the halves of a to two locations
// (_mm256_storeu2_m128i). The low half is written first, so where hi and lo
// overlap the high half wins.
func Storeu2M128i[T x86.Is128CellUnaligned](hi, lo *T, a x86.M256i) {
	*(*[16]byte)(unsafe.Pointer(lo)) = [16]byte(a[:16])
	*(*[16]byte)(unsafe.Pointer(hi)) = [16]byte(a[16:])
}

// LoaduSi512 loads 64 bytes (_mm512_loadu_si512).
func LoaduSi512[T x86.Is512CellUnaligned](p *T) x86.M512i {
	return *(*x86.M512i)(unsafe.Pointer(p))
}

// StoreuSi512 stores 64 bytes (_mm512_storeu_si512).
func StoreuSi512[T x86.Is512CellUnaligned](p *T, a x86.M512i) {
	*(*x86.M512i)(unsafe.Pointer(p)) = a
}
