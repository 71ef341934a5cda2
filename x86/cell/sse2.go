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

// Package cell provides the x86 integer loads and stores for cell-backed
// memory. Arguments are one cell layer around a certified integer shape,
// either [N]width.Cell[E] or width.Cell[[N]E], so a load and a store may
// target overlapping windows of the same buffer:
//
//	cells := width.CellsOf(buf) // buf []uint16
//	v := cell.LoaduSi128((*[8]width.Cell[uint16])(cells[0:8]))
//	cell.StoreuSi128((*[8]width.Cell[uint16])(cells[1:9]), v)
//
// Each call reads or writes its memory only for its own duration. Ordering
// between calls is the caller's responsibility and cells are not safe for
// concurrent use.
package cell

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/x86"
)

// LoadlEpi64 loads the low 8 bytes of *p and zeroes the upper half
// (_mm_loadl_epi64).
func LoadlEpi64[T x86.Is128CellUnaligned](p *T) (r x86.M128i) {
	copy(r[:8], (*[16]byte)(unsafe.Pointer(p))[:8])
	return r
}

// LoaduSi16 loads 2 bytes into the low lane (_mm_loadu_si16).
func LoaduSi16[T x86.Is16CellUnaligned](p *T) (r x86.M128i) {
	copy(r[:2], (*[2]byte)(unsafe.Pointer(p))[:])
	return r
}

// LoaduSi32 loads 4 bytes into the low lane (_mm_loadu_si32).
func LoaduSi32[T x86.Is32CellUnaligned](p *T) (r x86.M128i) {
	copy(r[:4], (*[4]byte)(unsafe.Pointer(p))[:])
	return r
}

// LoaduSi64 loads 8 bytes into the low lane (_mm_loadu_si64).
func LoaduSi64[T x86.Is64CellUnaligned](p *T) (r x86.M128i) {
	copy(r[:8], (*[8]byte)(unsafe.Pointer(p))[:])
	return r
}

// LoaduSi128 loads 16 bytes (_mm_loadu_si128).
func LoaduSi128[T x86.Is128CellUnaligned](p *T) x86.M128i {
	return *(*x86.M128i)(unsafe.Pointer(p))
}

// StorelEpi64 stores the low 8 bytes of a into the first half of *p
// (_mm_storel_epi64).
func StorelEpi64[T x86.Is128CellUnaligned](p *T, a x86.M128i) {
	copy((*[16]byte)(unsafe.Pointer(p))[:8], a[:8])
}

// StoreuSi16 stores the low 2 bytes of a (_mm_storeu_si16).
func StoreuSi16[T x86.Is16CellUnaligned](p *T, a x86.M128i) {
	*(*[2]byte)(unsafe.Pointer(p)) = [2]byte(a[:2])
}

// StoreuSi32 stores the low 4 bytes of a (_mm_storeu_si32).
func StoreuSi32[T x86.Is32CellUnaligned](p *T, a x86.M128i) {
	*(*[4]byte)(unsafe.Pointer(p)) = [4]byte(a[:4])
}

// StoreuSi64 stores the low 8 bytes of a (_mm_storeu_si64).
func StoreuSi64[T x86.Is64CellUnaligned](p *T, a x86.M128i) {
	*(*[8]byte)(unsafe.Pointer(p)) = [8]byte(a[:8])
}

// StoreuSi128 stores 16 bytes (_mm_storeu_si128).
func StoreuSi128[T x86.Is128CellUnaligned](p *T, a x86.M128i) {
	*(*x86.M128i)(unsafe.Pointer(p)) = a
}
