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

//go:build amd64 && goexperiment.simd

package x86

import "simd/archsimd"

// Conversions between register payloads and archsimd vectors. Loading the
// payload first through the typed wrappers and then moving it here keeps
// the size proof in the wrapper signature.

// Uint8x16 moves m into an archsimd vector.
func (m M128i) Uint8x16() archsimd.Uint8x16 {
	return archsimd.LoadUint8x16Slice(m[:])
}

// FromUint8x16 moves v into a register payload.
func FromUint8x16(v archsimd.Uint8x16) (m M128i) {
	v.StoreSlice(m[:])
	return m
}

// Uint8x32 moves m into an archsimd vector. Requires AVX2.
func (m M256i) Uint8x32() archsimd.Uint8x32 {
	return archsimd.LoadUint8x32Slice(m[:])
}

// FromUint8x32 moves v into a register payload. Requires AVX2.
func FromUint8x32(v archsimd.Uint8x32) (m M256i) {
	v.StoreSlice(m[:])
	return m
}

// Uint8x64 moves m into an archsimd vector. Requires AVX-512.
func (m M512i) Uint8x64() archsimd.Uint8x64 {
	return archsimd.LoadUint8x64Slice(m[:])
}

// FromUint8x64 moves v into a register payload. Requires AVX-512.
func FromUint8x64(v archsimd.Uint8x64) (m M512i) {
	v.StoreSlice(m[:])
	return m
}

// Float32x4 moves m into an archsimd vector.
func (m M128) Float32x4() archsimd.Float32x4 {
	var a [4]float32
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat32x4Slice(a[:])
}

// FromFloat32x4 moves v into a register payload.
func FromFloat32x4(v archsimd.Float32x4) (m M128) {
	var a [4]float32
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}

// Float64x2 moves m into an archsimd vector.
func (m M128d) Float64x2() archsimd.Float64x2 {
	var a [2]float64
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat64x2Slice(a[:])
}

// FromFloat64x2 moves v into a register payload.
func FromFloat64x2(v archsimd.Float64x2) (m M128d) {
	var a [2]float64
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}

// Float32x8 moves m into an archsimd vector. Requires AVX.
func (m M256) Float32x8() archsimd.Float32x8 {
	var a [8]float32
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat32x8Slice(a[:])
}

// FromFloat32x8 moves v into a register payload. Requires AVX.
func FromFloat32x8(v archsimd.Float32x8) (m M256) {
	var a [8]float32
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}

// Float64x4 moves m into an archsimd vector. Requires AVX.
func (m M256d) Float64x4() archsimd.Float64x4 {
	var a [4]float64
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat64x4Slice(a[:])
}

// FromFloat64x4 moves v into a register payload. Requires AVX.
func FromFloat64x4(v archsimd.Float64x4) (m M256d) {
	var a [4]float64
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}

// Float32x16 moves m into an archsimd vector. Requires AVX-512.
func (m M512) Float32x16() archsimd.Float32x16 {
	var a [16]float32
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat32x16Slice(a[:])
}

// FromFloat32x16 moves v into a register payload. Requires AVX-512.
func FromFloat32x16(v archsimd.Float32x16) (m M512) {
	var a [16]float32
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}

// Float64x8 moves m into an archsimd vector. Requires AVX-512.
func (m M512d) Float64x8() archsimd.Float64x8 {
	var a [8]float64
	copy(bytesOf(&a), m[:])
	return archsimd.LoadFloat64x8Slice(a[:])
}

// FromFloat64x8 moves v into a register payload. Requires AVX-512.
func FromFloat64x8(v archsimd.Float64x8) (m M512d) {
	var a [8]float64
	v.StoreSlice(a[:])
	copy(m[:], bytesOf(&a))
	return m
}
