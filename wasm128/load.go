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

package wasm128

import "unsafe"

// V128Load loads 16 bytes (v128.load).
func V128Load[T Is16BytesUnaligned](p *T) V128 {
	return *(*V128)(unsafe.Pointer(p))
}

// V128Store stores 16 bytes (v128.store).
func V128Store[T Is16BytesUnaligned](p *T, v V128) {
	*(*V128)(unsafe.Pointer(p)) = v
}

// V128Load8Splat loads one byte into all 16 lanes (v128.load8_splat).
func V128Load8Splat[T Is1ByteUnaligned](p *T) V128 {
	return splat(bytesOf(p))
}

// V128Load16Splat loads 2 bytes into all 8 lanes (v128.load16_splat).
func V128Load16Splat[T Is2BytesUnaligned](p *T) V128 {
	return splat(bytesOf(p))
}

// V128Load32Splat loads 4 bytes into all 4 lanes (v128.load32_splat).
func V128Load32Splat[T Is4BytesUnaligned](p *T) V128 {
	return splat(bytesOf(p))
}

// V128Load64Splat loads 8 bytes into both lanes (v128.load64_splat).
func V128Load64Splat[T Is8BytesUnaligned](p *T) V128 {
	return splat(bytesOf(p))
}

// V128Load32Zero loads 4 bytes into lane 0 and zeroes the rest
// (v128.load32_zero).
func V128Load32Zero[T Is4BytesUnaligned](p *T) (v V128) {
	copy(v[:], bytesOf(p))
	return v
}

// V128Load64Zero loads 8 bytes into lane 0 and zeroes the rest
// (v128.load64_zero).
func V128Load64Zero[T Is8BytesUnaligned](p *T) (v V128) {
	copy(v[:], bytesOf(p))
	return v
}

func splat(b []byte) (v V128) {
	for i := 0; i < len(v); i += len(b) {
		copy(v[i:], b)
	}
	return v
}

// I16x8LoadExtendI8x8 loads 8 int8 values and sign extends each to int16
// (v128.load8x8_s).
func I16x8LoadExtendI8x8[T Is8BytesUnaligned](p *T) V128 {
	in := load[[8]int8](p)
	var out [8]int16
	widen(out[:], in[:])
	return From(out)
}

// I16x8LoadExtendU8x8 loads 8 uint8 values and zero extends each to 16 bits
// (v128.load8x8_u).
func I16x8LoadExtendU8x8[T Is8BytesUnaligned](p *T) V128 {
	in := load[[8]uint8](p)
	var out [8]int16
	widen(out[:], in[:])
	return From(out)
}

// I32x4LoadExtendI16x4 loads 4 int16 values and sign extends each to int32
// (v128.load16x4_s).
func I32x4LoadExtendI16x4[T Is8BytesUnaligned](p *T) V128 {
	in := load[[4]int16](p)
	var out [4]int32
	widen(out[:], in[:])
	return From(out)
}

// I32x4LoadExtendU16x4 loads 4 uint16 values and zero extends each to 32
// bits (v128.load16x4_u).
func I32x4LoadExtendU16x4[T Is8BytesUnaligned](p *T) V128 {
	in := load[[4]uint16](p)
	var out [4]int32
	widen(out[:], in[:])
	return From(out)
}

// I64x2LoadExtendI32x2 loads 2 int32 values and sign extends each to int64
// (v128.load32x2_s).
func I64x2LoadExtendI32x2[T Is8BytesUnaligned](p *T) V128 {
	in := load[[2]int32](p)
	var out [2]int64
	widen(out[:], in[:])
	return From(out)
}

// I64x2LoadExtendU32x2 loads 2 uint32 values and zero extends each to 64
// bits (v128.load32x2_u).
func I64x2LoadExtendU32x2[T Is8BytesUnaligned](p *T) V128 {
	in := load[[2]uint32](p)
	var out [2]int64
	widen(out[:], in[:])
	return From(out)
}

// U16x8LoadExtendU8x8 is I16x8LoadExtendU8x8.
func U16x8LoadExtendU8x8[T Is8BytesUnaligned](p *T) V128 {
	return I16x8LoadExtendU8x8(p)
}

// U32x4LoadExtendU16x4 is I32x4LoadExtendU16x4.
func U32x4LoadExtendU16x4[T Is8BytesUnaligned](p *T) V128 {
	return I32x4LoadExtendU16x4(p)
}

// U64x2LoadExtendU32x2 is I64x2LoadExtendU32x2.
func U64x2LoadExtendU32x2[T Is8BytesUnaligned](p *T) V128 {
	return I64x2LoadExtendU32x2(p)
}

// load copies the bytes of *p into an L of the same size.
func load[L any, T any](p *T) (l L) {
	copy(bytesOf(&l), bytesOf(p))
	return l
}

type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

func widen[D, S integer](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}
