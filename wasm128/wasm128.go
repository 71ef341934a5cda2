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

// Package wasm128 wraps the WebAssembly simd128 memory instructions. The
// constraints admit both plain data and cell-wrapped data of the exact
// access size, since a v128.load with a zero alignment hint reads any
// address.
//
// LoadGuest, StoreGuest and GuestRef apply the same accesses to the linear
// memory of a module running under wazero.
package wasm128

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/width"
)

// Is1ByteUnaligned is satisfied by plain and cell-wrapped types of 1 byte.
type Is1ByteUnaligned interface {
	width.Bits8 | width.Cells8
}

// Is2BytesUnaligned is satisfied by plain and cell-wrapped types of 2 bytes.
type Is2BytesUnaligned interface {
	width.Bits16 | width.Cells16
}

// Is4BytesUnaligned is satisfied by plain and cell-wrapped types of 4 bytes.
type Is4BytesUnaligned interface {
	width.Bits32 | width.Cells32
}

// Is8BytesUnaligned is satisfied by plain and cell-wrapped types of 8 bytes.
type Is8BytesUnaligned interface {
	width.Bits64 | width.Cells64
}

// Is16BytesUnaligned is satisfied by plain and cell-wrapped types of 16
// bytes.
type Is16BytesUnaligned interface {
	width.Bits128 | width.Cells128
}

// V128 is a 128-bit simd128 value.
type V128 [16]byte

var _ [0]struct{} = [unsafe.Sizeof(V128{}) - 16]struct{}{}

// As reinterprets v as any plain 16 byte shape.
//
//	lanes := wasm128.As[[4]int32](v)
func As[L width.Bits128](v V128) (l L) {
	copy(bytesOf(&l), v[:])
	return l
}

// From builds a V128 from any plain 16 byte shape.
func From[L width.Bits128](l L) (v V128) {
	copy(v[:], bytesOf(&l))
	return v
}

func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
