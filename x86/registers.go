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

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/width"
)

// M128 is a 128-bit register of 4 float32 lanes.
type M128 [16]byte

// M128d is a 128-bit register of 2 float64 lanes.
type M128d [16]byte

// M128i is a 128-bit integer register.
type M128i [16]byte

// M256 is a 256-bit register of 8 float32 lanes.
type M256 [32]byte

// M256d is a 256-bit register of 4 float64 lanes.
type M256d [32]byte

// M256i is a 256-bit integer register.
type M256i [32]byte

// M512 is a 512-bit register of 16 float32 lanes.
type M512 [64]byte

// M512d is a 512-bit register of 8 float64 lanes.
type M512d [64]byte

// M512i is a 512-bit integer register.
type M512i [64]byte

var (
	_ [0]struct{} = [unsafe.Sizeof(M128{}) - 16]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M128d{}) - 16]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M128i{}) - 16]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M256{}) - 32]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M256d{}) - 32]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M256i{}) - 32]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M512{}) - 64]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M512d{}) - 64]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(M512i{}) - 64]struct{}{}
)

// Reg128 is satisfied by the 128-bit register types.
type Reg128 interface {
	M128 | M128d | M128i
}

// Reg256 is satisfied by the 256-bit register types.
type Reg256 interface {
	M256 | M256d | M256i
}

// Reg512 is satisfied by the 512-bit register types.
type Reg512 interface {
	M512 | M512d | M512i
}

// As128 reinterprets a 128-bit register as any plain 128-bit shape.
//
//	lanes := x86.As128[[8]uint16](v)
func As128[L width.Bits128, R Reg128](r R) (l L) {
	copy(bytesOf(&l), bytesOf(&r))
	return l
}

// From128 builds a 128-bit register from any plain 128-bit shape.
func From128[R Reg128, L width.Bits128](l L) (r R) {
	copy(bytesOf(&r), bytesOf(&l))
	return r
}

// As256 reinterprets a 256-bit register as any plain 256-bit shape.
func As256[L width.Bits256, R Reg256](r R) (l L) {
	copy(bytesOf(&l), bytesOf(&r))
	return l
}

// From256 builds a 256-bit register from any plain 256-bit shape.
func From256[R Reg256, L width.Bits256](l L) (r R) {
	copy(bytesOf(&r), bytesOf(&l))
	return r
}

// As512 reinterprets a 512-bit register as any plain 512-bit shape.
func As512[L width.Bits512, R Reg512](r R) (l L) {
	copy(bytesOf(&l), bytesOf(&r))
	return l
}

// From512 builds a 512-bit register from any plain 512-bit shape.
func From512[R Reg512, L width.Bits512](l L) (r R) {
	copy(bytesOf(&r), bytesOf(&l))
	return r
}

// bytesOf views the memory of *p as bytes.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// lane reads lane i of type E from a register without assuming alignment.
func lane[E any](reg []byte, i int) (v E) {
	b := bytesOf(&v)
	copy(b, reg[i*len(b):])
	return v
}

// setLane writes lane i of type E into a register.
func setLane[E any](reg []byte, i int, v E) {
	b := bytesOf(&v)
	copy(reg[i*len(b):(i+1)*len(b)], b)
}

// splat writes v into every lane of reg.
func splat[E any](reg []byte, v E) {
	b := bytesOf(&v)
	for i := 0; i+len(b) <= len(reg); i += len(b) {
		copy(reg[i:], b)
	}
}
