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

// Package x86 provides unaligned SSE, SSE2, AVX and AVX-512 loads and stores
// that take typed pointers instead of raw addresses.
//
// Integer operations are generic over the IsNBitsUnaligned constraints, so
// the compiler selects the register width and rejects any argument that is
// not exactly that many bytes:
//
//	var src [9]uint8
//	v := x86.LoaduSi64((*[8]uint8)(src[1:])) // 8 bytes, any address
//	_ = x86.LoaduSi128(&src)                 // does not compile
//
// Floating-point operations take the concrete array type of the register.
//
// Function names drop the _mm prefix of the Intel intrinsic and camel-case
// the rest. Where an operation exists at several register widths the width
// follows the verb: LoaduEpi8, Loadu256Epi8, Loadu512Epi8.
//
// Register values are plain byte arrays with alignment 1, so no operation
// here assumes more alignment than the unaligned instruction variant.
// Overlapping loads and stores are available in package x86/cell.
package x86
