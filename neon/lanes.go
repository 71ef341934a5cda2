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

package neon

import "unsafe"

// bytesOf views the memory of *p as bytes.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// deinterleave splits src, a sequence of structures of k elements of size
// bytes each, over k registers laid out back to back in dst: element j of
// structure i lands in lane i of register j.
func deinterleave(dst, src []byte, k, size int) {
	n := len(src) / (k * size)
	for i := range n {
		for j := range k {
			d := (j*n + i) * size
			s := (i*k + j) * size
			copy(dst[d:d+size], src[s:s+size])
		}
	}
}

// interleave is the inverse of deinterleave.
func interleave(dst, src []byte, k, size int) {
	n := len(dst) / (k * size)
	for i := range n {
		for j := range k {
			d := (i*k + j) * size
			s := (j*n + i) * size
			copy(dst[d:d+size], src[s:s+size])
		}
	}
}

// replicate fills register j of dst with element j of src.
func replicate(dst, src []byte, k, size int) {
	n := len(dst) / (k * size)
	for j := range k {
		e := src[j*size : (j+1)*size]
		for i := range n {
			copy(dst[(j*n+i)*size:], e)
		}
	}
}
