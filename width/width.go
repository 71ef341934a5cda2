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

package width

import "strconv"

// Width is the exact number of bytes a capability family certifies.
// Constants are named by bit count to match the register naming used by
// the wrapper packages (W128 is a 16 byte SSE/NEON/simd128 register).
type Width int

const (
	// W8 certifies 1 byte.
	W8 Width = 1

	// W16 certifies 2 bytes.
	W16 Width = 2

	// W32 certifies 4 bytes.
	W32 Width = 4

	// W64 certifies 8 bytes.
	W64 Width = 8

	// W128 certifies 16 bytes (SSE2, NEON q registers, simd128).
	W128 Width = 16

	// W256 certifies 32 bytes (AVX).
	W256 Width = 32

	// W512 certifies 64 bytes (AVX-512).
	W512 Width = 64
)

var all = []Width{W8, W16, W32, W64, W128, W256, W512}

// Widths returns every supported width, narrowest first.
func Widths() []Width {
	out := make([]Width, len(all))
	copy(out, all)
	return out
}

// ForBytes returns the width certifying exactly n bytes.
func ForBytes(n int) (Width, bool) {
	for _, w := range all {
		if int(w) == n {
			return w, true
		}
	}
	return 0, false
}

// Bytes returns the width in bytes.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the width in bits.
func (w Width) Bits() int {
	return int(w) * 8
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	_, ok := ForBytes(int(w))
	return ok
}

// String returns a human-readable name such as "128bit".
func (w Width) String() string {
	if !w.Valid() {
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
	return strconv.Itoa(w.Bits()) + "bit"
}

// Kind separates integer members from floating-point members.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Form describes how a certified type is built from its element type.
type Form int

const (
	// FormPlain is a scalar or an array of scalars.
	FormPlain Form = iota

	// FormArrayOfCells is [N]Cell[E].
	FormArrayOfCells

	// FormCellOfArray is Cell[[N]E].
	FormCellOfArray

	// FormCellOfScalar is Cell[E].
	FormCellOfScalar
)

func (f Form) String() string {
	switch f {
	case FormPlain:
		return "plain"
	case FormArrayOfCells:
		return "array-of-cells"
	case FormCellOfArray:
		return "cell-of-array"
	case FormCellOfScalar:
		return "cell-of-scalar"
	default:
		return "unknown"
	}
}

// IsCell reports whether the form involves a cell wrapper.
func (f Form) IsCell() bool {
	return f != FormPlain
}
