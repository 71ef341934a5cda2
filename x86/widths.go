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

import "github.com/ajroetker/go-unaligned/width"

// The integer load/store family moves untyped bits, so x86 admits the
// integer members of each width. Floating-point data goes through the
// PS/PD operations, which name their array type directly.

// Is16BitsUnaligned is satisfied by integer types of exactly 2 bytes.
type Is16BitsUnaligned interface {
	width.Ints16
}

// Is32BitsUnaligned is satisfied by integer types of exactly 4 bytes.
type Is32BitsUnaligned interface {
	width.Ints32
}

// Is64BitsUnaligned is satisfied by integer types of exactly 8 bytes.
type Is64BitsUnaligned interface {
	width.Ints64
}

// Is128BitsUnaligned is satisfied by integer arrays of exactly 16 bytes.
type Is128BitsUnaligned interface {
	width.Ints128
}

// Is256BitsUnaligned is satisfied by integer arrays of exactly 32 bytes.
type Is256BitsUnaligned interface {
	width.Ints256
}

// Is512BitsUnaligned is satisfied by integer arrays of exactly 64 bytes.
type Is512BitsUnaligned interface {
	width.Ints512
}

// Is16CellUnaligned is satisfied by cell-wrapped integer types of 2 bytes.
type Is16CellUnaligned interface {
	width.IntCells16
}

// Is32CellUnaligned is satisfied by cell-wrapped integer types of 4 bytes.
type Is32CellUnaligned interface {
	width.IntCells32
}

// Is64CellUnaligned is satisfied by cell-wrapped integer types of 8 bytes.
type Is64CellUnaligned interface {
	width.IntCells64
}

// Is128CellUnaligned is satisfied by cell-wrapped integer arrays of 16 bytes.
type Is128CellUnaligned interface {
	width.IntCells128
}

// Is256CellUnaligned is satisfied by cell-wrapped integer arrays of 32 bytes.
type Is256CellUnaligned interface {
	width.IntCells256
}

// Is512CellUnaligned is satisfied by cell-wrapped integer arrays of 64 bytes.
type Is512CellUnaligned interface {
	width.IntCells512
}
