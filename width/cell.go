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

import "unsafe"

// Cell is a shared mutable slot holding a T. It has exactly the size and
// alignment of T, so cell-backed memory may be handed to the load/store
// wrappers through overlapping windows. The value is only read or written
// through Get, Set, Swap or a wrapper call; no reference to the inner T
// escapes.
//
// Cell performs no synchronization. Accesses from different goroutines must
// be ordered by the caller.
type Cell[T any] struct {
	v T
}

// Get returns a copy of the contained value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set replaces the contained value.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Swap replaces the contained value and returns the previous one.
func (c *Cell[T]) Swap(v T) T {
	old := c.v
	c.v = v
	return old
}

// CellOf views the value at p as a cell.
func CellOf[T any](p *T) *Cell[T] {
	return (*Cell[T])(unsafe.Pointer(p))
}

// CellsOf views s as a slice of cells sharing the same backing array.
//
// Fixed-length windows are taken with a slice-to-array-pointer conversion:
//
//	cells := width.CellsOf(buf)
//	win := (*[8]width.Cell[uint16])(cells[1:9])
func CellsOf[T any](s []T) []Cell[T] {
	if s == nil {
		return nil
	}
	return unsafe.Slice((*Cell[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Values copies the contents of cs into a new slice.
func Values[T any](cs []Cell[T]) []T {
	out := make([]T, len(cs))
	for i := range cs {
		out[i] = cs[i].v
	}
	return out
}
