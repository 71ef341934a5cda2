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

package unaligned

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-unaligned/dispatch"
	"github.com/ajroetker/go-unaligned/width"
	"github.com/ajroetker/go-unaligned/x86/cell"
)

// ErrRange is returned when a Move range does not fit in its buffer.
var ErrRange = errors.New("unaligned: range outside buffer")

// chunkSizes lists the register sizes Move uses, widest first.
var chunkSizes = []int{64, 32, 16, 8, 4, 2, 1}

// Move copies n bytes of buf starting at src to dst, like memmove. The two
// ranges may overlap. Each step loads the widest register that fits both
// the remaining length and dispatch.CurrentWidth, then stores it.
//
//	buf := width.CellsOf(data)
//	err := unaligned.Move(buf, 1, 0, len(data)-1) // shift right by one
func Move(buf []width.Cell[uint8], dst, src, n int) error {
	if n < 0 || dst < 0 || src < 0 || dst > len(buf)-n || src > len(buf)-n {
		return fmt.Errorf("move %d bytes from %d to %d in buffer of %d: %w", n, src, dst, len(buf), ErrRange)
	}
	if n == 0 || dst == src {
		return nil
	}

	limit := dispatch.CurrentWidth()
	if dst < src {
		// Forward: every store ends before the next load begins.
		for off := 0; off < n; {
			k := chunk(n-off, limit)
			moveChunk(buf, dst+off, src+off, k)
			off += k
		}
		return nil
	}
	for end := n; end > 0; {
		k := chunk(end, limit)
		end -= k
		moveChunk(buf, dst+end, src+end, k)
	}
	return nil
}

// chunk returns the widest register size no larger than remaining or limit.
func chunk(remaining, limit int) int {
	for _, k := range chunkSizes {
		if k <= remaining && k <= limit {
			return k
		}
	}
	return 1
}

// moveChunk moves k bytes with a single load and a single store. k must be
// one of chunkSizes.
func moveChunk(buf []width.Cell[uint8], dst, src, k int) {
	switch k {
	case 64:
		cell.StoreuSi512((*[64]width.Cell[uint8])(buf[dst:]), cell.LoaduSi512((*[64]width.Cell[uint8])(buf[src:])))
	case 32:
		cell.StoreuSi256((*[32]width.Cell[uint8])(buf[dst:]), cell.LoaduSi256((*[32]width.Cell[uint8])(buf[src:])))
	case 16:
		cell.StoreuSi128((*[16]width.Cell[uint8])(buf[dst:]), cell.LoaduSi128((*[16]width.Cell[uint8])(buf[src:])))
	case 8:
		cell.StoreuSi64((*[8]width.Cell[uint8])(buf[dst:]), cell.LoaduSi64((*[8]width.Cell[uint8])(buf[src:])))
	case 4:
		cell.StoreuSi32((*[4]width.Cell[uint8])(buf[dst:]), cell.LoaduSi32((*[4]width.Cell[uint8])(buf[src:])))
	case 2:
		cell.StoreuSi16((*[2]width.Cell[uint8])(buf[dst:]), cell.LoaduSi16((*[2]width.Cell[uint8])(buf[src:])))
	default:
		buf[dst].Set(buf[src].Get())
	}
}
