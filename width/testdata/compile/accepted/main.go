package main

import (
	"github.com/ajroetker/go-unaligned/width"
	"github.com/ajroetker/go-unaligned/x86"
	"github.com/ajroetker/go-unaligned/x86/cell"
)

type block [16]byte

func main() {
	var b block
	x86.StoreuSi128(&b, x86.LoaduSi128(&b))

	buf := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}
	cells := width.CellsOf(buf)
	v := cell.LoaduSi128((*[8]width.Cell[uint16])(cells[0:8]))
	cell.StoreuSi128((*[8]width.Cell[uint16])(cells[1:9]), v)

	var whole width.Cell[[16]uint8]
	cell.StoreuSi128(&whole, cell.LoaduSi128(&whole))

	var s [9]uint8
	_ = x86.LoaduSi64((*[8]uint8)(s[1:]))
}
