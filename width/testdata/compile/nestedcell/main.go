package main

import (
	"github.com/ajroetker/go-unaligned/width"
	"github.com/ajroetker/go-unaligned/x86/cell"
)

func main() {
	var c width.Cell[width.Cell[[16]uint8]]
	_ = cell.LoaduSi128(&c)
}
