package main

import "github.com/ajroetker/go-unaligned/x86"

func main() {
	var half [8]uint8
	_ = x86.LoaduSi128(&half)
}
