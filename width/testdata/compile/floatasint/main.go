package main

import "github.com/ajroetker/go-unaligned/x86"

func main() {
	var f [4]float32
	_ = x86.LoaduSi128(&f)
}
