package main

import "github.com/ajroetker/go-unaligned/x86"

type pair struct {
	lo, hi uint64
}

func main() {
	var p pair
	_ = x86.LoaduSi128(&p)
}
