package main

import "unsafe"

// A 256-bit array filed under the 128-bit family.
var _ [0]struct{} = [unsafe.Sizeof([32]uint8{}) - 16]struct{}{}

func main() {}
