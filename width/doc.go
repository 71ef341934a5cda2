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

// Package width declares the sealed width-capability families: constraints
// whose type sets are closed lists of plain-data types of one exact byte
// size. A generic wrapper bounded by Ints128 can only be instantiated with
// a 16 byte integer array or scalar, so its body may reinterpret the
// pointer as a 16 byte register without any runtime check.
//
// Families come in two layers. The plain layer (IntsN, FloatsN, BitsN)
// holds scalars and arrays. The cell layer (IntCellsN, FloatCellsN, CellsN)
// wraps every plain member exactly once, either as an array of cells or as
// a cell around the whole value:
//
//	[8]uint16              member of Ints128
//	[8]Cell[uint16]        member of IntCells128
//	Cell[[8]uint16]        member of IntCells128
//	Cell[[8]Cell[uint16]]  member of nothing
//
// Named types whose underlying type is a listed array or scalar are members
// too, as they share its size. Every member carries a build-time size
// assertion in families_gen.go, and the registry in this package exposes the
// same lists to reflection for tests and tooling.
package width

//go:generate go run ../cmd/widthgen -target families -pkg width -output families_gen.go
