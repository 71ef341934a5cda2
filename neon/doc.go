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

// Package neon wraps the ARM64 NEON vld1/vst1 family and its multi-register
// and structure variants. Each function has a fixed register width and
// element type baked into its name, so the argument is a concrete array
// pointer and no generic bound is needed:
//
//	var buf [20]uint16
//	v := neon.Vld1qU16((*[8]uint16)(buf[3:]))
//	neon.Vst1qU16((*[8]uint16)(buf[11:]), v)
//
// The wrappers only require the element alignment of their argument, which
// Go guarantees for any *[N]E. Register types are byte arrays, so a loaded
// value carries no alignment requirement of its own.
package neon

//go:generate go run ../cmd/widthgen -target neon-registers -pkg neon -output registers_gen.go
//go:generate go run ../cmd/widthgen -target neon-wrappers -pkg neon -output wrappers_gen.go
