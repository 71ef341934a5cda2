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

// Package unaligned moves data through the width-certified load/store
// wrappers. The wrappers themselves live in the per-target packages:
//
//	width     the sealed capability families and Cell
//	x86       SSE/AVX/AVX-512 unaligned loads and stores
//	x86/cell  the same over cell-backed memory
//	neon      ARM64 vld1/vst1 and the structure loads
//	wasm128   simd128 loads and stores, plus wazero guest memory
//	dispatch  detection of the widest usable register
//
// Move is the one operation defined here: an overlapping-safe copy inside a
// cell-backed buffer, built only from those wrappers.
package unaligned
