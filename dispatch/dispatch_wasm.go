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

//go:build wasm

package dispatch

func detectCPU(s *state) {
	// The Go wasm port does not emit simd128 and cannot probe the host for
	// it, so guests report scalar. Hosts that run wasm modules through
	// package wasm128 use the same 16-byte chunking.
	s.setScalar()
}
