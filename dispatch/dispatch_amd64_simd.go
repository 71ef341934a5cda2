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

//go:build amd64 && goexperiment.simd

package dispatch

import "simd/archsimd"

func detectCPU(s *state) {
	readX86Features(s)

	// archsimd also accounts for OS support of the wider register files.
	s.features[AVX] = s.features[AVX] && archsimd.X86.AVX()
	s.features[AVX2] = s.features[AVX2] && archsimd.X86.AVX2()
	if !archsimd.X86.AVX512() {
		s.features[AVX512F] = false
		s.features[AVX512BW] = false
		s.features[AVX512VL] = false
		s.features[AVX512VBMI2] = false
	}
	pickX86Level(s)
}
