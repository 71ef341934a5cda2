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

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

// readX86Features copies the x86 feature bits from x/sys/cpu.
func readX86Features(s *state) {
	s.features[SSE] = true // part of the amd64 baseline
	s.features[SSE2] = cpu.X86.HasSSE2
	s.features[SSE41] = cpu.X86.HasSSE41
	s.features[AVX] = cpu.X86.HasAVX
	s.features[AVX2] = cpu.X86.HasAVX2
	s.features[AVX512F] = cpu.X86.HasAVX512F
	s.features[AVX512BW] = cpu.X86.HasAVX512BW
	s.features[AVX512VL] = cpu.X86.HasAVX512VL
	s.features[AVX512VBMI2] = cpu.X86.HasAVX512VBMI2
}

func pickX86Level(s *state) {
	switch {
	case s.features[AVX512F] && s.features[AVX512BW]:
		s.set(LevelAVX512)
	case s.features[AVX2]:
		s.set(LevelAVX2)
	case s.features[AVX]:
		s.set(LevelAVX)
	default:
		// SSE2 is baseline for amd64
		s.set(LevelSSE2)
	}
}
