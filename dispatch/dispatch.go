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

// Package dispatch reports which unaligned load/store families the running
// CPU can execute and the widest register the wrappers may use.
//
// Detection runs once at init. The environment can narrow the result:
//
//	UNALIGNED_NO_SIMD=1       report scalar only
//	UNALIGNED_MAX_WIDTH=16    cap the register width at 16, 32 or 64 bytes
package dispatch

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Level represents the widest instruction set family available.
type Level int

const (
	// LevelScalar indicates no vector loads, plain Go copies only.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX indicates AVX (256-bit loads and stores).
	LevelAVX

	// LevelAVX2 indicates AVX2 (256-bit integer operations).
	LevelAVX2

	// LevelAVX512 indicates AVX-512F and AVX-512BW (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSIMD128 indicates WebAssembly simd128 (128-bit).
	LevelSIMD128
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX:
		return "avx"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSIMD128:
		return "simd128"
	default:
		return "unknown"
	}
}

// Width returns the register width of the level in bytes.
func (l Level) Width() int {
	switch l {
	case LevelAVX, LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 16
	}
}

// Feature is a single CPU capability a wrapper family depends on.
type Feature int

const (
	SSE Feature = iota
	SSE2
	SSE41
	AVX
	AVX2
	AVX512F
	AVX512BW
	AVX512VL
	AVX512VBMI2
	NEON
	SIMD128
	numFeatures
)

var featureNames = [numFeatures]string{
	SSE:         "sse",
	SSE2:        "sse2",
	SSE41:       "sse4.1",
	AVX:         "avx",
	AVX2:        "avx2",
	AVX512F:     "avx512f",
	AVX512BW:    "avx512bw",
	AVX512VL:    "avx512vl",
	AVX512VBMI2: "avx512vbmi2",
	NEON:        "neon",
	SIMD128:     "simd128",
}

func (f Feature) String() string {
	if f < 0 || f >= numFeatures {
		return "unknown"
	}
	return featureNames[f]
}

// state is the detection result. It is written by detect and read by the
// accessors below.
type state struct {
	level    Level
	width    int
	name     string
	features [numFeatures]bool
}

var current state

// CurrentLevel returns the detected instruction set family.
func CurrentLevel() Level {
	return current.level
}

// CurrentWidth returns the widest register in bytes the wrappers may use.
// For example: 16 for SSE2/NEON, 32 for AVX, 64 for AVX-512.
func CurrentWidth() int {
	return current.width
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return current.name
}

// Has reports whether the CPU supports f and it was not disabled through
// the environment.
func Has(f Feature) bool {
	if f < 0 || f >= numFeatures {
		return false
	}
	return current.features[f]
}

// Features returns the names of the available features.
func Features() []string {
	var out []string
	for f := Feature(0); f < numFeatures; f++ {
		if current.features[f] {
			out = append(out, f.String())
		}
	}
	return out
}

// NoSimdEnv checks if the UNALIGNED_NO_SIMD environment variable is set.
// When set, detection reports scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("UNALIGNED_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxWidthEnv returns the width cap from UNALIGNED_MAX_WIDTH, or 0 when it
// is unset or invalid.
func MaxWidthEnv() int {
	val := strings.TrimSpace(os.Getenv("UNALIGNED_MAX_WIDTH"))
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || (n != 16 && n != 32 && n != 64) {
		Logger().Warn("ignoring invalid UNALIGNED_MAX_WIDTH",
			zap.String("value", val),
			zap.Ints("accepted", []int{16, 32, 64}))
		return 0
	}
	return n
}

// Redetect re-reads the CPU features and the environment. Not safe to call
// concurrently with the accessors.
func Redetect() {
	detect()
}

func init() {
	detect()
}

func detect() {
	var s state
	if NoSimdEnv() {
		s.setScalar()
	} else {
		detectCPU(&s)
	}
	if limit := MaxWidthEnv(); limit > 0 {
		s.capWidth(limit)
	}
	current = s
	Logger().Debug("detected unaligned load/store target",
		zap.String("level", s.level.String()),
		zap.Int("width", s.width),
		zap.Strings("features", Features()))
}

func (s *state) setScalar() {
	s.level = LevelScalar
	s.width = 16 // 16-byte chunks even in scalar mode for consistency
	s.name = "scalar"
	s.features = [numFeatures]bool{}
}

func (s *state) set(l Level) {
	s.level = l
	s.width = l.Width()
	s.name = l.String()
}

// capWidth lowers the reported level until its width fits limit, dropping
// the features of the levels it passes.
func (s *state) capWidth(limit int) {
	for s.width > limit {
		switch s.level {
		case LevelAVX512:
			s.features[AVX512F] = false
			s.features[AVX512BW] = false
			s.features[AVX512VL] = false
			s.features[AVX512VBMI2] = false
			if s.features[AVX2] {
				s.set(LevelAVX2)
			} else {
				s.set(LevelAVX)
			}
		case LevelAVX2, LevelAVX:
			s.features[AVX] = false
			s.features[AVX2] = false
			s.set(LevelSSE2)
		default:
			s.width = limit
		}
	}
}
