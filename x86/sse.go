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

package x86

import "unsafe"

// Load1PS loads one float32 into all 4 lanes (_mm_load1_ps).
func Load1PS(p *float32) (r M128) {
	splat(r[:], *p)
	return r
}

// LoadPS1 is Load1PS (_mm_load_ps1).
func LoadPS1(p *float32) M128 {
	return Load1PS(p)
}

// LoadSS loads one float32 into lane 0 and zeroes the rest (_mm_load_ss).
func LoadSS(p *float32) (r M128) {
	setLane(r[:], 0, *p)
	return r
}

// LoaduPS loads 4 float32 values (_mm_loadu_ps).
func LoaduPS(p *[4]float32) M128 {
	return *(*M128)(unsafe.Pointer(p))
}

// StoreSS stores lane 0 (_mm_store_ss).
func StoreSS(p *float32, a M128) {
	*p = lane[float32](a[:], 0)
}

// StoreuPS stores 4 float32 values (_mm_storeu_ps).
func StoreuPS(p *[4]float32, a M128) {
	*(*M128)(unsafe.Pointer(p)) = a
}
