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

// Broadcast256PD copies a 128-bit register of 2 float64 into both halves
// (_mm256_broadcast_pd).
func Broadcast256PD(p *M128d) (r M256d) {
	copy(r[:16], p[:])
	copy(r[16:], p[:])
	return r
}

// Broadcast256PS copies a 128-bit register of 4 float32 into both halves
// (_mm256_broadcast_ps).
func Broadcast256PS(p *M128) (r M256) {
	copy(r[:16], p[:])
	copy(r[16:], p[:])
	return r
}

// Broadcast256SD loads one float64 into all 4 lanes (_mm256_broadcast_sd).
func Broadcast256SD(p *float64) (r M256d) {
	splat(r[:], *p)
	return r
}

// BroadcastSS loads one float32 into all 4 lanes (_mm_broadcast_ss).
func BroadcastSS(p *float32) (r M128) {
	splat(r[:], *p)
	return r
}

// Broadcast256SS loads one float32 into all 8 lanes (_mm256_broadcast_ss).
func Broadcast256SS(p *float32) (r M256) {
	splat(r[:], *p)
	return r
}

// Loadu256PD loads 4 float64 values (_mm256_loadu_pd).
func Loadu256PD(p *[4]float64) M256d {
	return *(*M256d)(unsafe.Pointer(p))
}

// Loadu256PS loads 8 float32 values (_mm256_loadu_ps).
func Loadu256PS(p *[8]float32) M256 {
	return *(*M256)(unsafe.Pointer(p))
}

// LoaduSi256 loads 32 bytes (_mm256_loadu_si256).
func LoaduSi256[T Is256BitsUnaligned](p *T) M256i {
	return *(*M256i)(unsafe.Pointer(p))
}

// Loadu2M128 loads two independent 128-bit halves (_mm256_loadu2_m128).
func Loadu2M128(hi, lo *[4]float32) (r M256) {
	copy(r[:16], (*[16]byte)(unsafe.Pointer(lo))[:])
	copy(r[16:], (*[16]byte)(unsafe.Pointer(hi))[:])
	return r
}

// Loadu2M128d loads two independent 128-bit halves (_mm256_loadu2_m128d).
func Loadu2M128d(hi, lo *[2]float64) (r M256d) {
	copy(r[:16], (*[16]byte)(unsafe.Pointer(lo))[:])
	copy(r[16:], (*[16]byte)(unsafe.Pointer(hi))[:])
	return r
}

// Loadu2M128i loads two independent 128-bit halves (_mm256_loadu2_m128i).
func Loadu2M128i[T Is128BitsUnaligned](hi, lo *T) (r M256i) {
	copy(r[:16], (*[16]byte)(unsafe.Pointer(lo))[:])
	copy(r[16:], (*[16]byte)(unsafe.Pointer(hi))[:])
	return r
}

// Storeu256PD stores 4 float64 values (_mm256_storeu_pd).
func Storeu256PD(p *[4]float64, a M256d) {
	*(*M256d)(unsafe.Pointer(p)) = a
}

// Storeu256PS stores 8 float32 values (_mm256_storeu_ps).
func Storeu256PS(p *[8]float32, a M256) {
	*(*M256)(unsafe.Pointer(p)) = a
}

// StoreuSi256 stores 32 bytes (_mm256_storeu_si256).
func StoreuSi256[T Is256BitsUnaligned](p *T, a M256i) {
	*(*M256i)(unsafe.Pointer(p)) = a
}

// Storeu2M128 stores the halves of a to two independent locations
// (_mm256_storeu2_m128).
func Storeu2M128(hi, lo *[4]float32, a M256) {
	*(*[16]byte)(unsafe.Pointer(lo)) = [16]byte(a[:16])
	*(*[16]byte)(unsafe.Pointer(hi)) = [16]byte(a[16:])
}

// Storeu2M128d stores the halves of a to two independent locations
// (_mm256_storeu2_m128d).
func Storeu2M128d(hi, lo *[2]float64, a M256d) {
	*(*[16]byte)(unsafe.Pointer(lo)) = [16]byte(a[:16])
	*(*[16]byte)(unsafe.Pointer(hi)) = [16]byte(a[16:])
}

// Storeu2M128i stores the halves of a to two independent locations
// (_mm256_storeu2_m128i).
func Storeu2M128i[T Is128BitsUnaligned](hi, lo *T, a M256i) {
	*(*[16]byte)(unsafe.Pointer(lo)) = [16]byte(a[:16])
	*(*[16]byte)(unsafe.Pointer(hi)) = [16]byte(a[16:])
}
