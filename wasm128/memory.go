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

package wasm128

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
)

var (
	// ErrOutOfRange is returned when an access does not fit in guest memory.
	ErrOutOfRange = errors.New("wasm128: access out of guest memory range")

	// ErrMisaligned is returned by GuestRef when the guest address does not
	// satisfy the alignment of the requested Go type.
	ErrMisaligned = errors.New("wasm128: guest address misaligned for type")
)

// guestBytes returns the 16 byte window of mem at offset. The slice aliases
// guest memory and is valid until the memory grows.
func guestBytes(mem api.Memory, offset uint32) (*[16]byte, error) {
	b, ok := mem.Read(offset, 16)
	if !ok {
		return nil, fmt.Errorf("offset %d, size %d: %w", offset, mem.Size(), ErrOutOfRange)
	}
	return (*[16]byte)(b), nil
}

// LoadGuest performs a v128.load from guest memory at offset.
func LoadGuest(mem api.Memory, offset uint32) (V128, error) {
	b, err := guestBytes(mem, offset)
	if err != nil {
		return V128{}, err
	}
	return V128Load(b), nil
}

// StoreGuest performs a v128.store into guest memory at offset.
func StoreGuest(mem api.Memory, offset uint32, v V128) error {
	b, err := guestBytes(mem, offset)
	if err != nil {
		return err
	}
	V128Store(b, v)
	return nil
}

// GuestRef returns a typed reference into guest memory at offset. Guest
// addresses carry no alignment guarantee, so the address must satisfy the
// alignment of T; byte arrays and cells of bytes are accepted at any offset.
// The reference is invalidated when the memory grows.
func GuestRef[T Is16BytesUnaligned](mem api.Memory, offset uint32) (*T, error) {
	b, err := guestBytes(mem, offset)
	if err != nil {
		return nil, err
	}
	var zero T
	if align := unsafe.Alignof(zero); uintptr(unsafe.Pointer(b))%align != 0 {
		return nil, fmt.Errorf("offset %d for %T (align %d): %w", offset, zero, align, ErrMisaligned)
	}
	return (*T)(unsafe.Pointer(b)), nil
}
