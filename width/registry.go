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

package width

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNotCertified is returned when a type belongs to no capability family.
	ErrNotCertified = errors.New("width: type is not certified")

	// ErrWidthMismatch is returned when a type is certified for another width.
	ErrWidthMismatch = errors.New("width: certified for a different width")
)

// Entry describes one member of a capability family.
type Entry struct {
	Width Width
	Type  reflect.Type
	Kind  Kind
	Form  Form
}

var (
	indexOnce sync.Once
	byType    map[reflect.Type]Entry
)

func index() map[reflect.Type]Entry {
	indexOnce.Do(func() {
		byType = make(map[reflect.Type]Entry, len(entries))
		for _, e := range entries {
			byType[e.Type] = e
		}
	})
	return byType
}

// Entries returns every certified type across all widths.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EntriesFor returns the certified types of width w.
func EntriesFor(w Width) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Width == w {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the entry for t. Named types are matched by their underlying
// type, the same way the ~ terms of the constraint families match them.
func Lookup(t reflect.Type) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := index()[canonical(t)]
	return e, ok
}

// Check reports whether T is certified for exactly w.
func Check[T any](w Width) error {
	t := reflect.TypeFor[T]()
	e, ok := Lookup(t)
	if !ok {
		return fmt.Errorf("%v: %w", t, ErrNotCertified)
	}
	if e.Width != w {
		return fmt.Errorf("%v is %v, want %v: %w", t, e.Width, w, ErrWidthMismatch)
	}
	return nil
}

var basics = map[reflect.Kind]reflect.Type{
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
}

// canonical maps t to its underlying type for the kinds the families match
// with ~ terms. Array elements are kept exact, matching the [N]E and
// [N]Cell[E] terms; cells themselves are never renamed.
func canonical(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Array:
		return reflect.ArrayOf(t.Len(), t.Elem())
	default:
		if b, ok := basics[t.Kind()]; ok {
			return b
		}
		return t
	}
}
