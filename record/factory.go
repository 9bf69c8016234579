// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"

	"github.com/albertocavalcante/mapject/internal/fields"
)

// New returns a record bound to a new empty map.
func New[K Key, V any](opts ...Option) *Record[K, V] {
	return bind(linkedhashmap.New[K, V](), "empty", opts)
}

// FromMap returns a record bound to m itself. Writes through the record are
// visible in m and the other way round. A nil m behaves like New.
func FromMap[K Key, V any](m *Map[K, V], opts ...Option) *Record[K, V] {
	if m == nil {
		return New[K, V](opts...)
	}
	return bind(m, "map", opts)
}

// FromGoMap returns a record bound to a new map holding a copy of src.
// Entries are inserted in ascending key order.
func FromGoMap[K Key, V any](src map[K]V, opts ...Option) *Record[K, V] {
	m := linkedhashmap.New[K, V]()
	for _, k := range fields.SortedKeys(src) {
		if isNaN(k) {
			continue
		}
		m.Put(k, src[k])
	}
	return bind(m, "go map", opts)
}

// FromStruct returns a record bound to a new map holding the exported fields
// of src, a struct or pointer to struct, in declaration order.
//
// Field names follow `mapstructure` tags, so Decode reverses the copy.
// Every copied value must be assignable to V.
func FromStruct[V any](src any, opts ...Option) (*Record[string, V], error) {
	fs, err := fields.Struct(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	m := linkedhashmap.New[string, V]()
	for _, f := range fs {
		v, ok := assign[V](f.Value)
		if !ok {
			return nil, fmt.Errorf("%w: field %q of type %T is not assignable to %s",
				ErrInvalidSource, f.Name, f.Value, reflect.TypeFor[V]())
		}
		m.Put(f.Name, v)
	}
	return bind(m, "struct", opts), nil
}

func bind[K Key, V any](m *Map[K, V], source string, opts []Option) *Record[K, V] {
	cfg := newConfig(opts)
	r := &Record[K, V]{m: m, log: cfg.Logger}
	registryFor[K, V]().Bind(r, binding[K, V]{m: m, log: r.log})
	r.log.Debug("record bound", "source", source, "entries", m.Size())
	return r
}

// assign converts x to V. A nil x converts only when V is an interface.
func assign[V any](x any) (V, bool) {
	if x == nil {
		var zero V
		return zero, reflect.TypeFor[V]().Kind() == reflect.Interface
	}
	v, ok := x.(V)
	return v, ok
}
