// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Key is the set of types usable as record keys.
//
// A floating-point NaN is never equal to itself, so it can be neither found
// nor replaced in a map. Records refuse NaN keys: Set and Define ignore them
// and every lookup reports them absent.
type Key interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map is the insertion-ordered map a record is bound to.
type Map[K Key, V any] = linkedhashmap.Map[K, V]

// Record is a record view over a Map.
//
// Create records with New, FromMap, FromGoMap or FromStruct. The zero Record
// reads as empty and binds a fresh map on its first write, as if made by New.
// A Record is not safe for concurrent mutation.
type Record[K Key, V any] struct {
	m      *Map[K, V]
	locked bool
	log    *slog.Logger
}

// Entry is a key/value pair in map order.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Get returns the value stored under key.
// A missing key yields the zero value and false.
func (r *Record[K, V]) Get(key K) (V, bool) {
	if r.m == nil {
		var zero V
		return zero, false
	}
	return r.m.Get(key)
}

// Set stores value under key. An existing key keeps its position.
// A NaN key is ignored.
func (r *Record[K, V]) Set(key K, value V) {
	if isNaN(key) {
		return
	}
	r.backing().Put(key, value)
}

// Delete removes key and reports whether it was present.
func (r *Record[K, V]) Delete(key K) bool {
	if !r.Has(key) {
		return false
	}
	r.m.Remove(key)
	return true
}

// Has reports whether key is present.
func (r *Record[K, V]) Has(key K) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the present keys in insertion order.
func (r *Record[K, V]) Keys() []K {
	if r.m == nil {
		return []K{}
	}
	return r.m.Keys()
}

// Values returns the present values in key order.
func (r *Record[K, V]) Values() []V {
	if r.m == nil {
		return []V{}
	}
	return r.m.Values()
}

// Entries returns the present pairs in insertion order.
func (r *Record[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, r.length())
	for k, v := range r.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// All iterates over the backing map in insertion order.
// The record must not be mutated during iteration.
func (r *Record[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if r.m == nil {
			return
		}
		it := r.m.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// String formats the record exactly as its backing map formats itself.
func (r *Record[K, V]) String() string {
	if r.m == nil {
		return linkedhashmap.New[K, V]().String()
	}
	return r.m.String()
}

// Describe returns the descriptor of key.
// Every present field is writable, enumerable and configurable.
func (r *Record[K, V]) Describe(key K) (Descriptor[V], bool) {
	v, ok := r.Get(key)
	if !ok {
		return Descriptor[V]{}, false
	}
	return Descriptor[V]{
		Value:        v,
		HasValue:     true,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	}, true
}

// Define stores d.Value under key when d carries a value and the record is
// extensible. The flags on d are ignored, so a field can never be made
// read-only. It reports whether the value was stored; a NaN key never is.
func (r *Record[K, V]) Define(key K, d Descriptor[V]) bool {
	if !d.HasValue || r.locked || isNaN(key) {
		return false
	}
	r.backing().Put(key, d.Value)
	return true
}

// PreventExtensions makes every later Define return false.
// Set and Delete are unaffected.
func (r *Record[K, V]) PreventExtensions() {
	r.locked = true
}

// IsExtensible reports whether Define still accepts values.
func (r *Record[K, V]) IsExtensible() bool {
	return !r.locked
}

// Prototype returns NullPrototype.
func (r *Record[K, V]) Prototype() *Prototype {
	return NullPrototype
}

// SetPrototype always fails with ErrInvalidOperation.
func (r *Record[K, V]) SetPrototype(p any) error {
	r.logger().Debug("refused prototype replacement", "prototype", fmt.Sprintf("%T", p))
	return fmt.Errorf("set prototype to %T: %w", p, ErrInvalidOperation)
}

// boundSize reports the size of the map bound to r in the registry.
func (r *Record[K, V]) boundSize() (int, bool) {
	b, ok := registryFor[K, V]().Resolve(r)
	if !ok {
		return 0, false
	}
	return b.m.Size(), true
}

// backing returns the bound map, binding a new one to a zero Record.
func (r *Record[K, V]) backing() *Map[K, V] {
	if r.m == nil {
		r.m = linkedhashmap.New[K, V]()
		r.log = slog.Default()
		registryFor[K, V]().Bind(r, binding[K, V]{m: r.m, log: r.log})
	}
	return r.m
}

func (r *Record[K, V]) length() int {
	if r.m == nil {
		return 0
	}
	return r.m.Size()
}

func (r *Record[K, V]) logger() *slog.Logger {
	if r.log == nil {
		return slog.Default()
	}
	return r.log
}

// isNaN reports whether k is a floating-point NaN.
func isNaN[K Key](k K) bool {
	return k != k
}
