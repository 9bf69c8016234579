// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

// Descriptor describes a single field.
type Descriptor[V any] struct {
	// Value is the field value.
	Value V

	// HasValue marks Value as set. Define ignores descriptors without one.
	HasValue bool

	// Writable, Enumerable and Configurable are reported as true by
	// Describe and ignored by Define.
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// ValueDescriptor returns a descriptor carrying v.
func ValueDescriptor[V any](v V) Descriptor[V] {
	return Descriptor[V]{Value: v, HasValue: true}
}

// Prototype is the parent marker of a record. It has no fields and no
// behavior.
type Prototype struct {
	_ byte
}

// NullPrototype is returned by Prototype for every record.
var NullPrototype = &Prototype{}
