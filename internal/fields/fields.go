// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fields flattens Go structs and maps into ordered (name, value)
// pairs.
//
// Struct fields are read in declaration order. Names follow the same
// `mapstructure` tag rules that are used when decoding a record back into a
// struct, so the two directions round-trip.
package fields

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// TagName is the struct tag consulted for field names.
const TagName = "mapstructure"

// ErrNotStruct is returned when the source is not a struct or a non-nil
// pointer to one.
var ErrNotStruct = errors.New("source is not a struct")

// Field is one flattened struct field.
type Field struct {
	Name  string
	Value any
}

// Struct returns the exported fields of src in declaration order.
//
// A tag of "-" skips the field. An embedded struct tagged ",squash" has its
// fields spliced in at its position. When two fields share a name the later
// value wins and the first position is kept.
func Struct(src any) ([]Field, error) {
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrNotStruct, v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: nil", ErrNotStruct)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, v.Type())
	}

	set := newFieldSet()
	collect(v, set)
	if set.fields == nil {
		return []Field{}, nil
	}
	return set.fields, nil
}

func collect(v reflect.Value, set *fieldSet) {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, squash, skip := parseTag(sf)
		if skip {
			continue
		}

		fv := v.Field(i)
		if squash {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				collect(fv, set)
				continue
			}
		}
		set.add(name, fv.Interface())
	}
}

// parseTag reports the key for sf and whether it is squashed or skipped.
func parseTag(sf reflect.StructField) (name string, squash, skip bool) {
	name = sf.Name
	tag, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return name, false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return "", false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "squash" {
			squash = sf.Anonymous
		}
	}
	return name, squash, false
}

// SortedKeys returns the keys of m in ascending order.
// Go maps have no enumeration order, so this is the order used when a record
// is built from one.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
