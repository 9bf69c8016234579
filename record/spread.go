// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ToMap copies the record into a Go map holding exactly its current pairs.
func (r *Record[K, V]) ToMap() map[K]V {
	out := make(map[K]V, r.length())
	for k, v := range r.All() {
		out[k] = v
	}
	return out
}

// Decode copies the record into out, a pointer to a struct or map, using
// mapstructure. Keys are rendered with fmt.Sprint.
func (r *Record[K, V]) Decode(out any) error {
	src := make(map[string]any, r.length())
	for k, v := range r.All() {
		src[fmt.Sprint(k)] = v
	}
	if err := mapstructure.Decode(src, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
