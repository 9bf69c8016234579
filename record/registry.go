// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/albertocavalcante/mapject/internal/weakreg"
)

// binding is what the registry holds for a live record: its map and the
// logger that reports its release.
type binding[K Key, V any] struct {
	m   *Map[K, V]
	log *slog.Logger
}

// registries holds one weak registry per Record instantiation,
// keyed by reflect.Type.
var registries sync.Map

func registryFor[K Key, V any]() *weakreg.Registry[Record[K, V], binding[K, V]] {
	t := reflect.TypeFor[Record[K, V]]()
	if reg, ok := registries.Load(t); ok {
		return reg.(*weakreg.Registry[Record[K, V], binding[K, V]])
	}

	reg := weakreg.New[Record[K, V], binding[K, V]]()
	name := t.String()
	reg.OnRelease(func(b binding[K, V]) {
		b.log.Debug("record released", "type", name)
	})
	actual, _ := registries.LoadOrStore(t, reg)
	return actual.(*weakreg.Registry[Record[K, V], binding[K, V]])
}

// Backing returns the map bound to v when v is a *Record[K, V] created by
// this package. Any other value, including records of a different
// instantiation, yields nil and false.
func Backing[K Key, V any](v any) (*Map[K, V], bool) {
	r, ok := v.(*Record[K, V])
	if !ok || r == nil {
		return nil, false
	}
	b, ok := registryFor[K, V]().Resolve(r)
	if !ok {
		return nil, false
	}
	return b.m, true
}

// Size returns the number of entries in the map bound to v, for a record of
// any instantiation. Values that are not records yield 0 and false.
func Size(v any) (int, bool) {
	s, ok := v.(interface{ boundSize() (int, bool) })
	if !ok {
		return 0, false
	}
	return s.boundSize()
}
