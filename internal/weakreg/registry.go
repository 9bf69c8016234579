// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package weakreg provides a side table keyed by pointer identity that does
// not keep its keys alive.
package weakreg

import (
	"runtime"
	"sync"
	"weak"
)

// Registry associates *T handles with values of type B.
//
// Entries are keyed by weak pointers, so a handle referenced only by the
// registry is still collected. Once collected, its entry is removed by a
// cleanup attached in Bind.
type Registry[T, B any] struct {
	mu      sync.RWMutex
	entries map[weak.Pointer[T]]B

	// onRelease is called with the dropped value after a cleanup removes an
	// entry.
	onRelease func(B)
}

// New returns an empty registry.
func New[T, B any]() *Registry[T, B] {
	return &Registry[T, B]{
		entries: make(map[weak.Pointer[T]]B),
	}
}

// OnRelease installs a hook run each time an entry is released.
// It must be set before the first Bind.
func (r *Registry[T, B]) OnRelease(fn func(B)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRelease = fn
}

// Bind associates h with b. Binding the same handle again replaces b.
func (r *Registry[T, B]) Bind(h *T, b B) {
	if h == nil {
		panic("weakreg: bind of nil handle")
	}
	wp := weak.Make(h)

	r.mu.Lock()
	_, rebind := r.entries[wp]
	r.entries[wp] = b
	r.mu.Unlock()

	if !rebind {
		runtime.AddCleanup(h, r.release, wp)
	}
}

// Resolve returns the value bound to h.
func (r *Registry[T, B]) Resolve(h *T) (B, bool) {
	if h == nil {
		var zero B
		return zero, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.entries[weak.Make(h)]
	return b, ok
}

// Len returns the number of live entries.
func (r *Registry[T, B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry[T, B]) release(wp weak.Pointer[T]) {
	r.mu.Lock()
	b, ok := r.entries[wp]
	delete(r.entries, wp)
	hook := r.onRelease
	r.mu.Unlock()

	if ok && hook != nil {
		hook(b)
	}
}
