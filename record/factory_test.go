// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import (
	"errors"
	"fmt"
	"testing"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	if keys := r.Keys(); len(keys) != 0 {
		t.Errorf("Keys() of new record = %v", keys)
	}
	if n, ok := Size(r); !ok || n != 0 {
		t.Errorf("Size() = %d, %v; want 0, true", n, ok)
	}
}

func TestFromMap(t *testing.T) {
	t.Run("aliases the given map", func(t *testing.T) {
		m := linkedhashmap.New[string, int]()
		m.Put("asdf", 1234)
		r := FromMap(m)

		if v, _ := r.Get("asdf"); v != 1234 {
			t.Errorf("Get(asdf) = %d, want 1234", v)
		}

		r.Set("ghjk", 5678)
		if v, found := m.Get("ghjk"); !found || v != 5678 {
			t.Errorf("map.Get(ghjk) = %d, %v; write through record not visible", v, found)
		}

		m.Put("zxcv", 9)
		if !r.Has("zxcv") {
			t.Error("write through map not visible in record")
		}

		got, ok := Backing[string, int](r)
		if !ok || got != m {
			t.Error("Backing() must return the exact map passed to FromMap")
		}
	})

	t.Run("nil map", func(t *testing.T) {
		r := FromMap[string, int](nil)
		r.Set("a", 1)
		if m, ok := Backing[string, int](r); !ok || m.Size() != 1 {
			t.Error("FromMap(nil) must bind a fresh map")
		}
	})

	t.Run("two records share one map", func(t *testing.T) {
		m := linkedhashmap.New[string, int]()
		a, b := FromMap(m), FromMap(m)
		if a == b {
			t.Fatal("distinct records must not be equal")
		}
		a.Set("k", 1)
		if v, _ := b.Get("k"); v != 1 {
			t.Error("records over the same map must see each other's writes")
		}
	})
}

func TestFromGoMap(t *testing.T) {
	src := map[string]int{"ghjk": 5678, "asdf": 1234}
	r := FromGoMap(src)

	if diff := cmp.Diff([]string{"asdf", "ghjk"}, r.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	r.Set("qwer", 1)
	if _, ok := src["qwer"]; ok {
		t.Error("FromGoMap must copy, not alias")
	}
	r.Delete("asdf")
	if _, ok := src["asdf"]; !ok {
		t.Error("delete through record leaked into source map")
	}

	empty := FromGoMap[string, int](nil)
	if n, ok := Size(empty); !ok || n != 0 {
		t.Errorf("Size(FromGoMap(nil)) = %d, %v", n, ok)
	}
}

type account struct {
	ID      int    `mapstructure:"id"`
	Name    string `mapstructure:"name"`
	Balance float64
	Notes   string `mapstructure:"-"`
}

func TestFromStruct(t *testing.T) {
	src := account{ID: 7, Name: "alice", Balance: 12.5, Notes: "hidden"}
	r, err := FromStruct[any](src)
	if err != nil {
		t.Fatalf("FromStruct() error: %v", err)
	}

	want := []Entry[string, any]{
		{Key: "id", Value: 7},
		{Key: "name", Value: "alice"},
		{Key: "Balance", Value: 12.5},
	}
	if diff := cmp.Diff(want, r.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	r.Set("name", "bob")
	if src.Name != "alice" {
		t.Error("FromStruct must copy, not alias")
	}

	t.Run("pointer source", func(t *testing.T) {
		ptr := &account{ID: 1}
		r, err := FromStruct[any](ptr)
		if err != nil {
			t.Fatalf("FromStruct() error: %v", err)
		}
		r.Set("id", 2)
		if ptr.ID != 1 {
			t.Error("FromStruct(pointer) must copy, not alias")
		}
	})

	t.Run("typed values", func(t *testing.T) {
		type names struct {
			First, Last string
		}
		r, err := FromStruct[string](names{First: "a", Last: "b"})
		if err != nil {
			t.Fatalf("FromStruct() error: %v", err)
		}
		if diff := cmp.Diff([]string{"a", "b"}, r.Values()); diff != "" {
			t.Errorf("Values() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("interface values accept nil", func(t *testing.T) {
		type withErr struct {
			Err error
		}
		r, err := FromStruct[error](withErr{})
		if err != nil {
			t.Fatalf("FromStruct() error: %v", err)
		}
		if v, ok := r.Get("Err"); !ok || v != nil {
			t.Errorf("Get(Err) = %v, %v; want nil, true", v, ok)
		}
	})
}

func TestFromStruct_Errors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "not a struct",
			run: func() error {
				_, err := FromStruct[any](42)
				return err
			},
		},
		{
			name: "nil",
			run: func() error {
				_, err := FromStruct[any](nil)
				return err
			},
		},
		{
			name: "value not assignable",
			run: func() error {
				_, err := FromStruct[string](account{ID: 1})
				return err
			},
		},
		{
			name: "nil interface into concrete type",
			run: func() error {
				_, err := FromStruct[string](struct{ S fmt.Stringer }{})
				return err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if !errors.Is(err, ErrInvalidSource) {
				t.Errorf("error = %v, want ErrInvalidSource", err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("round trip through struct", func(t *testing.T) {
		src := account{ID: 7, Name: "alice", Balance: 12.5}
		r, err := FromStruct[any](src)
		if err != nil {
			t.Fatalf("FromStruct() error: %v", err)
		}
		r.Set("name", "bob")

		var got account
		if err := r.Decode(&got); err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		want := account{ID: 7, Name: "bob", Balance: 12.5}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("numeric keys into map", func(t *testing.T) {
		r := New[int, string]()
		r.Set(1, "one")
		r.Set(2, "two")

		var got map[string]string
		if err := r.Decode(&got); err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		want := map[string]string{"1": "one", "2": "two"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		r := New[string, any]()
		r.Set("id", "not a number")

		var got account
		if err := r.Decode(&got); !errors.Is(err, ErrDecode) {
			t.Errorf("Decode() error = %v, want ErrDecode", err)
		}
	})
}
