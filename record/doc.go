// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package record exposes an insertion-ordered map through a plain record
// interface.
//
// A [Record] answers field reads, writes, deletes, presence checks,
// enumeration and descriptor queries by forwarding each one to a backing
// [Map]. The map keeps insertion order, accepts string or numeric keys, and
// can be supplied by the caller:
//
//	m := linkedhashmap.New[string, int]()
//	r := record.FromMap(m)
//	r.Set("a", 1) // visible through m as well
//
// Names such as "constructor", "prototype" and "__proto__" are ordinary keys.
// A record has no parent: [Record.Prototype] always returns [NullPrototype]
// and [Record.SetPrototype] always fails with [ErrInvalidOperation].
//
// The map behind a record is not one of its fields. It is reachable only
// through [Backing] and [Size], which consult a process-wide table that does
// not keep records alive.
package record
