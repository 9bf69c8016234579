// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import "errors"

var (
	// ErrInvalidOperation is returned when replacing a record's prototype.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidSource is returned by FromStruct for sources it cannot copy.
	ErrInvalidSource = errors.New("invalid record source")

	// ErrDecode is returned when a record cannot be decoded into a Go value.
	ErrDecode = errors.New("decode record")
)
