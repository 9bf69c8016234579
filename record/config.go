// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package record

import "log/slog"

// Config contains record construction options.
type Config struct {
	// Logger receives debug events: binding, refused prototype changes and
	// release of the registry entry after collection.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Option configures a record at construction.
type Option func(*Config)

// WithLogger sets the logger used by the record.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
