// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

import "go.uber.org/zap"

// DefaultEdgeCacheSize is the number of (parent, symbol) lookups kept by
// DefaultConfig.
const DefaultEdgeCacheSize = 8192

// Config tunes a Tree or Set. A nil or zero Config is valid: children are
// then found by a plain linear scan and nothing is logged.
type Config struct {
	// EdgeCacheSize enables a bounded child index keyed by (parent, symbol)
	// when greater than zero. Worth it for wide alphabets, where the linear
	// scan over a node's children dominates lookups.
	EdgeCacheSize int

	// ExpectedNodes pre-sizes the node arena.
	ExpectedNodes int

	// Logger receives debug entries for rejected updates and Clear.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with the edge cache enabled.
func DefaultConfig() *Config {
	return &Config{
		EdgeCacheSize: DefaultEdgeCacheSize,
		Logger:        zap.NewNop(),
	}
}

func (c *Config) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Config) edgeCacheSize() int {
	if c == nil || c.EdgeCacheSize < 0 {
		return 0
	}
	return c.EdgeCacheSize
}

func (c *Config) expectedNodes() int {
	if c == nil || c.ExpectedNodes < 1 {
		return 1
	}
	return c.ExpectedNodes
}
