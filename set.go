// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

import (
	"iter"

	"go.uber.org/zap"
)

// Set records sequences without values.
//
// Membership is structural: a sequence is reported present when its path
// exists and ends in a node without children. Adding a longer sequence
// through an existing one therefore hides the shorter one, e.g. after
// adding "a" and "ab" only "ab" is a key. Use a Tree with struct{} values
// when every added sequence must stay a key.
type Set[S comparable] struct {
	arena  *arena[S, struct{}]
	logger *zap.Logger
}

// NewSet returns an empty set.
func NewSet[S comparable]() *Set[S] {
	return NewSetWithConfig[S](nil)
}

// NewSetWithConfig returns an empty set tuned by cfg, which may be nil.
func NewSetWithConfig[S comparable](cfg *Config) *Set[S] {
	return &Set[S]{
		arena:  newArena[S, struct{}](cfg),
		logger: cfg.logger(),
	}
}

// Add records key, creating the nodes it does not share with earlier
// sequences.
func (s *Set[S]) Add(key iter.Seq[S]) {
	s.arena.insert(key)
}

// HasKey reports whether key leads to a node without children.
func (s *Set[S]) HasKey(key iter.Seq[S]) bool {
	id, _, ok := s.arena.walk(key)
	return ok && s.arena.get(id).isLeaf()
}

func (s *Set[S]) IsEmpty() bool {
	return s.arena.get(rootID).isLeaf()
}

func (s *Set[S]) Clear() {
	dropped := s.arena.reset()
	s.logger.Debug("gtrie: set cleared", zap.Int("nodes", dropped))
}

func (s *Set[S]) NodeCount() int {
	return s.arena.size()
}

// Dump renders the node structure, one line per node.
func (s *Set[S]) Dump() string {
	return s.arena.dump(keyLabel[S, struct{}])
}
