// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Tree maps sequences of symbols to values. Sequences sharing a prefix
// share the nodes of that prefix. A sequence is a key of the tree when the
// node it leads to holds a value, whether or not longer keys run through
// that node.
//
// Values are copied by assignment on read and write. A Tree is not safe
// for concurrent use.
type Tree[S comparable, V any] struct {
	arena  *arena[S, V]
	logger *zap.Logger
}

// NewTree returns an empty tree that finds children by linear scan.
func NewTree[S comparable, V any]() *Tree[S, V] {
	return NewTreeWithConfig[S, V](nil)
}

// NewTreeWithConfig returns an empty tree tuned by cfg, which may be nil.
func NewTreeWithConfig[S comparable, V any](cfg *Config) *Tree[S, V] {
	return &Tree[S, V]{
		arena:  newArena[S, V](cfg),
		logger: cfg.logger(),
	}
}

// IsEmpty reports whether the root has no children.
func (t *Tree[S, V]) IsEmpty() bool {
	return t.arena.get(rootID).isLeaf()
}

// NodeCount returns the number of nodes held, root included.
func (t *Tree[S, V]) NodeCount() int {
	return t.arena.size()
}

// Add stores value under key, creating the nodes key does not share with
// keys already present. An existing value is overwritten. The empty
// sequence is not a key and is ignored.
func (t *Tree[S, V]) Add(key iter.Seq[S], value V) {
	id, depth := t.arena.insert(key)
	if depth == 0 {
		return
	}
	t.arena.get(id).setValue(value)
}

// HasKey reports whether a value is stored under key.
func (t *Tree[S, V]) HasKey(key iter.Seq[S]) bool {
	id, _, ok := t.arena.walk(key)
	if !ok {
		return false
	}
	_, found := t.arena.get(id).getValue()
	return found
}

// Get returns the value stored under key.
func (t *Tree[S, V]) Get(key iter.Seq[S]) (V, bool) {
	var zero V
	id, _, ok := t.arena.walk(key)
	if !ok {
		return zero, false
	}
	return t.arena.get(id).getValue()
}

// SetValue overwrites the value under an existing path. Unlike Add it never
// creates nodes: when key does not resolve ErrKeyNotFound is returned and
// the tree is left untouched. A path that exists only as a prefix of other
// keys resolves and gains a value.
func (t *Tree[S, V]) SetValue(key iter.Seq[S], value V) error {
	id, depth, ok := t.arena.walk(key)
	if !ok {
		return t.reject("SetValue", ErrKeyNotFound, depth)
	}
	t.arena.get(id).setValue(value)
	return nil
}

// ApplyOnValue calls fn with a copy of the value stored under key and
// stores the result. It returns ErrKeyNotFound when key does not resolve
// and ErrValueAbsent when it resolves to a node without a value; fn is not
// called in either case.
func (t *Tree[S, V]) ApplyOnValue(key iter.Seq[S], fn func(*V)) error {
	if fn == nil {
		panic("gtrie: nil mutator")
	}
	id, depth, ok := t.arena.walk(key)
	if !ok {
		return t.reject("ApplyOnValue", ErrKeyNotFound, depth)
	}
	value, found := t.arena.get(id).getValue()
	if !found {
		return t.reject("ApplyOnValue", ErrValueAbsent, depth)
	}
	generation := t.arena.generation
	fn(&value)
	if t.arena.generation != generation {
		// fn cleared the tree; the node is gone.
		return t.reject("ApplyOnValue", ErrKeyNotFound, depth)
	}
	t.arena.get(id).setValue(value)
	return nil
}

// Clear drops every key. The tree is empty afterwards and cursors obtained
// before the call stop matching.
func (t *Tree[S, V]) Clear() {
	dropped := t.arena.reset()
	t.logger.Debug("gtrie: tree cleared", zap.Int("nodes", dropped))
}

// Cursor returns a cursor positioned at the root.
func (t *Tree[S, V]) Cursor() *Cursor[S, V] {
	c := &Cursor[S, V]{arena: t.arena}
	c.Reset()
	return c
}

// Dump renders the node structure, one line per node, with stored values
// next to their keys.
func (t *Tree[S, V]) Dump() string {
	return t.arena.dump(func(n *node[S, V]) string {
		if value, ok := n.getValue(); ok {
			return fmt.Sprintf("%s: %v", keyLabel(n), value)
		}
		return keyLabel(n)
	})
}

func (t *Tree[S, V]) reject(op string, err error, depth int) error {
	t.logger.Debug("gtrie: value not updated",
		zap.String("op", op),
		zap.Int("matched", depth),
		zap.Error(err),
	)
	return err
}
