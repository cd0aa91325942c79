// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

// Cursor matches a sequence against a Tree one symbol at a time, for input
// that arrives incrementally or where the caller wants every key met along
// the way. Once a symbol fails to match the cursor stays dead until Reset.
//
// Adding keys while a cursor is live is fine; Clear invalidates it.
type Cursor[S comparable, V any] struct {
	arena      *arena[S, V]
	node       nodeID
	depth      int
	dead       bool
	generation uint64
}

// Reset moves the cursor back to the root.
func (c *Cursor[S, V]) Reset() {
	c.node = rootID
	c.depth = 0
	c.dead = false
	c.generation = c.arena.generation
}

// Valid reports whether every symbol fed so far matched.
func (c *Cursor[S, V]) Valid() bool {
	return !c.dead && c.generation == c.arena.generation
}

// Next advances over sym and reports whether the tree has that edge.
func (c *Cursor[S, V]) Next(sym S) bool {
	if !c.Valid() {
		c.dead = true
		return false
	}
	child, ok := c.arena.find(c.node, sym)
	if !ok {
		c.dead = true
		return false
	}
	c.node = child
	c.depth++
	return true
}

// Depth returns the number of symbols matched.
func (c *Cursor[S, V]) Depth() int {
	return c.depth
}

// Value returns the value stored for the symbols matched so far.
func (c *Cursor[S, V]) Value() (V, bool) {
	var zero V
	if !c.Valid() || c.depth == 0 {
		return zero, false
	}
	return c.arena.get(c.node).getValue()
}

// HasKey reports whether the symbols matched so far form a key.
func (c *Cursor[S, V]) HasKey() bool {
	_, ok := c.Value()
	return ok
}

// Leaf reports whether no key extends the symbols matched so far, meaning
// any further Next fails.
func (c *Cursor[S, V]) Leaf() bool {
	return !c.Valid() || c.arena.get(c.node).isLeaf()
}
