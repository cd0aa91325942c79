// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

import (
	"fmt"
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// edge identifies the child of parent labelled sym.
type edge[S comparable] struct {
	parent nodeID
	sym    S
}

// arena owns every node of one tree. Nodes are addressed by their index
// and never move to another slot, so ids stay valid until reset.
type arena[S comparable, V any] struct {
	nodes []node[S, V]

	// edges memoises find. Entries never go stale while the arena grows
	// since edges are only ever added; reset purges it.
	edges *lru.Cache[edge[S], nodeID]

	// generation is bumped by reset so cursors can tell their node ids
	// belong to a discarded tree.
	generation uint64
}

func newArena[S comparable, V any](cfg *Config) *arena[S, V] {
	a := &arena[S, V]{
		nodes: make([]node[S, V], 1, cfg.expectedNodes()),
	}
	if size := cfg.edgeCacheSize(); size > 0 {
		edges, err := lru.New[edge[S], nodeID](size)
		if err != nil {
			cfg.logger().Warn("gtrie: edge cache disabled", zap.Int("size", size), zap.Error(err))
		} else {
			a.edges = edges
		}
	}
	return a
}

func (a *arena[S, V]) get(id nodeID) *node[S, V] {
	return &a.nodes[id]
}

func (a *arena[S, V]) size() int {
	return len(a.nodes)
}

// find returns the child of parent whose key equals sym.
func (a *arena[S, V]) find(parent nodeID, sym S) (nodeID, bool) {
	if a.edges != nil {
		if id, ok := a.edges.Get(edge[S]{parent: parent, sym: sym}); ok {
			return id, true
		}
	}
	children := a.nodes[parent].getChildren()
	idx := slices.IndexFunc(children, func(id nodeID) bool {
		return a.nodes[id].getKey() == sym
	})
	if idx < 0 {
		return 0, false
	}
	if a.edges != nil {
		a.edges.Add(edge[S]{parent: parent, sym: sym}, children[idx])
	}
	return children[idx], true
}

// addChild returns the child of parent labelled sym, creating it when
// missing. At most one node is allocated per call.
func (a *arena[S, V]) addChild(parent nodeID, sym S) nodeID {
	if id, ok := a.find(parent, sym); ok {
		return id
	}
	id := nodeID(len(a.nodes))
	a.nodes = append(a.nodes, node[S, V]{key: sym})
	a.nodes[parent].children = append(a.nodes[parent].children, id)
	if a.edges != nil {
		a.edges.Add(edge[S]{parent: parent, sym: sym}, id)
	}
	return id
}

// insert follows key from the root, creating nodes for the part of the
// path that does not exist yet. It returns the last node and the number
// of symbols consumed; zero means key was empty and ended at the root.
func (a *arena[S, V]) insert(key iter.Seq[S]) (nodeID, int) {
	id, depth := rootID, 0
	for sym := range key {
		id = a.addChild(id, sym)
		depth++
	}
	return id, depth
}

// walk follows key from the root without creating anything. It stops at
// the first symbol without a matching child. The empty sequence never
// resolves since the root does not stand for a key.
func (a *arena[S, V]) walk(key iter.Seq[S]) (nodeID, int, bool) {
	id, depth := rootID, 0
	for sym := range key {
		child, ok := a.find(id, sym)
		if !ok {
			return id, depth, false
		}
		id = child
		depth++
	}
	return id, depth, depth > 0
}

// reset drops every node but the root and returns how many were dropped.
func (a *arena[S, V]) reset() int {
	dropped := len(a.nodes) - 1
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	if a.edges != nil {
		a.edges.Purge()
	}
	a.generation++
	return dropped
}

// dump renders the node structure below the root, siblings in insertion
// order.
func (a *arena[S, V]) dump(label func(n *node[S, V]) string) string {
	tree := treeprint.NewWithRoot("root")
	a.dumpNode(rootID, tree, label)
	return tree.String()
}

func (a *arena[S, V]) dumpNode(id nodeID, branch treeprint.Tree, label func(n *node[S, V]) string) {
	for _, child := range a.nodes[id].getChildren() {
		n := a.get(child)
		if n.isLeaf() {
			branch.AddNode(label(n))
			continue
		}
		a.dumpNode(child, branch.AddBranch(label(n)), label)
	}
}

// Keys adapts a list of symbols into a sequence accepted by Tree and Set.
func Keys[S any](symbols ...S) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, sym := range symbols {
			if !yield(sym) {
				return
			}
		}
	}
}

func keyLabel[S comparable, V any](n *node[S, V]) string {
	switch sym := any(n.getKey()).(type) {
	case rune:
		return string(sym)
	case byte:
		return string(rune(sym))
	default:
		return fmt.Sprint(sym)
	}
}
