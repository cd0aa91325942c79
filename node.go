// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

type nodeID uint32

// rootID is the arena slot of the root. The root carries no key and is
// never given a value.
const rootID nodeID = 0

// node is a single edge of the tree: the symbol leading into it, the value
// of the sequence that ends here (if any) and the ids of its children.
// Children keys are unique.
type node[S comparable, V any] struct {
	key      S
	value    V
	hasValue bool
	children []nodeID
}

func (n *node[S, V]) getKey() S {
	return n.key
}

func (n *node[S, V]) getValue() (V, bool) {
	return n.value, n.hasValue
}

// setValue overwrites whatever was stored before.
func (n *node[S, V]) setValue(value V) {
	n.value = value
	n.hasValue = true
}

func (n *node[S, V]) getNumChildren() int {
	return len(n.children)
}

func (n *node[S, V]) getChildren() []nodeID {
	return n.children
}

func (n *node[S, V]) isLeaf() bool {
	return len(n.children) == 0
}
