// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package gtrie

import "errors"

var (
	// ErrKeyNotFound is returned when a sequence does not resolve to a node
	// of the tree. Nothing is written.
	ErrKeyNotFound = errors.New("gtrie: key not found")

	// ErrValueAbsent is returned by ApplyOnValue when the sequence resolves
	// but no value is stored there. The mutator is not called.
	ErrValueAbsent = errors.New("gtrie: value absent")
)
