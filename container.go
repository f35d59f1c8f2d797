// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package container defines the capability shared by the ordered
// in-memory containers in this module, the error taxonomy their
// operations report, and helpers that work on any conforming type.
//
// A Container is any type that can append an item, report how many items
// it holds, and read an item by position. Conformance is structural: a
// type conforms by supplying the three methods for a concrete item type,
// with no registration and no common base type. The containers in this
// module (stack.Stack, ring.Buffer, queue.Queue, list.List, and the
// ByteStack defined here) all conform, each with its own ordering.
//
// None of the containers in this module synchronize internally. An
// instance is owned by a single caller, and concurrent use of the same
// instance requires external synchronization.
package container

import "github.com/cockroachdb/errors"

// Container describes a type that can append an item, report a count,
// and read items by position. The item type is fixed by each conformer,
// so one interface covers structurally similar containers without
// forcing a common element representation or a type hierarchy.
type Container[I any] interface {
	// Append adds an item, growing Len by exactly one. Where the item
	// lands is conformer-defined: a stack appends at the top, a queue
	// at the back.
	Append(item I)

	// Len returns the number of items currently held. It is never
	// negative, and every position in [0, Len) is readable via At.
	Len() int

	// At returns the item at the given position, position 0 being the
	// oldest item still held. Positions outside [0, Len) fail with an
	// error matching ErrOutOfRange.
	At(index int) (I, error)
}

// Equal reports whether two containers hold equal items at equal
// positions. The containers may be of unrelated concrete types; only
// their item type must match, and it must support ==.
func Equal[I comparable](a, b Container[I]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, n := 0, a.Len(); i < n; i++ {
		if mustAt(a, i) != mustAt(b, i) {
			return false
		}
	}
	return true
}

// Items returns a container's items in positional order. The result is
// freshly allocated; mutating it does not affect the container.
func Items[I any](c Container[I]) []I {
	items := make([]I, c.Len())
	for i := range items {
		items[i] = mustAt(c, i)
	}
	return items
}

// mustAt reads a position that the Container contract guarantees to be
// valid. A conformer failing here is broken, not misused.
func mustAt[I any](c Container[I], index int) I {
	item, err := c.At(index)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(
			err, "container with length %d failed At(%d)", c.Len(), index))
	}
	return item
}
