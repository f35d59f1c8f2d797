// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container_test

import (
	"testing"

	"github.com/cockroachdb/container"
	"github.com/cockroachdb/container/list"
	"github.com/cockroachdb/container/queue"
	"github.com/cockroachdb/container/ring"
	"github.com/cockroachdb/container/stack"
	"github.com/stretchr/testify/require"
)

// conformers returns one empty instance of every int container in the
// module.
func conformers(t *testing.T) map[string]container.Container[int] {
	q, err := queue.NewQueue[int]()
	require.NoError(t, err)
	return map[string]container.Container[int]{
		"stack": &stack.Stack[int]{},
		"ring":  &ring.Buffer[int]{},
		"queue": q,
		"list":  &list.List[int]{},
	}
}

// TestConformance runs the shared capability contract against every
// conformer: appending a, b, c yields length 3 with the items readable in
// order, and reads outside [0, Len) fail with ErrOutOfRange.
func TestConformance(t *testing.T) {
	for name, c := range conformers(t) {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 0, c.Len())
			for i, v := range []int{10, 20, 30} {
				c.Append(v)
				require.Equal(t, i+1, c.Len())
			}
			for i, expected := range []int{10, 20, 30} {
				item, err := c.At(i)
				require.NoError(t, err)
				require.Equal(t, expected, item)
			}
			_, err := c.At(3)
			require.ErrorIs(t, err, container.ErrOutOfRange)
			_, err = c.At(-1)
			require.ErrorIs(t, err, container.ErrOutOfRange)
			// A failed read leaves the container unchanged.
			require.Equal(t, 3, c.Len())
		})
	}
}

// TestEqual compares containers of unrelated concrete types through the
// capability alone.
func TestEqual(t *testing.T) {
	fill := func(c container.Container[int], items ...int) container.Container[int] {
		for _, v := range items {
			c.Append(v)
		}
		return c
	}

	for nameA, ca := range conformers(t) {
		fill(ca, 1, 2, 3)
		for nameB, cb := range conformers(t) {
			t.Run(nameA+"="+nameB, func(t *testing.T) {
				require.False(t, container.Equal[int](ca, cb))
				fill(cb, 1, 2)
				require.False(t, container.Equal[int](ca, cb))
				fill(cb, 3)
				require.True(t, container.Equal[int](ca, cb))
				fill(cb, 4)
				require.False(t, container.Equal[int](ca, cb))
			})
		}
	}
}

func TestEqualSameLengthDifferentItems(t *testing.T) {
	var s stack.Stack[string]
	var r ring.Buffer[string]
	s.Append("a")
	s.Append("b")
	r.Append("a")
	r.Append("c")
	require.False(t, container.Equal[string](&s, &r))
}

func TestItems(t *testing.T) {
	var b ring.Buffer[int]
	require.Empty(t, container.Items[int](&b))
	b.Append(1)
	b.Append(2)
	items := container.Items[int](&b)
	require.Equal(t, []int{1, 2}, items)

	// The returned slice is a copy.
	items[0] = 99
	first, err := b.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, first)
}
