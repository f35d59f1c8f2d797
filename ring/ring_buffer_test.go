// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ring

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/container"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	var b Buffer[int]
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, b.Cap())

	b.AddLast(2)
	b.AddLast(3)
	b.AddFirst(1)
	require.Equal(t, 3, b.Len())
	require.Equal(t, 1, b.GetFirst())
	require.Equal(t, 3, b.GetLast())
	require.Equal(t, 2, b.Get(1))

	b.RemoveFirst()
	require.Equal(t, 2, b.GetFirst())
	b.RemoveLast()
	require.Equal(t, 1, b.Len())
	require.Equal(t, 2, b.GetFirst())
	require.Equal(t, 2, b.GetLast())
}

// TestBufferGrowth pushes enough elements through a small buffer that
// the contents wrap around the underlying slice, then grows it.
func TestBufferGrowth(t *testing.T) {
	var b Buffer[int]
	// Force a wrapped layout: fill, drain the front, refill past the end.
	for i := 0; i < 4; i++ {
		b.AddLast(i)
	}
	b.RemoveFirst()
	b.RemoveFirst()
	for i := 4; i < 10; i++ {
		b.AddLast(i)
	}
	require.Equal(t, 8, b.Len())
	for i := 0; i < b.Len(); i++ {
		require.Equal(t, i+2, b.Get(i))
	}
}

func TestBufferReserveReset(t *testing.T) {
	var b Buffer[string]
	b.AddLast("a")
	b.AddLast("b")
	b.Reserve(16)
	require.Equal(t, 16, b.Cap())
	require.Equal(t, 2, b.Len())
	require.Equal(t, "a", b.GetFirst())
	require.Equal(t, "b", b.GetLast())

	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, 16, b.Cap())
	b.AddLast("c")
	require.Equal(t, "c", b.GetFirst())
}

// TestBufferReservePartiallyFull grows a buffer whose contents do not
// fill its capacity. The length must stay the number of elements held,
// not become the old capacity.
func TestBufferReservePartiallyFull(t *testing.T) {
	var b Buffer[int]
	for i := 1; i <= 3; i++ {
		b.AddLast(i)
	}
	// cap is 4 here, one slot unused.
	require.Equal(t, 4, b.Cap())
	b.Reserve(8)
	require.Equal(t, 8, b.Cap())
	require.Equal(t, 3, b.Len())
	for i := 0; i < 3; i++ {
		require.Equal(t, i+1, b.Get(i))
	}
	require.Panics(t, func() { b.Get(3) })
	b.AddLast(4)
	require.Equal(t, 4, b.Len())
	require.Equal(t, 4, b.GetLast())
}

// TestBufferReserveWrapped grows a buffer whose contents wrap around the
// end of the underlying slice.
func TestBufferReserveWrapped(t *testing.T) {
	var b Buffer[int]
	for i := 0; i < 4; i++ {
		b.AddLast(i)
	}
	b.RemoveFirst()
	b.RemoveFirst()
	b.AddLast(4)
	// Contents are 2, 3, 4 with the 4 wrapped to the front.
	b.Reserve(10)
	require.Equal(t, 10, b.Cap())
	require.Equal(t, 3, b.Len())
	for i := 0; i < 3; i++ {
		require.Equal(t, i+2, b.Get(i))
	}
}

// TestBufferReserveDrained grows a buffer that has been filled and then
// fully drained, so it holds capacity but no elements.
func TestBufferReserveDrained(t *testing.T) {
	var b Buffer[int]
	b.AddLast(1)
	b.AddLast(2)
	b.RemoveFirst()
	b.RemoveFirst()
	require.Equal(t, 0, b.Len())
	require.Equal(t, 2, b.Cap())
	b.Reserve(8)
	require.Equal(t, 8, b.Cap())
	require.Equal(t, 0, b.Len())
	b.AddLast(3)
	require.Equal(t, 1, b.Len())
	require.Equal(t, 3, b.GetFirst())
}

func TestBufferPanics(t *testing.T) {
	var b Buffer[int]
	require.Panics(t, func() { b.GetFirst() })
	require.Panics(t, func() { b.GetLast() })
	require.Panics(t, func() { b.Get(0) })
	require.Panics(t, func() { b.RemoveFirst() })
	require.Panics(t, func() { b.RemoveLast() })

	b.AddLast(1)
	require.Panics(t, func() { b.Get(1) })
	require.Panics(t, func() { b.Get(-1) })
	b.AddLast(2)
	require.Panics(t, func() { b.Reserve(1) })
}

// TestBufferRandomOps cross-checks the deque against a plain slice model
// under a random mix of operations at both ends.
func TestBufferRandomOps(t *testing.T) {
	var b Buffer[int]
	var model []int
	for i := 0; i < 1000; i++ {
		switch op := rand.Intn(6); {
		case op < 2:
			v := rand.Int()
			b.AddLast(v)
			model = append(model, v)
		case op < 4:
			v := rand.Int()
			b.AddFirst(v)
			model = append([]int{v}, model...)
		case op == 4 && len(model) > 0:
			b.RemoveFirst()
			model = model[1:]
		case op == 5 && len(model) > 0:
			b.RemoveLast()
			model = model[:len(model)-1]
		}
		require.Equal(t, len(model), b.Len())
		for j, v := range model {
			require.Equal(t, v, b.Get(j))
		}
	}
}

func TestBufferContainer(t *testing.T) {
	var b Buffer[string]
	for _, v := range []string{"a", "b", "c"} {
		b.Append(v)
	}
	require.Equal(t, []string{"a", "b", "c"}, container.Items[string](&b))
	_, err := b.At(3)
	require.ErrorIs(t, err, container.ErrOutOfRange)
	_, err = b.At(-1)
	require.ErrorIs(t, err, container.ErrOutOfRange)

	// At reads through the wrapped layout too.
	b.RemoveFirst()
	b.Append("d")
	b.Append("e")
	require.Equal(t, []string{"b", "c", "d", "e"}, container.Items[string](&b))
}
