// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package queue provides a FIFO container generic over its element type,
// backed by a linked list of reusable chunks.
//
// A Queue is owned by a single caller and performs no internal
// synchronization; see the container package comment.
package queue

import (
	"github.com/cockroachdb/container"
	"github.com/cockroachdb/errors"
)

const defaultChunkSize = 128

// chunk is a fixed-size segment of the queue. Elements are written at
// tail and consumed at head; consumed slots are zeroed so the chunk does
// not retain them.
type chunk[T any] struct {
	items []T
	head  int // the index of the first unconsumed element
	tail  int // the index of the first unwritten slot
	next  *chunk[T]
}

func (c *chunk[T]) empty() bool { return c.head == c.tail }

func (c *chunk[T]) full() bool { return c.tail == len(c.items) }

// finished reports whether every slot has been written and consumed. The
// queue never retains a finished chunk.
func (c *chunk[T]) finished() bool { return c.head == len(c.items) }

func (c *chunk[T]) reset() {
	c.head, c.tail = 0, 0
}

// Queue is a FIFO container of elements of type T. Elements are appended
// at the back and consumed from the front; memory is allocated and
// released a chunk at a time.
type Queue[T any] struct {
	head      *chunk[T]
	tail      *chunk[T]
	length    int
	chunkSize int
}

var _ container.Container[int] = (*Queue[int])(nil)

// Option configures a Queue created by NewQueue.
type Option[T any] interface {
	apply(q *Queue[T]) error
}

type optionFunc[T any] func(q *Queue[T]) error

func (f optionFunc[T]) apply(q *Queue[T]) error { return f(q) }

// WithChunkSize sets the number of elements each chunk holds. The size
// must be at least 1; the default is 128.
func WithChunkSize[T any](size int) Option[T] {
	return optionFunc[T](func(q *Queue[T]) error {
		if size < 1 {
			return errors.Newf("queue chunk size %d out of range", size)
		}
		q.chunkSize = size
		return nil
	})
}

// NewQueue returns an empty queue configured with the given options.
func NewQueue[T any](opts ...Option[T]) (*Queue[T], error) {
	q := &Queue[T]{chunkSize: defaultChunkSize}
	for _, opt := range opts {
		if err := opt.apply(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.length == 0 }

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.length }

// Enqueue adds an element to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	if q.tail == nil {
		c := &chunk[T]{items: make([]T, q.chunkSize)}
		q.head, q.tail = c, c
	} else if q.tail.full() {
		c := &chunk[T]{items: make([]T, q.chunkSize)}
		q.tail.next = c
		q.tail = c
	}
	q.tail.items[q.tail.tail] = item
	q.tail.tail++
	q.length++
}

// Dequeue removes and returns the element at the front of the queue. The
// second return value is false if the queue is empty, in which case the
// queue is unchanged.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.length == 0 {
		return zero, false
	}
	c := q.head
	item := c.items[c.head]
	c.items[c.head] = zero
	c.head++
	q.length--
	// Never retain a finished chunk: hand the head position to the next
	// chunk, or recycle the last chunk in place.
	if c.finished() {
		if c == q.tail {
			c.reset()
		} else {
			q.head = c.next
		}
	}
	return item, true
}

// purge releases all chunks, returning the queue to its initial state.
func (q *Queue[T]) purge() {
	q.head, q.tail = nil, nil
	q.length = 0
}

// Append adds an element to the back of the queue. It implements
// container.Container.
func (q *Queue[T]) Append(item T) { q.Enqueue(item) }

// At returns the element at the given position, position 0 being the
// front of the queue. It implements container.Container.
func (q *Queue[T]) At(index int) (T, error) {
	var zero T
	if err := container.CheckBounds(index, q.length); err != nil {
		return zero, err
	}
	for c := q.head; c != nil; c = c.next {
		n := c.tail - c.head
		if index < n {
			return c.items[c.head+index], nil
		}
		index -= n
	}
	panic(errors.AssertionFailedf("queue with length %d has no chunk for valid index", q.length))
}
