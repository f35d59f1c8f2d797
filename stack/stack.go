// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package stack provides a slice-backed LIFO container generic over its
// element type.
//
// A Stack is owned by a single caller and performs no internal
// synchronization; see the container package comment.
package stack

import (
	"github.com/cockroachdb/container"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Stack is a LIFO container of elements of type T. Elements enter and
// leave only at the top; no mutating index access is exposed.
//
// The zero value is an empty stack ready for use. Use New to configure
// one with options.
type Stack[T any] struct {
	items []T
}

var _ container.Container[int] = (*Stack[int])(nil)

// Option configures a Stack created by New.
type Option[T any] interface {
	apply(s *Stack[T]) error
}

type optionFunc[T any] func(s *Stack[T]) error

func (f optionFunc[T]) apply(s *Stack[T]) error { return f(s) }

// WithCapacity preallocates space for the given number of elements. The
// capacity must not be negative.
func WithCapacity[T any](capacity int) Option[T] {
	return optionFunc[T](func(s *Stack[T]) error {
		if capacity < 0 {
			return errors.Newf("stack capacity %d out of range", capacity)
		}
		s.items = make([]T, 0, capacity)
		return nil
	})
}

// New returns an empty stack configured with the given options.
func New[T any](opts ...Option[T]) (*Stack[T], error) {
	s := &Stack[T]{}
	for _, opt := range opts {
		if err := opt.apply(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Push places an element on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the element on top of the stack. Popping an
// empty stack fails with an error matching container.ErrUnderflow and
// leaves the stack unchanged.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, container.ErrUnderflow
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, nil
}

// Peek returns the element on top of the stack without removing it. The
// second return value is false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Reset makes the stack treat its underlying memory as if it were empty.
// This allows for reusing the same memory again without explicitly
// removing old elements.
func (s *Stack[T]) Reset() {
	s.items = s.items[:0]
}

// Copy returns a stack holding the same elements. The copy shares no
// structure with the original: pushes and pops on one never affect the
// other.
func (s *Stack[T]) Copy() *Stack[T] {
	return &Stack[T]{items: append([]T(nil), s.items...)}
}

// ForEach invokes fn for each element, bottom of the stack first.
func (s *Stack[T]) ForEach(fn func(item T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// Append places an element on top of the stack. It implements
// container.Container.
func (s *Stack[T]) Append(item T) { s.Push(item) }

// At returns the element at the given position, position 0 being the
// bottom of the stack. It implements container.Container.
func (s *Stack[T]) At(index int) (T, error) {
	if err := container.CheckBounds(index, len(s.items)); err != nil {
		var zero T
		return zero, err
	}
	return s.items[index], nil
}

// String formats the stack bottom to top.
func (s *Stack[T]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s *Stack[T]) SafeFormat(p redact.SafePrinter, _ rune) {
	p.SafeString("[")
	for i, item := range s.items {
		if i > 0 {
			p.SafeString(" ")
		}
		p.Print(item)
	}
	p.SafeString("]")
}

// IsTop reports whether the element on top of the stack equals the given
// item. It is false for an empty stack and never modifies the stack.
//
// IsTop requires an element type that supports ==; using it with a stack
// of a non-comparable element type is a compile-time error, which is why
// it is a function and not a method of Stack.
func IsTop[T comparable](s *Stack[T], item T) bool {
	top, ok := s.Peek()
	return ok && top == item
}
