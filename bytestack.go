// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container

import "github.com/cockroachdb/redact"

// ByteStack is a LIFO stack specialized to byte elements. It exists
// alongside the generic stack package for hot paths that push and pop
// single bytes (delimiter matching, escape tracking) where a dedicated
// []byte keeps the data contiguous with no per-element indirection.
//
// The zero value is an empty stack ready for use.
type ByteStack []byte

var _ Container[byte] = (*ByteStack)(nil)

// MakeByteStack returns an empty ByteStack with space preallocated for
// the given number of bytes.
func MakeByteStack(capacity int) ByteStack {
	return make(ByteStack, 0, capacity)
}

// Len returns the number of bytes on the stack.
func (s ByteStack) Len() int { return len(s) }

// Empty reports whether the stack holds no bytes.
func (s ByteStack) Empty() bool { return len(s) == 0 }

// Push places a byte on top of the stack.
func (s *ByteStack) Push(b byte) { *s = append(*s, b) }

// Pop removes and returns the byte on top of the stack. Popping an empty
// stack fails with an error matching ErrUnderflow and leaves the stack
// unchanged.
func (s *ByteStack) Pop() (byte, error) {
	if len(*s) == 0 {
		return 0, ErrUnderflow
	}
	b := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return b, nil
}

// Peek returns the byte on top of the stack without removing it. The
// second return value is false if the stack is empty.
func (s ByteStack) Peek() (byte, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Reset empties the stack, keeping the allocated space for reuse.
func (s *ByteStack) Reset() { *s = (*s)[:0] }

// Append places a byte on top of the stack. It implements Container.
func (s *ByteStack) Append(item byte) { s.Push(item) }

// At returns the byte at the given position, position 0 being the bottom
// of the stack. It implements Container.
func (s ByteStack) At(index int) (byte, error) {
	if err := CheckBounds(index, len(s)); err != nil {
		return 0, err
	}
	return s[index], nil
}

// String formats the stack bottom to top.
func (s ByteStack) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s ByteStack) SafeFormat(p redact.SafePrinter, _ rune) {
	p.Printf("%q", string(s))
}
