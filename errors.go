// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container

import "github.com/cockroachdb/errors"

// ErrUnderflow is a reference error that matches the errors returned
// when removing an item from an empty container, i.e.
// errors.Is(err, ErrUnderflow) can be used to check whether an error is
// such a failure. A failed removal leaves the container unchanged.
var ErrUnderflow = errors.New("container underflow")

// ErrOutOfRange is a reference error that matches the errors returned
// by positional reads outside [0, Len).
var ErrOutOfRange = errors.New("index out of range")

// CheckBounds returns nil if index is a valid position in a container of
// the given length, and an error matching ErrOutOfRange otherwise.
// Conformers can use it to implement At's range failures in the
// standard form.
func CheckBounds(index, length int) error {
	if index < 0 || index >= length {
		return errors.Wrapf(ErrOutOfRange, "index %d with length %d", index, length)
	}
	return nil
}
