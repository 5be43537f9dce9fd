// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidDomain is returned in strict mode for an unknown Domain.
	ErrInvalidDomain = errors.New("am65x: invalid domain")
	// ErrPinOutOfRange is wrapped by AddressError.
	ErrPinOutOfRange = errors.New("am65x: pin index out of range")
	// ErrNotInitialized is returned when registers are accessed before Init
	// or after Halt.
	ErrNotInitialized = errors.New("am65x: pinmux not initialized")
	// ErrAlreadyInitialized is returned by Init when called twice without
	// Halt.
	ErrAlreadyInitialized = errors.New("am65x: pinmux already initialized")
	// ErrInvalidFunction is returned for a mux mode above 15.
	ErrInvalidFunction = errors.New("am65x: mux mode out of range")
)

// MapError is returned by Init when the physical memory device cannot be
// opened or a register window cannot be mapped.
//
// Nothing is held when it is returned; Init may be retried.
type MapError struct {
	Op     string // "open" or "map"
	Path   string
	Domain Domain // Only meaningful for "map".
	Err    error
}

func (e *MapError) Error() string {
	if e.Op == "map" {
		return "am65x: map " + e.Domain.String() + " domain from " + e.Path + ": " + e.Err.Error()
	}
	return "am65x: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// AddressError is returned when a pin index is outside of its domain.
type AddressError struct {
	Domain Domain
	Index  int
	Count  int
}

func (e *AddressError) Error() string {
	return "am65x: " + e.Domain.String() + " pin " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Count) + ")"
}

func (e *AddressError) Unwrap() error {
	return ErrPinOutOfRange
}
