// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package pmem

import "errors"

// File is not supported outside of linux.
type File struct{}

// Open always fails outside of linux.
func Open(path string) (*File, error) {
	return nil, errors.New("pmem: physical memory mapping is only supported on linux")
}

// OpenDevice always fails outside of linux.
func OpenDevice(path string) (Device, error) {
	return nil, errors.New("pmem: physical memory mapping is only supported on linux")
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return "pmem(unsupported)"
}

// Map implements Device.
func (f *File) Map(offset int64, size int) ([]byte, error) {
	return nil, errors.New("pmem: unsupported")
}

// Unmap implements Device.
func (f *File) Unmap(b []byte) error {
	return errors.New("pmem: unsupported")
}

// Close implements Device.
func (f *File) Close() error {
	return nil
}

var _ Device = &File{}
