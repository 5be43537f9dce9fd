// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmem

import (
	"errors"
	"os"
	"unsafe"
)

// DevMem is the physical memory character device.
const DevMem = "/dev/mem"

// Device is an open physical memory device.
type Device interface {
	// Map maps size bytes of physical memory starting at offset, which must be
	// page aligned. The returned slice is valid until Unmap is called.
	Map(offset int64, size int) ([]byte, error)
	// Unmap releases a slice previously returned by Map.
	Unmap(b []byte) error
	// Close closes the device. Mappings stay valid until unmapped.
	Close() error
}

// Opener opens a physical memory device by path.
type Opener func(path string) (Device, error)

// PageSize returns the OS memory page size.
func PageSize() int {
	return os.Getpagesize()
}

// Uint32s returns a view of b as 32 bits words.
//
// The view aliases b; len(b) must be a multiple of 4 and b must be 4 bytes
// aligned, which is always the case for a page aligned mapping.
func Uint32s(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, errors.New("pmem: buffer length is not a multiple of 4")
	}
	if len(b) == 0 {
		return nil, nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%4 != 0 {
		return nil, errors.New("pmem: buffer is not 32 bits aligned")
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4), nil
}
