// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// File is an open physical memory device backed by a file descriptor.
type File struct {
	path string
	fd   int
}

// Open opens path, usually DevMem, for synchronous read/write access.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("pmem: open %s: %w", path, err)
	}
	return &File{path: path, fd: fd}, nil
}

// OpenDevice is Open returning the Device interface. It is an Opener.
func OpenDevice(path string) (Device, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// String returns the device path.
func (f *File) String() string {
	return f.path
}

// Map implements Device.
func (f *File) Map(offset int64, size int) ([]byte, error) {
	if f.fd < 0 {
		return nil, fmt.Errorf("pmem: %s is closed", f.path)
	}
	b, err := unix.Mmap(f.fd, offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("pmem: mmap %s at 0x%x: %w", f.path, offset, err)
	}
	return b, nil
}

// Unmap implements Device.
func (f *File) Unmap(b []byte) error {
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("pmem: munmap %s: %w", f.path, err)
	}
	return nil
}

// Close implements Device.
func (f *File) Close() error {
	fd := f.fd
	if fd < 0 {
		return nil
	}
	f.fd = -1
	return unix.Close(fd)
}

var _ Device = &File{}
