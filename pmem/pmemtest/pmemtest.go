// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pmemtest is meant to be used to test drivers using a fake physical
// memory device.
package pmemtest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/iot2050/pmem"
)

// Fake implements pmem.Device with plain memory and tracks every resource it
// hands out.
//
// Mapping the same offset twice returns the same memory, like physical memory
// would. Modify the exported members to inject failures.
type Fake struct {
	// Grab the Mutex before accessing the following members.
	sync.Mutex
	// OpenErr is returned by Open when set.
	OpenErr error
	// FailMap is the 1-based index of the Map call that fails. 0 means never.
	FailMap int
	// MapErr is returned by the failing Map call. Defaults to an error.
	MapErr error
	// UnmapErr is returned by Unmap when set. The mapping is still released.
	UnmapErr error

	// Opens, Closes and MapCalls count the calls that succeeded, except for
	// MapCalls which counts every call.
	Opens    int
	Closes   int
	MapCalls int

	regions map[int64][]byte
	active  map[*byte]int
}

// Open implements pmem.Opener.
func (f *Fake) Open(path string) (pmem.Device, error) {
	f.Lock()
	defer f.Unlock()
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	f.Opens++
	return f, nil
}

// Map implements pmem.Device.
func (f *Fake) Map(offset int64, size int) ([]byte, error) {
	f.Lock()
	defer f.Unlock()
	f.MapCalls++
	if f.Opens == f.Closes {
		return nil, errors.New("pmemtest: map on a closed device")
	}
	if f.FailMap != 0 && f.MapCalls == f.FailMap {
		if f.MapErr != nil {
			return nil, f.MapErr
		}
		return nil, fmt.Errorf("pmemtest: injected map failure at 0x%x", offset)
	}
	if size <= 0 {
		return nil, fmt.Errorf("pmemtest: invalid size %d", size)
	}
	b := f.region(offset, size)[:size:size]
	if f.active == nil {
		f.active = map[*byte]int{}
	}
	f.active[&b[0]]++
	return b, nil
}

// Unmap implements pmem.Device.
func (f *Fake) Unmap(b []byte) error {
	f.Lock()
	defer f.Unlock()
	if len(b) == 0 {
		return errors.New("pmemtest: unmap of an empty slice")
	}
	n := f.active[&b[0]]
	if n == 0 {
		return errors.New("pmemtest: unmap of unknown mapping")
	}
	if n == 1 {
		delete(f.active, &b[0])
	} else {
		f.active[&b[0]] = n - 1
	}
	return f.UnmapErr
}

// Close implements pmem.Device.
func (f *Fake) Close() error {
	f.Lock()
	defer f.Unlock()
	if f.Opens == f.Closes {
		return errors.New("pmemtest: close on a closed device")
	}
	f.Closes++
	return nil
}

// IsOpen returns true if at least one Open was not matched by a Close.
func (f *Fake) IsOpen() bool {
	f.Lock()
	defer f.Unlock()
	return f.Opens != f.Closes
}

// Mapped returns the number of active mappings.
func (f *Fake) Mapped() int {
	f.Lock()
	defer f.Unlock()
	n := 0
	for _, c := range f.active {
		n += c
	}
	return n
}

// Memory returns the memory backing offset, or nil if it was never mapped.
//
// It aliases the mapped memory; use it to preload or inspect registers.
func (f *Fake) Memory(offset int64) []byte {
	f.Lock()
	defer f.Unlock()
	return f.regions[offset]
}

// Snapshot returns a copy of every region ever mapped.
func (f *Fake) Snapshot() map[int64][]byte {
	f.Lock()
	defer f.Unlock()
	out := make(map[int64][]byte, len(f.regions))
	for k, v := range f.regions {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

// Reset clears every counter, injected failure and region.
func (f *Fake) Reset() {
	f.Lock()
	defer f.Unlock()
	f.OpenErr = nil
	f.FailMap = 0
	f.MapErr = nil
	f.UnmapErr = nil
	f.Opens = 0
	f.Closes = 0
	f.MapCalls = 0
	f.regions = nil
	f.active = nil
}

// region must be called with the lock held.
func (f *Fake) region(offset int64, size int) []byte {
	if f.regions == nil {
		f.regions = map[int64][]byte{}
	}
	r := f.regions[offset]
	if len(r) < size {
		n := make([]byte, size)
		copy(n, r)
		r = n
		f.regions[offset] = r
	}
	return r
}

var _ pmem.Device = &Fake{}
