// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pmem maps physical memory into the process address space.
//
// It is the only package in this module doing unsafe memory access. Drivers
// depend on the Device interface so tests can substitute
// periph.io/x/iot2050/pmem/pmemtest.Fake for /dev/mem.
package pmem
