// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pmem

import "testing"

func TestUint32s(t *testing.T) {
	b := make([]byte, 16)
	u, err := Uint32s(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(u) != 4 {
		t.Fatalf("len = %d, expected 4", len(u))
	}
	u[1] = 0xFFFFFFFF
	if b[4] != 0xFF || b[7] != 0xFF || b[3] != 0 || b[8] != 0 {
		t.Fatalf("view does not alias the buffer: %v", b)
	}
}

func TestUint32s_length(t *testing.T) {
	if _, err := Uint32s(make([]byte, 6)); err == nil {
		t.Fatal("expected error")
	}
	if u, err := Uint32s(nil); err != nil || u != nil {
		t.Fatalf("Uint32s(nil) = %v, %v", u, err)
	}
}

func TestUint32s_alignment(t *testing.T) {
	b := make([]byte, 32)
	if _, err := Uint32s(b[1:5]); err == nil {
		t.Fatal("expected error")
	}
}

func TestPageSize(t *testing.T) {
	if p := PageSize(); p <= 0 || p&(p-1) != 0 {
		t.Fatalf("PageSize() = %d", p)
	}
}
