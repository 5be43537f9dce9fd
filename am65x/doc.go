// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package am65x exposes the pin multiplexer of the Texas Instruments AM65x
// (Sitara) SoC, as found on the Siemens SIMATIC IOT2050.
//
// Each pad has one 32 bits PADCONFIG register selecting its mux mode, the
// state of its input and output buffers and its pull resistor. The registers
// are split in two windows, the Main domain and the Wakeup domain, which are
// mapped through /dev/mem. This requires root.
//
// # Datasheet
//
// AM65x Technical Reference Manual, section "Pad Configuration Registers":
// https://www.ti.com/lit/pdf/spruid7
package am65x
