// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"strconv"

	"periph.io/x/conn/v3/gpio"
)

// Register is the value of a PADCONFIG register.
//
// The pull enable and output enable bits are active low; the accessors hide
// the polarity, the bits are kept exactly as the hardware defines them.
type Register uint32

// Unavailable is returned instead of a register value when the address does
// not resolve to a register. It is not a valid register content.
const Unavailable uint32 = 0xFFFFFFFF

// GPIOMode is the mux mode routing a pad to its GPIO controller.
const GPIOMode = 7

const (
	muxModeMask      = 0x0F << 0
	pullDisableBit   = 1 << 16 // 0: pull enabled
	pullUpBit        = 1 << 17 // 1: up, 0: down
	inputEnableBit   = 1 << 18 // 1: input buffer enabled
	outputDisableBit = 1 << 21 // 0: output driver enabled
)

// Direction is the buffer configuration decoded from a Register.
type Direction uint8

const (
	// Hiz means both input and output buffers are disabled.
	Hiz Direction = iota
	// Input means the input buffer is enabled. The output driver may be
	// enabled too.
	Input
	// Output means only the output driver is enabled.
	Output
)

const directionName = "HizInputOutput"

var directionIndex = [...]uint8{0, 3, 8, 14}

func (d Direction) String() string {
	if d >= Direction(len(directionIndex)-1) {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionName[directionIndex[d]:directionIndex[d+1]]
}

// Mode returns the mux mode, 0 to 15.
func (r Register) Mode() uint8 {
	return uint8(r & muxModeMask)
}

// PullEnabled returns true when the pull resistor is enabled.
func (r Register) PullEnabled() bool {
	return r&pullDisableBit == 0
}

// PullUp returns true when the pull resistor selection is up. It is only
// meaningful when PullEnabled is true.
func (r Register) PullUp() bool {
	return r&pullUpBit != 0
}

// InputEnabled returns true when the input buffer is enabled.
func (r Register) InputEnabled() bool {
	return r&inputEnableBit != 0
}

// OutputEnabled returns true when the output driver is enabled.
func (r Register) OutputEnabled() bool {
	return r&outputDisableBit == 0
}

// Direction decodes the buffers. Input takes precedence over Output so a
// bidirectional pad is reported as Input.
func (r Register) Direction() Direction {
	switch {
	case r.InputEnabled():
		return Input
	case r.OutputEnabled():
		return Output
	default:
		return Hiz
	}
}

// Pull decodes the pull resistor.
func (r Register) Pull() gpio.Pull {
	switch {
	case !r.PullEnabled():
		return gpio.Float
	case r.PullUp():
		return gpio.PullUp
	default:
		return gpio.PullDown
	}
}

// String returns a compact human readable decoding.
func (r Register) String() string {
	return "0x" + hex32(uint32(r)) + "(mode=" + strconv.Itoa(int(r.Mode())) + " " + r.Direction().String() + " " + r.Pull().String() + ")"
}

// field is a bit-field of a Register.
type field struct {
	mask uint32
}

var (
	fieldMuxMode      = field{mask: muxModeMask}
	fieldPullEnable   = field{mask: pullDisableBit}
	fieldPullSelect   = field{mask: pullUpBit}
	fieldInputEnable  = field{mask: inputEnableBit}
	fieldOutputEnable = field{mask: outputDisableBit}
)

// Encoded field values.
const (
	pullEnable    uint32 = 0
	pullDisable   uint32 = pullDisableBit
	pullUp        uint32 = pullUpBit
	pullDown      uint32 = 0
	inputEnable   uint32 = inputEnableBit
	inputDisable  uint32 = 0
	outputEnable  uint32 = 0
	outputDisable uint32 = outputDisableBit
)

// apply returns v with the field replaced by value.
func (f field) apply(v, value uint32) uint32 {
	return v&^f.mask | value&f.mask
}

func hex32(v uint32) string {
	s := strconv.FormatUint(uint64(v), 16)
	const zeros = "00000000"
	return zeros[:8-len(s)] + s
}
