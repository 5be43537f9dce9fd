// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"errors"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// Pin is a pad of the AM65x, addressed by its PADCONFIG register.
//
// It controls the pad multiplexing only; reading or driving the level is done
// through the GPIO controller, e.g. the Linux gpio character device.
type Pin struct {
	pm     *PinMux
	domain Domain
	index  int
	name   string
}

// Pin returns the pad at (d, index).
//
// The PinMux doesn't need to be initialized yet but the index is checked
// against the layout.
func (p *PinMux) Pin(d Domain, index int) (*Pin, error) {
	if !d.Valid() {
		return nil, ErrInvalidDomain
	}
	if n := p.opts.Layout[d].Count; index < 0 || index >= n {
		return nil, &AddressError{Domain: d, Index: index, Count: n}
	}
	return &Pin{pm: p, domain: d, index: index, name: d.prefix() + strconv.Itoa(index)}, nil
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Halt implements conn.Resource.
//
// It has no effect.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
//
// It is the register index within its Domain.
func (p *Pin) Number() int {
	return p.index
}

// Domain returns the register window of the pad.
func (p *Pin) Domain() Domain {
	return p.domain
}

// Deprecated: Use PinFunc.Func. Will be removed in v4. Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
//
// In GPIO mode it returns gpio.IN, gpio.OUT or pin.FuncNone when both buffers
// are disabled. Other modes are returned as "MODE<n>".
func (p *Pin) Func() pin.Func {
	r, err := p.Register()
	if err != nil {
		return pin.FuncNone
	}
	if r.Mode() != GPIOMode {
		return modeFunc(r.Mode())
	}
	switch r.Direction() {
	case Input:
		return gpio.IN
	case Output:
		return gpio.OUT
	default:
		return pin.FuncNone
	}
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	out := make([]pin.Func, 0, 2+muxModeMask+1)
	out = append(out, gpio.IN, gpio.OUT)
	for m := uint8(0); m <= muxModeMask; m++ {
		out = append(out, modeFunc(m))
	}
	return out
}

// SetFunc implements pin.PinFunc.
//
// gpio.IN and gpio.OUT select the GPIO mode and the matching buffers.
func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		if err := p.pm.SelectFunction(p.domain, p.index, GPIOMode); err != nil {
			return err
		}
		return p.pm.SelectInput(p.domain, p.index)
	case gpio.OUT:
		if err := p.pm.SelectFunction(p.domain, p.index, GPIOMode); err != nil {
			return err
		}
		return p.pm.SelectOutput(p.domain, p.index)
	}
	if m, ok := parseModeFunc(f); ok {
		return p.pm.SelectFunction(p.domain, p.index, m)
	}
	return errors.New("am65x: " + p.name + ": unsupported function " + strconv.Quote(string(f)))
}

// Pull returns the configured pull resistor.
func (p *Pin) Pull() gpio.Pull {
	r, err := p.Register()
	if err != nil {
		return gpio.PullNoChange
	}
	return r.Pull()
}

// SetPull configures the pull resistor. gpio.PullNoChange is a no-op.
func (p *Pin) SetPull(pull gpio.Pull) error {
	switch pull {
	case gpio.PullNoChange:
		return nil
	case gpio.Float:
		return p.pm.SelectPullDisable(p.domain, p.index)
	case gpio.PullUp:
		return p.pm.SelectPullUp(p.domain, p.index)
	case gpio.PullDown:
		return p.pm.SelectPullDown(p.domain, p.index)
	default:
		return errors.New("am65x: " + p.name + ": unsupported pull " + pull.String())
	}
}

// Register returns the current register value.
func (p *Pin) Register() (Register, error) {
	v, err := p.pm.RawRegister(p.domain, p.index)
	return Register(v), err
}

//

func modeFunc(m uint8) pin.Func {
	return pin.Func("MODE" + strconv.Itoa(int(m)))
}

func parseModeFunc(f pin.Func) (uint8, bool) {
	s, ok := strings.CutPrefix(string(f), "MODE")
	if !ok {
		return 0, false
	}
	m, err := strconv.ParseUint(s, 10, 8)
	if err != nil || m > muxModeMask {
		return 0, false
	}
	return uint8(m), true
}

var _ pin.Pin = &Pin{}
var _ pin.PinFunc = &Pin{}
