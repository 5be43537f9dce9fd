// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"errors"
	"strings"
	"sync"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/host/v3/distro"
)

// Present returns true if running on a TI AM654 SoC.
func Present() bool {
	return isCompatible(distro.DTCompatible(), "ti,am654")
}

// IsIOT2050 returns true if running on a Siemens SIMATIC IOT2050 board.
func IsIOT2050() bool {
	return strings.HasPrefix(distro.DTModel(), "SIMATIC IOT2050")
}

// Default returns the PinMux initialized by host.Init(), or nil if the driver
// didn't load.
//
// Programs that want to control the lifetime of the mapping, or use another
// layout, should call New instead.
func Default() *PinMux {
	drv.mu.Lock()
	defer drv.mu.Unlock()
	return drv.pm
}

// isCompatible returns true if one of the device tree compatible strings
// starts with prefix.
func isCompatible(compatible []string, prefix string) bool {
	for _, c := range compatible {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// driver implements periph.Driver.
type driver struct {
	mu sync.Mutex
	pm *PinMux
	// present, driverDir and opts are mocked in tests.
	present   func() bool
	driverDir string
	opts      Opts
}

func (d *driver) String() string {
	return "am65x-pinmux"
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

// Init maps the PADCONFIG registers when running on an AM65x.
func (d *driver) Init() (bool, error) {
	if !d.present() {
		return false, errors.New("am65x CPU not detected")
	}
	opts := d.opts
	opts.Layout = DiscoverLayout(d.driverDir)
	pm := New(&opts)
	if err := pm.Init(); err != nil {
		return true, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pm = pm
	return true, nil
}

func (d *driver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pm != nil {
		_ = d.pm.Halt()
	}
	d.pm = nil
	d.present = Present
	d.driverDir = "/sys/bus/platform/drivers"
	d.opts = DefaultOpts
}

func init() {
	drv.reset()
	driverreg.MustRegister(&drv)
}

var drv driver
