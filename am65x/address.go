// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"os"
	"path"
	"strconv"
	"strings"
)

// wakeupSpace is the start of the MCU/Wakeup address space. Pinctrl
// instances at or above belong to the Wakeup domain.
const wakeupSpace = 0x40000000

// DiscoverLayout queries the virtual file system to retrieve the base address
// of the PADCONFIG register windows, as bound to the pinctrl-single driver.
//
// driverDir is normally "/sys/bus/platform/drivers". Domains that could not be
// found keep their DefaultLayout base address. Register counts are never
// discovered.
func DiscoverLayout(driverDir string) Layout {
	l := DefaultLayout
	items, err := os.ReadDir(path.Join(driverDir, "pinctrl-single"))
	if err != nil {
		return l
	}
	var found [NumDomains]bool
	for _, item := range items {
		address, ok := extractBaseAddress(item)
		if !ok {
			continue
		}
		d := Main
		if address >= wakeupSpace {
			d = Wakeup
		}
		if found[d] {
			// Some device trees declare more than one pinctrl-single instance
			// per domain. The lowest is the PADCONFIG window.
			if address < l[d].Base {
				l[d].Base = address
			}
			continue
		}
		found[d] = true
		l[d].Base = address
	}
	return l
}

// extractBaseAddress parses an entry named like "11c000.pinctrl". Older
// device trees name the nodes "pinmux@11c000", exposed as "11c000.pinmux".
func extractBaseAddress(item os.DirEntry) (uint64, bool) {
	prefix, ok := strings.CutSuffix(item.Name(), ".pinctrl")
	if !ok {
		if prefix, ok = strings.CutSuffix(item.Name(), ".pinmux"); !ok {
			return 0, false
		}
	}
	address, err := strconv.ParseUint(prefix, 16, 64)
	if err != nil {
		return 0, false
	}
	return address, true
}
