// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"os"
	"path"
	"testing"
)

func createDirs(t *testing.T, root string, dirs ...string) string {
	for _, dir := range dirs {
		if err := os.MkdirAll(path.Join(root, dir), os.ModePerm); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func createSymLink(t *testing.T, root string, source string, destination string) {
	if err := os.Symlink(path.Join(root, source), path.Join(root, destination)); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverLayout_default(t *testing.T) {
	if l := DiscoverLayout("/dev/null"); l != DefaultLayout {
		t.Errorf("Expected %v received %v", DefaultLayout, l)
	}
}

func TestDiscoverLayout(t *testing.T) {
	root := t.TempDir()
	createDirs(t,
		root,
		"pinctrl-single",
		"devices/bus@100000/11c000.pinctrl",
		"devices/bus@100000/bus@28380000/4301c000.pinctrl",
	)
	createSymLink(t, root, "devices/bus@100000/11c000.pinctrl", "pinctrl-single/11c000.pinctrl")
	createSymLink(t, root, "devices/bus@100000/bus@28380000/4301c000.pinctrl", "pinctrl-single/4301c000.pinctrl")
	createDirs(t, root, "pinctrl-single/bind", "pinctrl-single/uevent")
	l := DiscoverLayout(root)
	if l != DefaultLayout {
		t.Errorf("Expected %v received %v", DefaultLayout, l)
	}
}

func TestDiscoverLayout_moved(t *testing.T) {
	root := t.TempDir()
	createDirs(t,
		root,
		"pinctrl-single/f4000.pinctrl",
		"pinctrl-single/4301c000.pinctrl",
		"pinctrl-single/4301c400.pinctrl",
		"pinctrl-single/zzz.pinctrl",
	)
	l := DiscoverLayout(root)
	if l[Main].Base != 0xf4000 {
		t.Errorf("Expected 0xf4000 received 0x%x", l[Main].Base)
	}
	if l[Wakeup].Base != 0x4301c000 {
		t.Errorf("Expected 0x4301c000 received 0x%x", l[Wakeup].Base)
	}
	if l[Main].Count != 195 || l[Wakeup].Count != 70 {
		t.Errorf("Counts must not be discovered: %v", l)
	}
}

func TestDiscoverLayout_onlyMain(t *testing.T) {
	root := t.TempDir()
	createDirs(t, root, "pinctrl-single/11c400.pinctrl")
	l := DiscoverLayout(root)
	if l[Main].Base != 0x11c400 {
		t.Errorf("Expected 0x11c400 received 0x%x", l[Main].Base)
	}
	if l[Wakeup] != DefaultLayout[Wakeup] {
		t.Errorf("Expected %v received %v", DefaultLayout[Wakeup], l[Wakeup])
	}
}

func TestDiscoverLayout_pinmuxNodes(t *testing.T) {
	root := t.TempDir()
	createDirs(t, root, "pinctrl-single/11c400.pinmux", "pinctrl-single/4301c400.pinmux")
	l := DiscoverLayout(root)
	if l[Main].Base != 0x11c400 {
		t.Errorf("Expected 0x11c400 received 0x%x", l[Main].Base)
	}
	if l[Wakeup].Base != 0x4301c400 {
		t.Errorf("Expected 0x4301c400 received 0x%x", l[Wakeup].Base)
	}
}
