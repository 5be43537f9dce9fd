// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

func TestPin(t *testing.T) {
	p, _ := newPinMux(t, false)
	m, err := p.Pin(Main, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s := m.String(); s != "MAIN_PADCONFIG10" {
		t.Fatal(s)
	}
	if n := m.Number(); n != 10 {
		t.Fatal(n)
	}
	if d := m.Domain(); d != Main {
		t.Fatal(d)
	}
	if err := m.Halt(); err != nil {
		t.Fatal(err)
	}
	w, err := p.Pin(Wakeup, 69)
	if err != nil {
		t.Fatal(err)
	}
	if s := w.Name(); s != "WKUP_PADCONFIG69" {
		t.Fatal(s)
	}
}

func TestPin_invalid(t *testing.T) {
	p := New(nil)
	if _, err := p.Pin(Domain(2), 0); err != ErrInvalidDomain {
		t.Fatal(err)
	}
	if _, err := p.Pin(Wakeup, 70); !errors.Is(err, ErrPinOutOfRange) {
		t.Fatal(err)
	}
	if _, err := p.Pin(Main, -1); !errors.Is(err, ErrPinOutOfRange) {
		t.Fatal(err)
	}
}

func TestPin_Func(t *testing.T) {
	p, _ := newPinMux(t, false)
	m, err := p.Pin(Main, 4)
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		raw  uint32
		want pin.Func
	}{
		{0x00240007, gpio.IN},
		{0x00040007, gpio.IN},
		{0x00000007, gpio.OUT},
		{0x00200007, pin.FuncNone},
		{0x00000003, "MODE3"},
		{0x0024000F, "MODE15"},
	}
	for _, line := range data {
		mustSetRaw(t, p, Main, 4, line.raw)
		if f := m.Func(); f != line.want {
			t.Errorf("0x%08x: Func() = %q, expected %q", line.raw, f, line.want)
		}
		if s := m.Function(); s != string(line.want) {
			t.Errorf("0x%08x: Function() = %q", line.raw, s)
		}
	}
}

func TestPin_Func_halted(t *testing.T) {
	p := New(nil)
	m, err := p.Pin(Main, 4)
	if err != nil {
		t.Fatal(err)
	}
	if f := m.Func(); f != pin.FuncNone {
		t.Fatal(f)
	}
	if pull := m.Pull(); pull != gpio.PullNoChange {
		t.Fatal(pull)
	}
	if err := m.SetFunc(gpio.IN); err != ErrNotInitialized {
		t.Fatal(err)
	}
}

func TestPin_SetFunc(t *testing.T) {
	p, _ := newPinMux(t, false)
	m, err := p.Pin(Wakeup, 8)
	if err != nil {
		t.Fatal(err)
	}
	mustSetRaw(t, p, Wakeup, 8, 0x00010002)
	if err := m.SetFunc(gpio.IN); err != nil {
		t.Fatal(err)
	}
	if v := mustRaw(t, p, Wakeup, 8); v != 0x00250007 {
		t.Fatalf("0x%08x", v)
	}
	if f := m.Func(); f != gpio.IN {
		t.Fatal(f)
	}
	if err := m.SetFunc(gpio.OUT); err != nil {
		t.Fatal(err)
	}
	if v := mustRaw(t, p, Wakeup, 8); v != 0x00010007 {
		t.Fatalf("0x%08x", v)
	}
	if err := m.SetFunc("MODE1"); err != nil {
		t.Fatal(err)
	}
	if v := mustRaw(t, p, Wakeup, 8); v != 0x00010001 {
		t.Fatalf("0x%08x", v)
	}
	for _, f := range []pin.Func{"MODE16", "MODE", "I2C0_SDA", gpio.OUT_HIGH} {
		if err := m.SetFunc(f); err == nil {
			t.Fatalf("SetFunc(%q) expected error", f)
		}
	}
}

func TestPin_SupportedFuncs(t *testing.T) {
	p := New(nil)
	m, err := p.Pin(Main, 0)
	if err != nil {
		t.Fatal(err)
	}
	f := m.SupportedFuncs()
	if len(f) != 18 {
		t.Fatalf("%d: %q", len(f), f)
	}
	if f[0] != gpio.IN || f[1] != gpio.OUT || f[2] != "MODE0" || f[17] != "MODE15" {
		t.Fatalf("%q", f)
	}
}

func TestPin_Pull(t *testing.T) {
	p, _ := newPinMux(t, false)
	m, err := p.Pin(Main, 100)
	if err != nil {
		t.Fatal(err)
	}
	mustSetRaw(t, p, Main, 100, 0x00010007)
	data := []struct {
		pull gpio.Pull
		want gpio.Pull
		raw  uint32
	}{
		{gpio.PullUp, gpio.PullUp, 0x00020007},
		{gpio.PullNoChange, gpio.PullUp, 0x00020007},
		{gpio.PullDown, gpio.PullDown, 0x00000007},
		{gpio.Float, gpio.Float, 0x00010007},
	}
	for _, line := range data {
		if err := m.SetPull(line.pull); err != nil {
			t.Fatal(err)
		}
		if got := m.Pull(); got != line.want {
			t.Errorf("SetPull(%s): Pull() = %s", line.pull, got)
		}
		if v := mustRaw(t, p, Main, 100); v != line.raw {
			t.Errorf("SetPull(%s): 0x%08x, expected 0x%08x", line.pull, v, line.raw)
		}
	}
	if err := m.SetPull(gpio.Pull(10)); err == nil {
		t.Fatal("expected error")
	}
}
