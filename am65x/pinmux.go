// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/iot2050/pmem"
)

// Domain is an independent PADCONFIG register window.
type Domain uint8

const (
	// Main is the main domain, MAIN_PADCONFIG registers.
	Main Domain = iota
	// Wakeup is the wakeup domain, WKUP_PADCONFIG registers.
	Wakeup
	// NumDomains is the number of valid domains.
	NumDomains
)

func (d Domain) String() string {
	switch d {
	case Main:
		return "Main"
	case Wakeup:
		return "Wakeup"
	default:
		return "Domain(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid returns true for Main and Wakeup.
func (d Domain) Valid() bool {
	return d < NumDomains
}

// prefix is the register name prefix used by TI.
func (d Domain) prefix() string {
	if d == Wakeup {
		return "WKUP_PADCONFIG"
	}
	return "MAIN_PADCONFIG"
}

// ParseDomain parses "main", "wakeup", "wkup", "0" or "1", case insensitive.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(s) {
	case "main", "0":
		return Main, nil
	case "wakeup", "wkup", "1":
		return Wakeup, nil
	default:
		return 0, fmt.Errorf("am65x: unknown domain %q", s)
	}
}

// Bank is the physical location of a register window.
type Bank struct {
	Base  uint64 // Physical address of the first register.
	Count int    // Number of 32 bits registers.
}

// Layout is the location of every window, indexed by Domain.
type Layout [NumDomains]Bank

// DefaultLayout is the AM65x register map.
var DefaultLayout = Layout{
	Main:   {Base: 0x0011c000, Count: 195},
	Wakeup: {Base: 0x4301c000, Count: 70},
}

// Opts configures a PinMux.
type Opts struct {
	// Device is the physical memory device path.
	Device string
	// Layout is the physical location of the register windows.
	Layout Layout
	// Strict makes operations on an unknown Domain return ErrInvalidDomain.
	// When false they are silently ignored, and RawRegister returns
	// Unavailable.
	Strict bool
	// Open opens Device. Defaults to pmem.OpenDevice.
	Open pmem.Opener
	// PageSize defaults to pmem.PageSize().
	PageSize int
}

// DefaultOpts is the recommended configuration on an IOT2050.
var DefaultOpts = Opts{
	Device: pmem.DevMem,
	Layout: DefaultLayout,
}

// PinMuxer is the pin multiplexer capability consumed by board code.
type PinMuxer interface {
	Init() error
	Halt() error
	SelectFunction(d Domain, pin int, fn uint8) error
	SelectInput(d Domain, pin int) error
	SelectOutput(d Domain, pin int) error
	SelectInOut(d Domain, pin int) error
	SelectHiZ(d Domain, pin int) error
	SelectPullUp(d Domain, pin int) error
	SelectPullDown(d Domain, pin int) error
	SelectPullDisable(d Domain, pin int) error
	RawRegister(d Domain, pin int) (uint32, error)
	SetRawRegister(d Domain, pin int, value uint32) error
	Dump(w io.Writer, d Domain, pin int) error
}

// PinMux is a handle to the mapped PADCONFIG registers.
//
// It is safe for concurrent use; each operation holds the lock for its whole
// duration. Nothing arbitrates access with other processes.
type PinMux struct {
	opts Opts

	mu          sync.Mutex
	dev         pmem.Device
	windows     [NumDomains]window
	initialized bool
}

// window is one mapped register window.
type window struct {
	mapped []byte   // As returned by pmem.Device.Map.
	regs   []uint32 // Aliases mapped, starting at the first register.
}

// New returns an uninitialized PinMux. opts may be nil to use DefaultOpts.
func New(opts *Opts) *PinMux {
	p := &PinMux{opts: DefaultOpts}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.Device == "" {
		p.opts.Device = pmem.DevMem
	}
	return p
}

// String implements conn.Resource.
func (p *PinMux) String() string {
	return "am65x-pinmux(" + p.opts.Device + ")"
}

// Layout returns the register windows location.
func (p *PinMux) Layout() Layout {
	return p.opts.Layout
}

// Initialized returns true between a successful Init and Halt.
func (p *PinMux) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Init opens the physical memory device and maps both register windows.
//
// On failure every resource acquired so far is released and a *MapError is
// returned.
func (p *PinMux) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return ErrAlreadyInitialized
	}
	if err := p.init(); err != nil {
		_ = p.halt()
		return err
	}
	p.initialized = true
	return nil
}

// Halt unmaps the register windows and closes the device.
//
// It can be called any number of times, including after a failed Init. It
// returns the first error encountered but always releases everything.
func (p *PinMux) Halt() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.halt()
}

// SelectFunction selects the mux mode fn, 0 to 15.
func (p *PinMux) SelectFunction(d Domain, pin int, fn uint8) error {
	if fn > muxModeMask {
		return ErrInvalidFunction
	}
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldMuxMode, uint32(fn))
	})
}

// SelectInput enables the input buffer then disables the output driver.
func (p *PinMux) SelectInput(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldInputEnable, inputEnable)
		update(r, fieldOutputEnable, outputDisable)
	})
}

// SelectOutput disables the input buffer then enables the output driver.
func (p *PinMux) SelectOutput(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldInputEnable, inputDisable)
		update(r, fieldOutputEnable, outputEnable)
	})
}

// SelectInOut enables both the input buffer and the output driver.
func (p *PinMux) SelectInOut(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldInputEnable, inputEnable)
		update(r, fieldOutputEnable, outputEnable)
	})
}

// SelectHiZ disables both the input buffer and the output driver.
func (p *PinMux) SelectHiZ(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldInputEnable, inputDisable)
		update(r, fieldOutputEnable, outputDisable)
	})
}

// SelectPullUp enables the pull resistor then selects pull-up.
func (p *PinMux) SelectPullUp(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldPullEnable, pullEnable)
		update(r, fieldPullSelect, pullUp)
	})
}

// SelectPullDown enables the pull resistor then selects pull-down.
func (p *PinMux) SelectPullDown(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldPullEnable, pullEnable)
		update(r, fieldPullSelect, pullDown)
	})
}

// SelectPullDisable disables the pull resistor. The pull selection bit is
// left as is.
func (p *PinMux) SelectPullDisable(d Domain, pin int) error {
	return p.modify(d, pin, func(r *uint32) {
		update(r, fieldPullEnable, pullDisable)
	})
}

// RawRegister returns the register value.
//
// Unavailable is returned along the error, or with a nil error for an unknown
// domain when not in strict mode.
func (p *PinMux) RawRegister(d Domain, pin int) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.register(d, pin)
	if r == nil {
		return Unavailable, err
	}
	return loadReg(r), nil
}

// SetRawRegister overwrites the whole register.
func (p *PinMux) SetRawRegister(d Domain, pin int, value uint32) error {
	return p.modify(d, pin, func(r *uint32) {
		storeReg(r, value)
	})
}

// Dump writes a human readable decoding of the register to w.
func (p *PinMux) Dump(w io.Writer, d Domain, pin int) error {
	p.mu.Lock()
	r, err := p.register(d, pin)
	if r == nil {
		p.mu.Unlock()
		return err
	}
	v := Register(loadReg(r))
	p.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "PinmuxReg Domain %s, Index %d, Raw 0x%08x\n", d, pin, uint32(v))
	switch v.Direction() {
	case Input:
		b.WriteString("\tInput: enabled\n")
	case Output:
		b.WriteString("\tOutput: enabled\n")
	default:
		b.WriteString("\tOutput: Hiz\n")
	}
	switch v.Pull() {
	case gpio.PullUp:
		b.WriteString("\tPull Status: up\n")
	case gpio.PullDown:
		b.WriteString("\tPull Status: down\n")
	default:
		b.WriteString("\tPull Status: disabled\n")
	}
	fmt.Fprintf(&b, "\tMode: %d\n", v.Mode())
	_, err = io.WriteString(w, b.String())
	return err
}

//

// modify runs f on the register at (d, pin) with the lock held.
func (p *PinMux) modify(d Domain, pin int, f func(r *uint32)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, err := p.register(d, pin)
	if r == nil {
		return err
	}
	f(r)
	return nil
}

// register resolves (d, pin) to its mapped word.
//
// A nil pointer with a nil error means the operation is silently skipped.
//
// Must be called with mu held.
func (p *PinMux) register(d Domain, pin int) (*uint32, error) {
	if !d.Valid() {
		if p.opts.Strict {
			return nil, ErrInvalidDomain
		}
		return nil, nil
	}
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	regs := p.windows[d].regs
	if pin < 0 || pin >= len(regs) {
		return nil, &AddressError{Domain: d, Index: pin, Count: len(regs)}
	}
	return &regs[pin], nil
}

// update is one read-modify-write cycle of a field.
func update(r *uint32, f field, value uint32) {
	storeReg(r, f.apply(loadReg(r), value))
}

// loadReg and storeReg are the only accesses to the mapped registers. They
// are mocked in tests.
var (
	loadReg  = atomic.LoadUint32
	storeReg = atomic.StoreUint32
)

// init must be called with mu held.
func (p *PinMux) init() error {
	open := p.opts.Open
	if open == nil {
		open = pmem.OpenDevice
	}
	pageSize := p.opts.PageSize
	if pageSize == 0 {
		pageSize = pmem.PageSize()
	}
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 {
		return &MapError{Op: "open", Path: p.opts.Device, Err: fmt.Errorf("invalid page size %d", pageSize)}
	}
	pageMask := uint64(pageSize - 1)

	logf("am65x: open %s", p.opts.Device)
	dev, err := open(p.opts.Device)
	if err != nil {
		return &MapError{Op: "open", Path: p.opts.Device, Err: err}
	}
	p.dev = dev

	for i := range p.windows {
		d := Domain(i)
		bank := p.opts.Layout[d]
		if bank.Count <= 0 {
			return &MapError{Op: "map", Path: p.opts.Device, Domain: d, Err: errors.New("empty register window")}
		}
		target := bank.Base &^ pageMask
		offset := int(bank.Base & pageMask)
		size := offset + bank.Count*4
		logf("am65x: map %s domain, %d registers at 0x%x", d, bank.Count, bank.Base)
		b, err := dev.Map(int64(target), size)
		if err != nil {
			return &MapError{Op: "map", Path: p.opts.Device, Domain: d, Err: err}
		}
		p.windows[d].mapped = b
		regs, err := pmem.Uint32s(b[offset:size])
		if err != nil {
			return &MapError{Op: "map", Path: p.opts.Device, Domain: d, Err: err}
		}
		p.windows[d].regs = regs
		logf("\tpage address: 0x%x", target)
		logf("\tin-page offset: 0x%x", offset)
		logf("\tregisters: %d", len(regs))
	}
	return nil
}

// halt must be called with mu held.
func (p *PinMux) halt() error {
	var err error
	for i := range p.windows {
		w := &p.windows[i]
		if w.mapped != nil {
			if err1 := p.dev.Unmap(w.mapped); err1 != nil && err == nil {
				err = err1
			}
		}
		w.mapped = nil
		w.regs = nil
	}
	if p.dev != nil {
		if err1 := p.dev.Close(); err1 != nil && err == nil {
			err = err1
		}
		p.dev = nil
	}
	p.initialized = false
	return err
}

var _ PinMuxer = &PinMux{}
