// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/google/shlex"
	"periph.io/x/iot2050/am65x"
)

const usage = `commands:
  dump D P        decode the register to stderr
  get D P         print the raw register value
  set D P VALUE   overwrite the raw register value
  func D P MODE   select the mux mode, 0 to 15
  input D P       input buffer only
  output D P      output driver only
  inout D P       input buffer and output driver
  hiz D P         high impedance
  pullup D P      enable the pull-up
  pulldown D P    enable the pull-down
  pulloff D P     disable the pull resistor
  script          run the commands read from stdin, one per line

D is the domain, main or wakeup. P is the register index.
`

// selectors are the commands taking only an address.
var selectors = map[string]func(p am65x.PinMuxer, d am65x.Domain, pin int) error{
	"input":    am65x.PinMuxer.SelectInput,
	"output":   am65x.PinMuxer.SelectOutput,
	"inout":    am65x.PinMuxer.SelectInOut,
	"hiz":      am65x.PinMuxer.SelectHiZ,
	"pullup":   am65x.PinMuxer.SelectPullUp,
	"pulldown": am65x.PinMuxer.SelectPullDown,
	"pulloff":  am65x.PinMuxer.SelectPullDisable,
}

// run executes a single command.
//
// Values are printed to out, decoded registers to diag.
func run(p am65x.PinMuxer, args []string, out, diag io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command")
	}
	cmd, args := args[0], args[1:]
	if f, ok := selectors[cmd]; ok {
		d, pin, err := parseAddress(cmd, args, 0)
		if err != nil {
			return err
		}
		log.Printf("%s %s %d", cmd, d, pin)
		return f(p, d, pin)
	}
	switch cmd {
	case "dump":
		d, pin, err := parseAddress(cmd, args, 0)
		if err != nil {
			return err
		}
		return p.Dump(diag, d, pin)
	case "get":
		d, pin, err := parseAddress(cmd, args, 0)
		if err != nil {
			return err
		}
		v, err := p.RawRegister(d, pin)
		if err != nil {
			return err
		}
		if v == am65x.Unavailable {
			_, err = fmt.Fprintln(out, "unavailable")
			return err
		}
		_, err = fmt.Fprintf(out, "0x%08x\n", v)
		return err
	case "set":
		d, pin, err := parseAddress(cmd, args, 1)
		if err != nil {
			return err
		}
		v, err := strconv.ParseUint(args[2], 0, 32)
		if err != nil {
			return fmt.Errorf("set: invalid value %q", args[2])
		}
		log.Printf("set %s %d 0x%08x", d, pin, v)
		return p.SetRawRegister(d, pin, uint32(v))
	case "func":
		d, pin, err := parseAddress(cmd, args, 1)
		if err != nil {
			return err
		}
		m, err := strconv.ParseUint(args[2], 0, 8)
		if err != nil {
			return fmt.Errorf("func: invalid mode %q", args[2])
		}
		log.Printf("func %s %d %d", d, pin, m)
		return p.SelectFunction(d, pin, uint8(m))
	case "script":
		return errors.New("script cannot be nested")
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// runScript runs every command read from r. Lines are split like a shell
// would; empty lines and comments are ignored.
func runScript(p am65x.PinMuxer, r io.Reader, out, diag io.Writer) error {
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		args, err := shlex.Split(s.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if len(args) == 0 {
			continue
		}
		if err := run(p, args, out, diag); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return s.Err()
}

// parseAddress parses the domain and register index, followed by extra
// arguments.
func parseAddress(cmd string, args []string, extra int) (am65x.Domain, int, error) {
	if len(args) != 2+extra {
		return 0, 0, fmt.Errorf("%s: expected %d arguments, got %d", cmd, 2+extra, len(args))
	}
	d, err := am65x.ParseDomain(args[0])
	if err != nil {
		return 0, 0, err
	}
	pin, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s: invalid register index %q", cmd, args[1])
	}
	return d, pin, nil
}
