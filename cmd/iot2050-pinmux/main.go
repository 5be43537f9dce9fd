// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// iot2050-pinmux reads and configures the AM65x pin multiplexer of an IOT2050.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"periph.io/x/iot2050/am65x"
	"periph.io/x/iot2050/pmem"
)

func mainImpl() error {
	dev := flag.String("dev", pmem.DevMem, "physical memory device")
	strict := flag.Bool("strict", false, "fail on unknown domains instead of ignoring them")
	discover := flag.Bool("discover", true, "read the register base addresses from sysfs")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: iot2050-pinmux [flags] <command> [args]\n\n%s\nflags:\n", usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	setupLog(*verbose)
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return errors.New("missing command")
	}

	opts := am65x.DefaultOpts
	opts.Device = *dev
	opts.Strict = *strict
	if *discover {
		opts.Layout = am65x.DiscoverLayout("/sys/bus/platform/drivers")
	}
	log.Printf("layout: Main 0x%x/%d, Wakeup 0x%x/%d", opts.Layout[am65x.Main].Base, opts.Layout[am65x.Main].Count, opts.Layout[am65x.Wakeup].Base, opts.Layout[am65x.Wakeup].Count)
	p := am65x.New(&opts)
	if err := p.Init(); err != nil {
		return err
	}
	defer func() {
		if err := p.Halt(); err != nil {
			log.Printf("halt: %v", err)
		}
	}()
	if args[0] == "script" {
		if len(args) != 1 {
			return errors.New("script takes no argument; commands are read from stdin")
		}
		return runScript(p, os.Stdin, os.Stdout, os.Stderr)
	}
	return run(p, args, os.Stdout, os.Stderr)
}

// setupLog discards log output unless verbose, in which case it is
// timestamped.
func setupLog(verbose bool) {
	log.SetFlags(0)
	if verbose {
		log.SetFlags(log.Lmicroseconds)
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "iot2050-pinmux: %s.\n", err)
		os.Exit(1)
	}
}
