// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am65x_test

import (
	"log"
	"os"

	"periph.io/x/iot2050/am65x"
)

func Example() {
	p := am65x.New(&am65x.DefaultOpts)
	if err := p.Init(); err != nil {
		log.Fatal(err)
	}
	defer p.Halt()

	// Route MAIN_PADCONFIG10 to its GPIO, as an output with a pull-up.
	if err := p.SelectFunction(am65x.Main, 10, am65x.GPIOMode); err != nil {
		log.Fatal(err)
	}
	if err := p.SelectOutput(am65x.Main, 10); err != nil {
		log.Fatal(err)
	}
	if err := p.SelectPullUp(am65x.Main, 10); err != nil {
		log.Fatal(err)
	}
	if err := p.Dump(os.Stderr, am65x.Main, 10); err != nil {
		log.Fatal(err)
	}
}
