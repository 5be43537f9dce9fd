// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package host

import (
	// Make sure the SoC drivers are registered. The IOT2050 is ARM64 but it
	// may run ARM 32 bits userlands, the driver is loaded on every
	// architecture and detects the SoC at runtime.
	_ "periph.io/x/iot2050/am65x"
)
