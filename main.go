// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/fwkit/fwlog/cmd"
)

// Version holds the current fwlog version, set at build time with -ldflags.
var Version = "development"

func main() {
	app := cmd.NewMainApp(Version)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Command error: %v\n", err)
		os.Exit(1)
	}
}
