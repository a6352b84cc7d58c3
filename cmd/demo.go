// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fwkit/fwlog/modules/log"
)

// CmdDemo represents the available demo sub-command.
var CmdDemo = cli.Command{
	Name:        "demo",
	Usage:       "Emit sample log traffic through the configured sink",
	Description: "Registers two sample modules, walks the severity scale, mutes one module and shows the truncation behaviour. Useful for checking a serial console end to end.",
	Action:      runDemo,
}

func runDemo(ctx *cli.Context) error {
	cfg, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	sink, cleanup, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	reg := log.NewRegistry(sink)

	device := reg.Register("device01", log.DEBUG)
	motor := reg.Register("motor", log.INFO)
	cfg.Apply(reg)

	reg.Raw("--- fwlog demo ---\r\n")

	device.Debug("boot sequence step %d\r\n", 1)
	device.Info("firmware %s ready\r\n", "v1.4.2")
	device.Warn("supply voltage %dmV below nominal\r\n", 120)
	device.Error("sensor %q not responding\r\n", "bmp280")

	motor.Debug("pwm duty %d%% (filtered at INFO)\r\n", 42)
	motor.Info("spinning up\r\n")

	// A second call site can mute a module it does not own.
	reg.Declare("motor").SetLevel(log.OFF)
	motor.Error("this line is muted\r\n")

	// Lines longer than the transmit buffer are cut, never grown.
	device.Info("calibration table: %s\r\n", strings.Repeat("0xAB ", 64))

	reg.Raw("--- demo complete ---\r\n")
	return nil
}
