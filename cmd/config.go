// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CmdConfig represents the available config sub-command.
var CmdConfig = cli.Command{
	Name:        "config",
	Usage:       "Validate a configuration file and print the resolved settings",
	Description: "Loads the ini file given by --config, reports any error and prints the thresholds and sink that would be used.",
	Action:      runConfig,
}

func runConfig(ctx *cli.Context) error {
	if ctx.String("config") == "" {
		return fmt.Errorf("config: no --config file given")
	}
	cfg, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "global level: %s\n", cfg.Level)
	fmt.Fprintf(ctx.App.Writer, "colorize:     %v\n", cfg.Colorize)
	for name, level := range cfg.ModuleLevels {
		fmt.Fprintf(ctx.App.Writer, "module %-12s %s\n", name+":", level)
	}
	fmt.Fprintf(ctx.App.Writer, "sink:         %s", cfg.Sink.Mode)
	if cfg.Sink.Port != "" {
		fmt.Fprintf(ctx.App.Writer, " %s @ %d", cfg.Sink.Port, cfg.Sink.Baud)
	}
	fmt.Fprintln(ctx.App.Writer)
	return nil
}
