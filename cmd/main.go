// Copyright 2025 The Fwlog Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd provides subcommands for the fwlog console tool.
package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/fwkit/fwlog/modules/log"
	"github.com/fwkit/fwlog/modules/serial"
	"github.com/fwkit/fwlog/modules/setting"
)

// NewMainApp creates the fwlog cli application.
func NewMainApp(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "fwlog"
	app.Usage = "Severity-filtered logging console for embedded targets"
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to an ini configuration file",
		},
	}
	app.Commands = []*cli.Command{
		&CmdDemo,
		&CmdConfig,
	}
	return app
}

// loadSettings reads the --config file, or returns console defaults when
// no file was given.
func loadSettings(ctx *cli.Context) (*setting.Log, error) {
	path := ctx.String("config")
	if path == "" {
		return &setting.Log{
			Level:        log.DEBUG,
			Colorize:     log.CanColorStdout,
			ModuleLevels: map[string]log.Level{},
			Sink:         setting.Sink{Mode: setting.SinkConsole, Baud: serial.DefaultBaudRate},
		}, nil
	}
	return setting.LoadLog(path)
}

// openSink opens the transport named by the configuration. The returned
// cleanup function releases a serial port; for the console it is a no-op.
func openSink(ctx *cli.Context, cfg *setting.Log) (log.Sink, func(), error) {
	if cfg.Sink.Mode == setting.SinkSerial {
		s, err := serial.Open(cfg.Sink.Port, cfg.Sink.Baud)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	if ctx.App.Writer != nil {
		return &log.WriterSink{W: ctx.App.Writer}, func() {}, nil
	}
	return log.ConsoleSink(), func() {}, nil
}
