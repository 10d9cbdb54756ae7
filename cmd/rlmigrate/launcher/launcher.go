// Package launcher wires the converter CLI: flag parsing, logging setup,
// file I/O and the decode → upgrade → encode pipeline around the rl core.
package launcher

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/qubic-tools/go-rl-migrate/flags"
)

var app = flags.NewApp()

func init() {
	app.Flags = flags.CommonFlags()
	app.Before = func(ctx *cli.Context) error {
		return setupLogging(makeLoggingConfig(ctx))
	}
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a legacy state file to the current layout",
			ArgsUsage: "<input_file> <output_file>",
			Action:    convertAction,
		},
		{
			Name:      "inspect",
			Usage:     "Decode a state file and print its contents",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{flags.FormatFlag()},
			Action:    inspectAction,
		},
	}
}

// Launch runs the converter CLI with the given os.Args-style arguments.
func Launch(args []string) error {
	return app.Run(args)
}
