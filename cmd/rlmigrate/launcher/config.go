// This file maps CLI context to the launcher's config structs.

package launcher

import (
	"fmt"
	"strings"

	cli "gopkg.in/urfave/cli.v1"
)

// Config aggregates everything a single converter run needs.
type Config struct {
	// Input is the legacy state file to read.
	Input string
	// Output is the destination for the converted state.
	Output string
	// Quiet suppresses the human-readable structure reports.
	Quiet bool

	Logging LoggingConfig
}

// InspectConfig configures a read-only structure dump.
type InspectConfig struct {
	// File is the state file to decode.
	File string
	// Format names the layout to decode: "legacy" or "current".
	Format string
	Quiet  bool

	Logging LoggingConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

func makeLoggingConfig(ctx *cli.Context) LoggingConfig {
	return LoggingConfig{
		Verbosity: ctx.GlobalInt("log.verbosity"),
		Format:    ctx.GlobalString("log.format"),
		Color:     ctx.GlobalBool("log.color"),
		SentryDSN: ctx.GlobalString("log.sentry.dsn"),
	}
}

func makeConvertConfig(ctx *cli.Context) (Config, error) {
	if ctx.NArg() != 2 {
		return Config{}, fmt.Errorf("convert expects exactly 2 arguments (<input_file> <output_file>), got %d", ctx.NArg())
	}
	return Config{
		Input:   ctx.Args().Get(0),
		Output:  ctx.Args().Get(1),
		Quiet:   ctx.GlobalBool("quiet"),
		Logging: makeLoggingConfig(ctx),
	}, nil
}

func makeInspectConfig(ctx *cli.Context) (InspectConfig, error) {
	if ctx.NArg() != 1 {
		return InspectConfig{}, fmt.Errorf("inspect expects exactly 1 argument (<file>), got %d", ctx.NArg())
	}
	format := strings.ToLower(ctx.String("format"))
	if format != "legacy" && format != "current" {
		return InspectConfig{}, fmt.Errorf("unknown state format %q (want legacy or current)", ctx.String("format"))
	}
	return InspectConfig{
		File:    ctx.Args().Get(0),
		Format:  format,
		Quiet:   ctx.GlobalBool("quiet"),
		Logging: makeLoggingConfig(ctx),
	}, nil
}
