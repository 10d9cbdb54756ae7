package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "log.sentry.dsn",
			Usage: "Sentry DSN for forwarding errors (disabled when empty)",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "Suppress the human-readable state reports",
		},
	}
}

// FormatFlag selects which state layout to decode. The layout version is
// always chosen explicitly; it is never guessed from the file length.
func FormatFlag() cli.StringFlag {
	return cli.StringFlag{
		Name:  "format",
		Usage: "State layout to decode (legacy|current)",
		Value: "legacy",
	}
}
