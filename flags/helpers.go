package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the converter's CLI application shell.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rl-migrate"
	app.Usage = "Random Lottery contract state converter"
	app.Version = "1.0.0"
	app.Writer = os.Stdout
	return app
}
