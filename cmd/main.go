package main

import (
	"fmt"
	"os"

	"github.com/qubic-tools/go-rl-migrate/cmd/rlmigrate/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
