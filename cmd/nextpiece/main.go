// Command nextpiece runs the next pieces manager.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/nextpiece/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
