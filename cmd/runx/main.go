package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yourusername/runx/cli/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// Failed invocations already printed their result
		if !errors.Is(err, commands.ErrCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
