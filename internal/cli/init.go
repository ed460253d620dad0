package cli

import (
	"fmt"
	"io"

	"examquiz/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments\n")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if err := config.Scaffold(config.ConfigFileName); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s and %s\n", config.ConfigFileName, config.DefaultBankFileName)
		return ExitOK
	}
}
