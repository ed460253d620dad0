package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"examquiz/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to question bank file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *bankPath == "" {
			fmt.Fprintln(stderr, "--bank is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := question.LoadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		total := 0
		for _, cat := range bank.Categories {
			total += cat.Total()
		}
		fmt.Fprintf(stdout, "Bank OK: %d categories, %d questions\n", len(bank.Categories), total)
		return ExitOK
	}
}
