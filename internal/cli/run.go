package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"examquiz/internal/config"
	"examquiz/internal/question"
	"examquiz/internal/ui"
)

// runProgram executes the Bubble Tea application; swapped out in tests.
var runProgram = func(model ui.Model, stdout io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// runQuiz builds the handler for the run command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: .examquiz.yml if present)")
		bankPath := flags.String("bank", "", "Path to question bank file (default: built-in bank)")
		noColor := flags.Bool("no-color", false, "Disable color output")
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

		cfg, err := config.LoadOptional(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Startup failed:\n%v\n", err)
			return ExitError
		}
		bank, err := resolveBank(*bankPath, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Startup failed:\n%v\n", err)
			return ExitError
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "examquiz run needs an interactive terminal (stdout is not a TTY).")
			return ExitError
		}

		model := ui.NewModel(bank, ui.Options{NoColor: *noColor || cfg.UI.NoColor})
		if err := runProgram(model, stdout); err != nil {
			fmt.Fprintf(stderr, "UI error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// resolveBank picks the bank source: flag, then config, then the built-in
// bank. Validation failures here are fatal before any UI is shown.
func resolveBank(flagPath string, cfg config.Config) (question.Bank, error) {
	path := flagPath
	if path == "" {
		path = cfg.Bank
	}
	if path == "" {
		return question.DefaultBank()
	}
	return question.LoadBank(path)
}
