package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
bank: "questions.yml"
ui:
  no_color: false
`

const starterBank = `version: 1
categories:
  - id: sample
    name: "Sample Quiz"
    questions:
      - question: "Which keyword declares a variable in Go?"
        choices:
          - "var"
          - "let"
          - "dim"
        answer: "var"
      - question: "Which data structure is first-in, first-out?"
        choices:
          - "Stack"
          - "Queue"
          - "Tree"
        answer: "Queue"
`

// Scaffold writes a starter config and question bank next to configPath.
// Existing files are never overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if err := refuseExisting(configPath, "config"); err != nil {
		return err
	}
	bankPath := filepath.Join(filepath.Dir(configPath), DefaultBankFileName)
	if err := refuseExisting(bankPath, "bank"); err != nil {
		return err
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(bankPath, []byte(starterBank), 0o644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

func refuseExisting(path, kind string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", kind, path)
		}
		return fmt.Errorf("%s file already exists at %q", kind, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", kind, err)
	}
	return nil
}
