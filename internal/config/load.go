package config

import (
	"fmt"
	"os"
)

// ConfigFileName is the default settings file looked up in the working
// directory.
const ConfigFileName = ".examquiz.yml"

// DefaultBankFileName is the bank file written by scaffolding.
const DefaultBankFileName = "questions.yml"

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional loads a config file when it exists; a missing file yields the
// defaults. An explicitly requested path must exist.
func LoadOptional(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := Config{}
			Normalize(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	return Load(path)
}
