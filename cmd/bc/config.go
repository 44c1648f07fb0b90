package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rcname is the configuration file looked up in the home directory when no
// -config flag is given.
const rcname = ".bcrc.yaml"

// config holds driver settings. Flags given on the command line override the
// values read from the file.
type config struct {
	// Prompt is the interactive prompt.
	Prompt string `yaml:"prompt"`
	// History is the file interactive history is kept in. Relative paths are
	// relative to the home directory. Empty disables history.
	History string `yaml:"history"`
	// Debug prints tokens, trees, and programs before running statements.
	Debug bool `yaml:"debug"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// MaxDepth limits expression nesting.
	MaxDepth int `yaml:"max_depth"`
	// Constants defines pi and e at startup.
	Constants bool `yaml:"constants"`
	// Vars are variables defined at startup.
	Vars map[string]float64 `yaml:"vars"`
}

func defaultConfig() config {
	return config{
		Prompt:  "> ",
		History: ".bc_history",
		Format:  "%v",
	}
}

// loadConfig reads the configuration file at path over the defaults. If path
// is empty, it tries the rc file in the home directory and uses the defaults
// if there is none.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, rcname)
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f, cfg, path)
}

// decodeConfig decodes YAML from r over cfg. An empty document leaves cfg
// unchanged.
func decodeConfig(r io.Reader, cfg config, name string) (config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return cfg, nil
}

// historyPath resolves the history file name against the home directory.
func (c config) historyPath() string {
	if c.History == "" || filepath.IsAbs(c.History) {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.History)
}
