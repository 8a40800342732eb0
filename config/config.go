/*
File    : monkey/config/config.go
Author  : A. Roy
*/

// Package config loads the REPL's cosmetic settings (banner, prompt,
// version/author/license strings, history file) from an optional YAML
// file, so they can be overridden without recompiling.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the dotfile config.Load looks for under the user's home
// directory.
const FileName = ".monkeygorc.yaml"

// Config holds every cosmetic REPL setting, plus the two options
// ~/.monkeygorc.yaml commonly wants to override: disabling color and
// choosing a history file.
type Config struct {
	Banner      string `yaml:"banner"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
	Prompt      string `yaml:"prompt"`
	Line        string `yaml:"line"`
	NoColor     bool   `yaml:"no_color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in settings used when no config file is found.
func Default() Config {
	return Config{
		Banner: `
   __  __             _
  |  \/  | ___  _ __ | | _____ _   _
  | |\/| |/ _ \| '_ \| |/ / _ \ | | |
  | |  | | (_) | | | |   <  __/ |_| |
  |_|  |_|\___/|_| |_|_|\_\___|\__, |
                                |___/
`,
		Version:     "v1.0.0",
		Author:      "A. Roy",
		License:     "MIT",
		Prompt:      "monkey >>> ",
		Line:        "----------------------------------------------------------------",
		NoColor:     false,
		HistoryFile: historyFilePath(),
	}
}

// Load returns Default() overlaid with whatever ~/.monkeygorc.yaml
// specifies; a missing file is not an error, since the config file is
// always optional.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(home, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".monkeygo_history"
	}
	return filepath.Join(home, ".monkeygo_history")
}
