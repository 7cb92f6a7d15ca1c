//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads kiddycalc settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the home directory.
const DefaultFileName = ".kiddycalc.yaml"

// Config holds the settings of one kiddycalc session.
type Config struct {
	Title   string       `yaml:"title"`
	Faces   []string     `yaml:"faces"`
	LogFile string       `yaml:"log_file"`
	Debug   bool         `yaml:"debug"`
	Colors  ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds 256-color palette indices for the screen.
type ColorsConfig struct {
	Background int `yaml:"background"`
	Display    int `yaml:"display"`
	Digit      int `yaml:"digit"`
	Operator   int `yaml:"operator"`
	Equals     int `yaml:"equals"`
	Clear      int `yaml:"clear"`
	Text       int `yaml:"text"`
	Accent     int `yaml:"accent"`
}

// DefaultConfig returns the built-in pastel settings.
func DefaultConfig() *Config {
	return &Config{
		Title:   "Kiddy Calc",
		Faces:   []string{"🐣", "🦄", "🍭", "🌈", "🐼", "⭐️"},
		LogFile: DefaultLogFile(),
		Colors: ColorsConfig{
			Background: 231,
			Display:    255,
			Digit:      195,
			Operator:   218,
			Equals:     212,
			Clear:      225,
			Text:       238,
			Accent:     161,
		},
	}
}

// DefaultPath returns the config file path in the home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// DefaultLogFile returns the log file path in the home directory.
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kiddycalclog")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv("KIDDYCALC_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v := os.Getenv("KIDDYCALC_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
}

// Validate checks that the settings can be drawn.
func (c *Config) Validate() error {
	if len(c.Faces) == 0 {
		return errors.New("config: faces must not be empty")
	}
	colors := map[string]int{
		"background": c.Colors.Background,
		"display":    c.Colors.Display,
		"digit":      c.Colors.Digit,
		"operator":   c.Colors.Operator,
		"equals":     c.Colors.Equals,
		"clear":      c.Colors.Clear,
		"text":       c.Colors.Text,
		"accent":     c.Colors.Accent,
	}
	for name, v := range colors {
		if v < 0 || v > 255 {
			return fmt.Errorf("config: color %s must be in 0..255, got %d", name, v)
		}
	}
	return nil
}
