// Package config loads optional file-based defaults for the CLI. Flags
// always win over file values; the file just spares operators from retyping
// directory and browser settings on every run.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// File is the YAML configuration schema.
type File struct {
	Out       string `yaml:"out"`
	Downloads string `yaml:"downloads"`

	Browser struct {
		Bin      string `yaml:"bin"`
		Headless bool   `yaml:"headless"`
	} `yaml:"browser"`

	Section string `yaml:"section"`
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// Load reads a YAML config file.
func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}
