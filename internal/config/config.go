// Package config loads per-run report configuration from a
// .defectdoc.yaml file, with CLI flags layered on top by the caller.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration. Every field is optional; zero
// values fall back to defaults.
type File struct {
	// Threshold is the analyzer's minimum-severity code ("1".."5").
	Threshold string `yaml:"threshold"`

	// Effort is the analyzer's effort code ("min", "default", "max").
	Effort string `yaml:"effort"`

	// Encoding is the IANA name of the output character encoding.
	Encoding string `yaml:"encoding"`

	// Format selects the output format: "xml", "json", or "text".
	Format string `yaml:"format"`

	// SourceRoots and TestSourceRoots list the project's source
	// directories, reported in the Project block.
	SourceRoots     []string `yaml:"source_roots"`
	TestSourceRoots []string `yaml:"test_source_roots"`
}

// Default returns the configuration used when no file or flags
// override it.
func Default() *File {
	return &File{
		Threshold: "2",
		Effort:    "default",
		Encoding:  "UTF-8",
		Format:    "xml",
	}
}

// Load reads a configuration file and layers it over Default.
// A missing file is not an error; a file that exists but cannot be
// parsed is.
func Load(path string) (*File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
