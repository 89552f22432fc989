// Package config loads the optional YAML config file. The file
// supplies defaults for the input sheet paths and diagram options;
// command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/libsys/netdiag/internal/netdiag"
)

// DefaultPath is the config file consulted when -C is not given. It is
// not an error for this file to be absent.
const DefaultPath = "netdiag.yaml"

var validate = validator.New()

// Config mirrors the YAML config file.
type Config struct {
	Graph  Graph  `yaml:"graph"`
	Inputs Inputs `yaml:"inputs"`
	Output Output `yaml:"output"`
}

// Graph holds diagram options. The highlight color is a Graphviz
// color name or a hex color.
type Graph struct {
	Name           string `yaml:"name"`
	HighlightColor string `yaml:"highlight_color" validate:"omitempty,alpha|hexcolor"`
}

// Inputs holds default paths for the three sheets.
type Inputs struct {
	Environments string `yaml:"environments"`
	Systems      string `yaml:"systems"`
	DataFlows    string `yaml:"dataflows"`
}

// Output holds the output format, one of dot, png or svg. Everything
// but dot needs the Graphviz dot binary on PATH.
type Output struct {
	Format string `yaml:"format" validate:"omitempty,oneof=dot png svg"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: Graph{
			Name:           "ILS",
			HighlightColor: netdiag.DefaultHighlight,
		},
		Output: Output{Format: "dot"},
	}
}

// Load reads and validates the config file at path, layered over the
// built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, layered over the built-in defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
