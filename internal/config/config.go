package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keebtools/zmkbuild/internal/paths"
)

// Defaults for a stock Sofle workspace laid out the way the ZMK config
// template repositories are.
const (
	DefaultImage     = "zmkfirmware/zmk-build-arm:stable"
	DefaultBoard     = "nice_nano_v2"
	DefaultConfigDir = "config"
	DefaultOutputDir = "firmware"
)

// Settings controlling a build run.
//
// A field left empty in a file falls through to the layer below it.
type Config struct {
	Image      string `yaml:"image"`       // Build image reference.
	Board      string `yaml:"board"`       // Zephyr board identifier.
	ConfigDir  string `yaml:"config_dir"`  // Keyboard config directory.
	OutputDir  string `yaml:"output_dir"`  // Artifact output directory.
	DockerPath string `yaml:"docker_path"` // Docker binary; empty resolves from PATH.
}

// Returns the built-in configuration.
func Default() Config {
	return Config{
		Image:     DefaultImage,
		Board:     DefaultBoard,
		ConfigDir: DefaultConfigDir,
		OutputDir: DefaultOutputDir,
	}
}

// Loads the effective configuration for a working directory.
//
// Three layers, later overriding earlier: built-in defaults, the global file
// under the user config directory, and the workspace file in dir. Missing
// files are skipped; a file that exists but does not parse is an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	for _, path := range []string{paths.GlobalConfig(), paths.WorkspaceConfig(dir)} {
		layer, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, layer)
	}

	return cfg, nil
}

// Reads a single configuration file. A missing file yields an empty layer.
func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %w", ErrConfig, path, err)
	}
	return cfg, nil
}

// Overlays the non-empty fields of layer onto base.
func merge(base, layer Config) Config {
	if layer.Image != "" {
		base.Image = layer.Image
	}
	if layer.Board != "" {
		base.Board = layer.Board
	}
	if layer.ConfigDir != "" {
		base.ConfigDir = layer.ConfigDir
	}
	if layer.OutputDir != "" {
		base.OutputDir = layer.OutputDir
	}
	if layer.DockerPath != "" {
		base.DockerPath = layer.DockerPath
	}
	return base
}
