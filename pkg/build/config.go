package build

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"minicc/pkg/compiler"
)

// Config carries the driver settings for a full build. Zero-value fields
// fall back to the defaults, so a config file only needs the keys it wants
// to change.
type Config struct {
	Assembler string   `yaml:"assembler"` // assembler/linker binary
	Args      []string `yaml:"args"`      // extra arguments, placed before -o
	Target    string   `yaml:"target"`    // target name, e.g. "linux/amd64"
	KeepAsm   bool     `yaml:"keep_asm"`  // retain the intermediate .s file
}

// DefaultConfig returns the settings used when no config file is given:
// gcc as the external assembler/linker, the host target, intermediate
// assembly removed after the build.
func DefaultConfig() Config {
	return Config{
		Assembler: "gcc",
		Target:    compiler.DefaultTarget().Name,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Assembler == "" {
		cfg.Assembler = "gcc"
	}
	if cfg.Target == "" {
		cfg.Target = compiler.DefaultTarget().Name
	}
	return cfg, nil
}

// ResolveTarget maps the configured target name to its definition.
func (c Config) ResolveTarget() (compiler.Target, error) {
	if c.Target == "" {
		return compiler.DefaultTarget(), nil
	}
	tgt, ok := compiler.Targets[c.Target]
	if !ok {
		return compiler.Target{}, fmt.Errorf("unknown target %q", c.Target)
	}
	return tgt, nil
}
