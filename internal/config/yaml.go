package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// PresetFile is the on-disk shape of a user preset file: a map of preset
// name to output options.
type PresetFile struct {
	Presets map[string]OutputOptions `yaml:"presets"`
}

// LoadPresetFile loads named output presets from a YAML file. Every
// loaded preset is validated before the file is accepted.
func LoadPresetFile(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("failed to read preset file", err)
	}

	var pf PresetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.NewIOError("failed to parse preset file", err)
	}

	for name, opts := range pf.Presets {
		if err := opts.Validate(); err != nil {
			return nil, errors.NewInvalidParameter("preset %q: %v", name, err)
		}
	}

	return &pf, nil
}

// FindPresetFile searches for a preset file in standard locations.
// Returns empty string if none is found (non-fatal).
func FindPresetFile() string {
	locations := []string{
		"./cutlass.yaml",
		"./cutlass.yml",
		filepath.Join(os.Getenv("HOME"), ".cutlass", "presets.yaml"),
		filepath.Join(os.Getenv("HOME"), ".cutlass", "presets.yml"),
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Resolve returns the options for name, checking the file's presets first
// and falling back to the built-in presets.
func (pf *PresetFile) Resolve(name string) (OutputOptions, error) {
	if pf != nil {
		if opts, ok := pf.Presets[name]; ok {
			return opts, nil
		}
	}
	p, err := ParsePreset(name)
	if err != nil {
		return OutputOptions{}, err
	}
	return GetPresetOptions(p), nil
}
