package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a plan from a TOML or YAML file, chosen by extension, and
// validates it. Fields missing from the file keep their zero values, so a
// plan file must be complete.
func Load(path string) (Plan, error) {
	path = os.ExpandEnv(path)

	var plan Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &plan); err != nil {
			return Plan{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Plan{}, fmt.Errorf("failed to read plan file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return Plan{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
		}
	default:
		return Plan{}, fmt.Errorf("unsupported plan file format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	if plan.Name == "" {
		plan.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := plan.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid plan: %w", err)
	}

	return plan, nil
}

// Resolve returns the plan to operate on: the file given by path, the
// PLANFORGE_PLAN environment variable, or the built-in default instance.
func Resolve(path string) (Plan, error) {
	if path == "" {
		path = os.Getenv("PLANFORGE_PLAN")
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
