package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file and decodes it into target, rejecting unknown fields.
func LoadYAML(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal YAML from %s: %w", path, err)
	}
	return nil
}
