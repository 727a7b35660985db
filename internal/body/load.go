package body

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Bodies []Definition `yaml:"bodies"`
}

// LoadFile reads body definitions from a YAML file and overlays them
// on the builtin catalog: names matching a builtin replace it, new
// names append after it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Bodies) == 0 {
		return nil, fmt.Errorf("catalog %s declares no bodies", path)
	}

	return Builtin().Overlay(file.Bodies)
}

// SaveFile writes a catalog to YAML in the same schema LoadFile
// reads, mostly useful as a starting point for custom catalogs.
func SaveFile(path string, c *Catalog) error {
	data, err := yaml.Marshal(catalogFile{Bodies: c.Bodies()})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
