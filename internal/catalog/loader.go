package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML schema:
//
//	tools:
//	  - id: addition-race
//	    name: Addition Race
//	    description: ...
//	    category: math
//	    icon: fas fa-plus
//	    isPopular: true
//	    href: /games/addition-race
type catalogFile struct {
	Tools []Tool `yaml:"tools"`
}

// LoadFile builds a catalog from a YAML file, replacing the built-in set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(f.Tools) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no tools", path)
	}

	c, err := New(f.Tools)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}
