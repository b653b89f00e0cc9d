// Package catalog defines crystal reference records and the seed catalog
// that ships inside the binary.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed crystals.yaml
var embeddedFS embed.FS

// Crystal is one entry of the crystal reference database.
type Crystal struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Properties  []string `yaml:"properties" json:"properties"`
	Colors      []string `yaml:"colors" json:"colors"`
	Chakra      string   `yaml:"chakra" json:"chakra"`
	Origin      string   `yaml:"origin" json:"origin"`
	Element     string   `yaml:"element" json:"element"`
}

type seedFile struct {
	Crystals []Crystal `yaml:"crystals"`
}

// Load returns the embedded seed catalog.
func Load() ([]Crystal, error) {
	b, err := fs.ReadFile(embeddedFS, "crystals.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a catalog document and validates every entry.
func Parse(b []byte) ([]Crystal, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(f.Crystals))
	for i, c := range f.Crystals {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("crystal %d: name is required", i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("crystal %q: duplicate entry", name)
		}
		seen[key] = true
		f.Crystals[i].Name = name
	}
	return f.Crystals, nil
}
