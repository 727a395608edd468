package cypherlite

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GraphConfig describes how to map a JSON document into a graph: where the
// node objects live, which field identifies a node, and which fields carry
// relationships to other node IDs.
type GraphConfig struct {
	// NodePath is a dot path to the array of node objects, e.g.
	// "data.users" or "data.*.users". A "*" segment is a pass-through
	// that keeps the current value, so both examples address the same
	// array.
	NodePath string `yaml:"node_path" json:"node_path"`

	// IDField names the field holding a node's unique ID.
	IDField string `yaml:"id_field" json:"id_field"`

	// LabelField optionally names the field used as the node label.
	LabelField string `yaml:"label_field,omitempty" json:"label_field,omitempty"`

	// RelationFields name fields whose values are arrays of node IDs. Each
	// field becomes a relationship type of the same name.
	RelationFields []string `yaml:"relation_fields,omitempty" json:"relation_fields,omitempty"`
}

// DefaultConfig maps the conventional {"nodes": [{"id": ...}]} shape.
func DefaultConfig() GraphConfig {
	return GraphConfig{NodePath: "nodes", IDField: "id"}
}

// DefaultConfigNames are the filenames FindConfig searches for.
var DefaultConfigNames = []string{".cypherlite.yaml", ".cypherlite.yml", "cypherlite.yaml", "cypherlite.yml"}

// LoadConfig finds and loads the nearest config file walking up from dir.
func LoadConfig(dir string) (*GraphConfig, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
// It returns ErrConfigNotFound when the filesystem root is reached without
// a hit.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*GraphConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg GraphConfig

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
