package cypherlite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadGraph builds a graph from already decoded JSON data using a config.
// Node properties are the node's whole JSON object, so the ID and label
// fields stay queryable as regular properties.
//
// Nodes are added in document order. Relation fields hold either a single
// node ID or an array of IDs; references to unknown IDs are skipped.
func LoadGraph(data any, cfg GraphConfig) (*Graph, error) {
	raw, ok := navigatePath(data, cfg.NodePath)
	if !ok {
		return nil, fmt.Errorf("%w: cannot find node path %q", ErrInvalidData, cfg.NodePath)
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: node path %q is not an array", ErrInvalidData, cfg.NodePath)
	}

	g := NewGraph()
	for idx, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: node at index %d is not an object", ErrInvalidData, idx)
		}
		id, ok := obj[cfg.IDField].(string)
		if !ok {
			return nil, fmt.Errorf("%w: node at index %d missing id field %q", ErrInvalidData, idx, cfg.IDField)
		}
		var label string
		if cfg.LabelField != "" {
			label, _ = obj[cfg.LabelField].(string)
		}
		g.AddNode(Node{ID: id, Label: label, Props: obj})
	}

	for idx, item := range arr {
		obj := item.(map[string]any)
		fromID, _ := obj[cfg.IDField].(string)
		from, ok := g.NodeIndex(fromID)
		if !ok {
			return nil, fmt.Errorf("%w: cannot find node at index %d", ErrInvalidData, idx)
		}
		for _, field := range cfg.RelationFields {
			switch rel := obj[field].(type) {
			case []any:
				for _, v := range rel {
					if toID, ok := v.(string); ok {
						addRelation(g, from, toID, field)
					}
				}
			case string:
				addRelation(g, from, rel, field)
			}
		}
	}

	return g, nil
}

func addRelation(g *Graph, from int, toID, relType string) {
	if to, ok := g.NodeIndex(toID); ok {
		g.AddEdge(Edge{From: from, To: to, Type: relType})
	}
}

// LoadGraphJSON decodes JSON text and builds a graph from it. Numbers are
// kept as json.Number so integer properties survive exactly.
func LoadGraphJSON(data []byte, cfg GraphConfig) (*Graph, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return LoadGraph(v, cfg)
}

// LoadGraphFile reads a JSON file and builds a graph from it.
func LoadGraphFile(path string, cfg GraphConfig) (*Graph, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return LoadGraphJSON(data, cfg)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// navigatePath walks a dot path into decoded JSON. A "*" segment is a
// pass-through that keeps the current value, so "data.*.users" and
// "data.users" address the same array.
func navigatePath(v any, path string) (any, bool) {
	for _, part := range strings.Split(path, ".") {
		if part == "*" {
			continue
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return v, true
}
