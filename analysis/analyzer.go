// Package analysis detects graph structure in arbitrary JSON documents.
//
// Given decoded JSON it finds every candidate node array, classifies the
// fields of the array elements, and recommends which fields should serve as
// ID, label and relations when the document is loaded as a graph.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoArrayFound is returned when a document contains no non-empty array
// of objects to build nodes from.
var ErrNoArrayFound = errors.New("no suitable array found in JSON")

// FieldType classifies the dominant JSON type of a field.
type FieldType string

const (
	TypeString  FieldType = "STRING"
	TypeNumber  FieldType = "NUMBER"
	TypeBoolean FieldType = "BOOLEAN"
	TypeArray   FieldType = "ARRAY"
	TypeObject  FieldType = "OBJECT"
	TypeNull    FieldType = "NULL"
)

// Field describes one field observed across the elements of an array.
type Field struct {
	Name string
	Type FieldType

	// Occurrences is the number of elements carrying the field.
	Occurrences int

	IDCandidate       bool
	LabelCandidate    bool
	RelationCandidate bool
}

// ArraySchema is the analysis of a single array of objects.
type ArraySchema struct {
	// Path is the dot path from the document root, e.g. "data.users".
	Path string

	ElementCount int
	Fields       []Field

	// IDField is the recommended ID field, empty when none qualifies.
	IDField string

	// LabelField is the recommended label field, empty when none qualifies.
	LabelField string

	// RelationFields are fields holding arrays of IDs.
	RelationFields []string
}

// Detection is the full analysis of a document.
type Detection struct {
	// Arrays holds every analyzed array, in document discovery order.
	Arrays []ArraySchema

	// Primary is the highest scored array, the one most suitable as the
	// node source.
	Primary *ArraySchema
}

// Analyze walks a decoded JSON document and scores every array of objects
// it finds.
func Analyze(data any) (*Detection, error) {
	var arrays []ArraySchema
	findArrays(data, "", &arrays)
	if len(arrays) == 0 {
		return nil, ErrNoArrayFound
	}

	d := &Detection{Arrays: arrays}
	best := -1
	for i := range arrays {
		if s := score(&arrays[i]); s > best {
			best = s
			d.Primary = &arrays[i]
		}
	}
	return d, nil
}

// findArrays recurses through objects collecting array schemas. Arrays are
// analyzed but not descended into.
func findArrays(data any, path string, out *[]ArraySchema) {
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return
		}
		if schema, ok := analyzeArray(v, path); ok {
			*out = append(*out, schema)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			childPath := k
			if path != "" {
				childPath = path + "." + k
			}
			findArrays(v[k], childPath, out)
		}
	}
}

func analyzeArray(arr []any, path string) (ArraySchema, bool) {
	total := len(arr)
	valuesByField := map[string][]any{}
	for _, elem := range arr {
		obj, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range obj {
			valuesByField[k] = append(valuesByField[k], v)
		}
	}
	if len(valuesByField) == 0 {
		return ArraySchema{}, false
	}

	fields := make([]Field, 0, len(valuesByField))
	for name, values := range valuesByField {
		fields = append(fields, analyzeField(name, values, total))
	}
	// Most common fields first; ties break on name for stable output.
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Occurrences != fields[j].Occurrences {
			return fields[i].Occurrences > fields[j].Occurrences
		}
		return fields[i].Name < fields[j].Name
	})

	schema := ArraySchema{Path: path, ElementCount: total, Fields: fields}
	schema.IDField = pickID(fields)
	schema.LabelField = pickLabel(fields)
	for _, f := range fields {
		if f.RelationCandidate {
			schema.RelationFields = append(schema.RelationFields, f.Name)
		}
	}
	return schema, true
}

func pickID(fields []Field) string {
	for _, f := range fields {
		if f.IDCandidate {
			return f.Name
		}
	}
	for _, f := range fields {
		if f.Name == "id" || f.Name == "_id" {
			return f.Name
		}
	}
	return ""
}

func pickLabel(fields []Field) string {
	for _, f := range fields {
		if f.LabelCandidate {
			return f.Name
		}
	}
	for _, f := range fields {
		switch f.Name {
		case "type", "role", "kind", "category", "label", "class":
			return f.Name
		}
	}
	return ""
}

func analyzeField(name string, values []any, total int) Field {
	types := map[FieldType]bool{}
	uniqueStrings := map[string]bool{}
	arrayElemTypes := map[FieldType]bool{}

	for _, v := range values {
		switch t := v.(type) {
		case string:
			types[TypeString] = true
			uniqueStrings[t] = true
		case json.Number, float64:
			types[TypeNumber] = true
		case bool:
			types[TypeBoolean] = true
		case []any:
			types[TypeArray] = true
			for _, elem := range t {
				switch elem.(type) {
				case string:
					arrayElemTypes[TypeString] = true
				case json.Number, float64:
					arrayElemTypes[TypeNumber] = true
				}
			}
		case map[string]any:
			types[TypeObject] = true
		case nil:
			types[TypeNull] = true
		}
	}

	f := Field{Name: name, Occurrences: len(values)}
	switch {
	case len(types) == 1:
		for t := range types {
			f.Type = t
		}
	case types[TypeString]:
		f.Type = TypeString
	default:
		f.Type = TypeNull
	}

	f.IDCandidate = (name == "id" || name == "_id" || strings.Contains(name, "id")) &&
		len(values) == total &&
		len(uniqueStrings) == total
	f.LabelCandidate = (name == "type" || name == "role" || name == "kind") &&
		len(values) >= total/2 &&
		len(uniqueStrings) < total
	f.RelationCandidate = f.Type == TypeArray &&
		len(arrayElemTypes) > 0 && len(arrayElemTypes) <= 2 &&
		(arrayElemTypes[TypeString] || arrayElemTypes[TypeNumber])

	return f
}

// score ranks an array's suitability as the node source. Larger, shallower
// arrays with identifiable IDs, labels and relations win.
func score(s *ArraySchema) int {
	n := s.ElementCount
	if n > 100 {
		n = 100
	}
	total := n
	if s.IDField != "" {
		total += 200
	}
	if s.LabelField != "" {
		total += 100
	}
	total += len(s.RelationFields) * 50
	total -= strings.Count(s.Path, ".") * 10
	if strings.Contains(s.Path, "node") || strings.Contains(s.Path, "user") || strings.Contains(s.Path, "item") {
		total += 50
	}
	return total
}

// Pattern renders the primary schema as a compact Cypher-style pattern,
// like (:users {id, name})-[:friends]->(:users).
func (d *Detection) Pattern() string {
	schema := d.Primary
	if schema == nil && len(d.Arrays) > 0 {
		schema = &d.Arrays[0]
	}
	if schema == nil {
		return "()"
	}

	parts := strings.Split(schema.Path, ".")
	nodeType := parts[len(parts)-1]
	idField := schema.IDField
	if idField == "" {
		idField = "id"
	}

	var props []string
	for _, f := range schema.Fields {
		if !f.RelationCandidate && f.Name != idField {
			props = append(props, f.Name)
		}
	}

	node := fmt.Sprintf("(:%s {%s})", nodeType, idField)
	if len(props) > 0 {
		node = fmt.Sprintf("(:%s {%s, %s})", nodeType, idField, strings.Join(props, ", "))
	}

	var patterns []string
	for _, rel := range schema.RelationFields {
		patterns = append(patterns, fmt.Sprintf("%s-[:%s]->%s", node, rel, node))
	}
	if len(patterns) == 0 {
		return node
	}
	return strings.Join(patterns, " | ")
}
